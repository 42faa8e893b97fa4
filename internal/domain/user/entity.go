package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // operator - full access
	RoleStaff Role = "staff" // employee-facing access only
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is an operator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
