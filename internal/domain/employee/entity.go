package employee

import (
	"time"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusInactive EmploymentStatus = "inactive"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FirstName        string
	LastName         string
	Position         string
	PhoneNumber      *string
	Email            *string
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	QRBadgeSecret    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// FullName joins first and last name for display.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsActive reports whether the employee may record attendance.
func (e *Employee) IsActive() bool {
	return e.EmploymentStatus == StatusActive
}
