package employee

import "context"

// Service defines business logic for employee management
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, filter Filter) (ListEmployeesResponse, error)
	Delete(ctx context.Context, id string) error

	// RotateBadge issues a fresh QR badge secret, invalidating the old badge
	RotateBadge(ctx context.Context, id string) (BadgeResponse, error)
}
