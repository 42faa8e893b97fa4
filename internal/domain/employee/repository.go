package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)
	Update(ctx context.Context, e Employee) error
	UpdateBadgeSecret(ctx context.Context, id string, secret string) error
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	Delete(ctx context.Context, id string) error
}
