package order

import "context"

type Repository interface {
	// Create inserts an order and its items in a single transaction.
	Create(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	List(ctx context.Context, filter Filter) ([]Order, int64, error)
	Delete(ctx context.Context, id string) error
}
