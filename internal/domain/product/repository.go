package product

import "context"

type Repository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	GetBySKU(ctx context.Context, sku string) (Product, error)
	Update(ctx context.Context, p Product) error
	// AdjustStock applies a delta atomically; ErrInsufficientStock when
	// the result would go negative.
	AdjustStock(ctx context.Context, id string, delta int) error
	List(ctx context.Context, filter Filter) ([]Product, int64, error)
	Delete(ctx context.Context, id string) error
}
