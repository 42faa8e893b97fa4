package product

import "context"

// Service defines business logic for the product catalog
type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	Get(ctx context.Context, id string) (ProductResponse, error)
	Update(ctx context.Context, req UpdateProductRequest) (ProductResponse, error)
	List(ctx context.Context, filter Filter) (ListProductsResponse, error)
	Delete(ctx context.Context, id string) error
}
