package order

import "context"

// Service defines business logic for customer orders
type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (OrderResponse, error)
	Get(ctx context.Context, id string) (OrderResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (OrderResponse, error)
	List(ctx context.Context, filter Filter) (ListOrdersResponse, error)
	Delete(ctx context.Context, id string) error
}
