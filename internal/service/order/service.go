package order

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storemate/storemate-backend-go/internal/domain/order"
	"github.com/storemate/storemate-backend-go/internal/domain/product"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
	"github.com/storemate/storemate-backend-go/internal/repository/postgresql"
)

type OrderServiceImpl struct {
	db          *database.DB
	orderRepo   order.Repository
	productRepo product.Repository
}

// NewOrderService creates a new instance of order.Service.
func NewOrderService(db *database.DB, orderRepo order.Repository, productRepo product.Repository) order.Service {
	return &OrderServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func toItemResponse(item order.Item) order.ItemResponse {
	resp := order.ItemResponse{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice.StringFixed(2),
		Subtotal:  item.Subtotal().StringFixed(2),
	}
	if item.ProductName != nil {
		resp.ProductName = *item.ProductName
	}
	return resp
}

func toOrderResponse(o order.Order) order.OrderResponse {
	resp := order.OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Notes:         o.Notes,
		Status:        string(o.Status),
		Total:         o.Total.StringFixed(2),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.Format(time.RFC3339),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp
}

// newOrderNumber derives a short order reference from a fresh UUID.
func newOrderNumber() string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%s", strings.ToUpper(id.String()[:8]))
}

// Create implements order.Service. Prices are snapshotted from the catalog
// at order time; stock is reserved in the same transaction so an order
// never oversells.
func (s *OrderServiceImpl) Create(ctx context.Context, req order.CreateOrderRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	o := order.Order{
		OrderNumber:   newOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Status:        order.StatusPending,
		Total:         decimal.Zero,
	}

	for _, item := range req.Items {
		p, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return order.OrderResponse{}, err
		}
		if !p.IsActive {
			return order.OrderResponse{}, product.ErrProductNotFound
		}

		line := order.Item{
			ProductID: p.ID,
			Quantity:  item.Quantity,
			UnitPrice: p.Price,
		}
		o.Items = append(o.Items, line)
		o.Total = o.Total.Add(line.Subtotal())
	}

	var created order.Order
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		for _, item := range o.Items {
			if err := s.productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		var err error
		created, err = s.orderRepo.Create(ctx, o)
		return err
	})
	if err != nil {
		return order.OrderResponse{}, err
	}

	return toOrderResponse(created), nil
}

// Get implements order.Service.
func (s *OrderServiceImpl) Get(ctx context.Context, id string) (order.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return order.OrderResponse{}, err
	}
	return toOrderResponse(o), nil
}

// UpdateStatus implements order.Service. Cancelling an order returns its
// reserved stock to the catalog in the same transaction.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, req order.UpdateStatusRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	o, err := s.orderRepo.GetByID(ctx, req.ID)
	if err != nil {
		return order.OrderResponse{}, err
	}

	next := order.Status(strings.ToLower(req.Status))
	if !o.Status.CanTransitionTo(next) {
		return order.OrderResponse{}, order.ErrInvalidTransition
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if next == order.StatusCancelled {
			for _, item := range o.Items {
				if err := s.productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return s.orderRepo.UpdateStatus(ctx, o.ID, next)
	})
	if err != nil {
		return order.OrderResponse{}, err
	}

	updated, err := s.orderRepo.GetByID(ctx, o.ID)
	if err != nil {
		return order.OrderResponse{}, err
	}

	return toOrderResponse(updated), nil
}

// List implements order.Service.
func (s *OrderServiceImpl) List(ctx context.Context, filter order.Filter) (order.ListOrdersResponse, error) {
	if err := filter.Validate(); err != nil {
		return order.ListOrdersResponse{}, err
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return order.ListOrdersResponse{}, err
	}

	responses := make([]order.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}

	return order.ListOrdersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Orders:     responses,
	}, nil
}

// Delete implements order.Service.
func (s *OrderServiceImpl) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}
