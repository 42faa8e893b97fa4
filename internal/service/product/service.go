package product

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/storemate/storemate-backend-go/internal/domain/product"
)

type ProductServiceImpl struct {
	productRepo product.Repository
}

// NewProductService creates a new instance of product.Service.
func NewProductService(productRepo product.Repository) product.Service {
	return &ProductServiceImpl{productRepo: productRepo}
}

func toProductResponse(p product.Product) product.ProductResponse {
	return product.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements product.Service.
func (s *ProductServiceImpl) Create(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	p := product.Product{
		SKU:         strings.ToUpper(req.SKU),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    true,
	}

	created, err := s.productRepo.Create(ctx, p)
	if err != nil {
		return product.ProductResponse{}, err
	}

	return toProductResponse(created), nil
}

// Get implements product.Service.
func (s *ProductServiceImpl) Get(ctx context.Context, id string) (product.ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

// Update implements product.Service.
func (s *ProductServiceImpl) Update(ctx context.Context, req product.UpdateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	p, err := s.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return product.ProductResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(ctx, p); err != nil {
		return product.ProductResponse{}, err
	}

	updated, err := s.productRepo.GetByID(ctx, p.ID)
	if err != nil {
		return product.ProductResponse{}, err
	}

	return toProductResponse(updated), nil
}

// List implements product.Service.
func (s *ProductServiceImpl) List(ctx context.Context, filter product.Filter) (product.ListProductsResponse, error) {
	if err := filter.Validate(); err != nil {
		return product.ListProductsResponse{}, err
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return product.ListProductsResponse{}, err
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}

	return product.ListProductsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Products:   responses,
	}, nil
}

// Delete implements product.Service.
func (s *ProductServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
