package product

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storemate/storemate-backend-go/internal/pkg/validator"
)

type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSKU(strings.ToUpper(r.SKU)) {
		errs = append(errs, validator.ValidationError{
			Field:   "sku",
			Message: "sku must be 3-32 uppercase alphanumeric characters or dashes",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}
	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}
	if r.Stock < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "stock",
			Message: "stock cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}
	if r.Stock != nil && *r.Stock < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "stock",
			Message: "stock cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductResponse struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type Filter struct {
	Search   *string `json:"search,omitempty"` // name or SKU
	Category *string `json:"category,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // name, sku, category, price, stock
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, []string{"name", "sku", "category", "price", "stock"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: name, sku, category, price, stock",
			})
		}
	} else {
		f.SortBy = "name"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListProductsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Products   []ProductResponse `json:"products"`
}
