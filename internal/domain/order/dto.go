package order

import (
	"strings"

	"github.com/storemate/storemate-backend-go/internal/pkg/validator"
)

type CreateOrderRequest struct {
	CustomerName  string              `json:"customer_name"`
	CustomerEmail *string             `json:"customer_email,omitempty"`
	CustomerPhone *string             `json:"customer_phone,omitempty"`
	Notes         *string             `json:"notes,omitempty"`
	Items         []CreateItemRequest `json:"items"`
}

type CreateItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_name",
			Message: "customer_name is required",
		})
	}
	if r.CustomerEmail != nil && !validator.IsValidEmail(*r.CustomerEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_email",
			Message: "customer_email must be a valid email address",
		})
	}
	if r.CustomerPhone != nil && !validator.IsValidPhoneNumber(*r.CustomerPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer_phone",
			Message: "customer_phone must be 10-13 digits",
		})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one item is required",
		})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.ProductID) {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every item requires a product_id",
			})
			break
		}
		if item.Quantity <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "every item quantity must be greater than zero",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	status := strings.ToLower(r.Status)
	valid := []string{string(StatusPending), string(StatusConfirmed), string(StatusCompleted), string(StatusCancelled)}
	if !validator.IsInSlice(status, valid) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, confirmed, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type OrderResponse struct {
	ID            string         `json:"id"`
	OrderNumber   string         `json:"order_number"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail *string        `json:"customer_email,omitempty"`
	CustomerPhone *string        `json:"customer_phone,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Status        string         `json:"status"`
	Total         string         `json:"total"`
	Items         []ItemResponse `json:"items,omitempty"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

type Filter struct {
	Search    *string `json:"search,omitempty"` // customer name or order number
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // created_at, customer_name, status, total
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

	if f.Status != nil && *f.Status != "" {
		valid := []string{string(StatusPending), string(StatusConfirmed), string(StatusCompleted), string(StatusCancelled)}
		if !validator.IsInSlice(strings.ToLower(*f.Status), valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, confirmed, completed, cancelled",
			})
		}
	}

	for field, value := range map[string]*string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.SortBy != "" {
		if !validator.IsInSlice(f.SortBy, []string{"created_at", "customer_name", "status", "total"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: created_at, customer_name, status, total",
			})
		}
	} else {
		f.SortBy = "created_at"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListOrdersResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Orders     []OrderResponse `json:"orders"`
}
