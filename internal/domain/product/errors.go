package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSKUExists         = errors.New("SKU already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)
