package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	SKU         string
	Name        string
	Description *string
	Category    string
	Price       decimal.Decimal
	Stock       int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
