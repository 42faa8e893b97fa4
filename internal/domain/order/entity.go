package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID            string
	OrderNumber   string
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string
	Status        Status
	Total         decimal.Decimal
	Items         []Item
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Item struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal

	// DTO
	ProductName *string
}

// Subtotal is quantity times unit price.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CanTransitionTo encodes the allowed status lifecycle: pending orders can
// be confirmed or cancelled, confirmed orders completed or cancelled, and
// completed/cancelled orders are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
