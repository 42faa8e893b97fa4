package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository runs the read-only aggregation queries behind reports.
type Repository interface {
	SalesByDay(ctx context.Context, startDate, endDate time.Time) ([]SalesByDayRow, error)
}

type SalesByDayRow struct {
	Date       time.Time
	OrderCount int
	Revenue    decimal.Decimal
}
