package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/storemate/storemate-backend-go/internal/domain/report"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// SalesByDay implements report.Repository. Revenue only counts completed
// orders; cancelled and in-flight orders still count toward order_count.
func (r *reportRepository) SalesByDay(ctx context.Context, startDate, endDate time.Time) ([]report.SalesByDayRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT created_at::date AS day,
			   COUNT(*) AS order_count,
			   COALESCE(SUM(total) FILTER (WHERE status = 'completed'), 0) AS revenue
		FROM orders
		WHERE created_at::date BETWEEN $1 AND $2
		GROUP BY day
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales by day: %w", err)
	}
	defer rows.Close()

	var result []report.SalesByDayRow
	for rows.Next() {
		var row report.SalesByDayRow
		if err := rows.Scan(&row.Date, &row.OrderCount, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}
