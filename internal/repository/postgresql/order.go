package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/storemate/storemate-backend-go/internal/domain/order"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
)

type orderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create implements order.Repository. Callers run this inside WithTransaction
// together with the stock adjustments.
func (r *orderRepository) Create(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO orders (order_number, customer_name, customer_email, customer_phone, notes, status, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		o.OrderNumber, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Notes, o.Status, o.Total,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		err := q.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, o.ID, o.Items[i].ProductID, o.Items[i].Quantity, o.Items[i].UnitPrice).Scan(&o.Items[i].ID)
		if err != nil {
			return order.Order{}, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	return o, nil
}

// GetByID implements order.Repository.
func (r *orderRepository) GetByID(ctx context.Context, id string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, order_number, customer_name, customer_email, customer_phone, notes, status, total,
			   created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var o order.Order
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Notes,
		&o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to get order by ID: %w", err)
	}

	itemRows, err := q.Query(ctx, `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.unit_price, p.name
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`, id)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item order.Item
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.ProductName); err != nil {
			return order.Order{}, fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}

	return o, nil
}

// UpdateStatus implements order.Repository.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 RETURNING id
	`, status, time.Now(), id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

// List implements order.Repository. Items are not fetched in list view.
func (r *orderRepository) List(ctx context.Context, filter order.Filter) ([]order.Order, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (customer_name ILIKE $%d OR order_number ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, strings.ToLower(*filter.Status))
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND created_at::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND created_at::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM orders WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	orderByField := "created_at"
	switch filter.SortBy {
	case "customer_name":
		orderByField = "customer_name"
	case "status":
		orderByField = "status"
	case "total":
		orderByField = "total"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, order_number, customer_name, customer_email, customer_phone, notes, status, total,
			   created_at, updated_at
		FROM orders
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Notes,
			&o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

// Delete implements order.Repository. Items cascade via FK.
func (r *orderRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}
