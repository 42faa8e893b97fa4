package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storemate/storemate-backend-go/internal/domain/product"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
)

type productRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.Repository {
	return &productRepository{db: db}
}

const productColumns = `id, sku, name, description, category, price, stock, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.Price, &p.Stock,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements product.Repository.
func (r *productRepository) Create(ctx context.Context, p product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (sku, name, description, category, price, stock, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.SKU, p.Name, p.Description, p.Category, p.Price, p.Stock, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return product.Product{}, product.ErrSKUExists
		}
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return p, nil
}

// GetByID implements product.Repository.
func (r *productRepository) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProduct(q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return p, nil
}

// GetBySKU implements product.Repository.
func (r *productRepository) GetBySKU(ctx context.Context, sku string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProduct(q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to get product by SKU: %w", err)
	}

	return p, nil
}

// Update implements product.Repository.
func (r *productRepository) Update(ctx context.Context, p product.Product) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE products
		SET name = $1, description = $2, category = $3, price = $4, stock = $5,
			is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		p.Name, p.Description, p.Category, p.Price, p.Stock, p.IsActive, time.Now(), p.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// AdjustStock implements product.Repository.
func (r *productRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE products
		SET stock = stock + $1, updated_at = NOW()
		WHERE id = $2 AND stock + $1 >= 0
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, delta, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// either the product is missing or the delta would go negative
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return product.ErrInsufficientStock
		}
		return fmt.Errorf("failed to adjust product stock: %w", err)
	}

	return nil
}

// List implements product.Repository.
func (r *productRepository) List(ctx context.Context, filter product.Filter) ([]product.Product, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Category != nil && *filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM products WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	orderByField := "name"
	switch filter.SortBy {
	case "sku":
		orderByField = "sku"
	case "category":
		orderByField = "category"
	case "price":
		orderByField = "price"
	case "stock":
		orderByField = "stock"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, productColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.Price, &p.Stock,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, total, nil
}

// Delete implements product.Repository.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}
