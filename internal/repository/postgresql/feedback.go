package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/storemate/storemate-backend-go/internal/domain/feedback"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
)

type feedbackRepository struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) feedback.Repository {
	return &feedbackRepository{db: db}
}

// Create implements feedback.Repository.
func (r *feedbackRepository) Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedback (name, email, message, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, f.Name, f.Email, f.Message, f.Rating).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	return f, nil
}

// GetByID implements feedback.Repository.
func (r *feedbackRepository) GetByID(ctx context.Context, id string) (feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, message, rating, created_at
		FROM feedback
		WHERE id = $1
	`

	var f feedback.Feedback
	err := q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.Email, &f.Message, &f.Rating, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return feedback.Feedback{}, feedback.ErrFeedbackNotFound
		}
		return feedback.Feedback{}, fmt.Errorf("failed to get feedback by ID: %w", err)
	}

	return f, nil
}

// List implements feedback.Repository.
func (r *feedbackRepository) List(ctx context.Context, filter feedback.Filter) ([]feedback.Feedback, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Rating != nil {
		baseWhere += fmt.Sprintf(" AND rating = $%d", argIdx)
		args = append(args, *filter.Rating)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM feedback WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, name, email, message, rating, created_at
		FROM feedback
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var feedbacks []feedback.Feedback
	for rows.Next() {
		var f feedback.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Message, &f.Rating, &f.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}

	return feedbacks, total, nil
}

// Delete implements feedback.Repository.
func (r *feedbackRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return feedback.ErrFeedbackNotFound
	}

	return nil
}
