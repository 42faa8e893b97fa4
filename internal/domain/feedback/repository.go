package feedback

import "context"

type Repository interface {
	Create(ctx context.Context, f Feedback) (Feedback, error)
	GetByID(ctx context.Context, id string) (Feedback, error)
	List(ctx context.Context, filter Filter) ([]Feedback, int64, error)
	Delete(ctx context.Context, id string) error
}
