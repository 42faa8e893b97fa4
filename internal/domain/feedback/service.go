package feedback

import "context"

// Service defines business logic for customer feedback
type Service interface {
	Create(ctx context.Context, req CreateFeedbackRequest) (FeedbackResponse, error)
	List(ctx context.Context, filter Filter) (ListFeedbackResponse, error)
	Delete(ctx context.Context, id string) error
}
