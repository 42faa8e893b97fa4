package feedback

import (
	"context"
	"math"
	"time"

	"github.com/storemate/storemate-backend-go/internal/domain/feedback"
)

type FeedbackServiceImpl struct {
	feedbackRepo feedback.Repository
}

// NewFeedbackService creates a new instance of feedback.Service.
func NewFeedbackService(feedbackRepo feedback.Repository) feedback.Service {
	return &FeedbackServiceImpl{feedbackRepo: feedbackRepo}
}

func toFeedbackResponse(f feedback.Feedback) feedback.FeedbackResponse {
	return feedback.FeedbackResponse{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements feedback.Service. Submission is public; no account or
// badge required.
func (s *FeedbackServiceImpl) Create(ctx context.Context, req feedback.CreateFeedbackRequest) (feedback.FeedbackResponse, error) {
	if err := req.Validate(); err != nil {
		return feedback.FeedbackResponse{}, err
	}

	created, err := s.feedbackRepo.Create(ctx, feedback.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		return feedback.FeedbackResponse{}, err
	}

	return toFeedbackResponse(created), nil
}

// List implements feedback.Service.
func (s *FeedbackServiceImpl) List(ctx context.Context, filter feedback.Filter) (feedback.ListFeedbackResponse, error) {
	if err := filter.Validate(); err != nil {
		return feedback.ListFeedbackResponse{}, err
	}

	feedbacks, total, err := s.feedbackRepo.List(ctx, filter)
	if err != nil {
		return feedback.ListFeedbackResponse{}, err
	}

	responses := make([]feedback.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		responses = append(responses, toFeedbackResponse(f))
	}

	return feedback.ListFeedbackResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Feedback:   responses,
	}, nil
}

// Delete implements feedback.Service.
func (s *FeedbackServiceImpl) Delete(ctx context.Context, id string) error {
	return s.feedbackRepo.Delete(ctx, id)
}
