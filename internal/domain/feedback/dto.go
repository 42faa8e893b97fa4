package feedback

import (
	"github.com/storemate/storemate-backend-go/internal/pkg/validator"
)

type CreateFeedbackRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Message string  `json:"message"`
	Rating  int     `json:"rating"`
}

func (r *CreateFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FeedbackResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Message   string  `json:"message"`
	Rating    int     `json:"rating"`
	CreatedAt string  `json:"created_at"`
}

type Filter struct {
	Rating *int `json:"rating,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Rating != nil && (*f.Rating < 1 || *f.Rating > 5) {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFeedbackResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Feedback   []FeedbackResponse `json:"feedback"`
}
