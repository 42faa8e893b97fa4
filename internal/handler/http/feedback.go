package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storemate/storemate-backend-go/internal/domain/feedback"
	"github.com/storemate/storemate-backend-go/internal/handler/http/response"
)

type FeedbackHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type feedbackHandlerImpl struct {
	feedbackService feedback.Service
}

func NewFeedbackHandler(feedbackService feedback.Service) FeedbackHandler {
	return &feedbackHandlerImpl{
		feedbackService: feedbackService,
	}
}

// Create implements FeedbackHandler. Public endpoint; customers submit
// without an account.
func (h *feedbackHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req feedback.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.feedbackService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback received", result)
}

// List implements FeedbackHandler.
func (h *feedbackHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter feedback.Filter

	query := r.URL.Query()
	if rating := query.Get("rating"); rating != "" {
		parsed, err := strconv.Atoi(rating)
		if err == nil {
			filter.Rating = &parsed
		}
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.feedbackService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Feedback, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Delete implements FeedbackHandler.
func (h *feedbackHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.feedbackService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Feedback deleted", nil)
}
