package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storemate/storemate-backend-go/internal/domain/order"
	"github.com/storemate/storemate-backend-go/internal/handler/http/response"
)

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type orderHandlerImpl struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) OrderHandler {
	return &orderHandlerImpl{
		orderService: orderService,
	}
}

// Create implements OrderHandler.
func (h *orderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req order.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.orderService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created", result)
}

// Get implements OrderHandler.
func (h *orderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements OrderHandler.
func (h *orderHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req order.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.orderService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OrderHandler.
func (h *orderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter order.Filter

	query := r.URL.Query()
	strParam := func(key string) *string {
		if value := query.Get(key); value != "" {
			return &value
		}
		return nil
	}

	filter.Search = strParam("search")
	filter.Status = strParam("status")
	filter.StartDate = strParam("start_date")
	filter.EndDate = strParam("end_date")
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	filter.SortBy = query.Get("sort_by")
	filter.SortOrder = query.Get("sort_order")

	result, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Orders, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Delete implements OrderHandler.
func (h *orderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order deleted", nil)
}
