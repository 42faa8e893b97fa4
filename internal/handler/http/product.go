package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storemate/storemate-backend-go/internal/domain/product"
	"github.com/storemate/storemate-backend-go/internal/handler/http/response"
)

type ProductHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type productHandlerImpl struct {
	productService product.Service
}

func NewProductHandler(productService product.Service) ProductHandler {
	return &productHandlerImpl{
		productService: productService,
	}
}

// Create implements ProductHandler.
func (h *productHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req product.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.productService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created", result)
}

// Get implements ProductHandler.
func (h *productHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.productService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ProductHandler.
func (h *productHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req product.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.productService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ProductHandler.
func (h *productHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter product.Filter

	query := r.URL.Query()
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if active := query.Get("is_active"); active != "" {
		parsed, err := strconv.ParseBool(active)
		if err == nil {
			filter.IsActive = &parsed
		}
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	filter.SortBy = query.Get("sort_by")
	filter.SortOrder = query.Get("sort_order")

	result, err := h.productService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Products, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Delete implements ProductHandler.
func (h *productHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.productService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted", nil)
}
