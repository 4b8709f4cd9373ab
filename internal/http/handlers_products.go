package httpx

import (
	"errors"
	"net/http"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// ProductHandlers provides HTTP handlers for the product catalog.
// Reads are public; writes are registered behind the admin role gate.
type ProductHandlers struct {
	Svc *service.ProductService
}

const (
	maxProductListLimit = 100 // Maximum number of products that can be requested in one call
)

// Create handles HTTP requests to create a product.
func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	product, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrCategoryNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_category", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, product)
}

// List handles HTTP requests to list products with filtering and pagination.
func (h *ProductHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxProductListLimit)
	query := model.ProductQuery{
		CategoryID: r.URL.Query().Get("category_id"),
		Limit:      limit,
		Offset:     offset,
	}

	products, err := h.Svc.List(r.Context(), query)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get a product by ID.
func (h *ProductHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	product, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrProductNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "product_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, product)
}

// Update handles HTTP requests to update a product.
func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	var req model.UpdateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	product, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrProductNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "product_not_found", Err: err})
		case errors.Is(err, data.ErrCategoryNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_category", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, product)
}

// Delete handles HTTP requests to delete a product.
func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, data.ErrProductNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "product_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
