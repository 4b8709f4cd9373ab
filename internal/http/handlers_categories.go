package httpx

import (
	"errors"
	"net/http"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// CategoryHandlers provides HTTP handlers for category management.
// Reads are public; writes are registered behind the admin role gate.
type CategoryHandlers struct {
	Svc *service.CategoryService
}

// Create handles HTTP requests to create a category.
func (h *CategoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCategoryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	category, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrCategoryNameExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "name_conflict", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, category)
}

// List handles HTTP requests to list all categories.
func (h *CategoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// GetByID handles HTTP requests to get a category by ID.
func (h *CategoryHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("category id is required")},
		)
		return
	}

	category, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrCategoryNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "category_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, category)
}

// Update handles HTTP requests to rename a category.
func (h *CategoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("category id is required")},
		)
		return
	}

	var req model.UpdateCategoryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	category, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrCategoryNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "category_not_found", Err: err})
		case errors.Is(err, data.ErrCategoryNameExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "name_conflict", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, category)
}

// Delete handles HTTP requests to delete a category.
func (h *CategoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("category id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, data.ErrCategoryNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "category_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
