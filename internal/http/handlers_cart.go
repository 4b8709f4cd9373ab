package httpx

import (
	"errors"
	"net/http"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// CartHandlers provides HTTP handlers for the caller's shopping cart.
type CartHandlers struct {
	Svc *service.CartService
}

// Get handles HTTP requests for the caller's cart, creating an empty
// one on first access.
func (h *CartHandlers) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	cart, err := h.Svc.Get(r.Context(), principal.UserID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, cart)
}

// AddItem handles HTTP requests to put a product into the cart.
func (h *CartHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req model.AddCartItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cart, err := h.Svc.AddItem(r.Context(), principal.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrProductNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_product", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "add_item_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, cart)
}

// UpdateItem handles HTTP requests to change a cart line's quantity.
func (h *CartHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	productID := r.PathValue("productID")
	if productID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	var req model.UpdateCartItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cart, err := h.Svc.UpdateItem(r.Context(), principal.UserID, productID, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrCartItemNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "item_not_found", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_item_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, cart)
}

// RemoveItem handles HTTP requests to drop a product from the cart.
func (h *CartHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	productID := r.PathValue("productID")
	if productID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("product id is required")},
		)
		return
	}

	cart, err := h.Svc.RemoveItem(r.Context(), principal.UserID, productID)
	if err != nil {
		if errors.Is(err, data.ErrCartItemNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "item_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "remove_item_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, cart)
}

// Clear handles HTTP requests to empty the cart.
func (h *CartHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Svc.Clear(r.Context(), principal.UserID); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "clear_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}
