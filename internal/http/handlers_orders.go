package httpx

import (
	"errors"
	"net/http"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// OrderHandlers provides HTTP handlers for checkout and order history.
type OrderHandlers struct {
	Svc *service.OrderService
}

const (
	maxOrderListLimit = 100 // Maximum number of orders that can be requested in one call
)

// Checkout handles HTTP requests to convert the cart into an order.
func (h *OrderHandlers) Checkout(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req model.CheckoutRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	order, err := h.Svc.Checkout(r.Context(), principal.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrAddressNotFound):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unknown_address", Err: err})
		case errors.Is(err, data.ErrInsufficientStock):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "insufficient_stock", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "checkout_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, order)
}

// List handles HTTP requests to list the caller's orders.
func (h *OrderHandlers) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	limit, offset := ParseLimitOffset(r, 50, maxOrderListLimit)

	orders, err := h.Svc.List(r.Context(), principal.UserID, limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get one order. Regular users can
// only read their own orders; admins can read any order.
func (h *OrderHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	scope := principal.UserID
	if principal.HasAnyRole(domainauth.RoleAdmin) {
		scope = ""
	}

	order, err := h.Svc.GetByID(r.Context(), scope, id)
	if err != nil {
		if errors.Is(err, data.ErrOrderNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "order_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, order)
}

// UpdateStatus handles HTTP requests to move an order through its
// lifecycle. Admin only.
func (h *OrderHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("order id is required")},
		)
		return
	}

	var req model.UpdateOrderStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	order, err := h.Svc.UpdateStatus(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrOrderNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "order_not_found", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, order)
}
