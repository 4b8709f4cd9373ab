package httpx

import (
	"errors"
	"net/http"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// AddressHandlers provides HTTP handlers for the user's address book.
// Every operation is scoped to the authenticated principal, so one
// user can never read or modify another user's addresses.
type AddressHandlers struct {
	Svc *service.AddressService
}

// Create handles HTTP requests to add an address.
func (h *AddressHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req model.CreateAddressRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	address, err := h.Svc.Create(r.Context(), principal.UserID, req)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, address)
}

// List handles HTTP requests to list the caller's addresses.
func (h *AddressHandlers) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	addresses, err := h.Svc.List(r.Context(), principal.UserID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"addresses": addresses})
}

// GetByID handles HTTP requests to get one of the caller's addresses.
func (h *AddressHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("address id is required")},
		)
		return
	}

	address, err := h.Svc.GetByID(r.Context(), principal.UserID, id)
	if err != nil {
		if errors.Is(err, data.ErrAddressNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "address_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, address)
}

// Update handles HTTP requests to update one of the caller's addresses.
func (h *AddressHandlers) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("address id is required")},
		)
		return
	}

	var req model.UpdateAddressRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	address, err := h.Svc.Update(r.Context(), principal.UserID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrAddressNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "address_not_found", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, address)
}

// Delete handles HTTP requests to remove one of the caller's addresses.
func (h *AddressHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("address id is required")},
		)
		return
	}

	if err := h.Svc.Delete(r.Context(), principal.UserID, id); err != nil {
		if errors.Is(err, data.ErrAddressNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "address_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
