// Package httpx provides the HTTP handlers and routing for the ez-commerce API.
package httpx

import (
	"context"
	"errors"
	"net/http"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, input service.LoginInput) (*service.LoginResult, error)
	Authenticate(ctx context.Context, token string) (*domainauth.Principal, error)
	Logout(ctx context.Context, principal *domainauth.Principal) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc AuthServiceInterface
}

// loginRequest is the credential payload for Login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the credential login endpoint.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credentials",
				Err:     errors.New("invalid credentials"),
			})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Logout handles the logout endpoint. The route is wrapped by
// RequireAuth, so a missing or invalid token never reaches this
// handler.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.Svc.Logout(r.Context(), principal); err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			writeUnauthorized(w)
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "logout_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// Status returns the current principal. Useful for clients to check
// token validity without a side effect.
// GET /api/auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"user": principal})
}
