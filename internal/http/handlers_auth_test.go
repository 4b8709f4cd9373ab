package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

func TestLoginHandler_Success(t *testing.T) {
	expires := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
	svc := &mockAuthService{
		loginFunc: func(_ context.Context, input service.LoginInput) (*service.LoginResult, error) {
			require.Equal(t, "alice@example.com", input.Email)
			require.Equal(t, "correct horse", input.Password)
			return &service.LoginResult{
				Token:     "issued-token",
				ExpiresAt: expires,
				User: domainauth.Principal{
					UserID: "user-1",
					Email:  "alice@example.com",
					Roles:  []domainauth.Role{domainauth.RoleUser},
				},
			}, nil
		},
	}
	h := &AuthHandlers{Svc: svc}

	body := `{"email":"alice@example.com","password":"correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result service.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "issued-token", result.Token)
	assert.Equal(t, "user-1", result.User.UserID)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}}

	body := `{"email":"alice@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeErrorBody(t, w)["error"])
}

func TestLoginHandler_MalformedBody(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_json", decodeErrorBody(t, w)["error"])
}

func TestLogoutHandler_Success(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req = req.WithContext(SetPrincipalInContext(req.Context(), userPrincipal()))
	w := httptest.NewRecorder()

	h.Logout(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["logged_out"])
}

func TestLogoutHandler_NoPrincipal(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()

	h.Logout(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatusHandler_ReturnsPrincipal(t *testing.T) {
	h := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req = req.WithContext(SetPrincipalInContext(req.Context(), userPrincipal()))
	w := httptest.NewRecorder()

	h.Status(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]domainauth.Principal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body["user"].UserID)
}
