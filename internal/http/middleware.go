package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// writeUnauthorized emits the single uniform rejection every guard
// failure maps to. One status and one body regardless of which check
// failed, so a probing client learns nothing about the cause.
func writeUnauthorized(w http.ResponseWriter) {
	WriteError(w, ErrorParams{
		Code:    http.StatusUnauthorized,
		ErrCode: "unauthorized",
		Err:     errors.New("unauthorized"),
	})
}

// RequireAuth returns a middleware that requires a verified bearer token.
// On success the authenticated principal is added to the request context.
// Any failure in the verification chain yields the same 401 response.
func RequireAuth(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := principalFromRequest(r, authSvc)
			if principal == nil {
				writeUnauthorized(w)
				return
			}

			ctx := SetPrincipalInContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles returns a middleware that requires an authenticated
// principal holding at least one of the given roles. Missing or invalid
// credentials yield 401; a verified principal without any required role
// yields 403.
func RequireRoles(authSvc AuthServiceInterface, roles ...domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := principalFromRequest(r, authSvc)
			if principal == nil {
				writeUnauthorized(w)
				return
			}

			if !principal.HasAnyRole(roles...) {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "forbidden",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}

			ctx := SetPrincipalInContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns the guard used on public routes. A request
// without credentials passes through unauthenticated, but a presented
// token still runs the full verification chain: a token that fails it
// is rejected, never silently ignored.
func OptionalAuth(authSvc AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := authSvc.Authenticate(r.Context(), token)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			ctx := SetPrincipalInContext(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// principalFromRequest extracts the bearer token and runs the full
// verification chain. nil on any failure.
func principalFromRequest(r *http.Request, authSvc AuthServiceInterface) *domainauth.Principal {
	token := BearerToken(r)
	if token == "" {
		return nil
	}

	principal, err := authSvc.Authenticate(r.Context(), token)
	if err != nil {
		return nil
	}

	return principal
}
