package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Addresses  *service.AddressService
	Categories *service.CategoryService
	Products   *service.ProductService
	Carts      *service.CartService
	Orders     *service.OrderService
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	auth := authOrDeny(services.Auth)

	authHandlers := &AuthHandlers{Svc: auth}
	userHandlers := &UserHandlers{Svc: services.Users}
	addressHandlers := &AddressHandlers{Svc: services.Addresses}
	categoryHandlers := &CategoryHandlers{Svc: services.Categories}
	productHandlers := &ProductHandlers{Svc: services.Products}
	cartHandlers := &CartHandlers{Svc: services.Carts}
	orderHandlers := &OrderHandlers{Svc: services.Orders}

	registerAuthRoutes(mux, authHandlers, auth)
	registerUserRoutes(mux, userHandlers, auth)
	registerAddressRoutes(mux, addressHandlers, auth)
	registerCategoryRoutes(mux, categoryHandlers, auth)
	registerProductRoutes(mux, productHandlers, auth)
	registerCartRoutes(mux, cartHandlers, auth)
	registerOrderRoutes(mux, orderHandlers, auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, auth AuthServiceInterface) {
	guard := RequireAuth(auth)
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.Login))
	mux.Handle("POST /api/auth/logout", guard(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /api/auth/status", guard(http.HandlerFunc(h.Status)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, auth AuthServiceInterface) {
	guard := RequireAuth(auth)
	admin := RequireRoles(auth, domainauth.RoleAdmin)
	mux.Handle("POST /api/users", http.HandlerFunc(h.Register))
	mux.Handle("GET /api/users/me", guard(http.HandlerFunc(h.Me)))
	mux.Handle("PATCH /api/users/me", guard(http.HandlerFunc(h.UpdateMe)))
	mux.Handle("GET /api/users", admin(http.HandlerFunc(h.List)))
}

func registerAddressRoutes(mux *http.ServeMux, h *AddressHandlers, auth AuthServiceInterface) {
	registerCRUD(mux, crudRoutes{
		Base:       "/api/addresses",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: RequireAuth(auth),
	})
}

func registerCategoryRoutes(mux *http.ServeMux, h *CategoryHandlers, auth AuthServiceInterface) {
	// Public reads still reject a presented token that fails verification.
	public := OptionalAuth(auth)
	admin := RequireRoles(auth, domainauth.RoleAdmin)
	mux.Handle("GET /api/categories", public(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/categories/{id}", public(http.HandlerFunc(h.GetByID)))
	mux.Handle("POST /api/categories", admin(http.HandlerFunc(h.Create)))
	mux.Handle("PATCH /api/categories/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/categories/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerProductRoutes(mux *http.ServeMux, h *ProductHandlers, auth AuthServiceInterface) {
	public := OptionalAuth(auth)
	admin := RequireRoles(auth, domainauth.RoleAdmin)
	mux.Handle("GET /api/products", public(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/products/{id}", public(http.HandlerFunc(h.GetByID)))
	mux.Handle("POST /api/products", admin(http.HandlerFunc(h.Create)))
	mux.Handle("PATCH /api/products/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/products/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerCartRoutes(mux *http.ServeMux, h *CartHandlers, auth AuthServiceInterface) {
	guard := RequireAuth(auth)
	mux.Handle("GET /api/cart", guard(http.HandlerFunc(h.Get)))
	mux.Handle("DELETE /api/cart", guard(http.HandlerFunc(h.Clear)))
	mux.Handle("POST /api/cart/items", guard(http.HandlerFunc(h.AddItem)))
	mux.Handle("PATCH /api/cart/items/{productID}", guard(http.HandlerFunc(h.UpdateItem)))
	mux.Handle("DELETE /api/cart/items/{productID}", guard(http.HandlerFunc(h.RemoveItem)))
}

func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers, auth AuthServiceInterface) {
	guard := RequireAuth(auth)
	admin := RequireRoles(auth, domainauth.RoleAdmin)
	mux.Handle("POST /api/orders", guard(http.HandlerFunc(h.Checkout)))
	mux.Handle("GET /api/orders", guard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/orders/{id}", guard(http.HandlerFunc(h.GetByID)))
	mux.Handle("PATCH /api/orders/{id}/status", admin(http.HandlerFunc(h.UpdateStatus)))
}

// authOrDeny returns the auth service, or an always-denying stand-in
// when auth is disabled so guarded routes reject instead of panicking.
//
//nolint:ireturn // the deny fallback and the real service share the interface.
func authOrDeny(auth *service.AuthService) AuthServiceInterface {
	if auth == nil {
		return deniedAuthService{}
	}
	return auth
}

// deniedAuthService rejects every operation. Used when no auth service
// is configured.
type deniedAuthService struct{}

func (deniedAuthService) Login(context.Context, service.LoginInput) (*service.LoginResult, error) {
	return nil, service.ErrInvalidCredentials
}

func (deniedAuthService) Authenticate(context.Context, string) (*domainauth.Principal, error) {
	return nil, service.ErrUnauthorized
}

func (deniedAuthService) Logout(context.Context, *domainauth.Principal) error {
	return service.ErrNotAuthenticated
}

// crudRoutes groups the handlers for a standard CRUD resource.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

// registerCRUD registers standard CRUD routes for a resource base path, applying mw if non-nil.
func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PATCH "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
