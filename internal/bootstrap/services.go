package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/bintangginanjar/ez-commerce-api/config"
	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// ServiceDeps contains the shared dependencies for building services.
type ServiceDeps struct {
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Config      *config.AppConfig
	Logger      *slog.Logger
}

// ServiceContainer holds every constructed application service.
type ServiceContainer struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Addresses  *service.AddressService
	Categories *service.CategoryService
	Products   *service.ProductService
	Carts      *service.CartService
	Orders     *service.OrderService
}

// repositories groups the data-layer constructors so wiring stays in one place.
type repositories struct {
	Users      *data.UserRepo
	Roles      *data.RoleRepo
	Addresses  *data.AddressRepo
	Categories *data.CategoryRepo
	Products   *data.ProductRepo
	Carts      *data.CartRepo
	Orders     *data.OrderRepo
	Cache      *data.RedisCacheRepo
}

// NewServices creates the full service container from shared dependencies.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg config.AppConfig
	if deps.Config != nil {
		cfg = *deps.Config
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)

	auth := BuildAuthService(AuthConfig{Auth: cfg.Auth, DB: deps.DB, Logger: logger})
	users := service.NewUserService(service.UserServiceOptions{
		Repo:   repos.Users,
		Roles:  repos.Roles,
		Hasher: hasherFromConfig(cfg.Auth),
	})
	addresses := service.NewAddressService(service.AddressServiceOptions{Repo: repos.Addresses})
	categories := service.NewCategoryService(service.CategoryServiceOptions{Repo: repos.Categories})

	var cache service.CatalogCache
	if repos.Cache != nil {
		cache = repos.Cache
	}
	products := service.NewProductService(service.ProductServiceOptions{
		Repo:  repos.Products,
		Cache: cache,
		TTL:   cfg.Cache.ProductTTL,
	})

	carts := service.NewCartService(service.CartServiceOptions{
		Repo:     repos.Carts,
		Products: repos.Products,
	})
	orders := service.NewOrderService(service.OrderServiceOptions{
		Repo:      repos.Orders,
		Addresses: repos.Addresses,
		Carts:     repos.Carts,
	})

	return ServiceContainer{
		Auth:       auth,
		Users:      users,
		Addresses:  addresses,
		Categories: categories,
		Products:   products,
		Carts:      carts,
		Orders:     orders,
	}
}

func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) repositories {
	repos := repositories{
		Users:      data.NewUserRepo(db),
		Roles:      data.NewRoleRepo(db),
		Addresses:  data.NewAddressRepo(db),
		Categories: data.NewCategoryRepo(db),
		Products:   data.NewProductRepo(db),
		Carts:      data.NewCartRepo(db),
		Orders:     data.NewOrderRepo(db),
	}
	if redisClient != nil {
		repos.Cache = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}
