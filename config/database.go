package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"ezcommerce"`
	Password string `env:"PASSWORD" envDefault:"ezcommerce"`
	Name     string `env:"NAME"     envDefault:"ezcommerce"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// Pool sizing. The defaults suit a single instance; raise them in
	// step with Postgres max_connections when scaling out.
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS"    envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`

	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig configures the catalog cache connection. The cache runs
// on a single direct client; an empty URI disables it and product
// reads go straight to the database.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
}

// CacheConfig contains catalog cache configuration (Redis-based).
type CacheConfig struct {
	// ProductTTL is the TTL for cached product reads. Zero disables caching.
	ProductTTL time.Duration `env:"CACHE_PRODUCT_TTL" envDefault:"5m"`
}
