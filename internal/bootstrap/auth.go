package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/bintangginanjar/ez-commerce-api/config"
	"github.com/bintangginanjar/ez-commerce-api/internal/adapters/password"
	"github.com/bintangginanjar/ez-commerce-api/internal/adapters/token"
	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/service"
)

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth   config.AuthConfig
	DB     *sql.DB
	Logger *slog.Logger
}

// hasherFromConfig builds the shared bcrypt hasher from auth config.
func hasherFromConfig(cfg config.AuthConfig) password.Hasher {
	return password.Hasher{Cost: cfg.BcryptCost}
}

// BuildAuthService wires the token codec, the password hasher, and the
// user store into the auth service. Returns nil when the signing
// secret is missing, which disables every authenticated route.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.Auth.JWTSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: JWT secret not configured")
		}
		return nil
	}

	codec, err := token.NewCodec(token.CodecOptions{
		Secret:   []byte(cfg.Auth.JWTSecret),
		Lifetime: cfg.Auth.TokenLifetime,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create token codec, auth disabled", "error", err)
		}
		return nil
	}
	hasher := password.Hasher{Cost: cfg.Auth.BcryptCost}
	users := data.NewUserRepo(cfg.DB)

	return service.NewAuthService(service.AuthServiceOptions{
		Users:    users,
		Codec:    codec,
		Hasher:   hasher,
		Lifetime: cfg.Auth.TokenLifetime,
	})
}
