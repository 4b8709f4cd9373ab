package config

import "time"

// defaultTokenLifetime bounds how long an issued token stays valid.
const defaultTokenLifetime = 24 * time.Hour

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs issued tokens. Required; the auth service is
	// disabled when empty.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenLifetime is the embedded validity window for minted tokens.
	// The same duration is written to the user's session record at
	// login; the two expiries are evaluated independently per request.
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME" envDefault:"24h"`

	// BcryptCost overrides the bcrypt work factor. Zero means the
	// library default.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"0"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenLifetime <= 0 {
		a.TokenLifetime = defaultTokenLifetime
	}
	if a.BcryptCost < 0 {
		a.BcryptCost = 0
	}
}
