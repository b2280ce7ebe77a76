package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig carries the token signing secret and lifetime for the API's
// bearer tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET and JWT_EXPIRATION_HOURS from the
// environment. The secret is required; the lifetime defaults to 24 hours
// and must be at least 1.
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: 24,
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("JWT_EXPIRATION_HOURS %q is not an integer: %w", raw, err)
		}
		cfg.ExpirationHours = hours
	}
	if cfg.ExpirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", cfg.ExpirationHours)
	}
	return cfg, nil
}
