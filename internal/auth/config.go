package auth

import (
	"errors"
	"os"
	"time"
)

const defaultTTL = 24 * time.Hour

func LoadJWTConfigFromEnv() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable not set")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "newsletter-api"
	}

	ttl := defaultTTL
	if ttlStr := os.Getenv("JWT_TTL"); ttlStr != "" {
		parsed, err := time.ParseDuration(ttlStr)
		if err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	return &JWTConfig{
		Secret: secret,
		Issuer: issuer,
		TTL:    ttl,
	}, nil
}
