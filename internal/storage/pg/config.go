package pg

import (
	"errors"
	"os"
)

func LoadPoolConfigFromEnv() (*PoolConfig, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		return nil, errors.New("DATABASE_URL environment variable not set")
	}

	return &PoolConfig{ConnStr: connStr}, nil
}
