// internal/config/config.go

// Package config reads process configuration from the environment and
// validates it at startup. Missing required settings are reported with a
// message naming the setting so a bad deployment fails loud and early.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Store backends.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type RedisConfig struct {
	Addr     string
	DB       int
	Password string
}

type PostgresConfig struct {
	URL string
}

type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// StoreBackend selects the lobby store implementation.
	StoreBackend string

	Redis    RedisConfig
	Postgres PostgresConfig

	// JWTSigningKey, when set, switches identity resolution from raw player
	// headers to signed bearer tokens.
	JWTSigningKey string
}

// Load reads and validates the configuration. Only the settings the selected
// backend needs are required.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:          ":" + getEnv("PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", BackendRedis),
		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),
	}

	switch cfg.StoreBackend {
	case BackendRedis:
		cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address not provided")
		}
		db, err := getEnvInt("REDIS_DB", 0)
		if err != nil {
			return nil, err
		}
		cfg.Redis.DB = db
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	case BackendPostgres:
		cfg.Postgres.URL = os.Getenv("DATABASE_URL")
		if cfg.Postgres.URL == "" {
			return nil, errors.New("postgres url not provided")
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}
