// Package config loads the settings of farm-devserver, the in-memory
// development backend.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// User store backends of the development server.
const (
	UserStoreMemory = "memory"
	UserStoreMongo  = "mongo"
)

const devJWTSecret = "farmdesk-dev-secret"

type Config struct {
	Port      string        `env:"PORT,      default=8000"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	DevUsername string `env:"DEV_USERNAME, default=admin"`
	DevPassword string `env:"DEV_PASSWORD, default=admin"`
	UserStore   string `env:"USER_STORE,   default=memory"`
	SeedCatalog bool   `env:"SEED_CATALOG, default=true"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=farmdesk"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	switch cfg.UserStore {
	case UserStoreMemory, UserStoreMongo:
	default:
		return nil, fmt.Errorf("config: unknown USER_STORE %q", cfg.UserStore)
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("config: JWT_SECRET is required outside development")
		}
		cfg.JWTSecret = devJWTSecret
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
