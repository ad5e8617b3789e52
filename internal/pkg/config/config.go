package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Token store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

// Config is the client-side configuration shared by farmctl and any other
// composition root that talks to the farm API.
type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type APIConfig struct {
	BaseURL      string        `env:"API_BASE_URL,      default=http://localhost:8000"`
	AppBasePath  string        `env:"APP_BASE_PATH,     default=/"`
	Timeout      time.Duration `env:"HTTP_TIMEOUT,      default=15s"`
	ClientID     string        `env:"API_CLIENT_ID,     default=string"`
	ClientSecret string        `env:"API_CLIENT_SECRET, default=string"`
}

type SessionConfig struct {
	Store string `env:"TOKEN_STORE, default=file"`
	Key   string `env:"TOKEN_KEY,   default=access_token"`
	// File is the YAML credentials file; empty means <user config dir>/farmdesk/credentials.yaml.
	File string        `env:"TOKEN_FILE"`
	TTL  time.Duration `env:"TOKEN_TTL, default=0s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=farmdesk"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,   default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,     default=0"`
	Prefix   string `env:"REDIS_PREFIX, default=farmdesk"`
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
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case StoreMemory, StoreFile, StoreRedis, StoreMongo:
	default:
		return fmt.Errorf("config: unknown TOKEN_STORE %q", c.Session.Store)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL must not be empty")
	}
	return nil
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
