package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != ":8000" || cfg.TokenTTL != 24*time.Hour || cfg.UserStore != UserStoreMemory {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.JWTSecret != devJWTSecret {
		t.Fatalf("development should fall back to the dev secret")
	}
	if cfg.DevUsername != "admin" || !cfg.SeedCatalog {
		t.Fatalf("unexpected dev user defaults %+v", cfg)
	}
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	if err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}

	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":        "production",
		"JWT_SECRET": "s3cret",
		"PORT":       "9000",
		"TOKEN_TTL":  "15m",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret != "s3cret" || cfg.Addr() != ":9000" || cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("overrides not applied %+v", cfg)
	}
}

func TestLoad_UnknownUserStore(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"USER_STORE": "ldap"}))
	if err == nil {
		t.Fatalf("expected error for unknown store")
	}
}
