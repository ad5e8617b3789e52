// Command farm-devserver runs a small in-process farm API so farmctl and the
// client toolkit can be exercised without the production backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/kalaiarasan0/farmdesk/internal/api"
	"github.com/kalaiarasan0/farmdesk/internal/api/handler"
	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
	"github.com/kalaiarasan0/farmdesk/internal/core/service"
	"github.com/kalaiarasan0/farmdesk/internal/infrastructure/config"
	"github.com/kalaiarasan0/farmdesk/internal/infrastructure/db/memory"
	mongodb "github.com/kalaiarasan0/farmdesk/internal/infrastructure/db/mongo"
	"github.com/kalaiarasan0/farmdesk/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Service: "farm-devserver"})
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "farm-devserver",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("farm-devserver stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	checks := map[string]handler.HealthCheck{}

	var users ports.UserRepository
	switch cfg.UserStore {
	case config.UserStoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		users = mongodb.NewUserRepository(db)
		checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	default:
		users = memory.NewUserRepository()
	}

	issuer := service.NewTokenIssuer(users, cfg.JWTSecret, cfg.TokenTTL)
	_, err := issuer.Register(ctx, cfg.DevUsername, cfg.DevPassword, "Development Admin", "", domain.RoleAdmin)
	switch {
	case errors.Is(err, domain.ErrUserExists):
		log.Debug().Str("username", cfg.DevUsername).Msg("dev user already present")
	case err != nil:
		return err
	default:
		log.Info().Str("username", cfg.DevUsername).Msg("dev user registered")
	}

	animals := memory.NewAnimalRepository()
	categories := memory.NewCategoryRepository()
	if cfg.SeedCatalog {
		if err := memory.SeedCatalog(ctx, categories); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Deps{
		Issuer:       issuer,
		Users:        users,
		Animals:      animals,
		Categories:   categories,
		HealthChecks: checks,
	}, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("farm-devserver listening")
		errCh <- e.Start(cfg.Addr())
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
