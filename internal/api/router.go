// Package api assembles the development backend: an Echo server that speaks
// the subset of the farm API the toolkit needs to be exercised end to end.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/kalaiarasan0/farmdesk/internal/api/handler"
	"github.com/kalaiarasan0/farmdesk/internal/api/middleware"
	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Issuer       ports.TokenIssuer
	Users        ports.UserRepository
	Animals      ports.AnimalRepository
	Categories   ports.CategoryRepository
	HealthChecks map[string]handler.HealthCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// Each router gets its own registry so tests can build several.
	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 "farm_devserver",
		Registerer:                registry,
		DoNotUseRequestPathFor404: true,
	}))

	// --- Probes and metrics (no auth required) ---
	health := handler.NewHealthHandler(deps.HealthChecks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))

	authHandler := handler.NewAuthHandler(deps.Issuer, deps.Users)
	animals := handler.NewAnimalHandler(deps.Animals)
	categories := handler.NewCategoryHandler(deps.Categories)
	dashboard := handler.NewDashboardHandler(deps.Animals, deps.Categories)

	auth := middleware.Auth(deps.Issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.Token)
	e.POST("/auth/register", authHandler.Register, auth, adminOnly)
	e.GET("/users/me/personal-details", authHandler.Me, auth)

	// --- Farm API ---
	v1 := e.Group("/api/v1", auth)

	v1.GET("/dashboard/stats", dashboard.Stats)

	a := v1.Group("/track/animals")
	a.GET("/list", animals.List)
	a.GET("/count", animals.Count)
	a.GET("/id/:id", animals.ByID)
	a.GET("/tag-id/:tag_id", animals.ByTagID)
	a.POST("/create", animals.Create, adminOnly)

	c := v1.Group("/category")
	c.GET("/list", categories.List)
	c.GET("/count", categories.Count)
	c.GET("/lookups", categories.Lookups)
	c.GET("/id/:id", categories.ByID)
	c.POST("/create", categories.Create, adminOnly)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
