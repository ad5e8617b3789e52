package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
	"github.com/kalaiarasan0/farmdesk/internal/core/service"
	mongodb "github.com/kalaiarasan0/farmdesk/internal/infrastructure/db/mongo"
	redisdb "github.com/kalaiarasan0/farmdesk/internal/infrastructure/db/redis"
	"github.com/kalaiarasan0/farmdesk/internal/infrastructure/httpclient"
	"github.com/kalaiarasan0/farmdesk/internal/infrastructure/session"
	"github.com/kalaiarasan0/farmdesk/internal/infrastructure/toast"
	"github.com/kalaiarasan0/farmdesk/internal/pkg/config"
	"github.com/kalaiarasan0/farmdesk/pkg/logger"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitAuthLost = 3
)

// app is the composition root of one farmctl invocation. It owns the toast
// bus, the session and every service the commands call.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	format   string
	logLevel string

	cfg     *config.Config
	rootLog zerolog.Logger
	log     zerolog.Logger
	bus     *toast.Bus
	session *session.Session
	api     *httpclient.Client

	auth       *service.AuthService
	users      *service.UserService
	dashboard  *service.DashboardService
	animals    *service.AnimalService
	categories *service.CategoryService
	customers  *service.CustomerService
	inventory  *service.InventoryService
	orders     *service.OrderService
	purchases  *service.PurchaseService
	orderForm  *service.OrderForm
	purchForm  *service.PurchaseForm

	mu       sync.Mutex
	authLost *domain.AuthLost
	closers  []func()
}

// setup wires the toolkit. It runs before every command.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.rootLog = logger.New(logger.Options{Level: level, Pretty: true, Output: a.stderr, Service: "farmctl"})
	a.log = a.component("farmctl")

	store, err := a.tokenStore(ctx)
	if err != nil {
		return err
	}
	a.session = session.New(store, cfg.Session.Key, a.component("session"))

	a.bus = toast.NewBus(a.component("toast"))
	a.bus.Subscribe(func(t domain.Toast) {
		fmt.Fprintf(a.stderr, "[%s] %s\n", t.Type, t.Message)
	})

	a.api = httpclient.New(httpclient.Options{
		BaseURL:     cfg.API.BaseURL,
		AppBasePath: cfg.API.AppBasePath,
		Timeout:     cfg.API.Timeout,
		OnAuthLost:  a.onAuthLost,
	}, a.session, a.bus, a.component("httpclient"))

	a.auth = service.NewAuthService(a.api, a.session, cfg.API.ClientID, cfg.API.ClientSecret)
	a.users = service.NewUserService(a.api)
	a.dashboard = service.NewDashboardService(a.api)
	a.animals = service.NewAnimalService(a.api)
	a.categories = service.NewCategoryService(a.api)
	a.customers = service.NewCustomerService(a.api)
	a.inventory = service.NewInventoryService(a.api)
	a.orders = service.NewOrderService(a.api)
	a.purchases = service.NewPurchaseService(a.api)
	a.orderForm = service.NewOrderForm(a.orders, a.inventory, a.customers, a.categories, a.bus, a.component("order-form"))
	a.purchForm = service.NewPurchaseForm(a.purchases, a.bus, a.component("purchase-form"))
	return nil
}

// component derives a logger for one part of this invocation.
func (a *app) component(name string) zerolog.Logger {
	return a.rootLog.With().Str("component", name).Logger()
}

// tokenStore opens the backend named by TOKEN_STORE.
func (a *app) tokenStore(ctx context.Context) (ports.TokenStore, error) {
	switch a.cfg.Session.Store {
	case config.StoreMemory:
		return session.NewMemoryStore(), nil
	case config.StoreRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return redisdb.NewTokenStore(client, a.cfg.Redis.Prefix, a.cfg.Session.TTL), nil
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: a.cfg.Mongo.URI, Database: a.cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Disconnect(context.Background()) })
		return mongodb.NewTokenStore(db), nil
	default:
		return session.NewFileStore(a.cfg.Session.File)
	}
}

func (a *app) onAuthLost(ev domain.AuthLost) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.authLost == nil {
		a.authLost = &ev
	}
}

func (a *app) lostAuth() *domain.AuthLost {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authLost
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// run executes one farmctl command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	if lost := a.lostAuth(); lost != nil {
		fmt.Fprintf(stderr, "session expired: run \"farmctl login\"\n")
		return exitAuthLost
	}
	if err == nil {
		return exitOK
	}

	// API and network failures were already shown as toasts.
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) && !errors.Is(err, domain.ErrServerUnreachable) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return exitFailure
}
