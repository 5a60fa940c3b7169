package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/providers"
	"github.com/km-arc/go-inject/framework/routing"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests once
// its context is cancelled.
const ShutdownTimeout = 10 * time.Second

// Application owns a Registry and the ServiceProviders registered on it.
// New registers the framework providers (config, logging, metrics,
// routing); applications add their own with Register, then call Boot or
// Run.
type Application struct {
	Registry  *container.Registry
	Providers *container.ProviderRegistry
}

type options struct {
	registry *container.Registry
	envFiles []string
}

// Option configures New.
type Option func(*options)

// WithRegistry builds the application on r instead of a fresh registry.
// Pass container.Default() to pick up registrations made in package init
// functions.
func WithRegistry(r *container.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithEnvFiles sets the .env files the config provider loads.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// New creates the application and registers the framework providers.
func New(opts ...Option) (*Application, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = container.New()
	}

	app := &Application{
		Registry:  o.registry,
		Providers: container.NewProviderRegistry(o.registry),
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: o.envFiles},
		&providers.LoggingServiceProvider{},
		&providers.MetricsServiceProvider{},
		&providers.RoutingServiceProvider{},
	} {
		if err := app.Register(p); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(p container.ServiceProvider) error {
	if err := a.Providers.Register(p); err != nil {
		return fmt.Errorf("app: register %T: %w", p, err)
	}
	return nil
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return fmt.Errorf("app: boot: %w", err)
	}
	return nil
}

// Config resolves the application configuration.
func (a *Application) Config() (*config.Config, error) {
	return container.ResolveAs[*config.Config](a.Registry, providers.ConfigToken)
}

// Logger resolves the application logger.
func (a *Application) Logger() (*zap.Logger, error) {
	return container.ResolveAs[*zap.Logger](a.Registry, providers.LoggerToken)
}

// Router resolves the HTTP router.
func (a *Application) Router() (*routing.Router, error) {
	return container.ResolveAs[*routing.Router](a.Registry, providers.RouterToken)
}

// Run boots the application if needed and serves HTTP on APP_PORT until
// ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Boot(); err != nil {
		return err
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("app: listen: %w", err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It closes ln when it returns.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	if err := a.Boot(); err != nil {
		ln.Close()
		return err
	}
	cfg, err := a.Config()
	if err != nil {
		ln.Close()
		return err
	}
	logger, err := a.Logger()
	if err != nil {
		ln.Close()
		return err
	}
	defer func() { _ = logger.Sync() }()
	router, err := a.Router()
	if err != nil {
		ln.Close()
		return err
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("app", cfg.App.Name),
			zap.String("addr", ln.Addr().String()),
			zap.String("env", cfg.App.Env))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}
