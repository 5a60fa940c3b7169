package providers

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/logging"
	"github.com/km-arc/go-inject/framework/routing"
)

// Tokens bound by the framework providers.
var (
	ConfigToken  = container.TypeOf[*config.Config]()
	LoggerToken  = container.TypeOf[*zap.Logger]()
	MetricsToken = container.TypeOf[*routing.Metrics]()
	RouterToken  = container.TypeOf[*routing.Router]()
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it as a singleton.
//
// Bound tokens:
//   - ConfigToken      → *config.Config
//   - Name("config")   → same instance
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(r *container.Registry) error {
	envFiles := p.EnvFiles
	r.RegisterSingletonIfAbsent(ConfigToken, func(...any) (any, error) {
		cfg, err := config.Load(envFiles...)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	})
	r.RegisterIfAbsent(container.Name("config"), func(args ...any) (any, error) {
		return r.Resolve(ConfigToken, args...)
	})
	return nil
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the zap logger from the config's Log
// section and APP_ENV.
//
// Bound tokens:
//   - LoggerToken      → *zap.Logger
//   - Name("logger")   → same instance
type LoggingServiceProvider struct {
	container.BaseProvider
}

func (p *LoggingServiceProvider) Register(r *container.Registry) error {
	_, err := r.Provide(logging.New,
		container.WithLifetime(container.Singleton),
		container.WithAlias(container.Name("logger")),
		container.WithParams(
			container.Param(0, ConfigToken, container.WithTransform(func(v any) (any, error) {
				return v.(*config.Config).Log, nil
			})),
			container.Param(1, ConfigToken, container.WithTransform(func(v any) (any, error) {
				return v.(*config.Config).App.Env, nil
			})),
		),
	)
	return err
}

func (p *LoggingServiceProvider) Boot(r *container.Registry) error {
	logger, err := container.ResolveAs[*zap.Logger](r, LoggerToken)
	if err != nil {
		return err
	}
	logger.Debug("logger ready", zap.Int("tokens", len(r.Tokens())))
	return nil
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider registers the HTTP Prometheus collectors. The
// namespace defaults to APP_NAME with anything outside [a-zA-Z0-9_]
// replaced by '_'.
//
// Bound tokens:
//   - MetricsToken     → *routing.Metrics
type MetricsServiceProvider struct {
	container.BaseProvider
	Namespace string
}

var invalidMetricChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

func (p *MetricsServiceProvider) Register(r *container.Registry) error {
	namespace := p.Namespace
	_, err := r.Provide(routing.NewMetrics,
		container.WithLifetime(container.Singleton),
		container.WithParams(
			container.Param(0, ConfigToken, container.WithTransform(func(v any) (any, error) {
				if namespace != "" {
					return namespace, nil
				}
				return invalidMetricChars.ReplaceAllString(v.(*config.Config).App.Name, "_"), nil
			})),
		),
	)
	return err
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router. It depends on the
// logger and metrics tokens.
//
// Bound tokens:
//   - RouterToken      → *routing.Router
//   - Name("router")   → same instance
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(r *container.Registry) error {
	_, err := r.Provide(routing.New,
		container.WithLifetime(container.Singleton),
		container.WithAlias(container.Name("router")),
		container.WithParams(
			container.Param(0, LoggerToken),
			container.Param(1, MetricsToken),
		),
	)
	return err
}
