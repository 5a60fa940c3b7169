package container

import (
	"errors"
)

// Lifetime controls how many instances Provide's resolver creates.
type Lifetime int

const (
	// Transient is the default lifetime: every resolution constructs a new
	// instance.
	Transient Lifetime = iota

	// Singleton memoizes the first successful construction.
	Singleton
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// provideConfig is assembled from ProvideOptions.
type provideConfig struct {
	lifetime Lifetime
	override bool
	params   []ParamBinding
	aliases  []Token
}

// ProvideOption configures Provide.
type ProvideOption func(*provideConfig)

// WithLifetime sets the Lifetime. The default is Transient.
func WithLifetime(l Lifetime) ProvideOption {
	return func(c *provideConfig) {
		c.lifetime = l
	}
}

// WithOverride replaces an existing constructor and resolver instead of
// leaving them alone.
func WithOverride() ProvideOption {
	return func(c *provideConfig) {
		c.override = true
	}
}

// WithParams annotates constructor parameters.
func WithParams(params ...ParamBinding) ProvideOption {
	return func(c *provideConfig) {
		c.params = append(c.params, params...)
	}
}

// WithAlias also makes the type resolvable through tok. Resolving the
// alias delegates to the type token, so a singleton stays single.
func WithAlias(tok Token) ProvideOption {
	return func(c *provideConfig) {
		c.aliases = append(c.aliases, tok)
	}
}

// Provide makes ctor's result type resolvable: it defines the constructor
// and registers a resolver for the type token that calls Construct, so
// resolving with explicit arguments bypasses parameter injection.
//
// It is meant to run once when the declaring package loads:
//
//	func init() {
//	    container.Provide(NewMailer,
//	        container.WithLifetime(container.Singleton),
//	        container.WithParams(container.Param(0, container.Name("smtp.host"))),
//	    )
//	}
//
// Without WithOverride, providing an already defined type keeps its
// constructor and annotations and only registers the resolvers that are
// still missing.
func (r *Registry) Provide(ctor any, opts ...ProvideOption) (Token, error) {
	var cfg provideConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := newClass(ctor)
	if err != nil {
		return Token{}, err
	}
	tok := c.token
	if cfg.override || !r.Defined(tok) {
		_, err := r.define(ctor, cfg.override, cfg.params)
		if err != nil && (cfg.override || !errors.Is(err, ErrAlreadyDefined)) {
			return tok, err
		}
	}

	register := r.RegisterIfAbsent
	switch {
	case cfg.override && cfg.lifetime == Singleton:
		register = r.OverrideSingleton
	case cfg.override:
		register = r.Override
	case cfg.lifetime == Singleton:
		register = r.RegisterSingletonIfAbsent
	}
	register(tok, func(args ...any) (any, error) {
		return r.Construct(tok, args...)
	})

	for _, alias := range cfg.aliases {
		delegate := func(args ...any) (any, error) {
			return r.Resolve(tok, args...)
		}
		if cfg.override {
			r.Override(alias, delegate)
		} else {
			r.RegisterIfAbsent(alias, delegate)
		}
	}
	return tok, nil
}

// ProvideValue registers a fixed instance under tok.
func (r *Registry) ProvideValue(tok Token, v any) {
	r.RegisterIfAbsent(tok, Value(v))
}
