package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations.
//
// Register is called when the provider is added (or, for deferred
// providers, when one of its tokens is first resolved). Boot is called
// after every eager provider has been registered, so it is safe to
// resolve other tokens there.
//
//	type MailProvider struct{ container.BaseProvider }
//
//	func (p *MailProvider) Register(r *container.Registry) error {
//	    _, err := r.Provide(NewMailer, container.WithLifetime(container.Singleton))
//	    return err
//	}
type ServiceProvider interface {
	// Register binds resolvers into the registry. Do not resolve here.
	Register(r *Registry) error

	// Boot runs after all eager providers are registered.
	Boot(r *Registry) error

	// Provides lists the tokens a deferred provider registers.
	Provides() []Token

	// IsDeferred reports whether Register should wait until one of
	// Provides() is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable no-op implementation of Boot, Provides
// and IsDeferred.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Registry) error { return nil }
func (p *BaseProvider) Provides() []Token      { return nil }
func (p *BaseProvider) IsDeferred() bool       { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one
// Registry, including deferred providers. It is driven from one goroutine
// during application startup and is not safe for concurrent use.
type ProviderRegistry struct {
	registry   *Registry
	eager      []ServiceProvider
	loaded     map[ServiceProvider]bool
	loading    map[ServiceProvider]bool
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a provider registry bound to r.
func NewProviderRegistry(r *Registry) *ProviderRegistry {
	return &ProviderRegistry{
		registry:   r,
		loaded:     make(map[ServiceProvider]bool),
		loading:    make(map[ServiceProvider]bool),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider. Eager providers are registered at once (and
// booted at once if Boot already ran); adding the same provider twice is
// a no-op.
func (pr *ProviderRegistry) Register(p ServiceProvider) error {
	if pr.registered[p] {
		return nil
	}
	pr.registered[p] = true

	if p.IsDeferred() {
		pr.interceptDeferred(p)
		return nil
	}

	if err := p.Register(pr.registry); err != nil {
		return err
	}
	pr.loaded[p] = true
	pr.eager = append(pr.eager, p)

	if pr.booted {
		return p.Boot(pr.registry)
	}
	return nil
}

// interceptDeferred installs a placeholder per provided token. The first
// resolution registers the provider for real, then resolves again.
func (pr *ProviderRegistry) interceptDeferred(p ServiceProvider) {
	for _, tok := range p.Provides() {
		tok := tok
		pr.registry.registerDeferred(tok, func(args ...any) (any, error) {
			if err := pr.load(p); err != nil {
				return nil, err
			}
			if pr.registry.isDeferred(tok) {
				return nil, UnregisteredTokenError{Token: tok}
			}
			return pr.registry.Resolve(tok, args...)
		})
	}
}

func (pr *ProviderRegistry) load(p ServiceProvider) error {
	if pr.loaded[p] || pr.loading[p] {
		return nil
	}
	// a failed Register is retried on the next resolution
	pr.loading[p] = true
	err := p.Register(pr.registry)
	delete(pr.loading, p)
	if err != nil {
		return err
	}
	pr.loaded[p] = true
	if pr.booted {
		return p.Boot(pr.registry)
	}
	return nil
}

// Boot calls Boot on every eager provider once, stopping at the first
// error.
func (pr *ProviderRegistry) Boot() error {
	if pr.booted {
		return nil
	}
	pr.booted = true
	for _, p := range pr.eager {
		if err := p.Boot(pr.registry); err != nil {
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has been called.
func (pr *ProviderRegistry) Booted() bool { return pr.booted }

// Providers returns the eager providers in registration order.
func (pr *ProviderRegistry) Providers() []ServiceProvider { return pr.eager }
