// Package container provides a small inversion-of-control registry for Go.
//
// # Overview
//
// A Registry maps a Token to a Resolver, a function that produces an
// instance of the dependency. Application code either pulls instances
// with Resolve or lets the registry build a type by resolving its
// constructor parameters.
//
// Tokens come in two disjoint namespaces:
//
//	container.TypeOf[*UserRepository]() // type token, compared by identity
//	container.Name("db.dsn")           // name token, compared by value
//	container.Symbol("cache")          // name token, unique per call
//
// The package-level functions operate on the process-wide Default()
// registry; New() creates an isolated one (handy in tests).
//
// # Registering
//
//	// Soft registration: a no-op if the token already has a resolver
//	container.RegisterIfAbsent(container.Name("clock"), func(...any) (any, error) {
//	    return realClock{}, nil
//	})
//
//	// Unconditional replacement, e.g. a test double
//	container.Override(container.Name("clock"), container.Value(fakeClock{}))
//
//	// Memoized: the resolver runs once, later resolutions return the same instance
//	container.RegisterSingletonIfAbsent(container.Name("pool"), func(args ...any) (any, error) {
//	    return pgxpool.New(ctx, args[0].(string))
//	})
//
// # Resolving
//
//	raw, err := container.Resolve(container.Name("pool"), dsn)
//
//	// Generic (preferred, no type assertion required)
//	pool, err := container.ResolveAs[*pgxpool.Pool](container.Default(), container.Name("pool"))
//
//	// With a transform
//	port, err := container.ResolveAndTransform(cfgToken, func(v any) (any, error) {
//	    return v.(*Config).Port, nil
//	})
//
// A token with no resolver fails with UnregisteredTokenError. Errors from
// resolvers, transforms and constructors are returned unchanged.
//
// # Constructor injection
//
// Go has no parameter metadata at run time, so the bindings of a
// constructor's parameters are declared explicitly, once per type:
//
//	func NewUserService(repo *UserRepository, ttl time.Duration) *UserService
//
//	container.Define(NewUserService,
//	    container.Param(0, container.TypeOf[*UserRepository]()),
//	    container.Param(1, container.Name("config"), container.WithTransform(sessionTTL)),
//	)
//
//	svc, err := container.Construct(container.TypeOf[*UserService]())
//
// Explicit arguments to Construct bypass the bindings entirely. Bound
// arguments wrapped in Lazy are evaluated at resolution time.
//
// Provide combines Define with registration of the type token, and is
// meant to be called from the declaring package's init function:
//
//	func init() {
//	    container.MustProvide(NewUserService,
//	        container.WithLifetime(container.Singleton),
//	        container.WithParams(container.Param(0, container.TypeOf[*UserRepository]())),
//	    )
//	}
//
// # Injected fields
//
// Accessor stands in for a field whose value comes from the registry:
//
//	type Handler struct {
//	    Users container.Accessor[*UserService] // resolved on first Get, then fixed
//	    Now   container.Accessor[time.Time]    // resolved on every Get
//	}
//
//	h := &Handler{
//	    Users: container.InjectOnce[*UserService](r, container.TypeOf[*UserService]()),
//	    Now:   container.Inject[time.Time](r, container.Name("now")),
//	}
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(r *container.Registry) error {
//	    _, err := r.Provide(NewMailer, container.WithLifetime(container.Singleton))
//	    return err
//	}
//
//	providers := container.NewProviderRegistry(r)
//	providers.Register(&AppServiceProvider{})
//	providers.Boot()
//
// # Concurrency
//
// Resolution runs synchronously on the caller's goroutine. The registry
// guards its maps but gives no isolation between a resolver and the
// registrations it performs, and no protection against dependency cycles.
package container
