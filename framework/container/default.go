package container

// defaultRegistry is the process-wide registry. It is created when the
// package loads and never cleared.
var defaultRegistry = New()

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry { return defaultRegistry }

// RegisterIfAbsent calls Default().RegisterIfAbsent.
func RegisterIfAbsent(tok Token, res Resolver) { defaultRegistry.RegisterIfAbsent(tok, res) }

// Override calls Default().Override.
func Override(tok Token, res Resolver) { defaultRegistry.Override(tok, res) }

// RegisterSingletonIfAbsent calls Default().RegisterSingletonIfAbsent.
func RegisterSingletonIfAbsent(tok Token, res Resolver) {
	defaultRegistry.RegisterSingletonIfAbsent(tok, res)
}

// OverrideSingleton calls Default().OverrideSingleton.
func OverrideSingleton(tok Token, res Resolver) { defaultRegistry.OverrideSingleton(tok, res) }

// Resolve calls Default().Resolve.
func Resolve(tok Token, args ...any) (any, error) { return defaultRegistry.Resolve(tok, args...) }

// ResolveAndTransform calls Default().ResolveAndTransform.
func ResolveAndTransform(tok Token, fn Transform, args ...any) (any, error) {
	return defaultRegistry.ResolveAndTransform(tok, fn, args...)
}

// Construct calls Default().Construct.
func Construct(typ Token, args ...any) (any, error) { return defaultRegistry.Construct(typ, args...) }

// Define calls Default().Define.
func Define(ctor any, params ...ParamBinding) (Token, error) {
	return defaultRegistry.Define(ctor, params...)
}

// InjectParam calls Default().InjectParam.
func InjectParam(typ Token, index int, dep Token, opts ...InjectOption) error {
	return defaultRegistry.InjectParam(typ, index, dep, opts...)
}

// Provide calls Default().Provide.
func Provide(ctor any, opts ...ProvideOption) (Token, error) {
	return defaultRegistry.Provide(ctor, opts...)
}

// MustProvide is Provide for package init functions: it panics on error.
//
//	func init() { container.MustProvide(NewClock, container.WithLifetime(container.Singleton)) }
func MustProvide(ctor any, opts ...ProvideOption) Token {
	tok, err := defaultRegistry.Provide(ctor, opts...)
	if err != nil {
		panic(err)
	}
	return tok
}
