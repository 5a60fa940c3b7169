package container

// RegisterSingletonIfAbsent is RegisterIfAbsent with a memoizing resolver:
// the first successful resolution replaces the entry for tok with a
// resolver that returns the same instance and ignores its arguments.
//
//	r.RegisterSingletonIfAbsent(container.Name("cache"), func(...any) (any, error) {
//	    return cache.NewRedis(cfg), nil // runs once
//	})
func (r *Registry) RegisterSingletonIfAbsent(tok Token, res Resolver) {
	r.RegisterIfAbsent(tok, r.memoize(tok, res))
}

// OverrideSingleton installs a memoizing resolver unconditionally, dropping
// any instance memoized earlier for tok.
func (r *Registry) OverrideSingleton(tok Token, res Resolver) {
	r.Override(tok, r.memoize(tok, res))
}

// memoize wraps res so its first successful result is written back to the
// registry as a fixed value. A failed call leaves the wrapper in place.
func (r *Registry) memoize(tok Token, res Resolver) Resolver {
	if res == nil {
		return nil
	}
	return func(args ...any) (any, error) {
		inst, err := res(args...)
		if err != nil {
			return nil, err
		}
		r.Override(tok, Value(inst))
		return inst, nil
	}
}
