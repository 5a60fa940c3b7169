package container

import (
	"sync"
)

// Accessor yields an injected dependency. It stands in for a struct field
// whose value comes from the registry:
//
//	type ReportHandler struct {
//	    Mailer container.Accessor[*Mailer]
//	}
//
//	h := &ReportHandler{Mailer: container.InjectOnce[*Mailer](r, mailerToken)}
//	m, err := h.Mailer.Get()
type Accessor[T any] interface {
	Get() (T, error)
}

// AccessorFunc adapts a function to Accessor.
type AccessorFunc[T any] func() (T, error)

// Get calls f.
func (f AccessorFunc[T]) Get() (T, error) { return f() }

// Inject returns an Accessor that resolves tok on every Get. Lazy bound
// arguments are evaluated on every Get as well.
func Inject[T any](r *Registry, tok Token, opts ...InjectOption) Accessor[T] {
	inj := newInjector(tok, opts)
	return AccessorFunc[T](func() (T, error) {
		return resolveInjector[T](r, inj)
	})
}

// InjectAndTransform is Inject with a transform applied to every resolved
// instance.
func InjectAndTransform[T any](r *Registry, tok Token, fn Transform, opts ...InjectOption) Accessor[T] {
	return Inject[T](r, tok, append(opts, WithTransform(fn))...)
}

// InjectOnce returns an Accessor that resolves tok on the first successful
// Get and returns that value from then on, whether or not tok itself is a
// singleton. Failed attempts are not remembered.
func InjectOnce[T any](r *Registry, tok Token, opts ...InjectOption) Accessor[T] {
	return &onceAccessor[T]{registry: r, inj: newInjector(tok, opts)}
}

type onceAccessor[T any] struct {
	registry *Registry
	inj      *Injector

	mu    sync.Mutex
	done  bool
	value T
}

func (a *onceAccessor[T]) Get() (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.done {
		return a.value, nil
	}
	v, err := resolveInjector[T](a.registry, a.inj)
	if err != nil {
		return v, err
	}
	a.value, a.done = v, true
	return v, nil
}

func resolveInjector[T any](r *Registry, inj *Injector) (T, error) {
	inst, err := r.resolveBound(inj.Token, inj.Transform, inj.Args)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](inj.Token, inst)
}
