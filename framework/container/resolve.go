package container

import (
	"fmt"
)

// Lazy is a bound argument evaluated at resolution time rather than at
// annotation time. A plain func() any is treated the same way.
type Lazy func() any

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve looks up the resolver for tok and calls it with args. The result
// and any error are returned exactly as the resolver produced them.
//
//	raw, err := r.Resolve(container.Name("mailer"), "smtp.example.com")
func (r *Registry) Resolve(tok Token, args ...any) (any, error) {
	res, ok := r.lookup(tok)
	if !ok {
		return nil, UnregisteredTokenError{Token: tok}
	}
	return res(args...)
}

// ResolveAndTransform is fn(Resolve(tok, args...)). fn runs once per call;
// its error is returned unchanged.
func (r *Registry) ResolveAndTransform(tok Token, fn Transform, args ...any) (any, error) {
	inst, err := r.Resolve(tok, args...)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return inst, nil
	}
	return fn(inst)
}

// resolveBound resolves tok after evaluating any Lazy bound arguments.
func (r *Registry) resolveBound(tok Token, fn Transform, bound []any) (any, error) {
	return r.ResolveAndTransform(tok, fn, evalArgs(bound)...)
}

// evalArgs replaces every zero-argument function in bound with its result.
func evalArgs(bound []any) []any {
	if len(bound) == 0 {
		return nil
	}
	args := make([]any, len(bound))
	for i, a := range bound {
		switch f := a.(type) {
		case Lazy:
			args[i] = f()
		case func() any:
			args[i] = f()
		default:
			args[i] = a
		}
	}
	return args
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// ResolveAs resolves tok and asserts the result to T.
//
//	db, err := container.ResolveAs[*sql.DB](r, container.Name("db"))
func ResolveAs[T any](r *Registry, tok Token, args ...any) (T, error) {
	inst, err := r.Resolve(tok, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](tok, inst)
}

// MustResolve is like ResolveAs but panics on any error.
//
//	// Instead of: db := r.Resolve(tok) + assertion
//	// Write:      db := container.MustResolve[*sql.DB](r, tok)
func MustResolve[T any](r *Registry, tok Token, args ...any) T {
	v, err := ResolveAs[T](r, tok, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func as[T any](tok Token, inst any) (T, error) {
	var zero T
	if inst == nil {
		return zero, nil
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("%w: [%s] resolved to %T, want %T", ErrTypeMismatch, tok, inst, zero)
	}
	return typed, nil
}
