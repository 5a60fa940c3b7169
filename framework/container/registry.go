package container

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ── Resolver types ────────────────────────────────────────────────────────────

// Resolver produces an instance of a dependency from optional arguments.
type Resolver func(args ...any) (any, error)

// Transform maps a resolved instance to a derived value.
type Transform func(instance any) (any, error)

// Value returns a resolver that ignores its arguments and always yields v.
func Value(v any) Resolver {
	return func(...any) (any, error) { return v, nil }
}

// entry is a stored resolver. A deferred entry is a placeholder installed
// by a deferred ServiceProvider; the next RegisterIfAbsent replaces it.
type entry struct {
	resolve  Resolver
	deferred bool
}

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry maps tokens to resolvers and constructible types to their
// parameter injectors.
//
// Type tokens and name tokens live in separate maps and never collide.
// Entries are only ever added or replaced; nothing is removed.
//
// The internal lock only guards map access. It is released before any
// resolver, transform or constructor runs, so resolvers are free to
// register and resolve other tokens. Callers that resolve from several
// goroutines at once must coordinate memoized first-resolution themselves.
type Registry struct {
	mu sync.RWMutex

	// type token → resolver
	types map[reflect.Type]entry

	// name / symbol token → resolver
	names map[Token]entry

	// constructed type → constructor + parameter injectors
	classes map[reflect.Type]*class
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		types:   make(map[reflect.Type]entry),
		names:   make(map[Token]entry),
		classes: make(map[reflect.Type]*class),
	}
}

// ── Registration ──────────────────────────────────────────────────────────────

// RegisterIfAbsent stores res under tok unless a resolver is already
// stored there, in which case it does nothing.
//
//	r.RegisterIfAbsent(container.Name("clock"), func(...any) (any, error) {
//	    return time.Now, nil
//	})
func (r *Registry) RegisterIfAbsent(tok Token, res Resolver) {
	r.store(tok, res, false, false)
}

// Override stores res under tok, replacing whatever was there.
//
//	// swap in a test double
//	r.Override(container.TypeOf[Mailer](), container.Value(&fakeMailer{}))
func (r *Registry) Override(tok Token, res Resolver) {
	r.store(tok, res, true, false)
}

// registerDeferred stores a placeholder resolver for tok if absent.
func (r *Registry) registerDeferred(tok Token, res Resolver) {
	r.store(tok, res, false, true)
}

func (r *Registry) store(tok Token, res Resolver, replace, deferred bool) {
	if tok.IsZero() {
		panic("container: cannot register the zero token")
	}
	if res == nil {
		panic(fmt.Sprintf("container: nil resolver for [%s]", tok))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !replace {
		if e, ok := r.get(tok); ok && !e.deferred {
			return
		}
	}
	e := entry{resolve: res, deferred: deferred}
	if tok.kind == TypeKind {
		r.types[tok.typ] = e
		return
	}
	r.names[tok] = e
}

// get must be called with mu held.
func (r *Registry) get(tok Token) (entry, bool) {
	if tok.kind == TypeKind {
		e, ok := r.types[tok.typ]
		return e, ok
	}
	e, ok := r.names[tok]
	return e, ok
}

func (r *Registry) lookup(tok Token) (Resolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.get(tok)
	return e.resolve, ok
}

func (r *Registry) isDeferred(tok Token) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.get(tok)
	return ok && e.deferred
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Has reports whether a resolver is stored for tok.
func (r *Registry) Has(tok Token) bool {
	_, ok := r.lookup(tok)
	return ok
}

// Tokens returns every registered token, sorted by display form (for
// debugging).
func (r *Registry) Tokens() []Token {
	r.mu.RLock()
	out := make([]Token, 0, len(r.types)+len(r.names))
	for t := range r.types {
		out = append(out, TypeToken(t))
	}
	for tok := range r.names {
		out = append(out, tok)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
