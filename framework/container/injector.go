package container

import (
	"fmt"
	"reflect"
)

// ── Injector ──────────────────────────────────────────────────────────────────

// Injector describes how one constructor parameter is produced: the token
// to resolve, an optional transform, and bound arguments passed to the
// resolver. A bound argument of type Lazy (or func() any) is called at
// resolution time and its result passed instead.
type Injector struct {
	Token     Token
	Transform Transform
	Args      []any
}

// IsZero reports whether the slot was never annotated.
func (inj Injector) IsZero() bool { return inj.Token.IsZero() }

// InjectOption configures an Injector or an Accessor.
type InjectOption func(*Injector)

// WithTransform maps the resolved instance through fn.
func WithTransform(fn Transform) InjectOption {
	return func(inj *Injector) {
		inj.Transform = fn
	}
}

// WithArgs binds resolver arguments. Lazy values are evaluated on every
// resolution.
//
//	container.WithArgs("eu-west-1", container.Lazy(func() any { return cfg.Port }))
func WithArgs(args ...any) InjectOption {
	return func(inj *Injector) {
		inj.Args = append(inj.Args, args...)
	}
}

func newInjector(tok Token, opts []InjectOption) *Injector {
	inj := &Injector{Token: tok}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// ── Parameter annotations ─────────────────────────────────────────────────────

// ParamBinding annotates the constructor parameter at Index.
type ParamBinding struct {
	Index    int
	Injector Injector
}

// Param builds a ParamBinding for Define and WithParams.
//
//	container.Param(0, container.TypeOf[*sql.DB]())
//	container.Param(1, container.Name("config"), container.WithTransform(pickMailConfig))
func Param(index int, tok Token, opts ...InjectOption) ParamBinding {
	return ParamBinding{Index: index, Injector: *newInjector(tok, opts)}
}

// InjectParam annotates parameter index of typ's constructor with dep.
// Annotations may arrive in any order; re-annotating a slot replaces it.
// The slot list is created on the first annotation and sized to the
// constructor's parameter count.
func (r *Registry) InjectParam(typ Token, index int, dep Token, opts ...InjectOption) error {
	return r.injectParam(typ, index, newInjector(dep, opts))
}

func (r *Registry) injectParam(typ Token, index int, inj *Injector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.classOf(typ)
	if !ok {
		if inj.Token.IsZero() {
			return paramError(ErrBadArgument, typ, index, "zero dependency token")
		}
		return fmt.Errorf("%w: [%s]", ErrNotConstructible, typ)
	}
	return c.annotate(index, inj)
}

// annotate stores inj in slot index, creating the slot list on first use.
func (c *class) annotate(index int, inj *Injector) error {
	if inj.Token.IsZero() {
		return paramError(ErrBadArgument, c.token, index, "zero dependency token")
	}
	if index < 0 || index >= len(c.params) {
		return paramError(ErrParamIndex, c.token, index, fmt.Sprintf("constructor takes %d", len(c.params)))
	}
	if c.injectors == nil {
		c.injectors = make([]*Injector, len(c.params))
	}
	c.injectors[index] = inj
	return nil
}

// Injectors returns a copy of typ's parameter slots in index order. It is
// nil when no parameter of typ was ever annotated; unannotated slots are
// zero Injectors.
func (r *Registry) Injectors(typ Token) []Injector {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classOf(typ)
	if !ok || c.injectors == nil {
		return nil
	}
	out := make([]Injector, len(c.injectors))
	for i, inj := range c.injectors {
		if inj != nil {
			out[i] = *inj
		}
	}
	return out
}

// classOf must be called with mu held.
func (r *Registry) classOf(typ Token) (*class, bool) {
	if typ.kind != TypeKind {
		return nil, false
	}
	c, ok := r.classes[typ.typ]
	return c, ok
}

// class is a constructible type: its constructor and parameter slots.
type class struct {
	token     Token
	ctor      reflect.Value
	params    []reflect.Type
	injectors []*Injector
}
