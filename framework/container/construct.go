package container

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ── Definition ────────────────────────────────────────────────────────────────

// Define declares ctor as the constructor of its first result type and
// applies the given parameter annotations. ctor must have the signature
// func(params...) T or func(params...) (T, error) and must not be
// variadic. The returned token is TypeToken of T.
//
//	tok, err := r.Define(NewUserService,
//	    container.Param(0, container.TypeOf[*sql.DB]()),
//	    container.Param(1, container.Name("logger")),
//	)
func (r *Registry) Define(ctor any, params ...ParamBinding) (Token, error) {
	return r.define(ctor, false, params)
}

func (r *Registry) define(ctor any, replace bool, params []ParamBinding) (Token, error) {
	c, err := newClass(ctor)
	if err != nil {
		return Token{}, err
	}

	// the class is only published once every annotation is valid
	for _, p := range params {
		inj := p.Injector
		if err := c.annotate(p.Index, &inj); err != nil {
			return c.token, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.classes[c.token.typ]; exists && !replace {
		return c.token, fmt.Errorf("%w: [%s]", ErrAlreadyDefined, c.token)
	}
	r.classes[c.token.typ] = c
	return c.token, nil
}

// Defined reports whether typ has a constructor.
func (r *Registry) Defined(typ Token) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classOf(typ)
	return ok
}

func newClass(ctor any) (*class, error) {
	if ctor == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidConstructor)
	}

	val := reflect.ValueOf(ctor)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s is not a function", ErrInvalidConstructor, typ)
	}
	if val.IsNil() {
		return nil, fmt.Errorf("%w: nil %s", ErrInvalidConstructor, typ)
	}
	if typ.IsVariadic() {
		return nil, fmt.Errorf("%w: %s is variadic", ErrInvalidConstructor, typ)
	}
	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return nil, fmt.Errorf("%w: %s must return (T) or (T, error)", ErrInvalidConstructor, typ)
	}
	if typ.NumOut() == 2 && !typ.Out(1).Implements(errorType) {
		return nil, fmt.Errorf("%w: second result of %s must implement error", ErrInvalidConstructor, typ)
	}

	params := make([]reflect.Type, typ.NumIn())
	for i := range params {
		params[i] = typ.In(i)
	}

	return &class{
		token:  TypeToken(typ.Out(0)),
		ctor:   val,
		params: params,
	}, nil
}

// ── Construction ──────────────────────────────────────────────────────────────

// Construct builds an instance of typ.
//
// With explicit args the constructor is called with exactly those
// arguments and the parameter annotations are ignored. Without args every
// annotated parameter is resolved in index order (bound arguments first,
// then the transform) and passed positionally; unannotated parameters get
// their zero value. A type with no annotations at all is constructed with
// zero values only.
func (r *Registry) Construct(typ Token, args ...any) (any, error) {
	r.mu.RLock()
	c, ok := r.classOf(typ)
	var injectors []*Injector
	if ok && c.injectors != nil {
		injectors = append([]*Injector(nil), c.injectors...)
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: [%s]", ErrNotConstructible, typ)
	}
	if len(args) > 0 || injectors == nil {
		return c.call(args)
	}

	resolved := make([]any, len(injectors))
	for i, inj := range injectors {
		if inj == nil {
			continue
		}
		v, err := r.resolveBound(inj.Token, inj.Transform, inj.Args)
		if err != nil {
			return nil, err
		}
		resolved[i] = v
	}
	return c.call(resolved)
}

// ConstructAs constructs T, which must have been defined.
//
//	svc, err := container.ConstructAs[*UserService](r)
func ConstructAs[T any](r *Registry, args ...any) (T, error) {
	tok := TypeOf[T]()
	inst, err := r.Construct(tok, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](tok, inst)
}

// call invokes the constructor. Missing and nil arguments become zero values.
func (c *class) call(args []any) (any, error) {
	if len(args) > len(c.params) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrBadArgument, c.token, len(c.params), len(args))
	}

	in := make([]reflect.Value, len(c.params))
	for i, pt := range c.params {
		if i >= len(args) || args[i] == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(args[i])
		if !v.Type().AssignableTo(pt) {
			return nil, paramError(ErrBadArgument, c.token, i,
				fmt.Sprintf("%s is not assignable to %s", v.Type(), pt))
		}
		in[i] = v
	}

	out := c.ctor.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
