package container

import (
	"fmt"
)

// ContextualBuilder is the fluent form of InjectParam.
//
//	r.When(container.TypeOf[*PhotoController]()).
//	    NeedsParam(0).
//	    Give(container.TypeOf[Filesystem](), container.WithArgs("s3"))
type ContextualBuilder struct {
	registry *Registry
	concrete Token
	index    int
}

// When starts a contextual annotation chain for the constructor of concrete.
func (r *Registry) When(concrete Token) *ContextualBuilder {
	return &ContextualBuilder{registry: r, concrete: concrete}
}

// NeedsParam selects the constructor parameter to annotate.
func (b *ContextualBuilder) NeedsParam(index int) *ContextualBuilder {
	b.index = index
	return b
}

// Give annotates the selected parameter with tok.
func (b *ContextualBuilder) Give(tok Token, opts ...InjectOption) error {
	return b.registry.InjectParam(b.concrete, b.index, tok, opts...)
}

// GiveValue is a shorthand for Give when the argument is a fixed value.
// The value is stored under a fresh symbol token.
//
//	r.When(photoController).NeedsParam(1).GiveValue("/tmp/photos")
func (b *ContextualBuilder) GiveValue(v any) error {
	sym := Symbol(fmt.Sprintf("%s#%d", b.concrete, b.index))
	b.registry.Override(sym, Value(v))
	return b.Give(sym)
}
