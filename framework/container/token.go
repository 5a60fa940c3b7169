package container

import (
	"reflect"
)

// Kind tells the two token namespaces apart.
type Kind uint8

const (
	// TypeKind tokens wrap a reflect.Type and compare by type identity.
	TypeKind Kind = iota + 1

	// NameKind tokens wrap a string (compared by value) or a symbol
	// (compared by identity).
	NameKind
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case TypeKind:
		return "type"
	case NameKind:
		return "name"
	default:
		return "invalid"
	}
}

// symbol gives Symbol tokens pointer identity.
type symbol struct {
	desc string
}

// Token identifies a dependency in a Registry.
//
// Tokens are comparable values, so they can be stored in package-level
// variables and used as map keys:
//
//	var LoggerToken = container.Name("logger")
//	var DBToken     = container.TypeOf[*sql.DB]()
//	var CacheToken  = container.Symbol("cache")
//
// The zero Token is invalid.
type Token struct {
	kind Kind
	typ  reflect.Type
	name string
	sym  *symbol
}

// TypeOf returns the type token for T.
//
//	container.TypeOf[*UserService]()
//	container.TypeOf[io.Writer]()
func TypeOf[T any]() Token {
	return TypeToken(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeToken returns the type token for t. A nil t yields the zero Token.
func TypeToken(t reflect.Type) Token {
	if t == nil {
		return Token{}
	}
	return Token{kind: TypeKind, typ: t}
}

// Name returns a name token. Two name tokens with the same text are equal.
func Name(name string) Token {
	return Token{kind: NameKind, name: name}
}

// Symbol returns a fresh name token that is only equal to itself,
// whatever its description.
func Symbol(description string) Token {
	return Token{kind: NameKind, sym: &symbol{desc: description}}
}

// Kind returns the token's namespace.
func (t Token) Kind() Kind { return t.kind }

// Type returns the wrapped type, or nil for name tokens.
func (t Token) Type() reflect.Type { return t.typ }

// IsZero reports whether t is the invalid zero Token.
func (t Token) IsZero() bool { return t.kind == 0 }

// IsSymbol reports whether t was created by Symbol.
func (t Token) IsSymbol() bool { return t.sym != nil }

// String returns the display form used in error messages.
func (t Token) String() string {
	switch {
	case t.kind == TypeKind:
		return t.typ.String()
	case t.sym != nil:
		return "Symbol(" + t.sym.desc + ")"
	case t.kind == NameKind:
		return t.name
	default:
		return "<invalid token>"
	}
}
