package container

import (
	"errors"
	"fmt"
)

var (
	// ErrUnregisteredToken matches every UnregisteredTokenError via errors.Is.
	ErrUnregisteredToken = errors.New("container: unregistered token")

	// ErrInvalidConstructor is returned when Define or Provide receives
	// something other than func(...) T or func(...) (T, error).
	ErrInvalidConstructor = errors.New("container: invalid constructor")

	// ErrAlreadyDefined is returned when a second constructor is defined
	// for a type that already has one.
	ErrAlreadyDefined = errors.New("container: constructor already defined")

	// ErrNotConstructible is returned by Construct and InjectParam for a
	// token that has no constructor.
	ErrNotConstructible = errors.New("container: type is not constructible")

	// ErrParamIndex is returned when a parameter annotation points past the
	// constructor's parameter list.
	ErrParamIndex = errors.New("container: parameter index out of range")

	// ErrBadArgument is returned when a constructor argument cannot be
	// passed to the constructor.
	ErrBadArgument = errors.New("container: bad constructor argument")

	// ErrTypeMismatch is returned by the generic helpers when a resolved
	// value does not have the requested type.
	ErrTypeMismatch = errors.New("container: type mismatch")
)

// UnregisteredTokenError is returned by Resolve when no resolver is stored
// for Token.
type UnregisteredTokenError struct{ Token Token }

// Error implements the error interface.
func (e UnregisteredTokenError) Error() string {
	// Example: container: no resolver registered for [*app.Mailer]
	return "container: no resolver registered for [" + e.Token.String() + "]"
}

// Is lets errors.Is(err, ErrUnregisteredToken) match.
func (e UnregisteredTokenError) Is(target error) bool {
	return target == ErrUnregisteredToken
}

func paramError(sentinel error, typ Token, index int, detail string) error {
	if detail == "" {
		return fmt.Errorf("%w: %s parameter %d", sentinel, typ, index)
	}
	return fmt.Errorf("%w: %s parameter %d: %s", sentinel, typ, index, detail)
}
