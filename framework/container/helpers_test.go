package container_test

import (
	"errors"

	"github.com/km-arc/go-inject/framework/container"
)

// ── fixtures ──────────────────────────────────────────────────────────────────

type Engine struct{ HP int }

type Wheels struct{ Count int }

type Car struct {
	Engine *Engine
	Wheels *Wheels
	Label  string
}

func NewCar(e *Engine, w *Wheels, label string) *Car {
	return &Car{Engine: e, Wheels: w, Label: label}
}

type Garage struct{ Cars int }

func NewGarage() *Garage { return &Garage{Cars: 1} }

type Broken struct{}

var errBroken = errors.New("broken constructor")

func NewBroken() (*Broken, error) { return nil, errBroken }

// counter returns a resolver that counts its calls and builds a fresh
// *Engine each time.
func counter(calls *int) container.Resolver {
	return func(args ...any) (any, error) {
		*calls++
		hp := 100
		if len(args) > 0 {
			hp = args[0].(int)
		}
		return &Engine{HP: hp}, nil
	}
}

func constant(v any) container.Resolver {
	return func(...any) (any, error) { return v, nil }
}
