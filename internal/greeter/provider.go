package greeter

import (
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/framework/providers"
	"github.com/km-arc/go-inject/framework/routing"
)

// Provider registers the greeter components and mounts its routes on the
// application router.
type Provider struct {
	container.BaseProvider
}

func (p *Provider) Register(r *container.Registry) error {
	return Register(r)
}

func (p *Provider) Boot(r *container.Registry) error {
	router, err := container.ResolveAs[*routing.Router](r, providers.RouterToken)
	if err != nil {
		return err
	}
	NewHandler(r).Routes(router)
	return nil
}
