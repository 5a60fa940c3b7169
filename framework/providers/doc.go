// Package providers holds the framework's ServiceProviders. Each one binds
// a single infrastructure component into a container.Registry as a
// singleton under its type token, wiring its constructor parameters from
// tokens bound by the providers before it:
//
//	config ──▶ logger ──▶ router
//	   └─────▶ metrics ──┘
package providers
