package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-inject/framework/app"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/internal/greeter"
)

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the greeting API until interrupted",
	Args:  cobra.NoArgs,
	Run:   serve,
}

func init() {
	cmdMain.AddCommand(cmdServe)
}

func serve(*cobra.Command, []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the default registry already holds everything greeter registered in init
	a, err := app.New(app.WithRegistry(container.Default()), app.WithEnvFiles(flagMain.EnvFiles...))
	check(err)
	check(a.Register(&greeter.Provider{}))
	check(a.Run(ctx))
}
