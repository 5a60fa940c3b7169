package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-inject/framework/config"
	"github.com/km-arc/go-inject/framework/container"
	"github.com/km-arc/go-inject/internal/greeter"
)

var cmdGreet = &cobra.Command{
	Use:   "greet NAME",
	Short: "Print a greeting",
	Args:  cobra.ExactArgs(1),
	Run:   greet,
}

var flagGreet struct {
	Lang string
	JSON bool
}

func init() {
	cmdMain.AddCommand(cmdGreet)

	cmdGreet.Flags().StringVarP(&flagGreet.Lang, "lang", "l", "", "Language code (defaults to GREETER_LANG, then en)")
	cmdGreet.Flags().BoolVar(&flagGreet.JSON, "json", false, "Print the full greeting as JSON")
}

func greet(cmd *cobra.Command, args []string) {
	// GREETER_LANG may come from an env file
	_, err := config.Load(flagMain.EnvFiles...)
	check(err)

	g, err := container.ResolveAs[*greeter.Greeter](container.Default(), greeter.GreeterToken)
	check(err)

	greeting, err := g.Greet(args[0], flagGreet.Lang)
	check(err)

	out := cmd.OutOrStdout()
	if flagGreet.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		check(enc.Encode(greeting))
		return
	}
	fmt.Fprintln(out, greeting.Message)
}
