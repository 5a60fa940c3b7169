package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cmdMain = &cobra.Command{
	Use:   "greeter",
	Short: "Greeting service wired through the go-inject container",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	EnvFiles []string
}

func init() {
	cmdMain.PersistentFlags().StringSliceVarP(&flagMain.EnvFiles, "env-file", "e", []string{".env"}, "Environment files to load")
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func printUsageAndExit1(cmd *cobra.Command, _ []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}
