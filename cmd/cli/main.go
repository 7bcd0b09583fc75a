package main

import (
	"fmt"
	"os"

	"github.com/myrjola/alibi/cmd/cli/scen"
	"github.com/myrjola/alibi/cmd/cli/sim"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddGroup(sim.Group)
	rootCmd.AddCommand(sim.Run)
	rootCmd.AddCommand(sim.Verify)
	rootCmd.AddGroup(scen.Group)
	rootCmd.AddCommand(scen.List)
	rootCmd.AddCommand(scen.Validate)
	rootCmd.AddCommand(scen.Export)
}

var rootCmd = &cobra.Command{
	Use:  "alibi-cli",
	Long: `Command line utilities for Alibi, the adversarial investigation simulation`,
	Run: func(_ *cobra.Command, _ []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
