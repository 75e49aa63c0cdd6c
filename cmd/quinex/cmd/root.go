package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quinex/quinex/config"
)

var rootCmd = &cobra.Command{
	Use:   "quinex [text]",
	Short: "quinex - extract structured quantities from free text",
	Long: `quinex parses free-text quantity expressions - measurements, ranges,
lists, and dimensions - into a structured, ontology-neutral form.

Examples:
  quinex                                Start interactive REPL
  quinex parse "about 344 million €"    Parse text and print the result
  quinex unit "kWh"                     Link a unit expression
  quinex convert 1000 quinex:length:meter quinex:length:kilometer
                                        Convert between unit URIs`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return runParse(args)
		}
		return runREPL()
	},
}

// Execute runs the root command.
func Execute() {
	if _, err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
