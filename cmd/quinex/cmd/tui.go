package cmd

import (
	"fmt"
	"os"

	"github.com/quinex/quinex/cmd/quinex/repl"
)

// runREPL starts the interactive shell.
func runREPL() error {
	if err := repl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
		os.Exit(1)
	}
	return nil
}
