// Command quinex is the CLI and interactive shell for extracting structured
// quantities from free text.
package main

import "github.com/quinex/quinex/cmd/quinex/cmd"

func main() {
	cmd.Execute()
}
