// Command idmint issues content-derived identifiers from the command line.
package main

import (
	"os"

	"github.com/viant/idmint/cmd/idmint/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
