// Package main is the entry point for the mcp-config-glean CLI.
package main

import (
	"os"

	"github.com/gleanwork/mcp-config-glean/cmd/mcp-config-glean/commands"
	"github.com/gleanwork/mcp-config-glean/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
