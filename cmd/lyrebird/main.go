package main

import (
	"os"

	"github.com/lyrebird-cli/lyrebird/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	// Always available commands
	rootCmd.AddCommand(commands.NewCmd())

	// Project-scoped commands still register outside a project so that
	// --help works; they fail with a clear message when run there.
	rootCmd.AddCommand(commands.ScreenCmd())
	rootCmd.AddCommand(commands.ModuleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
