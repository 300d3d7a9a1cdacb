package commands

import (
	"github.com/spf13/cobra"

	"github.com/lyrebird-cli/lyrebird"
	"github.com/lyrebird-cli/lyrebird/internal/output"
)

// RootCmd creates and returns the root command for the lyrebird CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "lyrebird",
		Short: "Configuration-driven Flutter project generator",
		Long: `Lyrebird assembles Flutter projects from a configuration instead of
copying a fixed template.

Pick an architecture, a state-management library, and the features and
modules you need:
• Generate a complete project skeleton in one command
• Add screens that wire themselves into the router
• Install feature modules into an existing project, idempotently

Learn more: https://github.com/lyrebird-cli/lyrebird`,
		Version: lyrebird.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
