package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyrebird-cli/lyrebird/internal/generator"
	"github.com/lyrebird-cli/lyrebird/internal/generators/screen"
	"github.com/lyrebird-cli/lyrebird/internal/output"
	"github.com/lyrebird-cli/lyrebird/internal/patch"
	"github.com/lyrebird-cli/lyrebird/internal/project"
)

// ScreenCmd creates the 'screen' command for adding screens to a project.
func ScreenCmd() *cobra.Command {
	var dryRun, force bool

	cmd := &cobra.Command{
		Use:   "screen [name]",
		Short: "Add a screen to the current project",
		Long: `Generates a screen file for the project's architecture and splices
its import and route into the router. Re-running the command for an
existing screen changes nothing and reports what was already present.

Example:
  lyrebird screen order_history`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			projectPath, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}

			manifest, err := project.Load(projectPath)
			if err != nil {
				return err
			}
			cfg, err := manifest.Config()
			if err != nil {
				return err
			}

			gen, err := screen.New(projectPath)
			if err != nil {
				return err
			}
			res, err := gen.Generate(cfg, name)
			if err != nil {
				return err
			}

			reportPatches(res.Patches)

			ctx := context.Background()
			if err := generator.Execute(ctx, res.Ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Force:  force,
				Writer: cmd.OutOrStdout(),
			}); err != nil {
				return err
			}
			if !dryRun {
				output.Success(fmt.Sprintf("Added screen: %s", name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing screen file")

	return cmd
}

// reportPatches prints one line per patch outcome. Applied patches are
// verbose-only; skipped ones always surface so the user knows what to
// check by hand.
func reportPatches(results []patch.Result) {
	for _, r := range results {
		switch r.Reason {
		case patch.Applied:
			output.Verbose(fmt.Sprintf("Patched %s (%s)", r.Target, r.Anchor))
		case patch.AlreadyPresent:
			output.Info(fmt.Sprintf("Skipped %s: already present", r.Anchor))
		case patch.AnchorNotFound:
			output.Warn(fmt.Sprintf("Skipped %s: anchor not found, file left untouched", r.Anchor))
		}
	}
}
