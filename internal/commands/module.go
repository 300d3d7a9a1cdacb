package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
	"github.com/lyrebird-cli/lyrebird/internal/module"
	"github.com/lyrebird-cli/lyrebird/internal/output"
	"github.com/lyrebird-cli/lyrebird/internal/project"
)

// ModuleCmd returns the module command with add/list subcommands.
func ModuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Manage feature modules",
		Long:  "Install and inspect feature modules in your project",
	}

	cmd.AddCommand(moduleAddCmd())
	cmd.AddCommand(moduleListCmd())

	return cmd
}

func moduleAddCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "add [module-name]",
		Short: "Install a feature module",
		Long: `Install a feature module into your project.

This command will:
1. Add the module's pub dependencies to pubspec.yaml
2. Splice imports and initialization into lib/main.dart
3. Generate the module's screen, when it has one
4. Record the module in lyrebird.yml

Installation is idempotent; adding a module twice changes nothing.

Example:
  lyrebird module add push_notification`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := config.ModuleTag(args[0])

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

			installer := module.NewInstaller(projectPath)
			res, err := installer.Install(cfg, manifest, tag)
			if err != nil {
				return err
			}

			reportPatches(res.Patches)

			ctx := context.Background()
			if err := generator.Execute(ctx, res.Ops, generator.ExecuteOptions{
				DryRun: dryRun,
				Writer: cmd.OutOrStdout(),
			}); err != nil {
				return err
			}
			if dryRun {
				return nil
			}

			if res.ManifestUpdated {
				output.Success(fmt.Sprintf("Installed module: %s", tag))
			} else {
				output.Info(fmt.Sprintf("Module already installed: %s", tag))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would change without writing files")

	return cmd
}

func moduleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}

			manifest, err := project.Load(projectPath)
			if err != nil {
				return err
			}

			if len(manifest.Project.Modules) == 0 {
				output.Info("No modules installed")
				return nil
			}
			output.Info("Installed modules:")
			for _, m := range manifest.Project.Modules {
				output.Step(m)
			}
			return nil
		},
	}
}
