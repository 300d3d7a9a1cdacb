package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/exec"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
	"github.com/lyrebird-cli/lyrebird/internal/generators/app"
	"github.com/lyrebird-cli/lyrebird/internal/output"
)

// NewCmd creates and returns the 'new' command for scaffolding projects.
func NewCmd() *cobra.Command {
	var arch, state, org string
	var features, modules []string
	var dryRun, force, skip, diff, noPubGet bool

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new Flutter project",
		Long: `Creates a new Flutter project assembled from your configuration:
• Entrypoint wired for your state-management library
• pubspec.yaml with exactly the packages your choices need
• go_router setup with a home screen
• lyrebird.yml recording the configuration for later commands

Example:
  lyrebird new myshop --arch mvvm --state riverpod --features theming`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName := args[0]
			projectPath := filepath.Join(".", projectName)

			cfg := config.Config{
				ProjectName:     projectName,
				Organization:    org,
				Architecture:    config.Architecture(arch),
				StateManagement: config.StateManagement(state),
			}
			for _, f := range features {
				cfg.Features = append(cfg.Features, config.FeatureTag(f))
			}
			for _, m := range modules {
				cfg.Modules = append(cfg.Modules, config.ModuleTag(m))
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			output.Verbose(fmt.Sprintf("Creating new lyrebird project: %s", projectName))

			gen, err := app.New(projectPath)
			if err != nil {
				return err
			}
			res, err := gen.Generate(cfg)
			if err != nil {
				return err
			}

			for _, name := range res.RuleNames {
				output.Verbose(fmt.Sprintf("Rule fired: %s", name))
			}
			for _, skipped := range res.Skipped {
				output.Warn(skipped.Error())
			}

			var resolver *generator.Resolver
			if !dryRun {
				resolver, err = generator.NewResolver(force, skip, diff)
				if err != nil {
					return err
				}
			}

			ctx := context.Background()
			if err := generator.Execute(ctx, res.Ops, generator.ExecuteOptions{
				DryRun:   dryRun,
				Force:    force,
				Resolver: resolver,
				Writer:   cmd.OutOrStdout(),
			}); err != nil {
				return err
			}
			if dryRun {
				return nil
			}

			output.Success(fmt.Sprintf("Created Flutter project: %s", projectName))

			if !noPubGet {
				runner := exec.NewExecutor(&exec.Options{Dir: projectPath})
				if err := runner.PubGet(ctx); err != nil {
					output.Warn(fmt.Sprintf("flutter pub get failed: %v", err))
					output.Step("Run 'flutter pub get' manually once Flutter is installed")
				} else if err := runner.DartFormat(ctx); err != nil {
					output.Verbose(fmt.Sprintf("dart format skipped: %v", err))
				}
			}

			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", projectName))
			if noPubGet {
				output.Step("flutter pub get")
			}
			output.Step("flutter run")
			return nil
		},
	}

	cmd.Flags().StringVar(&arch, "arch", string(config.ArchMVC), "Architecture: mvc, mvvm, or clean")
	cmd.Flags().StringVar(&state, "state", string(config.StateProvider), "State management: provider, riverpod, or bloc")
	cmd.Flags().StringVar(&org, "org", "", "Organization identifier (e.g., com.example)")
	cmd.Flags().StringSliceVar(&features, "features", nil, "Features: localization, theming, analytics")
	cmd.Flags().StringSliceVar(&modules, "modules", nil, "Modules: auth, push_notification, local_storage")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&skip, "skip", false, "Keep existing files without prompting")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show a diff before deciding on conflicts")
	cmd.Flags().BoolVar(&noPubGet, "no-pub-get", false, "Skip running flutter pub get after generation")

	return cmd
}
