// Package app generates a complete Flutter project skeleton from a
// configuration: entrypoint, manifest, router, observability helper, the
// home screen, and the lyrebird.yml project marker.
package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lyrebird-cli/lyrebird/internal/catalog"
	"github.com/lyrebird-cli/lyrebird/internal/compose"
	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
	"github.com/lyrebird-cli/lyrebird/internal/project"
	"github.com/lyrebird-cli/lyrebird/internal/resolve"
)

// Generator produces the initial project files.
type Generator struct {
	projectPath string
	renderer    *generator.Renderer
	catalog     *catalog.Catalog
}

// New creates an app generator rooted at projectPath.
func New(projectPath string) (*Generator, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return &Generator{
		projectPath: projectPath,
		renderer:    generator.NewRenderer(),
		catalog:     cat,
	}, nil
}

// Result is the outcome of planning a full generation.
type Result struct {
	Ops []generator.Operation

	// Skipped collects per-file composition failures. A file that composes
	// to nothing is reported here and the remaining files still generate;
	// one broken target never takes down its siblings.
	Skipped []error

	// RuleNames lists the cross-axis rules that fired, for verbose output.
	RuleNames []string
}

// Generate plans every file for cfg. Fatal errors (invalid configuration,
// catalog defects) abort the whole run; empty compositions are isolated
// into Result.Skipped.
func (g *Generator) Generate(cfg config.Config) (*Result, error) {
	sel, err := resolve.Resolve(g.catalog, cfg)
	if err != nil {
		return nil, err
	}

	data := catalog.NewTemplateData(cfg)
	byTarget := sel.ByTarget()
	res := &Result{RuleNames: sel.RuleNames}

	targets := []catalog.FileKind{
		catalog.FileManifest,
		catalog.FileEntrypoint,
		catalog.FileRouter,
		catalog.FileObservability,
	}
	for _, target := range targets {
		relPath, ok := compose.TargetPath(target)
		if !ok {
			return nil, fmt.Errorf("no path mapping for target %s", target)
		}
		file, err := compose.Compose(g.renderer, target, relPath, byTarget[target], data)
		if err != nil {
			var empty *compose.EmptyCompositionError
			if errors.As(err, &empty) {
				res.Skipped = append(res.Skipped, empty)
				continue
			}
			return nil, err
		}
		res.Ops = append(res.Ops, &generator.WriteFileOp{
			Path:    filepath.Join(g.projectPath, file.Path),
			Content: []byte(file.Content),
			Mode:    0644,
		})
	}

	homeOp, err := g.generateHomeScreen(cfg, byTarget[catalog.FileScreen], data)
	if err != nil {
		var empty *compose.EmptyCompositionError
		if errors.As(err, &empty) {
			res.Skipped = append(res.Skipped, empty)
		} else {
			return nil, err
		}
	} else {
		res.Ops = append(res.Ops, homeOp)
	}

	manifestOp, err := g.projectManifestOp(cfg)
	if err != nil {
		return nil, err
	}
	res.Ops = append(res.Ops, manifestOp)

	return res, nil
}

func (g *Generator) generateHomeScreen(cfg config.Config, fragments []catalog.Fragment, data catalog.TemplateData) (generator.Operation, error) {
	screenData := data.WithScreen("home")
	relPath := compose.ScreenPath(string(cfg.Architecture), "home")

	file, err := compose.Compose(g.renderer, catalog.FileScreen, relPath, fragments, screenData)
	if err != nil {
		return nil, err
	}
	return &generator.WriteFileOp{
		Path:    filepath.Join(g.projectPath, file.Path),
		Content: []byte(file.Content),
		Mode:    0644,
	}, nil
}

// projectManifestOp writes lyrebird.yml. The file belongs to the user after
// first generation, so it is never overwritten.
func (g *Generator) projectManifestOp(cfg config.Config) (generator.Operation, error) {
	m := project.FromConfig(cfg)
	content, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", project.FileName, err)
	}
	return &generator.WriteFileIfNotExistsOp{
		Path:    filepath.Join(g.projectPath, project.FileName),
		Content: content,
		Mode:    0644,
	}, nil
}
