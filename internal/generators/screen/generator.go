// Package screen adds a screen to an existing project: it composes the
// screen file for the project's architecture and splices an import plus a
// route into the router.
package screen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lyrebird-cli/lyrebird/internal/catalog"
	"github.com/lyrebird-cli/lyrebird/internal/compose"
	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
	"github.com/lyrebird-cli/lyrebird/internal/patch"
	"github.com/lyrebird-cli/lyrebird/internal/resolve"
)

// Generator adds screens to a generated project.
type Generator struct {
	projectPath string
	renderer    *generator.Renderer
	catalog     *catalog.Catalog
}

// New creates a screen generator rooted at projectPath.
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

// Result is the outcome of planning one screen.
type Result struct {
	Ops     []generator.Operation
	Patches []patch.Result
}

// Generate plans the screen file and the router patches for name.
// The name may arrive in any casing; it is normalized to snake_case.
func (g *Generator) Generate(cfg config.Config, name string) (*Result, error) {
	sel, err := resolve.Resolve(g.catalog, cfg)
	if err != nil {
		return nil, err
	}

	snake := generator.SnakeCase(name)
	data := catalog.NewTemplateData(cfg).WithScreen(snake)
	relPath := compose.ScreenPath(string(cfg.Architecture), snake)

	file, err := compose.Compose(g.renderer, catalog.FileScreen, relPath, sel.ByTarget()[catalog.FileScreen], data)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Ops: []generator.Operation{
			&generator.WriteFileOp{
				Path:    filepath.Join(g.projectPath, file.Path),
				Content: []byte(file.Content),
				Mode:    0644,
			},
		},
	}

	routerOp, patches, err := g.patchRouter(data, relPath)
	if err != nil {
		return nil, err
	}
	res.Patches = patches
	if routerOp != nil {
		res.Ops = append(res.Ops, routerOp)
	}

	return res, nil
}

// patchRouter splices the screen's import and route into the router file.
// Both patches are planned against in-memory text and land in a single
// write, so a half-patched router can never hit disk.
func (g *Generator) patchRouter(data catalog.TemplateData, screenRelPath string) (generator.Operation, []patch.Result, error) {
	routerRel, _ := compose.TargetPath(catalog.FileRouter)
	routerPath := filepath.Join(g.projectPath, routerRel)

	existing, err := os.ReadFile(routerPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", routerRel, err)
	}

	data.Import = routerImportLine(screenRelPath)

	text := string(existing)
	var patches []patch.Result
	changed := false

	// The route list is the structural anchor. When it is missing the
	// router was rewritten by hand; adding just the import would leave a
	// half-applied patch, so nothing is touched.
	routeAnchor, _ := patch.Builtin(patch.AnchorRouterRoute)
	routeResult, err := patch.Apply(g.renderer, text, routeAnchor, data)
	if err != nil {
		return nil, nil, err
	}
	patches = append(patches, routeResult)
	if routeResult.Reason == patch.AnchorNotFound {
		return nil, patches, nil
	}
	if routeResult.Applied {
		text = routeResult.Text
		changed = true
	}

	importAnchor, _ := patch.Builtin(patch.AnchorRouterImport)
	importResult, err := patch.Apply(g.renderer, text, importAnchor, data)
	if err != nil {
		return nil, nil, err
	}
	patches = append(patches, importResult)
	if importResult.Applied {
		text = importResult.Text
		changed = true
	}

	if !changed {
		return nil, patches, nil
	}
	return &generator.UpdateFileOp{
		Path:    routerPath,
		Content: []byte(text),
		Mode:    0644,
	}, patches, nil
}

// routerImportLine converts a lib-relative screen path into the import the
// router (which lives in lib/app/) needs.
func routerImportLine(screenRelPath string) string {
	rel := strings.TrimPrefix(filepath.ToSlash(screenRelPath), "lib/")
	return fmt.Sprintf("import '../%s';", rel)
}
