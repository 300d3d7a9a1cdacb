// Package module installs feature modules into an existing project.
// Installation is patch-based: pub dependencies are spliced into the
// manifest, imports and initialization statements into the entrypoint, and
// the module's screen (if it has one) is generated. Every patch is
// idempotent, so installing a module twice is safe and reports what was
// already present.
package module

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lyrebird-cli/lyrebird/internal/catalog"
	"github.com/lyrebird-cli/lyrebird/internal/compose"
	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
	"github.com/lyrebird-cli/lyrebird/internal/generators/screen"
	"github.com/lyrebird-cli/lyrebird/internal/patch"
	"github.com/lyrebird-cli/lyrebird/internal/project"
)

// spec describes what one module contributes on installation.
type spec struct {
	packages []string // pub dependencies for the manifest
	imports  []string // pub packages imported in the entrypoint
	inits    []string // statements inserted before runApp, indented
	screen   string   // screen generated for the module, "" for none
}

var specs = map[config.ModuleTag]spec{
	config.ModuleAuth: {
		packages: []string{"dio"},
		screen:   "login",
	},
	config.ModulePushNotification: {
		packages: []string{"firebase_core", "firebase_messaging"},
		imports:  []string{"firebase_core"},
		inits:    []string{"  await Firebase.initializeApp();"},
	},
	config.ModuleLocalStorage: {
		packages: []string{"shared_preferences"},
	},
}

// Installer installs modules into the project at projectPath.
type Installer struct {
	projectPath string
	renderer    *generator.Renderer
}

// NewInstaller creates a module installer.
func NewInstaller(projectPath string) *Installer {
	return &Installer{
		projectPath: projectPath,
		renderer:    generator.NewRenderer(),
	}
}

// Result is the outcome of planning one module installation.
type Result struct {
	Ops     []generator.Operation
	Patches []patch.Result

	// ManifestUpdated is false when lyrebird.yml already listed the module.
	ManifestUpdated bool
}

// Install plans the installation of tag into the project described by m.
// cfg must be m's configuration; the returned operations include the
// lyrebird.yml update so the install lands atomically through the executor.
func (i *Installer) Install(cfg config.Config, m *project.Manifest, tag config.ModuleTag) (*Result, error) {
	s, ok := specs[tag]
	if !ok {
		return nil, &config.InvalidConfigurationError{Axis: "module", Value: string(tag)}
	}

	res := &Result{}
	data := catalog.NewTemplateData(cfg)

	// Manifest dependencies
	packages := s.packages
	if tag == config.ModulePushNotification && cfg.Architecture == config.ArchClean {
		// Clean architecture resolves the messaging handler through a
		// service locator: dependency plus entrypoint import.
		packages = append(append([]string{}, packages...), "get_it")
		s.imports = append(append([]string{}, s.imports...), "get_it")
	}
	manifestOp, patches, err := i.patchManifest(data, packages)
	if err != nil {
		return nil, err
	}
	res.Patches = append(res.Patches, patches...)
	if manifestOp != nil {
		res.Ops = append(res.Ops, manifestOp)
	}

	// Entrypoint imports and initialization
	entryOp, patches, err := i.patchEntrypoint(data, s)
	if err != nil {
		return nil, err
	}
	res.Patches = append(res.Patches, patches...)
	if entryOp != nil {
		res.Ops = append(res.Ops, entryOp)
	}

	// Module screen. The screen file belongs to the user once it exists;
	// reinstalling must never regenerate over their edits, so the write is
	// converted to create-if-missing. Router patches stay as they are, the
	// guard already makes them no-ops on a second install.
	if s.screen != "" {
		screenGen, err := screen.New(i.projectPath)
		if err != nil {
			return nil, err
		}
		screenRes, err := screenGen.Generate(cfg, s.screen)
		if err != nil {
			return nil, err
		}
		for _, op := range screenRes.Ops {
			if w, ok := op.(*generator.WriteFileOp); ok {
				op = &generator.WriteFileIfNotExistsOp{Path: w.Path, Content: w.Content, Mode: w.Mode}
			}
			res.Ops = append(res.Ops, op)
		}
		res.Patches = append(res.Patches, screenRes.Patches...)
	}

	// Project manifest
	if m.AddModule(string(tag)) {
		res.ManifestUpdated = true
		op, err := manifestWriteOp(i.projectPath, m)
		if err != nil {
			return nil, err
		}
		res.Ops = append(res.Ops, op)
	}

	return res, nil
}

func (i *Installer) patchManifest(data catalog.TemplateData, packages []string) (generator.Operation, []patch.Result, error) {
	relPath, _ := compose.TargetPath(catalog.FileManifest)
	path := filepath.Join(i.projectPath, relPath)

	existing, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", relPath, err)
	}

	anchor, _ := patch.Builtin(patch.AnchorManifestDep)
	text := string(existing)
	var patches []patch.Result
	changed := false
	for _, pkg := range packages {
		info, ok := catalog.LookupPackage(pkg)
		if !ok {
			return nil, nil, fmt.Errorf("unknown pub package: %s", pkg)
		}
		data.Package = pkg
		data.Version = info.Version

		result, err := patch.Apply(i.renderer, text, anchor, data)
		if err != nil {
			return nil, nil, err
		}
		patches = append(patches, result)
		if result.Applied {
			text = result.Text
			changed = true
		}
	}

	if !changed {
		return nil, patches, nil
	}
	return &generator.UpdateFileOp{Path: path, Content: []byte(text), Mode: 0644}, patches, nil
}

func (i *Installer) patchEntrypoint(data catalog.TemplateData, s spec) (generator.Operation, []patch.Result, error) {
	if len(s.imports) == 0 && len(s.inits) == 0 {
		return nil, nil, nil
	}

	relPath, _ := compose.TargetPath(catalog.FileEntrypoint)
	path := filepath.Join(i.projectPath, relPath)

	existing, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", relPath, err)
	}

	text := string(existing)
	var patches []patch.Result
	changed := false

	importAnchor, _ := patch.Builtin(patch.AnchorEntrypointImport)
	for _, pkg := range s.imports {
		line, err := catalog.ImportLine(pkg)
		if err != nil {
			return nil, nil, err
		}
		data.Import = line

		result, err := patch.Apply(i.renderer, text, importAnchor, data)
		if err != nil {
			return nil, nil, err
		}
		patches = append(patches, result)
		if result.Applied {
			text = result.Text
			changed = true
		}
	}

	initAnchor, _ := patch.Builtin(patch.AnchorEntrypointInit)
	for _, stmt := range s.inits {
		data.Statement = stmt

		result, err := patch.Apply(i.renderer, text, initAnchor, data)
		if err != nil {
			return nil, nil, err
		}
		patches = append(patches, result)
		if result.Applied {
			text = result.Text
			changed = true
		}
	}

	if !changed {
		return nil, patches, nil
	}
	return &generator.UpdateFileOp{Path: path, Content: []byte(text), Mode: 0644}, patches, nil
}

func manifestWriteOp(projectPath string, m *project.Manifest) (generator.Operation, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", project.FileName, err)
	}
	return &generator.UpdateFileOp{
		Path:    filepath.Join(projectPath, project.FileName),
		Content: data,
		Mode:    0644,
	}, nil
}
