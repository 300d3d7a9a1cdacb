// Package compose assembles resolved fragments into complete file contents.
// Composition is deterministic: imports first, deduplicated by literal text
// at first occurrence, then statements in a stable sort by order band.
package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lyrebird-cli/lyrebird/internal/catalog"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
)

// AmbiguousSelectionError reports two selected fragments claiming the same
// exclusive slot in one file. Like a duplicate catalog entry, it is a defect
// in the fragment tables, not in user input.
type AmbiguousSelectionError struct {
	Target catalog.FileKind
	Slot   string
	Keys   []string
}

func (e *AmbiguousSelectionError) Error() string {
	return fmt.Sprintf("ambiguous selection: slot %q in %s claimed by %s",
		e.Slot, e.Target, strings.Join(e.Keys, ", "))
}

// EmptyCompositionError reports a target file that resolved to zero
// fragments. The caller decides whether the target was mandatory; the error
// never aborts sibling files.
type EmptyCompositionError struct {
	Target catalog.FileKind
	Path   string
}

func (e *EmptyCompositionError) Error() string {
	return fmt.Sprintf("empty composition: no fragments selected for %s (%s)", e.Target, e.Path)
}

// File is one composed output file.
type File struct {
	Target  catalog.FileKind
	Path    string
	Content string
}

// Compose renders and assembles the fragments for one target file.
//
// Every fragment body is rendered against data first. Import fragments keep
// selection order and collapse by exact rendered text; statement fragments
// are stably sorted by Order, so fragments sharing a band keep selection
// order. Fragments rendering to blank text are dropped, which is how
// conditional template bodies opt out.
func Compose(r *generator.Renderer, target catalog.FileKind, path string, fragments []catalog.Fragment, data catalog.TemplateData) (File, error) {
	if len(fragments) == 0 {
		return File{}, &EmptyCompositionError{Target: target, Path: path}
	}

	type rendered struct {
		frag catalog.Fragment
		text string
	}

	var imports []rendered
	var statements []rendered
	seenImports := make(map[string]bool)
	slots := make(map[string][]string)

	for _, f := range fragments {
		raw, err := r.RenderString(f.ID(), f.Body, data)
		if err != nil {
			return File{}, fmt.Errorf("rendering fragment %s: %w", f.ID(), err)
		}
		text := string(raw)
		if strings.TrimSpace(text) == "" {
			continue
		}

		if f.Slot != "" {
			slots[f.Slot] = append(slots[f.Slot], f.Key)
		}

		switch f.Kind {
		case catalog.KindImport:
			key := strings.TrimSpace(text)
			if seenImports[key] {
				continue
			}
			seenImports[key] = true
			imports = append(imports, rendered{frag: f, text: key})
		default:
			statements = append(statements, rendered{frag: f, text: text})
		}
	}

	for slot, keys := range slots {
		if len(keys) > 1 {
			sort.Strings(keys)
			return File{}, &AmbiguousSelectionError{Target: target, Slot: slot, Keys: keys}
		}
	}

	if len(imports) == 0 && len(statements) == 0 {
		return File{}, &EmptyCompositionError{Target: target, Path: path}
	}

	sort.SliceStable(statements, func(i, j int) bool {
		return statements[i].frag.Order < statements[j].frag.Order
	})

	var b strings.Builder
	for _, imp := range imports {
		b.WriteString(imp.text)
		b.WriteByte('\n')
	}
	if len(imports) > 0 && len(statements) > 0 {
		b.WriteByte('\n')
	}
	// Statements are emitted back to back; fragments that want a blank
	// line above themselves carry it in their body.
	for _, st := range statements {
		b.WriteString(st.text)
		b.WriteByte('\n')
	}

	return File{Target: target, Path: path, Content: b.String()}, nil
}

// TargetPath maps a file kind to its path inside the project. Screen paths
// depend on the architecture and the screen name, so they go through
// ScreenPath instead.
func TargetPath(target catalog.FileKind) (string, bool) {
	switch target {
	case catalog.FileEntrypoint:
		return "lib/main.dart", true
	case catalog.FileManifest:
		return "pubspec.yaml", true
	case catalog.FileRouter:
		return "lib/app/app_router.dart", true
	case catalog.FileObservability:
		return "lib/core/observability.dart", true
	default:
		return "", false
	}
}

// ScreenPath returns the screen file path for an architecture.
// The name is expected in snake_case.
func ScreenPath(architecture, name string) string {
	switch architecture {
	case "mvvm":
		return fmt.Sprintf("lib/views/%s_view.dart", name)
	case "clean":
		return fmt.Sprintf("lib/features/%s/presentation/%s_screen.dart", name, name)
	default:
		return fmt.Sprintf("lib/screens/%s_screen.dart", name)
	}
}

// MandatoryTargets are the files every generated project must contain.
// An empty composition for one of these is reported but does not stop
// the remaining files from being produced.
var MandatoryTargets = []catalog.FileKind{
	catalog.FileEntrypoint,
	catalog.FileManifest,
	catalog.FileRouter,
}
