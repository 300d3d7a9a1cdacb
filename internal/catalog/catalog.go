package catalog

import (
	"fmt"

	"github.com/lyrebird-cli/lyrebird/internal/config"
)

// Axis identifies a configuration dimension a fragment is keyed on.
type Axis string

const (
	// AxisCore fragments are selected for every configuration.
	AxisCore         Axis = "core"
	AxisArchitecture Axis = "architecture"
	AxisState        Axis = "state"
	AxisFeature      Axis = "feature"
	AxisModule       Axis = "module"
)

// FileKind identifies a generated target file.
type FileKind string

const (
	FileEntrypoint    FileKind = "entrypoint"    // lib/main.dart
	FileManifest      FileKind = "manifest"      // pubspec.yaml
	FileRouter        FileKind = "router"        // lib/app/app_router.dart
	FileObservability FileKind = "observability" // lib/core/observability.dart
	FileScreen        FileKind = "screen"        // per-screen Dart file
)

// Kind distinguishes import lines from statement-bearing fragments.
// Imports are deduplicated by literal text and emitted first; statements
// are ordered by their Order field.
type Kind int

const (
	KindImport Kind = iota
	KindStatement
)

// Fragment is a reusable chunk of generated text tied to one axis value
// and one target file. Body is a text/template source rendered against the
// run's template data before composition.
//
// Key is unique within (Axis, Target); When is the axis value that
// activates the fragment. Several fragments may share a When (an axis value
// usually contributes an import and a statement to the same file).
type Fragment struct {
	Axis   Axis
	Key    string
	When   string
	Target FileKind
	Kind   Kind
	Slot   string // exclusive-slot name; empty for non-exclusive fragments
	Order  int
	Body   string
}

// ID returns the fragment's catalog identity.
func (f Fragment) ID() string {
	return fmt.Sprintf("%s/%s/%s", f.Axis, f.Key, f.Target)
}

// FragmentRef names a fragment for suppression rules.
type FragmentRef struct {
	Axis   Axis
	Key    string
	Target FileKind
}

// Rule is a cross-axis exception: when every non-zero field matches the
// configuration, its Add fragments are selected ahead of the generic
// per-axis fragments and its Suppress refs are withheld from them.
type Rule struct {
	Name            string
	Architecture    config.Architecture
	StateManagement config.StateManagement
	Feature         config.FeatureTag
	Module          config.ModuleTag
	Add             []Fragment
	Suppress        []FragmentRef
}

// Matches reports whether the rule's predicate holds for cfg.
// Zero-valued fields match any configuration.
func (r Rule) Matches(cfg config.Config) bool {
	if r.Architecture != "" && cfg.Architecture != r.Architecture {
		return false
	}
	if r.StateManagement != "" && cfg.StateManagement != r.StateManagement {
		return false
	}
	if r.Feature != "" && !cfg.HasFeature(r.Feature) {
		return false
	}
	if r.Module != "" && !cfg.HasModule(r.Module) {
		return false
	}
	return true
}

// DuplicateFragmentError reports two catalog entries sharing the same
// (axis, key, targetFile) identity. It is a defect in the catalog itself,
// caught once at load time rather than surfacing as wrong output later.
type DuplicateFragmentError struct {
	Axis   Axis
	Key    string
	Target FileKind
}

func (e *DuplicateFragmentError) Error() string {
	return fmt.Sprintf("duplicate fragment: axis=%s key=%s target=%s", e.Axis, e.Key, e.Target)
}

// Catalog is the process-wide static fragment and rule table.
// Loaded once, never mutated.
type Catalog struct {
	fragments []Fragment
	rules     []Rule
	index     map[string]int // fragment ID → position in fragments
}

// Load builds the built-in catalog and validates its invariants.
// Returns *DuplicateFragmentError if two fragments share an identity.
func Load() (*Catalog, error) {
	return New(builtinFragments(), builtinRules())
}

// New builds a catalog from explicit tables (exposed for tests).
func New(fragments []Fragment, rules []Rule) (*Catalog, error) {
	index := make(map[string]int, len(fragments))
	for i, f := range fragments {
		id := f.ID()
		if _, ok := index[id]; ok {
			return nil, &DuplicateFragmentError{Axis: f.Axis, Key: f.Key, Target: f.Target}
		}
		index[id] = i
	}

	return &Catalog{
		fragments: fragments,
		rules:     rules,
		index:     index,
	}, nil
}

// Lookup retrieves the unique fragment for (axis, key, target).
func (c *Catalog) Lookup(axis Axis, key string, target FileKind) (Fragment, bool) {
	i, ok := c.index[Fragment{Axis: axis, Key: key, Target: target}.ID()]
	if !ok {
		return Fragment{}, false
	}
	return c.fragments[i], true
}

// Fragments returns the catalog's fragments in declaration order.
func (c *Catalog) Fragments() []Fragment {
	return c.fragments
}

// Rules returns the catalog's cross-axis rules in declaration order.
func (c *Catalog) Rules() []Rule {
	return c.rules
}
