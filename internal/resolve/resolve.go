// Package resolve turns a validated configuration into the ordered set of
// fragments that will be composed into files. Resolution is a pure function
// of (catalog, config): same inputs, same selection, byte for byte.
package resolve

import (
	"github.com/lyrebird-cli/lyrebird/internal/catalog"
	"github.com/lyrebird-cli/lyrebird/internal/config"
)

// Selection is the resolved fragment set for one run, in selection order.
type Selection struct {
	Fragments []catalog.Fragment

	// RuleNames records which cross-axis rules fired, for verbose output.
	RuleNames []string
}

// ByTarget groups the selection per target file, preserving selection order
// within each group.
func (s Selection) ByTarget() map[catalog.FileKind][]catalog.Fragment {
	grouped := make(map[catalog.FileKind][]catalog.Fragment)
	for _, f := range s.Fragments {
		grouped[f.Target] = append(grouped[f.Target], f)
	}
	return grouped
}

// Resolve selects every fragment activated by cfg.
//
// Cross-axis rules run first: each matching rule contributes its Add
// fragments ahead of the generic selection and withholds its Suppress refs
// from it. The generic pass then walks the axes in a fixed order (core,
// architecture, state management, features, modules) and within the feature
// and module axes follows the order the configuration declares. A fragment
// selected twice is kept at its first position only.
func Resolve(cat *catalog.Catalog, cfg config.Config) (Selection, error) {
	if err := cfg.Validate(); err != nil {
		return Selection{}, err
	}

	var sel Selection
	seen := make(map[string]bool)
	suppressed := make(map[string]bool)

	take := func(f catalog.Fragment) {
		id := f.ID()
		if seen[id] || suppressed[id] {
			return
		}
		seen[id] = true
		sel.Fragments = append(sel.Fragments, f)
	}

	for _, rule := range cat.Rules() {
		if !rule.Matches(cfg) {
			continue
		}
		sel.RuleNames = append(sel.RuleNames, rule.Name)
		for _, ref := range rule.Suppress {
			suppressed[catalog.Fragment{Axis: ref.Axis, Key: ref.Key, Target: ref.Target}.ID()] = true
		}
		for _, f := range rule.Add {
			take(f)
		}
	}

	takeAxis := func(axis catalog.Axis, value string) {
		for _, f := range cat.Fragments() {
			if f.Axis == axis && f.When == value {
				take(f)
			}
		}
	}

	takeAxis(catalog.AxisCore, "base")
	takeAxis(catalog.AxisArchitecture, string(cfg.Architecture))
	takeAxis(catalog.AxisState, string(cfg.StateManagement))
	for _, f := range cfg.Features {
		takeAxis(catalog.AxisFeature, string(f))
	}
	for _, m := range cfg.Modules {
		takeAxis(catalog.AxisModule, string(m))
	}

	return sel, nil
}
