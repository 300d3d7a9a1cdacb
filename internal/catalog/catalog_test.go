package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Fragments())
	assert.NotEmpty(t, cat.Rules())
}

func TestNew_RejectsDuplicateIdentity(t *testing.T) {
	fragments := []Fragment{
		{Axis: AxisCore, Key: "header", When: "base", Target: FileManifest, Body: "a"},
		{Axis: AxisCore, Key: "header", When: "base", Target: FileManifest, Body: "b"},
	}

	_, err := New(fragments, nil)
	require.Error(t, err)

	var dup *DuplicateFragmentError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, AxisCore, dup.Axis)
	assert.Equal(t, "header", dup.Key)
	assert.Equal(t, FileManifest, dup.Target)
}

func TestNew_SameKeyDifferentTargets(t *testing.T) {
	// The identity is (axis, key, target); the same key on two targets
	// is two distinct fragments.
	fragments := []Fragment{
		{Axis: AxisCore, Key: "header", When: "base", Target: FileManifest, Body: "a"},
		{Axis: AxisCore, Key: "header", When: "base", Target: FileEntrypoint, Body: "b"},
	}

	cat, err := New(fragments, nil)
	require.NoError(t, err)

	f, ok := cat.Lookup(AxisCore, "header", FileEntrypoint)
	require.True(t, ok)
	assert.Equal(t, "b", f.Body)
}

func TestLookup_Miss(t *testing.T) {
	cat, err := New(nil, nil)
	require.NoError(t, err)

	_, ok := cat.Lookup(AxisCore, "nope", FileManifest)
	assert.False(t, ok)
}

func TestBuiltinFragments_ExclusiveLaunchBlocks(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	// Every state-management value contributes exactly one fragment to
	// the entrypoint's launch slot.
	perState := make(map[string]int)
	for _, f := range cat.Fragments() {
		if f.Target == FileEntrypoint && f.Slot == "app_root" {
			perState[f.When]++
		}
	}
	for _, state := range config.StateManagements {
		assert.Equal(t, 1, perState[string(state)], "state %s", state)
	}
}

func TestRuleMatches(t *testing.T) {
	rule := Rule{
		StateManagement: config.StateRiverpod,
		Module:          config.ModuleAuth,
	}

	matching := config.Config{
		ProjectName:     "app",
		Architecture:    config.ArchMVC,
		StateManagement: config.StateRiverpod,
		Modules:         []config.ModuleTag{config.ModuleAuth},
	}
	assert.True(t, rule.Matches(matching))

	wrongState := matching
	wrongState.StateManagement = config.StateBloc
	assert.False(t, rule.Matches(wrongState))

	noModule := matching
	noModule.Modules = nil
	assert.False(t, rule.Matches(noModule))

	// Zero-valued predicate fields match anything
	assert.True(t, Rule{}.Matches(matching))
}

func TestRegistryLines(t *testing.T) {
	dep, err := DependencyLine("provider")
	require.NoError(t, err)
	assert.Equal(t, "  provider: ^6.1.2", dep)

	imp, err := ImportLine("go_router")
	require.NoError(t, err)
	assert.Equal(t, "import 'package:go_router/go_router.dart';", imp)

	_, err = DependencyLine("left_pad")
	assert.Error(t, err)

	// flutter_lints is dev-only and never imported
	_, err = ImportLine("flutter_lints")
	assert.Error(t, err)
}

func TestCollectImports(t *testing.T) {
	imports := CollectImports([]string{"provider", "go_router", "provider", "flutter_lints", "unknown"})
	assert.Equal(t, []string{
		"import 'package:go_router/go_router.dart';",
		"import 'package:provider/provider.dart';",
	}, imports)
}

func TestNewTemplateData(t *testing.T) {
	cfg := config.Config{
		ProjectName:     "my_shop",
		Organization:    "com.example",
		Architecture:    config.ArchMVVM,
		StateManagement: config.StateRiverpod,
		Features:        []config.FeatureTag{config.FeatureTheming},
	}

	data := NewTemplateData(cfg)
	assert.Equal(t, "MyShopApp", data.AppClass)
	assert.Equal(t, "mvvm", data.Architecture)
	assert.True(t, data.HasTheming)
	assert.False(t, data.HasLocalization)
}

func TestWithScreen(t *testing.T) {
	cfg := config.Config{
		ProjectName:     "my_shop",
		Architecture:    config.ArchMVC,
		StateManagement: config.StateProvider,
	}
	data := NewTemplateData(cfg).WithScreen("order_history")

	assert.Equal(t, "order_history", data.Screen)
	assert.Equal(t, "OrderHistoryScreen", data.ScreenClass)
	assert.Equal(t, "orderHistory", data.ScreenVar)
	assert.Equal(t, "Order History", data.ScreenTitle)
	assert.Equal(t, "/order_history", data.Route)
}

func TestWithScreen_MVVMSuffixAndHomeRoute(t *testing.T) {
	cfg := config.Config{
		ProjectName:     "my_shop",
		Architecture:    config.ArchMVVM,
		StateManagement: config.StateRiverpod,
	}
	data := NewTemplateData(cfg).WithScreen("home")

	assert.Equal(t, "HomeView", data.ScreenClass)
	assert.Equal(t, "/", data.Route)
}

func TestBuiltinBodiesRenderable(t *testing.T) {
	// Every builtin body must be valid template syntax; a typo in the
	// tables should fail here, not at generation time.
	cat, err := Load()
	require.NoError(t, err)

	r := generator.NewRenderer()
	data := NewTemplateData(config.Config{
		ProjectName:     "my_shop",
		Architecture:    config.ArchMVC,
		StateManagement: config.StateProvider,
	}).WithScreen("home")

	for _, f := range cat.Fragments() {
		require.NotEmpty(t, strings.TrimSpace(f.Body), "fragment %s has empty body", f.ID())
		_, err := r.RenderString(f.ID(), f.Body, data)
		assert.NoError(t, err, "fragment %s does not render", f.ID())
	}
	for _, rule := range cat.Rules() {
		for _, f := range rule.Add {
			_, err := r.RenderString(rule.Name+"/"+f.ID(), f.Body, data)
			assert.NoError(t, err, "rule %s fragment %s does not render", rule.Name, f.ID())
		}
	}
}
