package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-cli/lyrebird/internal/catalog"
	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
	"github.com/lyrebird-cli/lyrebird/internal/resolve"
)

func testData() catalog.TemplateData {
	return catalog.NewTemplateData(config.Config{
		ProjectName:     "my_shop",
		Architecture:    config.ArchMVC,
		StateManagement: config.StateProvider,
	})
}

func TestCompose_ImportsFirstAndDeduplicated(t *testing.T) {
	r := generator.NewRenderer()
	fragments := []catalog.Fragment{
		{Axis: catalog.AxisCore, Key: "imp_a", When: "base", Target: catalog.FileEntrypoint,
			Kind: catalog.KindImport, Body: "import 'package:flutter/material.dart';"},
		{Axis: catalog.AxisCore, Key: "stmt", When: "base", Target: catalog.FileEntrypoint,
			Kind: catalog.KindStatement, Order: 10, Body: "void main() {}"},
		// Same literal import contributed twice
		{Axis: catalog.AxisState, Key: "imp_b", When: "provider", Target: catalog.FileEntrypoint,
			Kind: catalog.KindImport, Body: "import 'package:flutter/material.dart';"},
		{Axis: catalog.AxisState, Key: "imp_c", When: "provider", Target: catalog.FileEntrypoint,
			Kind: catalog.KindImport, Body: "import 'package:provider/provider.dart';"},
	}

	file, err := Compose(r, catalog.FileEntrypoint, "lib/main.dart", fragments, testData())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(file.Content, "import 'package:flutter/material.dart';"),
		"duplicate import survived")

	// Imports precede statements; the duplicate keeps its first position
	lines := strings.Split(file.Content, "\n")
	assert.Equal(t, "import 'package:flutter/material.dart';", lines[0])
	assert.Equal(t, "import 'package:provider/provider.dart';", lines[1])
	assert.Contains(t, file.Content, "void main() {}")
	assert.Less(t,
		strings.Index(file.Content, "import 'package:provider"),
		strings.Index(file.Content, "void main()"))
}

func TestCompose_StatementsSortedByOrderStably(t *testing.T) {
	r := generator.NewRenderer()
	fragments := []catalog.Fragment{
		{Axis: catalog.AxisCore, Key: "close", When: "base", Target: catalog.FileManifest,
			Kind: catalog.KindStatement, Order: 90, Body: "flutter:"},
		{Axis: catalog.AxisCore, Key: "first_21", When: "base", Target: catalog.FileManifest,
			Kind: catalog.KindStatement, Order: 21, Body: "  aaa: ^1.0.0"},
		{Axis: catalog.AxisCore, Key: "second_21", When: "base", Target: catalog.FileManifest,
			Kind: catalog.KindStatement, Order: 21, Body: "  bbb: ^1.0.0"},
		{Axis: catalog.AxisCore, Key: "open", When: "base", Target: catalog.FileManifest,
			Kind: catalog.KindStatement, Order: 10, Body: "dependencies:"},
	}

	file, err := Compose(r, catalog.FileManifest, "pubspec.yaml", fragments, testData())
	require.NoError(t, err)

	depIdx := strings.Index(file.Content, "dependencies:")
	aIdx := strings.Index(file.Content, "aaa:")
	bIdx := strings.Index(file.Content, "bbb:")
	closeIdx := strings.Index(file.Content, "flutter:")

	assert.Less(t, depIdx, aIdx)
	// Equal order keeps selection order
	assert.Less(t, aIdx, bIdx)
	assert.Less(t, bIdx, closeIdx)
}

func TestCompose_EmptySelection(t *testing.T) {
	r := generator.NewRenderer()

	_, err := Compose(r, catalog.FileRouter, "lib/app/app_router.dart", nil, testData())
	var empty *EmptyCompositionError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, catalog.FileRouter, empty.Target)
}

func TestCompose_BlankRenderedBodiesDropped(t *testing.T) {
	r := generator.NewRenderer()
	fragments := []catalog.Fragment{
		{Axis: catalog.AxisCore, Key: "conditional", When: "base", Target: catalog.FileEntrypoint,
			Kind: catalog.KindStatement, Order: 10,
			Body: "{{ if .HasTheming }}theme: buildAppTheme(),{{ end }}"},
	}

	// HasTheming is false, so the only fragment renders blank and the
	// composition is empty.
	_, err := Compose(r, catalog.FileEntrypoint, "lib/main.dart", fragments, testData())
	var empty *EmptyCompositionError
	require.ErrorAs(t, err, &empty)
}

func TestCompose_AmbiguousExclusiveSlot(t *testing.T) {
	r := generator.NewRenderer()
	fragments := []catalog.Fragment{
		{Axis: catalog.AxisState, Key: "run_a", When: "provider", Target: catalog.FileEntrypoint,
			Kind: catalog.KindStatement, Slot: "app_root", Order: 50, Body: "runApp(A());"},
		{Axis: catalog.AxisState, Key: "run_b", When: "provider", Target: catalog.FileEntrypoint,
			Kind: catalog.KindStatement, Slot: "app_root", Order: 50, Body: "runApp(B());"},
	}

	_, err := Compose(r, catalog.FileEntrypoint, "lib/main.dart", fragments, testData())
	var ambiguous *AmbiguousSelectionError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "app_root", ambiguous.Slot)
	assert.Equal(t, []string{"run_a", "run_b"}, ambiguous.Keys)
}

func TestCompose_FullEntrypointDeterministic(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	r := generator.NewRenderer()

	cfg := config.Config{
		ProjectName:     "my_shop",
		Architecture:    config.ArchClean,
		StateManagement: config.StateBloc,
		Features:        []config.FeatureTag{config.FeatureLocalization, config.FeatureTheming},
		Modules:         []config.ModuleTag{config.ModulePushNotification},
	}

	render := func() string {
		sel, err := resolve.Resolve(cat, cfg)
		require.NoError(t, err)
		file, err := Compose(r, catalog.FileEntrypoint, "lib/main.dart",
			sel.ByTarget()[catalog.FileEntrypoint], catalog.NewTemplateData(cfg))
		require.NoError(t, err)
		return file.Content
	}

	first := render()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, render(), "composition differs between runs")
	}

	// Initialization precedes the launch block, the launch block precedes
	// supporting declarations.
	assert.Less(t,
		strings.Index(first, "EasyLocalization.ensureInitialized"),
		strings.Index(first, "runApp("))
	assert.Less(t,
		strings.Index(first, "Firebase.initializeApp"),
		strings.Index(first, "runApp("))
	assert.Contains(t, first, "BlocProvider")
	assert.Contains(t, first, "buildAppTheme")
}

func TestTargetPath(t *testing.T) {
	path, ok := TargetPath(catalog.FileEntrypoint)
	require.True(t, ok)
	assert.Equal(t, "lib/main.dart", path)

	path, ok = TargetPath(catalog.FileManifest)
	require.True(t, ok)
	assert.Equal(t, "pubspec.yaml", path)

	_, ok = TargetPath(catalog.FileScreen)
	assert.False(t, ok, "screen paths depend on architecture")
}

func TestScreenPath(t *testing.T) {
	assert.Equal(t, "lib/screens/settings_screen.dart", ScreenPath("mvc", "settings"))
	assert.Equal(t, "lib/views/settings_view.dart", ScreenPath("mvvm", "settings"))
	assert.Equal(t, "lib/features/settings/presentation/settings_screen.dart", ScreenPath("clean", "settings"))
}
