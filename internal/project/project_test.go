package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-cli/lyrebird/internal/config"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Config{
		ProjectName:     "my_shop",
		Organization:    "com.example",
		Architecture:    config.ArchClean,
		StateManagement: config.StateBloc,
		Features:        []config.FeatureTag{config.FeatureTheming},
		Modules:         []config.ModuleTag{config.ModuleAuth, config.ModuleLocalStorage},
	}

	m := FromConfig(cfg)
	require.NoError(t, m.Save(dir))
	assert.True(t, Detect(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)

	roundtripped, err := loaded.Config()
	require.NoError(t, err)
	assert.Equal(t, cfg, roundtripped)
}

func TestLoad_NotAProject(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, Detect(dir))
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lyrebird.yml not found")
}

func TestLoad_HandWrittenManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `project:
  name: my_shop
  architecture: mvvm
  state_management: riverpod
  features:
    - localization
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(manifest), 0644))

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "my_shop", m.Project.Name)
	assert.Equal(t, "mvvm", m.Project.Architecture)
	assert.Equal(t, []string{"localization"}, m.Project.Features)

	cfg, err := m.Config()
	require.NoError(t, err)
	assert.Equal(t, config.ArchMVVM, cfg.Architecture)
}

func TestLoad_InvalidAxisValueSurfacesInConfig(t *testing.T) {
	dir := t.TempDir()
	manifest := `project:
  name: my_shop
  architecture: hexagonal
  state_management: provider
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(manifest), 0644))

	m, err := Load(dir)
	require.NoError(t, err)

	_, err = m.Config()
	var invalid *config.InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "architecture", invalid.Axis)
}

func TestLoad_MissingName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("project:\n  architecture: mvc\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project name not specified")
}

func TestAddModule(t *testing.T) {
	var m Manifest
	assert.True(t, m.AddModule("auth"))
	assert.False(t, m.AddModule("auth"), "second add must be a no-op")
	assert.Equal(t, []string{"auth"}, m.Project.Modules)
}
