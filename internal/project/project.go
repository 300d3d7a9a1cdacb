// Package project reads and writes lyrebird.yml, the per-project record of
// the configuration a project was generated with. Commands that modify an
// existing project (screen, module) load it instead of asking the user to
// restate every axis.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lyrebird-cli/lyrebird/internal/config"
)

// FileName is the project marker file at the project root.
const FileName = "lyrebird.yml"

// Manifest mirrors lyrebird.yml.
type Manifest struct {
	Project struct {
		Name            string   `yaml:"name" mapstructure:"name"`
		Organization    string   `yaml:"organization,omitempty" mapstructure:"organization"`
		Architecture    string   `yaml:"architecture" mapstructure:"architecture"`
		StateManagement string   `yaml:"state_management" mapstructure:"state_management"`
		Features        []string `yaml:"features,omitempty" mapstructure:"features"`
		Modules         []string `yaml:"modules,omitempty" mapstructure:"modules"`
	} `yaml:"project" mapstructure:"project"`
}

// Detect reports whether dir is a lyrebird project.
func Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// Load reads lyrebird.yml from dir. Axis values can be overridden through
// LYREBIRD_PROJECT_* environment variables.
func Load(dir string) (*Manifest, error) {
	if !Detect(dir) {
		return nil, fmt.Errorf("%s not found. Are you in a lyrebird project directory?", FileName)
	}

	v := viper.New()
	v.SetConfigName("lyrebird")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.AutomaticEnv()
	v.SetEnvPrefix("LYREBIRD")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if m.Project.Name == "" {
		return nil, fmt.Errorf("project name not specified in %s", FileName)
	}
	if m.Project.Architecture == "" {
		return nil, fmt.Errorf("architecture not specified in %s", FileName)
	}

	return &m, nil
}

// Save writes the manifest to dir/lyrebird.yml.
func (m *Manifest) Save(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}

// Config converts the manifest into a generation configuration.
// The result is validated so a hand-edited manifest fails here, with a
// clear message, rather than deep inside generation.
func (m *Manifest) Config() (config.Config, error) {
	cfg := config.Config{
		ProjectName:     m.Project.Name,
		Organization:    m.Project.Organization,
		Architecture:    config.Architecture(m.Project.Architecture),
		StateManagement: config.StateManagement(m.Project.StateManagement),
	}
	for _, f := range m.Project.Features {
		cfg.Features = append(cfg.Features, config.FeatureTag(f))
	}
	for _, mod := range m.Project.Modules {
		cfg.Modules = append(cfg.Modules, config.ModuleTag(mod))
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// FromConfig builds a manifest from a validated configuration.
func FromConfig(cfg config.Config) *Manifest {
	var m Manifest
	m.Project.Name = cfg.ProjectName
	m.Project.Organization = cfg.Organization
	m.Project.Architecture = string(cfg.Architecture)
	m.Project.StateManagement = string(cfg.StateManagement)
	for _, f := range cfg.Features {
		m.Project.Features = append(m.Project.Features, string(f))
	}
	for _, mod := range cfg.Modules {
		m.Project.Modules = append(m.Project.Modules, string(mod))
	}
	return &m
}

// AddModule appends a module tag if absent, reporting whether it was added.
func (m *Manifest) AddModule(tag string) bool {
	for _, existing := range m.Project.Modules {
		if existing == tag {
			return false
		}
	}
	m.Project.Modules = append(m.Project.Modules, tag)
	return true
}
