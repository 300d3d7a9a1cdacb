package catalog

import (
	"strings"

	"github.com/lyrebird-cli/lyrebird/internal/config"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
)

// TemplateData is the single value every fragment body and anchor template
// renders against. It is derived from the immutable Config plus, for screen
// generation and patching, the screen being produced.
type TemplateData struct {
	ProjectName     string
	Organization    string
	Architecture    string
	StateManagement string
	AppClass        string // "MyShopApp"

	HasLocalization bool
	HasTheming      bool
	HasAnalytics    bool

	// Screen generation / route patching
	Screen      string // "settings"
	ScreenClass string // "SettingsScreen"
	ScreenVar   string // "settings" → "settings" (camelCase)
	ScreenTitle string // "Settings"
	Route       string // "/settings"

	// Manifest patching
	Package string
	Version string

	// Import / init-statement patching
	Import    string
	Statement string
}

// NewTemplateData derives template data from a configuration.
func NewTemplateData(cfg config.Config) TemplateData {
	return TemplateData{
		ProjectName:     cfg.ProjectName,
		Organization:    cfg.Organization,
		Architecture:    string(cfg.Architecture),
		StateManagement: string(cfg.StateManagement),
		AppClass:        generator.PascalCase(cfg.ProjectName) + "App",
		HasLocalization: cfg.HasFeature(config.FeatureLocalization),
		HasTheming:      cfg.HasFeature(config.FeatureTheming),
		HasAnalytics:    cfg.HasFeature(config.FeatureAnalytics),
	}
}

// WithScreen returns a copy of the data populated for one screen.
// The name is expected in snake_case ("order_history").
func (d TemplateData) WithScreen(name string) TemplateData {
	snake := generator.SnakeCase(name)
	d.Screen = snake
	d.ScreenClass = generator.PascalCase(snake) + screenClassSuffix(config.Architecture(d.Architecture))
	d.ScreenVar = generator.CamelCase(snake)
	d.ScreenTitle = generator.Title(strings.ReplaceAll(snake, "_", " "))
	d.Route = "/" + snake
	if snake == "home" {
		d.Route = "/"
	}
	return d
}

// screenClassSuffix follows each architecture's naming convention.
func screenClassSuffix(arch config.Architecture) string {
	if arch == config.ArchMVVM {
		return "View"
	}
	return "Screen"
}
