// Package config defines the immutable generation configuration: the axis
// values a user picked for a project. A Config is created once per run and
// every downstream decision is a pure function of it.
package config

import "fmt"

// Architecture is the project layout axis.
type Architecture string

const (
	ArchMVC   Architecture = "mvc"
	ArchMVVM  Architecture = "mvvm"
	ArchClean Architecture = "clean"
)

// Architectures lists every legal architecture value.
var Architectures = []Architecture{ArchMVC, ArchMVVM, ArchClean}

// StateManagement is the state-management library axis.
// A Config holds exactly one value, so selecting two simultaneously is
// unrepresentable; validation rejects anything outside the enumeration.
type StateManagement string

const (
	StateProvider StateManagement = "provider"
	StateRiverpod StateManagement = "riverpod"
	StateBloc     StateManagement = "bloc"
)

// StateManagements lists every legal state-management value.
var StateManagements = []StateManagement{StateProvider, StateRiverpod, StateBloc}

// FeatureTag is a project-wide feature toggle.
type FeatureTag string

const (
	FeatureLocalization FeatureTag = "localization"
	FeatureTheming      FeatureTag = "theming"
	FeatureAnalytics    FeatureTag = "analytics"
)

// Features lists every legal feature tag.
var Features = []FeatureTag{FeatureLocalization, FeatureTheming, FeatureAnalytics}

// ModuleTag is an installable feature module.
type ModuleTag string

const (
	ModuleAuth             ModuleTag = "auth"
	ModulePushNotification ModuleTag = "push_notification"
	ModuleLocalStorage     ModuleTag = "local_storage"
)

// Modules lists every legal module tag.
var Modules = []ModuleTag{ModuleAuth, ModulePushNotification, ModuleLocalStorage}

// Config is the immutable generation configuration.
// Features and Modules are ordered: fragment selection follows the declared
// order, never map iteration, so output is byte-identical across runs.
type Config struct {
	ProjectName     string
	Organization    string
	Architecture    Architecture
	StateManagement StateManagement
	Features        []FeatureTag
	Modules         []ModuleTag
}

// InvalidConfigurationError reports an axis value outside its enumeration.
// It is fatal to the whole run; nothing is generated.
type InvalidConfigurationError struct {
	Axis  string
	Value string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %q is not a known value", e.Axis, e.Value)
}

// Validate checks every axis value against its enumeration.
// It returns the first *InvalidConfigurationError found, or nil.
func (c Config) Validate() error {
	if c.ProjectName == "" {
		return &InvalidConfigurationError{Axis: "project name", Value: ""}
	}
	if !validArchitecture(c.Architecture) {
		return &InvalidConfigurationError{Axis: "architecture", Value: string(c.Architecture)}
	}
	if !validStateManagement(c.StateManagement) {
		return &InvalidConfigurationError{Axis: "state management", Value: string(c.StateManagement)}
	}

	seenFeatures := make(map[FeatureTag]bool, len(c.Features))
	for _, f := range c.Features {
		if !validFeature(f) {
			return &InvalidConfigurationError{Axis: "feature", Value: string(f)}
		}
		if seenFeatures[f] {
			return &InvalidConfigurationError{Axis: "feature (duplicate)", Value: string(f)}
		}
		seenFeatures[f] = true
	}

	seenModules := make(map[ModuleTag]bool, len(c.Modules))
	for _, m := range c.Modules {
		if !validModule(m) {
			return &InvalidConfigurationError{Axis: "module", Value: string(m)}
		}
		if seenModules[m] {
			return &InvalidConfigurationError{Axis: "module (duplicate)", Value: string(m)}
		}
		seenModules[m] = true
	}

	return nil
}

// HasFeature reports whether the feature tag is enabled.
func (c Config) HasFeature(f FeatureTag) bool {
	for _, t := range c.Features {
		if t == f {
			return true
		}
	}
	return false
}

// HasModule reports whether the module tag is enabled.
func (c Config) HasModule(m ModuleTag) bool {
	for _, t := range c.Modules {
		if t == m {
			return true
		}
	}
	return false
}

func validArchitecture(a Architecture) bool {
	for _, v := range Architectures {
		if v == a {
			return true
		}
	}
	return false
}

func validStateManagement(s StateManagement) bool {
	for _, v := range StateManagements {
		if v == s {
			return true
		}
	}
	return false
}

func validFeature(f FeatureTag) bool {
	for _, v := range Features {
		if v == f {
			return true
		}
	}
	return false
}

func validModule(m ModuleTag) bool {
	for _, v := range Modules {
		if v == m {
			return true
		}
	}
	return false
}
