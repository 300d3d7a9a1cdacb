package catalog

import (
	"fmt"
	"sort"
)

// PackageInfo contains metadata about a pub.dev package the generator
// can wire into a project.
type PackageInfo struct {
	Version string // "^6.1.2"
	Import  string // "package:provider/provider.dart", "" if never imported
	Dev     bool   // belongs under dev_dependencies
}

// Registry contains all pub packages the catalog may reference.
var Registry = map[string]PackageInfo{
	// Routing (every generated project gets a router)
	"go_router": {
		Version: "^14.2.0",
		Import:  "package:go_router/go_router.dart",
	},

	// State management
	"provider": {
		Version: "^6.1.2",
		Import:  "package:provider/provider.dart",
	},
	"flutter_riverpod": {
		Version: "^2.5.1",
		Import:  "package:flutter_riverpod/flutter_riverpod.dart",
	},
	"flutter_bloc": {
		Version: "^8.1.6",
		Import:  "package:flutter_bloc/flutter_bloc.dart",
	},
	"equatable": {
		Version: "^2.0.5",
		Import:  "package:equatable/equatable.dart",
	},

	// Features
	"easy_localization": {
		Version: "^3.0.7",
		Import:  "package:easy_localization/easy_localization.dart",
	},
	"google_fonts": {
		Version: "^6.2.1",
		Import:  "package:google_fonts/google_fonts.dart",
	},
	"firebase_analytics": {
		Version: "^11.2.1",
		Import:  "package:firebase_analytics/firebase_analytics.dart",
	},

	// Modules
	"dio": {
		Version: "^5.5.0",
		Import:  "package:dio/dio.dart",
	},
	"firebase_core": {
		Version: "^3.3.0",
		Import:  "package:firebase_core/firebase_core.dart",
	},
	"firebase_messaging": {
		Version: "^15.0.4",
		Import:  "package:firebase_messaging/firebase_messaging.dart",
	},
	"shared_preferences": {
		Version: "^2.3.1",
		Import:  "package:shared_preferences/shared_preferences.dart",
	},
	"get_it": {
		Version: "^7.7.0",
		Import:  "package:get_it/get_it.dart",
	},

	// Tooling
	"flutter_lints": {
		Version: "^4.0.0",
		Dev:     true,
	},
}

// LookupPackage retrieves package info by pub name.
func LookupPackage(name string) (PackageInfo, bool) {
	info, ok := Registry[name]
	return info, ok
}

// DependencyLine returns the pubspec dependency entry for a package,
// indented for the dependencies block.
func DependencyLine(name string) (string, error) {
	info, ok := LookupPackage(name)
	if !ok {
		return "", fmt.Errorf("unknown pub package: %s", name)
	}
	return fmt.Sprintf("  %s: %s", name, info.Version), nil
}

// ImportLine returns the Dart import statement for a package.
func ImportLine(name string) (string, error) {
	info, ok := LookupPackage(name)
	if !ok {
		return "", fmt.Errorf("unknown pub package: %s", name)
	}
	if info.Import == "" {
		return "", fmt.Errorf("package %s has no Dart import", name)
	}
	return fmt.Sprintf("import '%s';", info.Import), nil
}

// mustDependencyLine panics on unknown packages. Catalog tables are static,
// so a panic here is a build-the-catalog defect, not a runtime condition.
func mustDependencyLine(name string) string {
	line, err := DependencyLine(name)
	if err != nil {
		panic(err)
	}
	return line
}

// mustImportLine panics on unknown or import-less packages.
func mustImportLine(name string) string {
	line, err := ImportLine(name)
	if err != nil {
		panic(err)
	}
	return line
}

// CollectImports gathers unique Dart imports for a list of package names,
// sorted for stable output.
func CollectImports(names []string) []string {
	importSet := make(map[string]bool)

	for _, name := range names {
		info, ok := LookupPackage(name)
		if !ok || info.Import == "" {
			continue
		}
		importSet[fmt.Sprintf("import '%s';", info.Import)] = true
	}

	imports := make([]string, 0, len(importSet))
	for imp := range importSet {
		imports = append(imports, imp)
	}
	sort.Strings(imports)

	return imports
}
