package catalog

// Statement order bands, shared by every target file:
//
//	10     file opening (manifest header, main() open, router open)
//	20–29  platform initialization (must precede business logic)
//	30–49  feature/module initialization
//	50–59  launch block (exclusive per state management)
//	60–79  supporting declarations
//	80–99  file closing (dev_dependencies, list/brace closers)
//
// Imports carry no order; they keep selection order and are deduplicated
// by literal text at composition time.

// builtinFragments returns the full static fragment table.
func builtinFragments() []Fragment {
	var out []Fragment
	out = append(out, entrypointFragments()...)
	out = append(out, manifestFragments()...)
	out = append(out, routerFragments()...)
	out = append(out, observabilityFragments()...)
	out = append(out, screenFragments()...)
	return out
}

// entrypointFragments composes lib/main.dart.
func entrypointFragments() []Fragment {
	return []Fragment{
		// Core
		{Axis: AxisCore, Key: "material_import", When: "base", Target: FileEntrypoint, Kind: KindImport,
			Body: "import 'package:flutter/material.dart';"},
		{Axis: AxisCore, Key: "router_import", When: "base", Target: FileEntrypoint, Kind: KindImport,
			Body: "import 'app/app_router.dart';"},
		{Axis: AxisCore, Key: "main_open", When: "base", Target: FileEntrypoint, Kind: KindStatement, Order: 10,
			Body: "Future<void> main() async {\n  WidgetsFlutterBinding.ensureInitialized();"},
		{Axis: AxisCore, Key: "main_close", When: "base", Target: FileEntrypoint, Kind: KindStatement, Order: 59,
			Body: "}"},
		{Axis: AxisCore, Key: "app_widget", When: "base", Target: FileEntrypoint, Kind: KindStatement, Order: 60,
			Body: `
class {{ .AppClass }} extends StatelessWidget {
  const {{ .AppClass }}({super.key});

  @override
  Widget build(BuildContext context) {
    return MaterialApp.router(
      title: '{{ .ProjectName }}',{{ if .HasTheming }}
      theme: buildAppTheme(),{{ end }}
      routerConfig: appRouter,
    );
  }
}`},

		// State management: launch block, one exclusive variant per value
		{Axis: AxisState, Key: "provider_import", When: "provider", Target: FileEntrypoint, Kind: KindImport,
			Body: mustImportLine("provider")},
		{Axis: AxisState, Key: "provider_runapp", When: "provider", Target: FileEntrypoint, Kind: KindStatement,
			Slot: "app_root", Order: 50,
			Body: `  runApp(
    ChangeNotifierProvider(
      create: (_) => AppModel(),
      child: const {{ .AppClass }}(),
    ),
  );`},
		{Axis: AxisState, Key: "provider_app_model", When: "provider", Target: FileEntrypoint, Kind: KindStatement, Order: 70,
			Body: "\nclass AppModel extends ChangeNotifier {}"},

		{Axis: AxisState, Key: "riverpod_import", When: "riverpod", Target: FileEntrypoint, Kind: KindImport,
			Body: mustImportLine("flutter_riverpod")},
		{Axis: AxisState, Key: "riverpod_runapp", When: "riverpod", Target: FileEntrypoint, Kind: KindStatement,
			Slot: "app_root", Order: 50,
			Body: `  runApp(
    ProviderScope(
      child: const {{ .AppClass }}(),
    ),
  );`},

		{Axis: AxisState, Key: "bloc_import", When: "bloc", Target: FileEntrypoint, Kind: KindImport,
			Body: mustImportLine("flutter_bloc")},
		{Axis: AxisState, Key: "bloc_runapp", When: "bloc", Target: FileEntrypoint, Kind: KindStatement,
			Slot: "app_root", Order: 50,
			Body: `  runApp(
    BlocProvider(
      create: (_) => AppCubit(),
      child: const {{ .AppClass }}(),
    ),
  );`},
		{Axis: AxisState, Key: "bloc_app_cubit", When: "bloc", Target: FileEntrypoint, Kind: KindStatement, Order: 70,
			Body: "\nclass AppCubit extends Cubit<int> {\n  AppCubit() : super(0);\n}"},

		// Features
		{Axis: AxisFeature, Key: "l10n_import", When: "localization", Target: FileEntrypoint, Kind: KindImport,
			Body: mustImportLine("easy_localization")},
		{Axis: AxisFeature, Key: "l10n_init", When: "localization", Target: FileEntrypoint, Kind: KindStatement, Order: 30,
			Body: "  await EasyLocalization.ensureInitialized();"},
		{Axis: AxisFeature, Key: "theming_import", When: "theming", Target: FileEntrypoint, Kind: KindImport,
			Body: mustImportLine("google_fonts")},
		{Axis: AxisFeature, Key: "theming_builder", When: "theming", Target: FileEntrypoint, Kind: KindStatement, Order: 75,
			Body: `
ThemeData buildAppTheme() {
  return ThemeData(
    useMaterial3: true,
    textTheme: GoogleFonts.interTextTheme(),
  );
}`},

		// Modules
		{Axis: AxisModule, Key: "push_import", When: "push_notification", Target: FileEntrypoint, Kind: KindImport,
			Body: mustImportLine("firebase_core")},
		{Axis: AxisModule, Key: "push_init", When: "push_notification", Target: FileEntrypoint, Kind: KindStatement, Order: 31,
			Body: "  await Firebase.initializeApp();"},
		{Axis: AxisModule, Key: "auth_session", When: "auth", Target: FileEntrypoint, Kind: KindStatement, Order: 71,
			Body: "\nclass SessionModel extends ChangeNotifier {\n  bool signedIn = false;\n}"},
	}
}

// manifestFragments composes pubspec.yaml.
func manifestFragments() []Fragment {
	return []Fragment{
		{Axis: AxisCore, Key: "header", When: "base", Target: FileManifest, Kind: KindStatement, Order: 10,
			Body: `name: {{ .ProjectName }}
description: A Flutter application generated by lyrebird.
publish_to: 'none'
version: 0.1.0+1

environment:
  sdk: ^3.5.0`},
		{Axis: AxisCore, Key: "deps_open", When: "base", Target: FileManifest, Kind: KindStatement, Order: 20,
			Body: "\ndependencies:\n  flutter:\n    sdk: flutter"},
		{Axis: AxisCore, Key: "dep_go_router", When: "base", Target: FileManifest, Kind: KindStatement, Order: 21,
			Body: mustDependencyLine("go_router")},

		{Axis: AxisState, Key: "dep_provider", When: "provider", Target: FileManifest, Kind: KindStatement, Order: 22,
			Body: mustDependencyLine("provider")},
		{Axis: AxisState, Key: "dep_riverpod", When: "riverpod", Target: FileManifest, Kind: KindStatement, Order: 22,
			Body: mustDependencyLine("flutter_riverpod")},
		{Axis: AxisState, Key: "dep_bloc", When: "bloc", Target: FileManifest, Kind: KindStatement, Order: 22,
			Body: mustDependencyLine("flutter_bloc")},

		{Axis: AxisFeature, Key: "dep_l10n", When: "localization", Target: FileManifest, Kind: KindStatement, Order: 30,
			Body: mustDependencyLine("easy_localization")},
		{Axis: AxisFeature, Key: "dep_google_fonts", When: "theming", Target: FileManifest, Kind: KindStatement, Order: 31,
			Body: mustDependencyLine("google_fonts")},
		{Axis: AxisFeature, Key: "dep_analytics", When: "analytics", Target: FileManifest, Kind: KindStatement, Order: 32,
			Body: mustDependencyLine("firebase_analytics")},

		{Axis: AxisModule, Key: "dep_dio", When: "auth", Target: FileManifest, Kind: KindStatement, Order: 40,
			Body: mustDependencyLine("dio")},
		{Axis: AxisModule, Key: "dep_firebase_core", When: "push_notification", Target: FileManifest, Kind: KindStatement, Order: 41,
			Body: mustDependencyLine("firebase_core")},
		{Axis: AxisModule, Key: "dep_firebase_messaging", When: "push_notification", Target: FileManifest, Kind: KindStatement, Order: 42,
			Body: mustDependencyLine("firebase_messaging")},
		{Axis: AxisModule, Key: "dep_shared_preferences", When: "local_storage", Target: FileManifest, Kind: KindStatement, Order: 43,
			Body: mustDependencyLine("shared_preferences")},

		{Axis: AxisCore, Key: "dev_deps", When: "base", Target: FileManifest, Kind: KindStatement, Order: 80,
			Body: "\ndev_dependencies:\n  flutter_test:\n    sdk: flutter\n" + mustDependencyLine("flutter_lints")},
		{Axis: AxisCore, Key: "flutter_section", When: "base", Target: FileManifest, Kind: KindStatement, Order: 90,
			Body: "\nflutter:\n  uses-material-design: true"},
		{Axis: AxisFeature, Key: "flutter_generate", When: "localization", Target: FileManifest, Kind: KindStatement, Order: 91,
			Body: "  generate: true"},
	}
}

// routerFragments composes lib/app/app_router.dart. The route list is the
// structural anchor later patches splice into.
func routerFragments() []Fragment {
	return []Fragment{
		{Axis: AxisCore, Key: "go_router_import", When: "base", Target: FileRouter, Kind: KindImport,
			Body: mustImportLine("go_router")},
		{Axis: AxisCore, Key: "router_open", When: "base", Target: FileRouter, Kind: KindStatement, Order: 10,
			Body: "final GoRouter appRouter = GoRouter(\n  initialLocation: '/',\n  routes: <RouteBase>["},
		{Axis: AxisCore, Key: "router_close", When: "base", Target: FileRouter, Kind: KindStatement, Order: 90,
			Body: "  ],\n);"},

		// Home screen import + route, per architecture (paths and class
		// names follow each architecture's conventions)
		{Axis: AxisArchitecture, Key: "home_import_mvc", When: "mvc", Target: FileRouter, Kind: KindImport,
			Body: "import '../screens/home_screen.dart';"},
		{Axis: AxisArchitecture, Key: "home_route_mvc", When: "mvc", Target: FileRouter, Kind: KindStatement, Order: 20,
			Body: routeEntry("HomeScreen")},

		{Axis: AxisArchitecture, Key: "home_import_mvvm", When: "mvvm", Target: FileRouter, Kind: KindImport,
			Body: "import '../views/home_view.dart';"},
		{Axis: AxisArchitecture, Key: "home_route_mvvm", When: "mvvm", Target: FileRouter, Kind: KindStatement, Order: 20,
			Body: routeEntry("HomeView")},

		{Axis: AxisArchitecture, Key: "home_import_clean", When: "clean", Target: FileRouter, Kind: KindImport,
			Body: "import '../features/home/presentation/home_screen.dart';"},
		{Axis: AxisArchitecture, Key: "home_route_clean", When: "clean", Target: FileRouter, Kind: KindStatement, Order: 20,
			Body: routeEntry("HomeScreen")},
	}
}

// routeEntry builds the home route with the architecture's widget class.
func routeEntry(class string) string {
	return "    GoRoute(\n" +
		"      path: '/',\n" +
		"      name: 'home',\n" +
		"      builder: (context, state) => const " + class + "(),\n" +
		"    ),"
}

// observabilityFragments composes lib/core/observability.dart.
func observabilityFragments() []Fragment {
	return []Fragment{
		{Axis: AxisCore, Key: "developer_import", When: "base", Target: FileObservability, Kind: KindImport,
			Body: "import 'dart:developer' as developer;"},
		{Axis: AxisCore, Key: "log_helper", When: "base", Target: FileObservability, Kind: KindStatement, Order: 10,
			Body: `class AppObservability {
  const AppObservability._();

  static void log(String message, {Object? error}) {
    developer.log(message, name: '{{ .ProjectName }}', error: error);
  }
}`},
		{Axis: AxisFeature, Key: "analytics_import", When: "analytics", Target: FileObservability, Kind: KindImport,
			Body: mustImportLine("firebase_analytics")},
		{Axis: AxisFeature, Key: "analytics_observer", When: "analytics", Target: FileObservability, Kind: KindStatement, Order: 20,
			Body: `
final FirebaseAnalyticsObserver analyticsObserver = FirebaseAnalyticsObserver(
  analytics: FirebaseAnalytics.instance,
);`},
	}
}

// screenFragments compose one screen file; bodies render against the
// screen's template data (ScreenClass, ScreenTitle, …). The widget shell
// is exclusive per architecture, the state holder per state management.
func screenFragments() []Fragment {
	return []Fragment{
		{Axis: AxisCore, Key: "screen_material_import", When: "base", Target: FileScreen, Kind: KindImport,
			Body: "import 'package:flutter/material.dart';"},

		{Axis: AxisArchitecture, Key: "shell_mvc", When: "mvc", Target: FileScreen, Kind: KindStatement,
			Slot: "screen_shell", Order: 10,
			Body: `class {{ .ScreenClass }} extends StatelessWidget {
  const {{ .ScreenClass }}({super.key});

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(title: const Text('{{ .ScreenTitle }}')),
      body: const Center(child: Text('{{ .ScreenTitle }}')),
    );
  }
}`},
		{Axis: AxisArchitecture, Key: "shell_mvvm", When: "mvvm", Target: FileScreen, Kind: KindStatement,
			Slot: "screen_shell", Order: 10,
			Body: `class {{ .ScreenClass }} extends StatelessWidget {
  const {{ .ScreenClass }}({super.key});

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(title: const Text('{{ .ScreenTitle }}')),
      body: const Center(child: Text('{{ .ScreenTitle }}')),
    );
  }
}

class {{ .ScreenClass }}Model extends ChangeNotifier {
  String title = '{{ .ScreenTitle }}';
}`},
		{Axis: AxisArchitecture, Key: "shell_clean", When: "clean", Target: FileScreen, Kind: KindStatement,
			Slot: "screen_shell", Order: 10,
			Body: `class {{ .ScreenClass }} extends StatelessWidget {
  const {{ .ScreenClass }}({super.key});

  @override
  Widget build(BuildContext context) {
    return const Scaffold(
      body: SafeArea(child: _{{ .ScreenClass }}Body()),
    );
  }
}

class _{{ .ScreenClass }}Body extends StatelessWidget {
  const _{{ .ScreenClass }}Body();

  @override
  Widget build(BuildContext context) {
    return const Center(child: Text('{{ .ScreenTitle }}'));
  }
}`},

		{Axis: AxisState, Key: "state_provider", When: "provider", Target: FileScreen, Kind: KindStatement,
			Slot: "screen_state", Order: 20,
			Body: "\nclass {{ .ScreenClass }}State extends ChangeNotifier {}"},
		{Axis: AxisState, Key: "state_riverpod", When: "riverpod", Target: FileScreen, Kind: KindStatement,
			Slot: "screen_state", Order: 20,
			Body: "\nfinal {{ .ScreenVar }}Provider = Provider<String>((ref) => '{{ .ScreenTitle }}');"},
		{Axis: AxisState, Key: "state_riverpod_import", When: "riverpod", Target: FileScreen, Kind: KindImport,
			Body: mustImportLine("flutter_riverpod")},
		{Axis: AxisState, Key: "state_bloc", When: "bloc", Target: FileScreen, Kind: KindStatement,
			Slot: "screen_state", Order: 20,
			Body: "\nclass {{ .ScreenClass }}Cubit extends Cubit<String> {\n  {{ .ScreenClass }}Cubit() : super('{{ .ScreenTitle }}');\n}"},
		{Axis: AxisState, Key: "state_bloc_import", When: "bloc", Target: FileScreen, Kind: KindImport,
			Body: mustImportLine("flutter_bloc")},
	}
}
