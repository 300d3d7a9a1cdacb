package catalog

import "github.com/lyrebird-cli/lyrebird/internal/config"

// builtinRules returns the cross-axis exception table. Rules are evaluated
// in declaration order; their Add fragments precede the generic per-axis
// selection and their Suppress refs are withheld from it.
func builtinRules() []Rule {
	return []Rule{
		// Clean architecture resolves module services through a locator
		// instead of constructor threading, so push notification handlers
		// need get_it wired into the manifest and entrypoint.
		{
			Name:         "clean-push-locator",
			Architecture: config.ArchClean,
			Module:       config.ModulePushNotification,
			Add: []Fragment{
				{Axis: AxisModule, Key: "dep_get_it", When: "push_notification", Target: FileManifest,
					Kind: KindStatement, Order: 44,
					Body: mustDependencyLine("get_it")},
				{Axis: AxisModule, Key: "locator_import", When: "push_notification", Target: FileEntrypoint,
					Kind: KindImport,
					Body: mustImportLine("get_it")},
			},
		},

		// Bloc states are compared by value; equatable keeps those
		// comparisons from silently degrading to identity checks.
		{
			Name:            "bloc-equatable",
			StateManagement: config.StateBloc,
			Add: []Fragment{
				{Axis: AxisState, Key: "dep_equatable", When: "bloc", Target: FileManifest,
					Kind: KindStatement, Order: 23,
					Body: mustDependencyLine("equatable")},
			},
		},

		// Under riverpod the auth session lives in a provider, not a
		// ChangeNotifier; the generic session model is withheld and a
		// provider-based one selected instead.
		{
			Name:            "riverpod-auth-session",
			StateManagement: config.StateRiverpod,
			Module:          config.ModuleAuth,
			Suppress: []FragmentRef{
				{Axis: AxisModule, Key: "auth_session", Target: FileEntrypoint},
			},
			Add: []Fragment{
				{Axis: AxisModule, Key: "auth_session_riverpod", When: "auth", Target: FileEntrypoint,
					Kind: KindStatement, Order: 71,
					Body: "\nfinal sessionProvider = StateProvider<bool>((ref) => false);"},
			},
		},
	}
}
