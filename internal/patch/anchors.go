package patch

import "github.com/lyrebird-cli/lyrebird/internal/catalog"

// Built-in anchor names.
const (
	AnchorRouterImport     = "router-import"
	AnchorRouterRoute      = "router-route"
	AnchorManifestDep      = "manifest-dependency"
	AnchorEntrypointImport = "entrypoint-import"
	AnchorEntrypointInit   = "entrypoint-init"
)

// anchors is the static patch-site table. Guards are chosen so that the
// smallest stable piece of the insert identifies it: a route by its name,
// a dependency by its package key, imports and statements by their full
// line.
var anchors = map[string]Anchor{
	AnchorRouterImport: {
		Name:   AnchorRouterImport,
		Target: catalog.FileRouter,
		Kind:   AfterLastPrefix,
		Open:   "import ",
		Guard:  "{{ .Import }}",
		Insert: "{{ .Import }}",
	},
	AnchorRouterRoute: {
		Name:   AnchorRouterRoute,
		Target: catalog.FileRouter,
		Kind:   BlockTail,
		Open:   "routes: <RouteBase>[",
		Guard:  "name: '{{ .Screen }}'",
		Insert: `    GoRoute(
      path: '{{ .Route }}',
      name: '{{ .Screen }}',
      builder: (context, state) => const {{ .ScreenClass }}(),
    ),`,
	},
	AnchorManifestDep: {
		Name:   AnchorManifestDep,
		Target: catalog.FileManifest,
		Kind:   IndentBlock,
		Open:   "dependencies:",
		Guard:  "{{ .Package }}:",
		Insert: "  {{ .Package }}: {{ .Version }}",
	},
	AnchorEntrypointImport: {
		Name:   AnchorEntrypointImport,
		Target: catalog.FileEntrypoint,
		Kind:   AfterLastPrefix,
		Open:   "import ",
		Guard:  "{{ .Import }}",
		Insert: "{{ .Import }}",
	},
	AnchorEntrypointInit: {
		Name:   AnchorEntrypointInit,
		Target: catalog.FileEntrypoint,
		Kind:   BeforeLine,
		Open:   "runApp(",
		Guard:  "{{ .Statement }}",
		Insert: "{{ .Statement }}",
	},
}

// Builtin retrieves an anchor by name.
func Builtin(name string) (Anchor, bool) {
	a, ok := anchors[name]
	return a, ok
}
