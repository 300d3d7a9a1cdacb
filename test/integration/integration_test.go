//go:build integration
// +build integration

package integration

import (
	"strings"
	"testing"

	"github.com/lyrebird-cli/lyrebird/internal/testing/testutil"
)

func TestProjectGeneration(t *testing.T) {
	project := testutil.NewTestProject(t, "myshop")

	err := project.RunLyrebird("new", project.Name,
		"--arch", "mvc", "--state", "provider",
		"--features", "theming", "--no-pub-get")
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	for _, path := range []string{
		"pubspec.yaml",
		"lib/main.dart",
		"lib/app/app_router.dart",
		"lib/core/observability.dart",
		"lib/screens/home_screen.dart",
		"lyrebird.yml",
	} {
		if !project.FileExists(path) {
			t.Errorf("%s not created", path)
		}
	}

	main, err := project.ReadFile("lib/main.dart")
	if err != nil {
		t.Fatalf("reading main.dart: %v", err)
	}
	if !strings.Contains(main, "ChangeNotifierProvider") {
		t.Error("main.dart missing provider launch block")
	}
	if !strings.Contains(main, "buildAppTheme") {
		t.Error("main.dart missing theming")
	}
}

func TestScreenAdditionAndIdempotence(t *testing.T) {
	project := testutil.NewTestProject(t, "myshop")

	if err := project.RunLyrebird("new", project.Name, "--no-pub-get"); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if err := project.RunLyrebird("screen", "order_history"); err != nil {
		t.Fatalf("Failed to add screen: %v", err)
	}

	if !project.FileExists("lib/screens/order_history_screen.dart") {
		t.Error("screen file not created")
	}

	router, err := project.ReadFile("lib/app/app_router.dart")
	if err != nil {
		t.Fatalf("reading router: %v", err)
	}
	if !strings.Contains(router, "name: 'order_history'") {
		t.Error("route not spliced into router")
	}

	// Second run must not change the router
	if err := project.RunLyrebird("screen", "order_history", "--force"); err != nil {
		t.Fatalf("Second screen run failed: %v", err)
	}
	routerAgain, err := project.ReadFile("lib/app/app_router.dart")
	if err != nil {
		t.Fatalf("reading router: %v", err)
	}
	if router != routerAgain {
		t.Error("second screen run changed the router")
	}
}

func TestModuleInstallFlow(t *testing.T) {
	project := testutil.NewTestProject(t, "myshop")

	if err := project.RunLyrebird("new", project.Name, "--no-pub-get"); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if err := project.RunLyrebird("module", "add", "push_notification"); err != nil {
		t.Fatalf("Failed to install module: %v", err)
	}

	pubspec, err := project.ReadFile("pubspec.yaml")
	if err != nil {
		t.Fatalf("reading pubspec: %v", err)
	}
	if !strings.Contains(pubspec, "firebase_messaging:") {
		t.Error("pubspec missing firebase_messaging")
	}

	main, err := project.ReadFile("lib/main.dart")
	if err != nil {
		t.Fatalf("reading main.dart: %v", err)
	}
	if !strings.Contains(main, "Firebase.initializeApp") {
		t.Error("main.dart missing Firebase initialization")
	}

	manifest, err := project.ReadFile("lyrebird.yml")
	if err != nil {
		t.Fatalf("reading lyrebird.yml: %v", err)
	}
	if !strings.Contains(manifest, "push_notification") {
		t.Error("lyrebird.yml missing installed module")
	}

	// Installing again must be a clean no-op
	mainBefore := main
	if err := project.RunLyrebird("module", "add", "push_notification"); err != nil {
		t.Fatalf("Second install failed: %v", err)
	}
	mainAfter, _ := project.ReadFile("lib/main.dart")
	if mainBefore != mainAfter {
		t.Error("second install changed main.dart")
	}
}
