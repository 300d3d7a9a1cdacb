package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestProject represents a temporary generated project for integration tests.
type TestProject struct {
	Root string
	Name string
	t    *testing.T
}

// NewTestProject creates a temporary project directory.
func NewTestProject(t *testing.T, name string) *TestProject {
	t.Helper()

	return &TestProject{
		Root: t.TempDir(),
		Name: name,
		t:    t,
	}
}

// Dir returns the generated project's root directory.
func (p *TestProject) Dir() string {
	return filepath.Join(p.Root, p.Name)
}

// RunLyrebird executes a lyrebird command against the project.
// The binary is built by the integration test script at the repo root.
func (p *TestProject) RunLyrebird(args ...string) error {
	p.t.Helper()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	// Tests run from test/integration; the binary sits two levels up
	binPath := filepath.Join(cwd, "..", "..", "lyrebird")
	cmd := exec.Command(binPath, args...)

	// "new" runs from the temp root, everything else from inside the project
	if len(args) > 0 && args[0] == "new" {
		cmd.Dir = p.Root
	} else {
		cmd.Dir = p.Dir()
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		p.t.Logf("lyrebird command failed: %s\nOutput: %s", err, string(output))
		return err
	}

	p.t.Logf("lyrebird output: %s", string(output))
	return nil
}

// FileExists checks if a file exists in the project.
func (p *TestProject) FileExists(path string) bool {
	p.t.Helper()

	_, err := os.Stat(filepath.Join(p.Dir(), path))
	return err == nil
}

// ReadFile reads a file from the project.
func (p *TestProject) ReadFile(path string) (string, error) {
	p.t.Helper()

	content, err := os.ReadFile(filepath.Join(p.Dir(), path))
	return string(content), err
}
