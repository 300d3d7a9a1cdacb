package generator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTransaction_Success(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "main.dart"), []byte("void main() {}"), 0644)
	tx.AddFile(filepath.Join(tempDir, "pubspec.yaml"), []byte("name: myapp"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tempDir, "main.dart"))
	if err != nil || string(content) != "void main() {}" {
		t.Error("main.dart not written correctly")
	}

	content, err = os.ReadFile(filepath.Join(tempDir, "pubspec.yaml"))
	if err != nil || string(content) != "name: myapp" {
		t.Error("pubspec.yaml not written correctly")
	}
}

func TestTransaction_RollbackOnError(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "main.dart"), []byte("void main() {}"), 0644)

	// Invalid path forces the commit to fail partway
	invalidPath := filepath.Join(tempDir, "\x00invalid", "broken.dart")
	tx.AddFile(invalidPath, []byte("x"), 0644)

	if err := tx.Commit(); err == nil {
		t.Fatal("Expected commit to fail with invalid path")
	}

	// The first file must have been rolled back
	if _, err := os.Stat(filepath.Join(tempDir, "main.dart")); !os.IsNotExist(err) {
		t.Error("main.dart should have been rolled back")
	}
}

func TestTransaction_CannotCommitTwice(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	tx.AddFile(filepath.Join(tempDir, "main.dart"), []byte("void main() {}"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("First commit failed: %v", err)
	}
	if err := tx.Commit(); err == nil {
		t.Fatal("Expected second commit to fail")
	}
}

func TestTransaction_ManualRollback(t *testing.T) {
	tempDir := t.TempDir()

	tx := NewTransaction()
	path := filepath.Join(tempDir, "main.dart")
	tx.AddFile(path, []byte("void main() {}"), 0644)

	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	// Rollback after a successful commit must be a no-op
	tx.Rollback()

	if _, err := os.Stat(path); err != nil {
		t.Error("main.dart should still exist after rollback of committed transaction")
	}
}
