package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDiff_Identical(t *testing.T) {
	content := []byte("void main() {}\n")
	diff := GenerateDiffDefault("a/main.dart", "b/main.dart", content, content)
	assert.Empty(t, diff)
}

func TestGenerateDiff_Addition(t *testing.T) {
	old := []byte("dependencies:\n  flutter:\n    sdk: flutter\n")
	newer := []byte("dependencies:\n  flutter:\n    sdk: flutter\n  dio: ^5.5.0\n")

	diff := GenerateDiffDefault("a/pubspec.yaml", "b/pubspec.yaml", old, newer)
	assert.Contains(t, diff, "a/pubspec.yaml")
	assert.Contains(t, diff, "b/pubspec.yaml")
	assert.Contains(t, diff, "dio: ^5.5.0")
}

func TestGenerateDiff_Removal(t *testing.T) {
	old := []byte("line1\nline2\nline3\n")
	newer := []byte("line1\nline3\n")

	diff := GenerateDiffDefault("a/f", "b/f", old, newer)
	assert.Contains(t, diff, "line2")
	assert.NotEmpty(t, diff)
}

func TestGenerateDiff_Binary(t *testing.T) {
	old := []byte{0x00, 0x01, 0x02}
	newer := []byte("text")

	diff := GenerateDiffDefault("a/f", "b/f", old, newer)
	assert.Equal(t, "Binary files differ\n", diff)
}

func TestGenerateDiff_ContextLines(t *testing.T) {
	var oldLines, newLines []string
	for i := 0; i < 20; i++ {
		oldLines = append(oldLines, "unchanged")
		newLines = append(newLines, "unchanged")
	}
	newLines[10] = "changed"

	diff := GenerateDiff("a/f", "b/f",
		[]byte(strings.Join(oldLines, "\n")),
		[]byte(strings.Join(newLines, "\n")),
		&DiffOptions{ContextLines: 1})

	assert.Contains(t, diff, "changed")
	// One context line on each side, so far fewer than 20 unchanged lines
	count := strings.Count(diff, "unchanged")
	assert.LessOrEqual(t, count, 4)
}

func TestComputeEditScript(t *testing.T) {
	old := []string{"a", "b", "c"}
	newer := []string{"a", "x", "c"}

	lines := computeEditScript(old, newer)

	var added, removed, unchanged int
	for _, l := range lines {
		switch l.op {
		case opAdded:
			added++
		case opRemoved:
			removed++
		case opUnchanged:
			unchanged++
		}
	}
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, unchanged)
}

func TestIsBinary(t *testing.T) {
	assert.True(t, isBinary([]byte{0x00, 0x01}))
	assert.False(t, isBinary([]byte("plain text")))
	assert.False(t, isBinary(nil))
}
