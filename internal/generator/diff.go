package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DiffOptions configures how diffs are generated and displayed.
// All fields are optional with sensible defaults.
type DiffOptions struct {
	// ContextLines is the number of unchanged lines to show around changes.
	// Default: 3
	ContextLines int

	// TabWidth is the number of spaces each tab character expands to.
	// Default: 4
	TabWidth int

	// ShowLineNums displays line numbers in the left margin.
	// Default: false
	ShowLineNums bool
}

// Lipgloss styles for terminal output
var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
	lineNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
)

// GenerateDiffDefault is a convenience wrapper using default options.
func GenerateDiffDefault(oldPath, newPath string, old, newer []byte) string {
	return GenerateDiff(oldPath, newPath, old, newer, nil)
}

// GenerateDiff creates a unified diff between old and newer content.
// Returns "" when the contents are identical.
func GenerateDiff(oldPath, newPath string, old, newer []byte, opts *DiffOptions) string {
	if opts == nil {
		opts = &DiffOptions{ContextLines: 3, TabWidth: 4}
	}
	if opts.ContextLines == 0 {
		opts.ContextLines = 3
	}
	if opts.TabWidth == 0 {
		opts.TabWidth = 4
	}

	if isBinary(old) || isBinary(newer) {
		return "Binary files differ\n"
	}

	oldLines := splitLines(string(old))
	newLines := splitLines(string(newer))

	if bytes.Equal(old, newer) {
		return ""
	}

	// Very large files are not worth diffing interactively
	if len(oldLines) > 10000 || len(newLines) > 10000 {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(oldLines), len(newLines))
	}

	diffLines := computeEditScript(oldLines, newLines)
	hunks := buildHunks(diffLines, opts.ContextLines)
	if len(hunks) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(headerStyle.Render("--- "+oldPath) + "\n")
	buf.WriteString(headerStyle.Render("+++ "+newPath) + "\n")

	termWidth := getTerminalWidth()
	for _, h := range hunks {
		buf.WriteString(formatHunk(h, opts, termWidth))
	}

	return buf.String()
}

// operation represents the type of diff operation
type diffOp int

const (
	opUnchanged diffOp = iota
	opAdded
	opRemoved
)

// diffLine represents a single line in the diff with its operation
type diffLine struct {
	oldLineNum int    // Line number in old file (0 if added)
	newLineNum int    // Line number in new file (0 if removed)
	content    string // Line content
	op         diffOp // Operation type
}

// hunk represents a contiguous block of changes with surrounding context
type hunk struct {
	oldStart int
	oldCount int
	newStart int
	newCount int
	lines    []diffLine
}

// computeEditScript implements Myers diff algorithm to compute the shortest
// edit script. Based on "An O(ND) Difference Algorithm and Its Variations"
// by Eugene W. Myers (1986).
func computeEditScript(old, newer []string) []diffLine {
	n := len(old)
	m := len(newer)
	maxD := n + m

	v := map[int]int{1: 0}
	trace := make([]map[int]int, 0, maxD+1)

	for d := 0; d <= maxD; d++ {
		// Save current V for backtracking
		vcopy := make(map[int]int, len(v))
		for k, val := range v {
			vcopy[k] = val
		}
		trace = append(trace, vcopy)

		for k := -d; k <= d; k += 2 {
			var x int

			// Move down if k is on the bottom edge or the path from k-1 is better
			if k == -d || (k != d && v[k-1] < v[k+1]) {
				x = v[k+1] // down: deletion in old
			} else {
				x = v[k-1] + 1 // right: insertion in new
			}

			y := x - k

			// Follow the diagonal as far as possible (matching lines)
			for x < n && y < m && old[x] == newer[y] {
				x++
				y++
			}

			v[k] = x

			if x >= n && y >= m {
				return backtrack(trace, old, newer, n, m)
			}
		}
	}

	return backtrack(trace, old, newer, n, m)
}

// backtrack walks the saved trace backwards to build the edit script.
func backtrack(trace []map[int]int, old, newer []string, n, m int) []diffLine {
	var result []diffLine
	x, y := n, m

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[k-1] < v[k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[prevK]
		prevY := prevX - prevK

		// Follow the diagonal backwards
		for x > prevX && y > prevY {
			x--
			y--
			result = append([]diffLine{{
				oldLineNum: x + 1,
				newLineNum: y + 1,
				content:    old[x],
				op:         opUnchanged,
			}}, result...)
		}

		if d > 0 {
			if x == prevX {
				y--
				result = append([]diffLine{{
					oldLineNum: 0,
					newLineNum: y + 1,
					content:    newer[y],
					op:         opAdded,
				}}, result...)
			} else {
				x--
				result = append([]diffLine{{
					oldLineNum: x + 1,
					newLineNum: 0,
					content:    old[x],
					op:         opRemoved,
				}}, result...)
			}
		}
	}

	return result
}

// buildHunks groups diff lines into hunks with surrounding context
func buildHunks(lines []diffLine, contextLines int) []hunk {
	if len(lines) == 0 {
		return nil
	}

	var hunks []hunk
	var currentHunk *hunk

	for i, line := range lines {
		if line.op != opUnchanged {
			if currentHunk == nil {
				contextStart := i - contextLines
				if contextStart < 0 {
					contextStart = 0
				}

				currentHunk = &hunk{lines: []diffLine{}}

				for j := contextStart; j < i; j++ {
					currentHunk.lines = append(currentHunk.lines, lines[j])
				}
			}

			currentHunk.lines = append(currentHunk.lines, line)
		} else {
			if currentHunk != nil {
				currentHunk.lines = append(currentHunk.lines, line)

				// Count consecutive context lines after the last change
				contextAfter := 1
				for j := i + 1; j < len(lines) && lines[j].op == opUnchanged; j++ {
					contextAfter++
				}

				// Enough context and more changes coming: close the hunk
				if contextAfter > contextLines*2 && i < len(lines)-1 {
					trimCount := contextAfter - contextLines
					if trimCount > 0 && trimCount <= len(currentHunk.lines) {
						currentHunk.lines = currentHunk.lines[:len(currentHunk.lines)-trimCount]
					}

					finalizeHunk(currentHunk)
					hunks = append(hunks, *currentHunk)
					currentHunk = nil
				}
			}
		}
	}

	if currentHunk != nil {
		finalizeHunk(currentHunk)
		hunks = append(hunks, *currentHunk)
	}

	return hunks
}

// finalizeHunk calculates the start and count values for a hunk
func finalizeHunk(h *hunk) {
	if len(h.lines) == 0 {
		return
	}

	for _, line := range h.lines {
		if line.oldLineNum > 0 && (h.oldStart == 0 || line.oldLineNum < h.oldStart) {
			h.oldStart = line.oldLineNum
		}
		if line.newLineNum > 0 && (h.newStart == 0 || line.newLineNum < h.newStart) {
			h.newStart = line.newLineNum
		}
	}

	for _, line := range h.lines {
		if line.op == opRemoved || line.op == opUnchanged {
			h.oldCount++
		}
		if line.op == opAdded || line.op == opUnchanged {
			h.newCount++
		}
	}
}

// formatHunk formats a hunk as a unified diff string with styling
func formatHunk(h hunk, opts *DiffOptions, termWidth int) string {
	var buf strings.Builder

	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
	buf.WriteString(hunkStyle.Render(header) + "\n")

	for _, line := range h.lines {
		content := expandTabs(line.content, opts.TabWidth)
		content = truncateLine(content, termWidth-10) // Leave room for prefix and line numbers

		var prefix string
		var style lipgloss.Style

		switch line.op {
		case opAdded:
			prefix = "+"
			style = addedStyle
		case opRemoved:
			prefix = "-"
			style = removedStyle
		case opUnchanged:
			prefix = " "
			style = lipgloss.NewStyle()
		}

		formatted := prefix + content
		if line.op == opAdded || line.op == opRemoved {
			formatted = style.Render(formatted)
		}

		if opts.ShowLineNums {
			lineNum := "    "
			if line.oldLineNum > 0 {
				lineNum = fmt.Sprintf("%4d", line.oldLineNum)
			}
			formatted = lineNumStyle.Render(lineNum) + " " + formatted
		}

		buf.WriteString(formatted + "\n")
	}

	return buf.String()
}

// isBinary checks if content appears to be binary (contains null bytes)
func isBinary(data []byte) bool {
	checkLen := len(data)
	if checkLen > 8192 {
		checkLen = 8192
	}
	return bytes.IndexByte(data[:checkLen], 0) != -1
}

// splitLines splits content into lines, preserving empty lines
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := strings.Split(s, "\n")

	// Remove trailing empty line if present (from final newline)
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// expandTabs replaces tabs with spaces
func expandTabs(s string, tabWidth int) string {
	var buf strings.Builder
	col := 0

	for _, r := range s {
		if r == '\t' {
			spaces := tabWidth - (col % tabWidth)
			buf.WriteString(strings.Repeat(" ", spaces))
			col += spaces
		} else {
			buf.WriteRune(r)
			col++
		}
	}

	return buf.String()
}

// truncateLine truncates a line if it's too long, adding "..." indicator
func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}

	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	if maxWidth < 3 {
		return "..."[:maxWidth]
	}

	return string(runes[:maxWidth-3]) + "..."
}

// getTerminalWidth returns the terminal width, defaulting to 80 if unable to detect
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
