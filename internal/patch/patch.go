// Package patch modifies previously generated files in place. Every patch
// is idempotent: a presence guard is checked before any text is touched, so
// running the same patch twice leaves the file byte-identical and reports
// AlreadyPresent instead of duplicating content.
//
// Patches never guess. If the structural anchor they splice into cannot be
// found, the file is left untouched and the result says AnchorNotFound; a
// conservative no-op beats a corrupted file the user then has to repair by
// hand.
package patch

import (
	"fmt"
	"strings"

	"github.com/lyrebird-cli/lyrebird/internal/catalog"
	"github.com/lyrebird-cli/lyrebird/internal/generator"
)

// AnchorKind selects the matching strategy for an anchor.
type AnchorKind int

const (
	// BlockTail splices before the closing line of a bracketed block that
	// starts at the line containing Open. Used for Dart list and call
	// literals such as the router's route list.
	BlockTail AnchorKind = iota

	// IndentBlock splices after the last indented line of the YAML block
	// whose introducing line, trimmed, equals Open. Used for pubspec
	// sections.
	IndentBlock

	// BeforeLine splices immediately before the first line containing
	// Open. Used to add initialization statements ahead of runApp.
	BeforeLine

	// AfterLastPrefix splices after the last line starting with Open,
	// or at the top of the file when no such line exists. Used for
	// import sections.
	AfterLastPrefix
)

// Anchor describes one patch site: where to look, how to recognize that the
// patch already landed, and what to insert. Guard and Insert are template
// sources rendered against the run's template data; the rendered insert
// must contain the rendered guard, otherwise the second application could
// not detect the first.
type Anchor struct {
	Name   string
	Target catalog.FileKind
	Kind   AnchorKind

	Open   string // literal text locating the anchor line
	Guard  string // template; rendered presence guard
	Insert string // template; rendered text to splice in
}

// Reason classifies a patch outcome.
type Reason int

const (
	Applied Reason = iota
	AlreadyPresent
	AnchorNotFound
)

func (r Reason) String() string {
	switch r {
	case Applied:
		return "applied"
	case AlreadyPresent:
		return "already present"
	case AnchorNotFound:
		return "anchor not found"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Result reports one patch attempt. Applied is true only when Text differs
// from the input; AlreadyPresent and AnchorNotFound both return the input
// unchanged.
type Result struct {
	Anchor  string
	Target  catalog.FileKind
	Applied bool
	Reason  Reason
	Text    string
}

// Apply attempts one patch against existing file content. The returned
// error covers malformed anchors and template failures only; a missing
// anchor in the file is a Result, not an error.
func Apply(r *generator.Renderer, existing string, a Anchor, data catalog.TemplateData) (Result, error) {
	guard, err := renderPart(r, a.Name+"/guard", a.Guard, data)
	if err != nil {
		return Result{}, err
	}
	insert, err := renderPart(r, a.Name+"/insert", a.Insert, data)
	if err != nil {
		return Result{}, err
	}
	if guard == "" {
		return Result{}, fmt.Errorf("anchor %s: empty guard", a.Name)
	}
	if !strings.Contains(insert, guard) {
		return Result{}, fmt.Errorf("anchor %s: insert does not contain its guard", a.Name)
	}

	if strings.Contains(existing, guard) {
		return Result{Anchor: a.Name, Target: a.Target, Reason: AlreadyPresent, Text: existing}, nil
	}

	var patched string
	var found bool
	switch a.Kind {
	case BlockTail:
		patched, found = spliceBlockTail(existing, a.Open, insert)
	case IndentBlock:
		patched, found = spliceIndentBlock(existing, a.Open, insert)
	case BeforeLine:
		patched, found = spliceBeforeLine(existing, a.Open, insert)
	case AfterLastPrefix:
		patched, found = spliceAfterLastPrefix(existing, a.Open, insert)
	default:
		return Result{}, fmt.Errorf("anchor %s: unknown kind %d", a.Name, int(a.Kind))
	}

	if !found {
		return Result{Anchor: a.Name, Target: a.Target, Reason: AnchorNotFound, Text: existing}, nil
	}
	return Result{Anchor: a.Name, Target: a.Target, Applied: true, Reason: Applied, Text: patched}, nil
}

func renderPart(r *generator.Renderer, name, tmpl string, data catalog.TemplateData) (string, error) {
	out, err := r.RenderString(name, tmpl, data)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return string(out), nil
}

// spliceBlockTail finds the line containing open, scans forward balancing
// brackets from that line on, and inserts before the line holding the
// block's closing bracket.
func spliceBlockTail(text, open, insert string) (string, bool) {
	lines := splitLines(text)

	openIdx := -1
	for i, line := range lines {
		if strings.Contains(line, open) {
			openIdx = i
			break
		}
	}
	if openIdx == -1 {
		return text, false
	}

	depth := 0
	started := false
	for i := openIdx; i < len(lines); i++ {
		for _, ch := range lines[i] {
			switch ch {
			case '[', '(', '{':
				depth++
				started = true
			case ']', ')', '}':
				depth--
			}
		}
		if started && depth <= 0 {
			if i == openIdx {
				// The open line balances its own brackets; there is no
				// block body to splice into.
				return text, false
			}
			// Closing line found; insert above it.
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i]...)
			out = append(out, strings.TrimRight(insert, "\n"))
			out = append(out, lines[i:]...)
			return joinLines(out), true
		}
	}
	return text, false
}

// spliceIndentBlock finds the line whose trimmed text equals open and walks
// past every following line that is deeper indented (or blank inside the
// block), inserting after the last one. The whole-line match keeps a
// "dependencies:" anchor from landing in "dev_dependencies:".
func spliceIndentBlock(text, open, insert string) (string, bool) {
	lines := splitLines(text)

	openIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == open {
			openIdx = i
			break
		}
	}
	if openIdx == -1 {
		return text, false
	}

	baseIndent := indentOf(lines[openIdx])
	end := openIdx
	for i := openIdx + 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if indentOf(line) <= baseIndent {
			break
		}
		end = i
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:end+1]...)
	out = append(out, strings.TrimRight(insert, "\n"))
	out = append(out, lines[end+1:]...)
	return joinLines(out), true
}

// spliceBeforeLine inserts above the first line containing open.
func spliceBeforeLine(text, open, insert string) (string, bool) {
	lines := splitLines(text)
	for i, line := range lines {
		if strings.Contains(line, open) {
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i]...)
			out = append(out, strings.TrimRight(insert, "\n"))
			out = append(out, lines[i:]...)
			return joinLines(out), true
		}
	}
	return text, false
}

// spliceAfterLastPrefix inserts below the last line starting with open,
// or at the very top when the file has no such line yet.
func spliceAfterLastPrefix(text, open, insert string) (string, bool) {
	lines := splitLines(text)
	last := -1
	for i, line := range lines {
		if strings.HasPrefix(line, open) {
			last = i
		}
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:last+1]...)
	out = append(out, strings.TrimRight(insert, "\n"))
	out = append(out, lines[last+1:]...)
	return joinLines(out), true
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
