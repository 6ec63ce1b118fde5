// Package hints runs independent pattern detectors over sketch source and
// produces line-addressed, cursor-ranked suggestions for the editor. Each
// detector is a pure function over the line array; detectors never depend
// on each other's output and are freely composable.
package hints

import (
	"fmt"
	"sort"
)

// Severity classifies how strongly a hint should be surfaced.
type Severity string

const (
	SeverityTip     Severity = "tip"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Hint is a single line-addressed suggestion.
type Hint struct {
	Message  string   `json:"message"`
	Line     int      `json:"line"` // 1-indexed
	Column   int      `json:"column"`
	Severity Severity `json:"severity"`
	Type     string   `json:"hint_type"`
	Tags     []string `json:"tags"`
}

// Render formats the hint for direct UI display.
func (h Hint) Render() string {
	return fmt.Sprintf("%s (line %d)", h.Message, h.Line)
}

// Cursor is a caret position. Offset-based positions are converted to
// line/column against the analyzed source.
type Cursor struct {
	Line   int // 0-based
	Column int
	// Offset is an absolute byte offset; used when HasOffset is set.
	Offset    int
	HasOffset bool
}

// CursorAt builds a line/column cursor (0-based line).
func CursorAt(line, column int) Cursor {
	return Cursor{Line: line, Column: column}
}

// CursorAtOffset builds an absolute-offset cursor.
func CursorAtOffset(offset int) Cursor {
	return Cursor{Offset: offset, HasOffset: true}
}

// EditorState carries the editor-side facts some detectors need.
type EditorState struct {
	// SerialMonitorOpen reports whether the serial monitor panel is open.
	// The zero value means "closed"; use DefaultEditorState when the
	// monitor state is unknown to avoid nagging.
	SerialMonitorOpen bool
}

// DefaultEditorState assumes the serial monitor is open.
func DefaultEditorState() EditorState {
	return EditorState{SerialMonitorOpen: true}
}

// Result is the caller-owned outcome of one analysis call. There is no
// hidden "last hints" module state: re-displaying hints is a method on the
// result the caller already holds.
type Result struct {
	Hints        []Hint
	CursorLine   int // 0-based, as resolved during analysis
	CursorColumn int
}

// Rendered returns display-ready strings in ranked order.
func (r *Result) Rendered() []string {
	out := make([]string, len(r.Hints))
	for i, h := range r.Hints {
		out[i] = h.Render()
	}
	return out
}

// Ranked returns a ranked copy of hs for the given 0-based cursor line.
// The input slice is left untouched, so callers may rank the same hint set
// against many cursors (e.g. when serving cached analysis results).
func Ranked(hs []Hint, cursorLine int) []Hint {
	out := make([]Hint, len(hs))
	copy(out, hs)
	rank(out, cursorLine)
	return out
}

// rank orders hints nearest-to-cursor first, breaking ties warning-first,
// then by line number. Sorting is stable so equal keys keep detector order.
func rank(hints []Hint, cursorLine int) {
	sort.SliceStable(hints, func(i, j int) bool {
		di := absInt(hints[i].Line - (cursorLine + 1))
		dj := absInt(hints[j].Line - (cursorLine + 1))
		if di != dj {
			return di < dj
		}
		wi := severityRank(hints[i].Severity)
		wj := severityRank(hints[j].Severity)
		if wi != wj {
			return wi < wj
		}
		return hints[i].Line < hints[j].Line
	})
}

func severityRank(s Severity) int {
	if s == SeverityWarning {
		return 0
	}
	return 1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
