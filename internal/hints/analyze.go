package hints

import (
	"github.com/cowboydaniel/sketchcheck/internal/source"
)

// Analyze runs every detector over the sketch and returns the hints in
// detector order, unranked. Callers that have a cursor should prefer
// AnalyzeContext.
func Analyze(code string, state EditorState) []Hint {
	lines := source.Lines(code)

	var hints []Hint
	hints = append(hints, DetectUnusedPinModes(lines)...)
	hints = append(hints, DetectDelayInLoop(lines)...)
	hints = append(hints, DetectSerialMonitorState(code, lines, state)...)
	hints = append(hints, DetectHardcodedLEDPin(lines)...)
	hints = append(hints, DetectHardcodedPins(lines)...)
	hints = append(hints, DetectSerialWithoutMonitorComment(code, lines)...)
	hints = append(hints, DetectMissingPinMode(lines)...)
	hints = append(hints, DetectMagicNumbers(lines)...)
	hints = append(hints, DetectAnalogPinMode(lines)...)
	return hints
}

// AnalyzeContext runs every detector and ranks the hints by proximity to
// the cursor: nearest line first, warnings winning ties, stable on line
// number. The returned result is owned by the caller; repeated calls do
// not share state.
func AnalyzeContext(code string, cursor Cursor, state EditorState) *Result {
	return BuildResult(code, Analyze(code, state), cursor)
}

// BuildResult resolves the cursor against code and ranks a copy of hs into
// a caller-owned Result. Used directly by callers that already hold the
// unranked hint set (e.g. from a cache) and only need re-ranking.
func BuildResult(code string, hs []Hint, cursor Cursor) *Result {
	line, column := cursor.Line, cursor.Column
	if cursor.HasOffset {
		line, column = source.LineColumn(code, cursor.Offset)
	}

	return &Result{
		Hints:        Ranked(hs, line),
		CursorLine:   line,
		CursorColumn: column,
	}
}
