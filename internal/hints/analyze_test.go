package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for analysis and ranking:
// - Analyze aggregates detector output across the whole sketch
// - AnalyzeContext ranks nearest-to-cursor first, warnings win ties,
//   line number breaks remaining ties, and equal keys keep detector order
// - Offset cursors resolve to the correct line and column
// - Rendered output carries the "(line N)" suffix

const rankSketch = "pinMode(13, OUTPUT);\nvoid loop(){ delay(200); }\n"

func TestAnalyze_CollectsAcrossDetectors(t *testing.T) {
	t.Parallel()

	hints := Analyze(rankSketch, DefaultEditorState())

	// Pin 13 is configured but never read or written: warning. The literal
	// 13 earns the LED_BUILTIN tip, and the long delay earns the millis tip.
	require.Len(t, hints, 3)

	byType := map[string]Hint{}
	for _, h := range hints {
		byType[h.Type] = h
	}
	assert.Contains(t, byType, "unused-pin")
	assert.Contains(t, byType, "led-pin")
	assert.Contains(t, byType, "timing")
	assert.Equal(t, 1, byType["led-pin"].Line)
	assert.Equal(t, 2, byType["timing"].Line)
}

func TestAnalyzeContext_RanksByCursorProximity(t *testing.T) {
	t.Parallel()

	res := AnalyzeContext(rankSketch, CursorAt(1, 0), DefaultEditorState())

	require.Len(t, res.Hints, 3)
	// Cursor sits on the loop line, so the delay tip outranks both line-1
	// hints; between those, the warning comes first.
	assert.Equal(t, "timing", res.Hints[0].Type)
	assert.Equal(t, SeverityWarning, res.Hints[1].Severity)
	assert.Equal(t, "led-pin", res.Hints[2].Type)
}

func TestAnalyzeContext_WarningWinsTies(t *testing.T) {
	t.Parallel()

	res := AnalyzeContext(rankSketch, CursorAt(0, 0), DefaultEditorState())

	require.Len(t, res.Hints, 3)
	assert.Equal(t, SeverityWarning, res.Hints[0].Severity)
	assert.Equal(t, "led-pin", res.Hints[1].Type)
	assert.Equal(t, "timing", res.Hints[2].Type)
}

func TestAnalyzeContext_OffsetCursor(t *testing.T) {
	t.Parallel()

	// Offset 25 lands inside "void loop...": line 1, column 4.
	res := AnalyzeContext(rankSketch, CursorAtOffset(25), DefaultEditorState())

	assert.Equal(t, 1, res.CursorLine)
	assert.Equal(t, 4, res.CursorColumn)
	require.NotEmpty(t, res.Hints)
	assert.Equal(t, "timing", res.Hints[0].Type)
}

func TestAnalyzeContext_Deterministic(t *testing.T) {
	t.Parallel()

	first := AnalyzeContext(rankSketch, CursorAt(0, 0), DefaultEditorState())
	second := AnalyzeContext(rankSketch, CursorAt(0, 0), DefaultEditorState())

	assert.Equal(t, first.Hints, second.Hints)
}

func TestResult_Rendered(t *testing.T) {
	t.Parallel()

	res := &Result{Hints: []Hint{
		{Message: "Use LED_BUILTIN instead of 13 for the built-in LED", Line: 1},
	}}

	out := res.Rendered()
	require.Len(t, out, 1)
	assert.Equal(t, "Use LED_BUILTIN instead of 13 for the built-in LED (line 1)", out[0])
}

func TestAnalyze_CleanSketchIsQuiet(t *testing.T) {
	t.Parallel()

	code := "void setup() {\n  pinMode(LED_BUILTIN, OUTPUT);\n}\nvoid loop() {\n  digitalWrite(LED_BUILTIN, HIGH);\n}\n"
	assert.Empty(t, Analyze(code, DefaultEditorState()))
}
