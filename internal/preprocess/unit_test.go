package preprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for unit synthesis:
// - Rendered unit opens with the platform umbrella include
// - Hoisted type block appears once, before every reference to the type
// - Forward declarations survive in the body and never duplicate the
//   hoisted definition
// - Hand-written prototypes using custom types are absent from the output
// - Synthesized prototypes cover built-in-typed helpers only
// - A sketch without custom types renders without the type marker

func TestBuildUnit_PointControlScenario(t *testing.T) {
	t.Parallel()

	src := "struct PointControl;\nvoid f(PointControl&p);\nstruct PointControl{int pin;};\n"
	unit := BuildUnit(src)
	out := unit.Render()

	// Exactly one full definition, hoisted.
	assert.Equal(t, 1, strings.Count(out, "struct PointControl{int pin;};"))
	// Forward declaration retained verbatim in the body.
	assert.Contains(t, unit.Body, "struct PointControl;")
	// The hand-written prototype for f uses the custom type: filtered out.
	assert.NotContains(t, out, "void f(PointControl&p);")
	for _, p := range unit.Prototypes {
		assert.NotEqual(t, "f", p.Name)
	}

	// Definition precedes every later reference.
	defPos := strings.Index(out, "struct PointControl{int pin;};")
	fwdPos := strings.Index(out, "struct PointControl;")
	require.GreaterOrEqual(t, defPos, 0)
	require.GreaterOrEqual(t, fwdPos, 0)
	assert.Less(t, defPos, fwdPos)
}

func TestBuildUnit_RenderLayout(t *testing.T) {
	t.Parallel()

	unit := BuildUnit(helperSketch)
	out := unit.Render()

	assert.True(t, strings.HasPrefix(out, "#include <Arduino.h>\n"))
	assert.Contains(t, out, "// Forward declarations for custom types")

	includePos := strings.Index(out, "#include <Arduino.h>")
	typesPos := strings.Index(out, "struct PointControl {")
	protoPos := strings.Index(out, "void blinkLED(int pin, int duration);")
	bodyPos := strings.Index(out, "void setup()")

	assert.Less(t, includePos, typesPos)
	assert.Less(t, typesPos, protoPos)
	assert.Less(t, protoPos, bodyPos)
}

func TestBuildUnit_SoundnessWithReferences(t *testing.T) {
	t.Parallel()

	src := `PointControl points[4];

void setup() {
  initializePoint(points[0]);
}

struct PointControl {
  int pin;
};

void initializePoint(PointControl& point) {
  point.pin = 2;
}

void loop() {}
`
	unit := BuildUnit(src)
	out := unit.Render()

	assert.Equal(t, 1, strings.Count(out, "struct PointControl {"))
	defPos := strings.Index(out, "struct PointControl {")
	firstUse := strings.Index(out, "PointControl points[4];")
	require.GreaterOrEqual(t, firstUse, 0)
	assert.Less(t, defPos, firstUse)
}

func TestBuildUnit_NoCustomTypes(t *testing.T) {
	t.Parallel()

	src := "void helper(int x) {\n}\nvoid setup() {\n}\nvoid loop() {\n}\n"
	unit := BuildUnit(src)
	out := unit.Render()

	assert.Empty(t, unit.Types)
	assert.NotContains(t, out, "// Forward declarations for custom types")
	assert.Contains(t, out, "void helper(int x);")
}
