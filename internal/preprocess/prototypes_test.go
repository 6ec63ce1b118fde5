package preprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for prototype synthesis and filtering:
// - Built-in-typed helper functions get prototypes in first-seen order
// - setup and loop never get prototypes
// - Functions whose signature mentions a custom type are skipped
// - Class method definitions (::) and preprocessor lines are skipped
// - Identifier matching is exact: Point does not match PointControl
// - Hand-written prototypes referencing custom types are removed, others kept

const helperSketch = `struct PointControl {
  int pin;
};

void initializePoint(PointControl& point) {
  point.pin = 2;
}

void blinkLED(int pin, int duration) {
  digitalWrite(pin, HIGH);
}

int readSmoothed(int pin) {
  return analogRead(pin);
}

void setup() {
  Serial.begin(9600);
}

void loop() {
  delay(1000);
}
`

func TestSynthesizePrototypes_BuiltinsOnly(t *testing.T) {
	t.Parallel()

	defs, _ := ExtractTypes(helperSketch)
	names := CustomTypeNames(defs, helperSketch)
	protos := SynthesizePrototypes(helperSketch, names)

	require.Len(t, protos, 2)
	assert.Equal(t, "void blinkLED(int pin, int duration);", protos[0].String())
	assert.Equal(t, "int readSmoothed(int pin);", protos[1].String())
}

func TestSynthesizePrototypes_ExcludesSetupAndLoop(t *testing.T) {
	t.Parallel()

	protos := SynthesizePrototypes("void setup() {\n}\nvoid loop() {\n}\n", nil)
	assert.Empty(t, protos)
}

func TestSynthesizePrototypes_SkipsMethodsAndPreprocessor(t *testing.T) {
	t.Parallel()

	src := "#include <Wire.h>\nvoid Motor::spin(int rpm) {\n}\nvoid helper(int x) {\n}\n"
	protos := SynthesizePrototypes(src, nil)

	require.Len(t, protos, 1)
	assert.Equal(t, "helper", protos[0].Name)
}

func TestSynthesizePrototypes_ExactIdentifierMatch(t *testing.T) {
	t.Parallel()

	// Custom type "Point" must not disqualify a function whose parameter
	// type merely contains it as a substring.
	names := TypeSet{"Point": {}}
	src := "void usePointControl(PointControl& pc) {\n}\nvoid usePoint(Point& p) {\n}\n"
	protos := SynthesizePrototypes(src, names)

	require.Len(t, protos, 1)
	assert.Equal(t, "usePointControl", protos[0].Name)
}

func TestSynthesizePrototypes_IgnoresControlFlowFalsePositives(t *testing.T) {
	t.Parallel()

	src := "void tick() {\n  else if (millis() > 100) {\n  }\n}\n"
	protos := SynthesizePrototypes(src, nil)

	require.Len(t, protos, 1)
	assert.Equal(t, "tick", protos[0].Name)
}

func TestRemovePrototypesUsingCustomTypes(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"void initializePoint(PointControl& point);",
		"int interpretState(const PointControl& point, int analogValue);",
		"void blinkLED(int pin, int duration);",
		"int counter;",
	}, "\n")

	names := TypeSet{"PointControl": {}}
	got := RemovePrototypesUsingCustomTypes(src, names)

	assert.NotContains(t, got, "initializePoint")
	assert.NotContains(t, got, "interpretState")
	assert.Contains(t, got, "void blinkLED(int pin, int duration);")
	assert.Contains(t, got, "int counter;")
}

func TestRemovePrototypesUsingCustomTypes_NoTypesNoChange(t *testing.T) {
	t.Parallel()

	src := "void a(int x);\nvoid b();\n"
	assert.Equal(t, src, RemovePrototypesUsingCustomTypes(src, nil))
}
