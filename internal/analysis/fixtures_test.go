package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the fixture sketches:
// - blink.ino: hardcoded pin 13 earns LED_BUILTIN tips, the 1000 ms delays
//   earn millis tips, and the RAM estimate is the bare-sketch baseline
// - thermostat.ino: the forward-declared struct survives preprocessing,
//   the prototype mentioning it is dropped, and RAM reflects the array,
//   String object and Serial usage

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "sketches", name))
	require.NoError(t, err)
	return string(data)
}

func TestFixture_Blink(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, Config{})
	src := readFixture(t, "blink.ino")

	report := a.Analyze(src, Options{Board: "Arduino Uno", SerialMonitorOpen: true})

	// No declarations beyond the runtime baseline.
	assert.Equal(t, 9, report.RAMBytes)

	var ledTips, timingTips int
	for _, h := range report.Hints.Hints {
		switch h.Type {
		case "led-pin":
			ledTips++
		case "timing":
			timingTips++
		}
	}
	assert.Equal(t, 3, ledTips, "pinMode(13) plus two digitalWrite(13) calls")
	assert.Equal(t, 2, timingTips, "two blocking delays in loop()")
}

func TestFixture_Thermostat(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t, Config{})
	src := readFixture(t, "thermostat.ino")

	report := a.Analyze(src, Options{Board: "Arduino Uno", SerialMonitorOpen: true})

	require.Len(t, report.Unit.Types, 1)
	assert.Equal(t, "ThermostatState", report.Unit.Types[0].Name)
	assert.Contains(t, report.Unit.TypeNames, "ThermostatState")

	// The hand-written prototype mentioning the struct is removed, and
	// synthesis skips functions whose signatures mention custom types, so
	// nothing in the prototype block references the struct.
	for _, p := range report.Unit.Prototypes {
		assert.NotContains(t, p.Parameters, "ThermostatState")
	}

	assert.Greater(t, report.RAMBytes, 9, "array, String and Serial must all cost RAM")
}
