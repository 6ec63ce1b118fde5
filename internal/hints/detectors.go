package hints

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cowboydaniel/sketchcheck/internal/source"
)

var (
	pinModeRe      = regexp.MustCompile(`pinMode\s*\(\s*(\w+)\s*,\s*(OUTPUT|INPUT|INPUT_PULLUP)\s*\)`)
	pinUsageRe     = regexp.MustCompile(`(digitalWrite|digitalRead|analogWrite|analogRead)\s*\(\s*(\w+)`)
	ledPinModeRe   = regexp.MustCompile(`pinMode\s*\(\s*13\s*,\s*(OUTPUT|INPUT)\s*\)`)
	ledWriteRe     = regexp.MustCompile(`digitalWrite\s*\(\s*13\s*,`)
	hardcodedPinRe = regexp.MustCompile(`(pinMode|digitalWrite|digitalRead)\s*\(\s*([0-9]|1[0-2])\s*,`)
	constDefineRe  = regexp.MustCompile(`\b(const|#define)\b`)
	delayRe        = regexp.MustCompile(`delay\s*\(\s*(\d+)\s*\)`)
	serialUseRe    = regexp.MustCompile(`Serial\.(begin|print|println|write)`)
	monitorWordRe  = regexp.MustCompile(`(?i)serial monitor|monitor`)
	digitalIORe    = regexp.MustCompile(`(digitalWrite|digitalRead)\s*\(\s*(\w+)\s*,?`)
	pinModePinRe   = regexp.MustCompile(`pinMode\s*\(\s*(\w+)\s*,`)
	thresholdRe    = regexp.MustCompile(`(analogRead|digitalRead)\s*\([^)]+\)\s*([<>=!]+)\s*(\d{2,})`)
	analogModeRe   = regexp.MustCompile(`pinMode\s*\(\s*A[0-7]\s*,\s*INPUT\s*\)`)
	stringLitRe    = regexp.MustCompile(`"[^"]*"`)
)

// delayThresholdMs is the longest delay() tolerated in loop() before the
// millis() suggestion fires; short delays are usually deliberate.
const delayThresholdMs = 50

// DetectUnusedPinModes flags pins configured with pinMode but never passed
// to a digital/analog read or write.
func DetectUnusedPinModes(lines []string) []Hint {
	pinLines := map[string]int{}
	order := []string{}
	for n, line := range lines {
		for _, m := range pinModeRe.FindAllStringSubmatch(line, -1) {
			if _, seen := pinLines[m[1]]; !seen {
				pinLines[m[1]] = n + 1
				order = append(order, m[1])
			}
		}
	}
	if len(pinLines) == 0 {
		return nil
	}

	used := map[string]bool{}
	for _, line := range lines {
		for _, m := range pinUsageRe.FindAllStringSubmatch(line, -1) {
			used[m[2]] = true
		}
	}

	var hints []Hint
	for _, pin := range order {
		if !used[pin] {
			hints = append(hints, Hint{
				Message:  fmt.Sprintf("pinMode() called for %s but the pin is never used", pin),
				Line:     pinLines[pin],
				Severity: SeverityWarning,
				Type:     "unused-pin",
				Tags:     []string{"pinMode", "usage"},
			})
		}
	}
	return hints
}

// DetectDelayInLoop flags delay() calls longer than 50 ms inside loop(),
// suggesting millis()-based timing instead. Only loop()'s body is scoped;
// delays in helpers are left alone. The body may start on the head line
// itself (void loop(){ delay(200); }).
func DetectDelayInLoop(lines []string) []Hint {
	var hints []Hint

	inLoop := false
	braceSeen := false
	depth := 0

	for n, line := range lines {
		if !inLoop {
			if !source.IsLoopHead(line) {
				continue
			}
			inLoop = true
			braceSeen = false
			depth = 0
		}

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")
		if opens > 0 {
			braceSeen = true
		}
		depth += opens - closes

		if m := delayRe.FindStringSubmatchIndex(line); m != nil {
			ms, _ := strconv.Atoi(line[m[2]:m[3]])
			if ms > delayThresholdMs {
				hints = append(hints, Hint{
					Message:  "Consider using millis() instead of delay() for non-blocking code",
					Line:     n + 1,
					Column:   m[0],
					Severity: SeverityTip,
					Type:     "timing",
					Tags:     []string{"delay", "millis"},
				})
			}
		}

		if braceSeen && depth <= 0 {
			inLoop = false
		}
	}
	return hints
}

// DetectSerialMonitorState reminds about Serial.begin when the editor
// reports the serial monitor closed. First match only.
func DetectSerialMonitorState(code string, lines []string, state EditorState) []Hint {
	if state.SerialMonitorOpen || !strings.Contains(code, "Serial.begin") {
		return nil
	}
	for n, line := range lines {
		if strings.Contains(line, "Serial.begin") {
			return []Hint{{
				Message:  "Serial.begin() detected but Serial Monitor appears to be closed",
				Line:     n + 1,
				Severity: SeverityInfo,
				Type:     "serial-monitor",
				Tags:     []string{"Serial", "monitor"},
			}}
		}
	}
	return nil
}

// DetectHardcodedLEDPin suggests LED_BUILTIN for literal pin 13 usage.
func DetectHardcodedLEDPin(lines []string) []Hint {
	var hints []Hint
	for n, line := range lines {
		clean := source.StripLineComments(line)

		if m := ledPinModeRe.FindStringIndex(clean); m != nil {
			hints = append(hints, Hint{
				Message:  "Use LED_BUILTIN instead of 13 for the built-in LED",
				Line:     n + 1,
				Column:   m[0],
				Severity: SeverityTip,
				Type:     "led-pin",
				Tags:     []string{"LED_BUILTIN", "pinMode"},
			})
		}
		if m := ledWriteRe.FindStringIndex(clean); m != nil {
			hints = append(hints, Hint{
				Message:  "Use LED_BUILTIN instead of hardcoding 13",
				Line:     n + 1,
				Column:   m[0],
				Severity: SeverityTip,
				Type:     "led-pin",
				Tags:     []string{"LED_BUILTIN", "digitalWrite"},
			})
		}
	}
	return hints
}

// DetectHardcodedPins suggests named constants for literal single and
// double digit pins other than 13, skipping const/#define lines.
func DetectHardcodedPins(lines []string) []Hint {
	var hints []Hint
	for n, line := range lines {
		clean := stringLitRe.ReplaceAllString(source.StripLineComments(line), "")
		if constDefineRe.MatchString(clean) {
			continue
		}

		if m := hardcodedPinRe.FindStringSubmatchIndex(clean); m != nil {
			pin := clean[m[4]:m[5]]
			if pin == "13" {
				continue
			}
			hints = append(hints, Hint{
				Message:  fmt.Sprintf("Consider using a named constant instead of pin %s", pin),
				Line:     n + 1,
				Column:   m[0],
				Severity: SeverityTip,
				Type:     "hardcoded-pin",
				Tags:     []string{"pin", "constant"},
			})
		}
	}
	return hints
}

// DetectSerialWithoutMonitorComment reminds about the Serial Monitor when
// Serial is used and no comment anywhere mentions a monitor. First Serial
// usage only.
func DetectSerialWithoutMonitorComment(code string, lines []string) []Hint {
	if !serialUseRe.MatchString(code) || monitorWordRe.MatchString(code) {
		return nil
	}
	for n, line := range lines {
		if serialUseRe.MatchString(line) {
			return []Hint{{
				Message:  "Remember to open the Serial Monitor to see output",
				Line:     n + 1,
				Severity: SeverityInfo,
				Type:     "serial-monitor",
				Tags:     []string{"Serial", "monitor"},
			}}
		}
	}
	return nil
}

// DetectMissingPinMode flags identifier pins passed to digitalWrite or
// digitalRead that never appear in a pinMode call. Numeric literals are
// skipped (possibly intentional), and each pin is reported once, at its
// first use.
func DetectMissingPinMode(lines []string) []Hint {
	configured := map[string]bool{}
	for _, line := range lines {
		for _, m := range pinModePinRe.FindAllStringSubmatch(line, -1) {
			configured[m[1]] = true
		}
	}

	var hints []Hint
	reported := map[string]bool{}
	for n, line := range lines {
		clean := source.StripLineComments(line)
		for _, m := range digitalIORe.FindAllStringSubmatchIndex(clean, -1) {
			pin := clean[m[4]:m[5]]
			if reported[pin] || configured[pin] || isNumeric(pin) {
				continue
			}
			reported[pin] = true
			hints = append(hints, Hint{
				Message:  fmt.Sprintf("Don't forget to set pinMode for pin '%s' in setup()", pin),
				Line:     n + 1,
				Column:   m[0],
				Severity: SeverityInfo,
				Type:     "missing-pinmode",
				Tags:     []string{"pinMode", "setup"},
			})
		}
	}
	return hints
}

// DetectMagicNumbers flags raw numeric thresholds of two or more digits
// compared against analogRead/digitalRead results.
func DetectMagicNumbers(lines []string) []Hint {
	var hints []Hint
	for n, line := range lines {
		clean := source.StripLineComments(line)
		if constDefineRe.MatchString(clean) {
			continue
		}
		for _, m := range thresholdRe.FindAllStringSubmatchIndex(clean, -1) {
			threshold := clean[m[6]:m[7]]
			hints = append(hints, Hint{
				Message:  fmt.Sprintf("Consider using a named constant for threshold value %s", threshold),
				Line:     n + 1,
				Column:   m[0],
				Severity: SeverityTip,
				Type:     "magic-number",
				Tags:     []string{"threshold", "constant"},
			})
		}
	}
	return hints
}

// DetectAnalogPinMode notes that pinMode(Ax, INPUT) is unnecessary for
// analogRead.
func DetectAnalogPinMode(lines []string) []Hint {
	var hints []Hint
	for n, line := range lines {
		if m := analogModeRe.FindStringIndex(line); m != nil {
			hints = append(hints, Hint{
				Message:  "pinMode is not required for analogRead() on analog pins",
				Line:     n + 1,
				Column:   m[0],
				Severity: SeverityInfo,
				Type:     "analog-pinmode",
				Tags:     []string{"pinMode", "analogRead"},
			})
		}
	}
	return hints
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
