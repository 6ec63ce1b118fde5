package ram

import (
	"regexp"
	"strings"

	"github.com/cowboydaniel/sketchcheck/internal/source"
)

// scalarType pairs a declaration keyword with its width in bytes. Widths
// are the 8-bit AVR values; int-class types widen with the board profile.
type scalarType struct {
	keyword  string
	width    int
	intClass bool // width follows the board's int width
}

// scalarTypes is ordered longest-keyword-first so "unsigned long long"
// reports before "unsigned long" in diagnostics; each pattern is anchored
// with word boundaries so shorter keywords still match independently.
var scalarTypes = []scalarType{
	{"unsigned long long", 8, false},
	{"unsigned long", 4, false},
	{"unsigned int", 0, true},
	{"unsigned char", 1, false},
	{"long long", 8, false},
	{"int8_t", 1, false},
	{"uint8_t", 1, false},
	{"int16_t", 2, false},
	{"uint16_t", 2, false},
	{"int32_t", 4, false},
	{"uint32_t", 4, false},
	{"size_t", 0, true},
	{"double", 4, false},
	{"float", 4, false},
	{"long", 4, false},
	{"char", 1, false},
	{"byte", 1, false},
	{"bool", 1, false},
	{"word", 0, true},
	{"int", 0, true},
}

var (
	progmemRe    = regexp.MustCompile(`\bPROGMEM\b`)
	arrayRe      = regexp.MustCompile(`\b(\w+)\s+(\w+)\s*\[(\d+)\]\s*(?:=|;)`)
	initArrayRe  = regexp.MustCompile(`\b(\w+)\s+\w+\s*\[\s*\]\s*=\s*\{([^}]+)\}`)
	pointerRe    = regexp.MustCompile(`\b(\w+)\s*\*\s*(\w+)\s*(?:=|;)`)
	stringObjRe  = regexp.MustCompile(`\bString\s+(\w+(?:\s*,\s*\w+)*)\s*(?:=|;|\()`)
	servoRe      = regexp.MustCompile(`Servo\s+\w+`)
	softSerialRe = regexp.MustCompile(`SoftwareSerial\s+\w+\s*\(`)
)

// scalarDeclRes maps each scalar keyword to its compiled declaration
// pattern: optional static/volatile/const qualifiers, then one or more
// comma-separated names ending in '=' or ';'.
var scalarDeclRes = buildScalarDeclRes()

func buildScalarDeclRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(scalarTypes))
	for _, st := range scalarTypes {
		res[st.keyword] = regexp.MustCompile(
			`\b` + regexp.QuoteMeta(st.keyword) +
				`\s+(?:(?:static|volatile|const)\s+)*(\w+(?:\s*,\s*\w+)*)\s*(?:=|;)`)
	}
	return res
}

// Library cost table: flat additions per recognized usage.
const (
	serialCost        = 175 // 64B RX + 64B TX buffers plus object overhead
	wireCost          = 32
	ethernetCost      = 8192
	sdCost            = 512
	wifiCost          = 1024
	servoCost         = 1
	liquidCrystalCost = 8
	softSerialCost    = 64
	stringObjectCost  = 6
)

// Estimate computes the estimated RAM usage in bytes of a sketch compiled
// for the named board. Deterministic, never negative, and monotonic: adding
// declarations or library usage never lowers the result. Unknown boards use
// the 8-bit default profile. Malformed source degrades to a best-effort
// count, never an error.
func Estimate(src, boardName string) int {
	return EstimateWithProfile(src, Profile(boardName))
}

// EstimateWithProfile is Estimate with an explicit board profile, used when
// configuration overrides the built-in table.
func EstimateWithProfile(src string, profile BoardProfile) int {
	if strings.TrimSpace(src) == "" {
		return 0
	}

	code := source.Scrub(src)
	total := profile.BaseOverheadBytes

	// PROGMEM data lives in flash, not RAM.
	noProgmem := progmemRe.ReplaceAllString(code, "")

	total += countScalars(noProgmem, profile)
	total += countArrays(noProgmem, profile)
	total += countPointers(noProgmem, profile)
	total += countStringObjects(code)
	total += libraryCosts(code, profile)

	return total
}

func scalarWidth(keyword string, profile BoardProfile) int {
	for _, st := range scalarTypes {
		if st.keyword == keyword {
			if st.intClass {
				return profile.IntWidthBytes
			}
			return st.width
		}
	}
	return 1
}

func countScalars(code string, profile BoardProfile) int {
	total := 0
	for _, st := range scalarTypes {
		width := st.width
		if st.intClass {
			width = profile.IntWidthBytes
		}
		for _, m := range scalarDeclRes[st.keyword].FindAllStringSubmatch(code, -1) {
			names := strings.Split(m[1], ",")
			total += len(names) * width
		}
	}
	return total
}

func countArrays(code string, profile BoardProfile) int {
	total := 0

	for _, m := range arrayRe.FindAllStringSubmatch(code, -1) {
		size := atoiSafe(m[3])
		total += size * scalarWidth(m[1], profile)
	}

	for _, m := range initArrayRe.FindAllStringSubmatch(code, -1) {
		elements := 0
		for _, e := range strings.Split(m[2], ",") {
			if strings.TrimSpace(e) != "" {
				elements++
			}
		}
		total += elements * scalarWidth(m[1], profile)
	}

	return total
}

func countPointers(code string, profile BoardProfile) int {
	width := profile.PointerWidthBytes
	if width == 0 {
		width = 2
	}
	matches := pointerRe.FindAllString(code, -1)
	return len(matches) * width
}

func countStringObjects(code string) int {
	total := 0
	for _, m := range stringObjRe.FindAllStringSubmatch(code, -1) {
		total += len(strings.Split(m[1], ",")) * stringObjectCost
	}
	return total
}

func libraryCosts(code string, profile BoardProfile) int {
	total := 0

	for _, port := range []string{"Serial", "Serial1", "Serial2", "Serial3"} {
		if strings.Contains(code, port+".begin") || strings.Contains(code, port+".") {
			total += serialCost
		}
	}
	if strings.Contains(code, "Wire.begin") || strings.Contains(code, "Wire.") ||
		strings.Contains(code, "#include <Wire.h>") {
		total += wireCost
	}
	if strings.Contains(code, "Ethernet.") || strings.Contains(code, "#include <Ethernet") {
		total += ethernetCost
	}
	if strings.Contains(code, "SD.") || strings.Contains(code, "#include <SD.h>") {
		total += sdCost
	}
	if strings.Contains(code, "WiFi.") && strings.Contains(profile.Name, "ESP") {
		total += wifiCost
	}

	total += len(servoRe.FindAllString(code, -1)) * servoCost

	if strings.Contains(code, "LiquidCrystal") {
		total += liquidCrystalCost
	}

	total += len(softSerialRe.FindAllString(code, -1)) * softSerialCost

	return total
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return n
		}
		n = n*10 + int(c-'0')
	}
	return n
}
