package preprocess

import (
	"regexp"
	"strings"

	"github.com/cowboydaniel/sketchcheck/internal/source"
)

// functionDefRe matches a function-definition head line: optional
// inline/static qualifier, return type, name, parameter list, and either an
// opening brace or end of line.
var functionDefRe = regexp.MustCompile(`^\s*(?:inline\s+|static\s+)?([a-zA-Z_][\w\s\*&:<>,]*?)\s+([a-zA-Z_]\w*)\s*\((.*?)\)\s*(\{|$)`)

// handWrittenProtoRe matches a hand-written prototype statement (ends in a
// semicolon rather than a brace).
var handWrittenProtoRe = regexp.MustCompile(`^\s*(?:inline\s+|static\s+|extern\s+)?(?:const\s+)?([a-zA-Z_][\w\s\*&:<>,]*?)\s+([a-zA-Z_]\w*)\s*\((.*?)\)\s*;`)

// returnTypeStopWords are keywords that disqualify a match as a function
// definition: their presence means the "return type" capture latched onto a
// type definition, control statement, or similar false positive.
var returnTypeStopWords = []string{
	"class", "struct", "enum", "typedef", "namespace",
	"if", "while", "for", "switch",
}

func returnTypeDisqualified(returnType string) bool {
	for _, word := range identRe.FindAllString(returnType, -1) {
		for _, stop := range returnTypeStopWords {
			if word == stop {
				return true
			}
		}
	}
	return false
}

// SynthesizePrototypes scans for user-defined function definitions and
// emits forward declarations for those whose signatures use only built-in
// types. setup and loop never get prototypes; neither do class methods
// (:: in the return type), preprocessor lines, or any function whose return
// type or parameters mention a custom type — those rely on the hoisted type
// block plus their natural definition order.
func SynthesizePrototypes(src string, customTypes TypeSet) []Prototype {
	var prototypes []Prototype

	for _, line := range source.Lines(source.Scrub(src)) {
		m := functionDefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		returnType := strings.TrimSpace(m[1])
		name := m[2]
		params := strings.TrimSpace(m[3])

		if name == "setup" || name == "loop" {
			continue
		}
		// "else if (...) {" parses as return type "else", name "if";
		// reject control keywords in the name position outright.
		switch name {
		case "if", "while", "for", "switch":
			continue
		}
		if returnType == "else" {
			continue
		}
		if strings.Contains(returnType, "::") {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") || strings.HasPrefix(returnType, "#") {
			continue
		}
		if returnTypeDisqualified(returnType) {
			continue
		}
		if customTypes.mentionsAny(returnType + " " + params) {
			continue
		}

		prototypes = append(prototypes, Prototype{
			ReturnType: returnType,
			Name:       name,
			Parameters: params,
		})
	}

	return prototypes
}

// RemovePrototypesUsingCustomTypes drops hand-written prototype statements
// whose signature references a custom type. Such prototypes precede the
// hoisted type block in the synthesized unit and would fail to compile; the
// hoisting itself makes them redundant.
func RemovePrototypesUsingCustomTypes(src string, customTypes TypeSet) string {
	if len(customTypes) == 0 {
		return src
	}

	lines := source.Lines(src)
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if m := handWrittenProtoRe.FindStringSubmatch(line); m != nil {
			if customTypes.mentionsAny(m[0]) {
				continue
			}
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
