package preprocess

import (
	"regexp"
	"strings"

	"github.com/cowboydaniel/sketchcheck/internal/source"
)

// typeHeadRe matches the first line of a struct/class/enum definition or
// forward declaration, optionally typedef-qualified.
var typeHeadRe = regexp.MustCompile(`^\s*(?:typedef\s+)?(struct|class|enum)\s+([A-Za-z_]\w*)`)

// typedefAliasRe matches a one-line typedef alias such as
// "typedef unsigned long ticks_t;".
var typedefAliasRe = regexp.MustCompile(`^\s*typedef\s+.*?\s+([A-Za-z_]\w*)\s*;`)

// ExtractTypes finds every full struct/class/enum definition at top level,
// removes it from the source, and returns the definitions in first-seen
// order together with the remaining source text.
//
// Detection runs on comment-scrubbed text so commented-out definitions are
// ignored, but the captured and remaining lines keep their original text.
// Forward declarations (a semicolon and no brace on the head line) are left
// exactly where the author put them: code between a forward declaration and
// the full definition may rely on that ordering.
//
// Multiple full definitions of the same name are all extracted without
// deduplication; resolving that conflict is left to the compiler.
func ExtractTypes(src string) ([]TypeDefinition, string) {
	originalLines := source.Lines(src)
	detectionLines := source.Lines(source.Scrub(src))
	if len(detectionLines) > len(originalLines) {
		detectionLines = detectionLines[:len(originalLines)]
	}

	var defs []TypeDefinition
	removed := make(map[int]bool)

	i := 0
	for i < len(detectionLines) {
		line := detectionLines[i]
		m := typeHeadRe.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}

		// Forward declaration: keep in place, extract nothing.
		if strings.Contains(line, ";") && !strings.Contains(line, "{") {
			i++
			continue
		}

		start := i
		body := []string{originalLines[i]}
		braces := strings.Count(detectionLines[i], "{") - strings.Count(detectionLines[i], "}")
		i++

		// Consume lines until the brace region balances.
		for i < len(detectionLines) && braces > 0 {
			body = append(body, originalLines[i])
			braces += strings.Count(detectionLines[i], "{") - strings.Count(detectionLines[i], "}")
			i++
		}

		// Then consume trailing lines (e.g. a typedef alias after the
		// closing brace) through the terminating semicolon.
		for i < len(detectionLines) && !strings.HasSuffix(strings.TrimRight(body[len(body)-1], " \t"), ";") {
			body = append(body, originalLines[i])
			i++
			if strings.Contains(body[len(body)-1], ";") {
				break
			}
		}

		for n := start; n < i; n++ {
			removed[n] = true
		}

		defs = append(defs, TypeDefinition{
			Kind:  TypeKind(m[1]),
			Name:  m[2],
			Lines: body,
			Order: len(defs),
		})
	}

	var remainder []string
	for n, line := range originalLines {
		if !removed[n] {
			remainder = append(remainder, line)
		}
	}

	return defs, strings.Join(remainder, "\n")
}

// TypesBlock concatenates extracted definitions in first-seen order,
// separated by blank lines.
func TypesBlock(defs []TypeDefinition) string {
	if len(defs) == 0 {
		return ""
	}
	parts := make([]string, len(defs))
	for i, d := range defs {
		parts[i] = d.Text()
	}
	return strings.Join(parts, "\n\n")
}

// CustomTypeNames collects the set of user-defined type identifiers from
// extracted definitions plus any one-line typedef aliases still present in
// the source.
func CustomTypeNames(defs []TypeDefinition, src string) TypeSet {
	set := make(TypeSet)
	for _, d := range defs {
		set[d.Name] = struct{}{}
	}
	for _, line := range source.Lines(source.Scrub(src)) {
		if m := typedefAliasRe.FindStringSubmatch(line); m != nil {
			set[m[1]] = struct{}{}
		}
	}
	return set
}
