package source

import (
	"regexp"
	"strings"
)

// functionHeadRe matches a function-definition head with its opening brace
// on the same line: optional inline/static qualifier, a return-type token
// sequence, an identifier, a parenthesized parameter list, then '{'.
// Signatures whose '{' lands on a later line are a known blind spot of this
// line-granular scan.
var functionHeadRe = regexp.MustCompile(`^\s*(?:inline\s+|static\s+)?[a-zA-Z_][\w\s\*&:<>,]*\s+[a-zA-Z_]\w*\s*\([^)]*\)\s*\{`)

// loopHeadRe recognizes the sketch loop() entry point explicitly, so
// callers can scope loop-body-only checks.
var loopHeadRe = regexp.MustCompile(`void\s+loop\s*\(`)

// LineInfo is the structural classification of a single line.
type LineInfo struct {
	// InFunction reports whether the line sits inside a function body.
	// Head lines count as inside; a body's closing-brace line already
	// reads as global scope.
	InFunction bool
	// Depth is the brace nesting depth after this line's braces are
	// applied. Zero means global scope.
	Depth int
	// FunctionHead reports whether the line matched the head pattern.
	FunctionHead bool
}

// Scanner classifies each line of a translation unit as inside or outside a
// function body by tracking {} nesting. It operates on comment-scrubbed
// text; run Scrub first if the input may contain comments.
type Scanner struct {
	lines []LineInfo
}

// NewScanner scans lines once and records per-line classification.
func NewScanner(lines []string) *Scanner {
	s := &Scanner{lines: make([]LineInfo, len(lines))}

	depth := 0
	inFunction := false

	for i, line := range lines {
		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if !inFunction && functionHeadRe.MatchString(line) {
			inFunction = true
			depth = 1 + opens - closes - 1 // head brace plus any extras on the line
			if depth <= 0 {
				depth = 0
				inFunction = false
			}
			s.lines[i] = LineInfo{InFunction: true, Depth: depth, FunctionHead: true}
			continue
		}

		depth += opens - closes
		if depth <= 0 {
			depth = 0
			inFunction = false
		}
		s.lines[i] = LineInfo{InFunction: inFunction, Depth: depth}
	}

	return s
}

// At returns the classification for the 0-indexed line i. Out-of-range
// indexes report global scope.
func (s *Scanner) At(i int) LineInfo {
	if i < 0 || i >= len(s.lines) {
		return LineInfo{}
	}
	return s.lines[i]
}

// InFunction reports whether the 0-indexed line i is inside a function body.
func (s *Scanner) InFunction(i int) bool { return s.At(i).InFunction }

// Depth returns the brace depth after the 0-indexed line i.
func (s *Scanner) Depth(i int) int { return s.At(i).Depth }

// IsLoopHead reports whether a line opens the sketch loop() function.
func IsLoopHead(line string) bool { return loopHeadRe.MatchString(line) }

// IsFunctionHead reports whether a line matches the single-line
// function-definition head pattern.
func IsFunctionHead(line string) bool { return functionHeadRe.MatchString(line) }
