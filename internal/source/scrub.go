// Package source provides line-oriented lexical utilities for embedded
// C/C++ sketch text: comment scrubbing, brace-depth scanning, and cursor
// position normalization. Everything here is heuristic by design — there is
// no AST, only pattern matching with balance checks.
package source

import "strings"

// scrubState tracks where the scrubber is inside the character stream.
type scrubState int

const (
	stateNormal scrubState = iota
	stateBlockComment
	stateLineComment
	stateString
	stateCharLiteral
)

// Scrub removes // and /* */ comments from src while preserving line
// structure, so line numbers in the result match the input. Block comments
// are replaced with the newlines they contained; line comments are dropped
// up to (but not including) the newline. String and character literal
// contents are copied verbatim, including escape sequences, so braces or
// comment markers inside literals are never misread as structure.
//
// An unterminated block comment consumes the rest of the input, matching
// comment-to-end-of-file semantics. Scrub never fails and is idempotent.
func Scrub(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	state := stateNormal
	for i := 0; i < len(src); i++ {
		c := src[i]

		switch state {
		case stateNormal:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				end := strings.Index(src[i+2:], "*/")
				if end < 0 {
					// Unterminated: the comment runs to end of file.
					b.WriteString(strings.Repeat("\n", strings.Count(src[i:], "\n")))
					return b.String()
				}
				span := src[i : i+2+end+2]
				b.WriteString(strings.Repeat("\n", strings.Count(span, "\n")))
				i += 2 + end + 1
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				nl := strings.IndexByte(src[i:], '\n')
				if nl < 0 {
					return b.String()
				}
				b.WriteByte('\n')
				i += nl
			case c == '"':
				b.WriteByte(c)
				state = stateString
			case c == '\'':
				b.WriteByte(c)
				state = stateCharLiteral
			default:
				b.WriteByte(c)
			}

		case stateString:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(src[i+1])
				i++
			} else if c == '"' {
				state = stateNormal
			}

		case stateCharLiteral:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				b.WriteByte(src[i+1])
				i++
			} else if c == '\'' {
				state = stateNormal
			}
		}
	}

	return b.String()
}

// StripLineComments removes a trailing // comment and any /* */ spans that
// open and close on the given line. Useful for per-line detectors that only
// need a locally clean view.
func StripLineComments(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		line = line[:idx]
	}
	for {
		open := strings.Index(line, "/*")
		if open < 0 {
			return line
		}
		close := strings.Index(line[open+2:], "*/")
		if close < 0 {
			return line[:open]
		}
		line = line[:open] + line[open+2+close+2:]
	}
}

// Lines splits src on newlines. The result always has at least one element.
func Lines(src string) []string {
	return strings.Split(src, "\n")
}
