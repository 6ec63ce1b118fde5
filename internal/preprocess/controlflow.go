package preprocess

import (
	"log"
	"regexp"
	"strings"

	"github.com/cowboydaniel/sketchcheck/internal/source"
)

var (
	elseIfHeadRe  = regexp.MustCompile(`^\s*else\s+if\s*\(`)
	bareElseRe    = regexp.MustCompile(`^\s*else\s*;`)
	controlHeadRe = regexp.MustCompile(`^\s*(if|while|for|switch)\s*\(`)
)

// isGlobalControlFlowStatement reports whether a line is a bodyless control
// flow statement: a control keyword, balanced parentheses, and a trailing
// ");". These fragments are legal inside a function but never at global
// scope, where a confused extraction would otherwise strand them.
func isGlobalControlFlowStatement(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasSuffix(trimmed, ";") {
		return false
	}

	if bareElseRe.MatchString(trimmed) {
		return true
	}
	if !elseIfHeadRe.MatchString(trimmed) && !controlHeadRe.MatchString(trimmed) {
		return false
	}

	parens := 0
	for _, c := range trimmed {
		switch c {
		case '(':
			parens++
		case ')':
			parens--
		}
	}
	return parens == 0 && strings.HasSuffix(trimmed, ");")
}

// RemoveGlobalControlFlow deletes single-statement control flow fragments
// (if(...);, else if(...);, else;, while(...);, for(...);, switch(...);)
// that sit outside any function body, logging each removal. Lines inside
// function bodies are never touched.
func RemoveGlobalControlFlow(src string) string {
	lines := source.Lines(src)
	scan := source.NewScanner(source.Lines(source.Scrub(src)))

	kept := make([]string, 0, len(lines))
	removed := 0

	for i, line := range lines {
		if !scan.InFunction(i) && isGlobalControlFlowStatement(line) {
			log.Printf("Removing invalid global statement: %s", strings.TrimSpace(line))
			removed++
			continue
		}
		kept = append(kept, line)
	}

	if removed > 0 {
		log.Printf("Removed %d invalid global control flow statement(s)", removed)
	}

	return strings.Join(kept, "\n")
}
