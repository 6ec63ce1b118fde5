// Package toolchain shells out to an external Arduino compiler for real
// verification and parses its diagnostics. The static analysis packages
// never depend on it; it exists for callers that want compiler-grade truth
// next to the heuristic results.
package toolchain

import (
	"regexp"
	"strconv"
	"strings"
)

// DiagnosticSeverity is the compiler's own classification.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityNote    DiagnosticSeverity = "note"
)

// Diagnostic is one parsed compiler message.
type Diagnostic struct {
	File     string             `json:"file"`
	Line     int                `json:"line"` // 1-indexed, as the compiler reports
	Column   int                `json:"column"`
	Severity DiagnosticSeverity `json:"severity"`
	Message  string             `json:"message"`
}

// diagnosticRe matches gcc/clang-style "file:line:col: severity: message"
// lines. The file part is lazy so Windows drive letters don't eat the line
// number.
var diagnosticRe = regexp.MustCompile(`^(.+?):(\d+):(\d+):\s*(error|warning|note):\s*(.+)$`)

// ParseDiagnostics extracts structured diagnostics from raw compiler output.
// Lines that don't match the diagnostic shape (progress chatter, include
// stacks, caret markers) are skipped; parsing never fails.
func ParseDiagnostics(output string) []Diagnostic {
	var diags []Diagnostic
	for _, line := range strings.Split(output, "\n") {
		m := diagnosticRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		lineNo, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		diags = append(diags, Diagnostic{
			File:     m[1],
			Line:     lineNo,
			Column:   col,
			Severity: DiagnosticSeverity(m[4]),
			Message:  m[5],
		})
	}
	return diags
}

// HasErrors reports whether any diagnostic is error-severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
