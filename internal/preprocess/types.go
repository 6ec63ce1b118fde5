// Package preprocess synthesizes a compilable translation unit from an
// informally-ordered sketch: it hoists user-defined type definitions ahead
// of first use, forward-declares helper functions, and strips statements
// that are invalid at global scope. All detection is heuristic line/regex
// scanning with brace balancing; the external compiler remains the
// correctness backstop.
package preprocess

import (
	"regexp"
	"strings"
)

// TypeKind is the declaration keyword of an extracted type.
type TypeKind string

const (
	KindStruct TypeKind = "struct"
	KindClass  TypeKind = "class"
	KindEnum   TypeKind = "enum"
)

// TypeDefinition is a full struct/class/enum definition lifted out of the
// sketch body. Lines hold the original text, spanning a balanced-brace
// region through the terminating semicolon.
type TypeDefinition struct {
	Kind  TypeKind
	Name  string
	Lines []string
	// Order is the 0-based first-seen position among extracted types.
	Order int
}

// Text renders the definition as it appeared in the source.
func (d TypeDefinition) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Prototype is a synthesized forward declaration for a user function.
type Prototype struct {
	ReturnType string
	Name       string
	Parameters string
}

// String renders the prototype as a declaration statement.
func (p Prototype) String() string {
	return p.ReturnType + " " + p.Name + "(" + p.Parameters + ");"
}

// TypeSet is a membership set of custom type identifiers.
type TypeSet map[string]struct{}

// Contains reports whether name is in the set.
func (s TypeSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

var identRe = regexp.MustCompile(`[A-Za-z_]\w*`)

// mentionsAny reports whether any identifier in text is a member of types.
// Matching is identifier-exact, not substring, so a type named Point does
// not shadow a parameter of type PointControl.
func (s TypeSet) mentionsAny(text string) bool {
	if len(s) == 0 {
		return false
	}
	for _, ident := range identRe.FindAllString(text, -1) {
		if s.Contains(ident) {
			return true
		}
	}
	return false
}
