package preprocess

import "strings"

// umbrellaInclude is the platform header every synthesized unit starts with.
const umbrellaInclude = "#include <Arduino.h>"

// typesMarker precedes the hoisted type block in the synthesized unit.
const typesMarker = "// Forward declarations for custom types"

// Unit is a synthesized translation unit ready to hand to the external
// compiler: hoisted types, synthesized prototypes, then the cleaned sketch
// body.
type Unit struct {
	Types      []TypeDefinition
	TypeNames  TypeSet
	Prototypes []Prototype
	Body       string
}

// BuildUnit runs the full preprocessing pipeline over a raw sketch:
//
//  1. extract full type definitions (forward declarations stay in place),
//  2. derive the custom type name set,
//  3. drop hand-written prototypes that reference custom types,
//  4. drop bodyless control flow statements stranded at global scope,
//  5. synthesize prototypes for built-in-typed user functions.
//
// It never fails: malformed input degrades to a best-effort unit and the
// compiler reports whatever remains wrong.
func BuildUnit(src string) Unit {
	defs, remainder := ExtractTypes(src)
	names := CustomTypeNames(defs, src)

	remainder = RemovePrototypesUsingCustomTypes(remainder, names)
	remainder = RemoveGlobalControlFlow(remainder)

	return Unit{
		Types:      defs,
		TypeNames:  names,
		Prototypes: SynthesizePrototypes(src, names),
		Body:       remainder,
	}
}

// Render produces the final translation unit text.
func (u Unit) Render() string {
	var b strings.Builder

	b.WriteString(umbrellaInclude)
	b.WriteString("\n\n")

	if len(u.Types) > 0 {
		b.WriteString(typesMarker)
		b.WriteString("\n")
		b.WriteString(TypesBlock(u.Types))
		b.WriteString("\n\n")
	}

	for _, p := range u.Prototypes {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	if len(u.Prototypes) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(u.Body)
	return b.String()
}
