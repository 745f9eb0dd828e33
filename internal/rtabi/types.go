package rtabi

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Headers every emitted file includes.
const (
	// StdBool provides bool, true and false.
	StdBool = "<stdbool.h>"
)

// C spellings of the basic types.
const (
	CTypeInt   = "int"
	CTypeFloat = "float"
	CTypeBool  = "bool"
	CTypeChar  = "char"
	CTypeVoid  = "void"
)

// The smallest int. Its magnitude does not fit in int, so the negated
// literal is spelled the way <limits.h> spells INT_MIN.
const (
	MinIntMagnitude = "2147483648"
	MinInt          = "(-2147483647 - 1)"
)

// printf conversions used by print. Every value is printed on its own line.
const (
	FormatInt   = `"%d\n"`
	FormatFloat = `"%f\n"`
	FormatChar  = `"%c\n"`
	FormatBool  = `"%s\n"`
)

// Bool spellings passed to FormatBool.
const (
	TrueText  = `"true"`
	FalseText = `"false"`
)

// Include guard layout: GuardPrefix + module + "_" + hash + GuardSuffix.
const (
	GuardPrefix = "BORON_"
	GuardSuffix = "_H"
)

// Guard returns the include guard macro of the header for module path.
// The readable part upper-cases the path and replaces anything outside
// [A-Z0-9] with an underscore, which can map distinct paths together; the
// FNV-1a hash of the exact path keeps their guards apart.
func Guard(module string) string {
	var b strings.Builder
	b.WriteString(GuardPrefix)
	for _, r := range module {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	h := fnv.New32a()
	h.Write([]byte(module))
	fmt.Fprintf(&b, "_%08X%s", h.Sum32(), GuardSuffix)
	return b.String()
}

// HeaderPath returns the include path of the header for module path,
// relative to the output root: "geo/shapes" becomes "geo/shapes.h".
func HeaderPath(module string) string {
	return module + ".h"
}

// SourcePath returns the path of the C file for module path.
func SourcePath(module string) string {
	return module + ".c"
}
