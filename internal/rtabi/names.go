// Package rtabi defines the C-level conventions shared by the emitter and
// the headers it generates: identifier mangling, hidden parameters, type
// names, print formats and include guards. Separately compiled modules
// link against each other only if they agree on these values.
package rtabi

import (
	"strconv"
	"strings"
)

// Hidden identifiers introduced by lowering. Both end in an underscore, so
// they never collide with a mangled source identifier (see Ident).
const (
	// OutParam is the trailing parameter of a struct-returning function.
	OutParam = "out_"

	// UnusedField is the placeholder member of a struct without fields.
	UnusedField = "unused_"
)

// Names with a fixed meaning in emitted C.
const (
	// Printf is the libc function behind print.
	Printf = "printf"

	// PrintfProto declares Printf without including <stdio.h>.
	PrintfProto = "int printf(const char *, ...);"

	// EntryPoint is the C name of main.
	EntryPoint = "main"
)

// reserved holds every identifier a Boron name must not become in C:
// keywords up to C23, the <stdbool.h> macros and the names the emitter
// declares itself.
var reserved = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true,
	"else": true, "enum": true, "extern": true, "float": true, "for": true,
	"goto": true, "if": true, "inline": true, "int": true, "long": true,
	"register": true, "restrict": true, "return": true, "short": true,
	"signed": true, "sizeof": true, "static": true, "struct": true,
	"switch": true, "typedef": true, "union": true, "unsigned": true,
	"void": true, "volatile": true, "while": true,

	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_BitInt": true,
	"_Bool": true, "_Complex": true, "_Decimal128": true, "_Decimal32": true,
	"_Decimal64": true, "_Generic": true, "_Imaginary": true,
	"_Noreturn": true, "_Static_assert": true, "_Thread_local": true,

	"alignas": true, "alignof": true, "bool": true, "constexpr": true,
	"false": true, "nullptr": true, "static_assert": true,
	"thread_local": true, "true": true, "typeof": true,
	"typeof_unqual": true,

	"__bool_true_false_are_defined": true,

	Printf:     true,
	EntryPoint: true,
}

// IsReserved reports whether name cannot be used verbatim in emitted C.
func IsReserved(name string) bool {
	return reserved[name]
}

// Ident returns the C spelling of a source identifier. Reserved names and
// names already ending in an underscore get one more underscore; all other
// names are unchanged. The mapping is injective, and no result has the
// form of a Temp name.
func Ident(name string) string {
	if reserved[name] || strings.HasSuffix(name, "_") {
		return name + "_"
	}
	return name
}

// Temp returns the n-th compiler-generated name derived from base:
// base_n_. The "_digits_" suffix is never produced by Ident, so temps
// are distinct from every mangled source identifier and from each other.
func Temp(base string, n int) string {
	return base + "_" + strconv.Itoa(n) + "_"
}
