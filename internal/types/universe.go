package types

import "github.com/you-not-fish/boron/internal/syntax"

// NoPos is the zero position value, used for predeclared objects.
var NoPos syntax.Pos

// Universe is the root scope containing all predeclared objects.
// It is populated once at init and only read afterwards, so concurrent
// resolutions may share it.
var Universe *Scope

var universePrint *Builtin

func init() {
	Universe = NewScope(nil, NoPos, NoPos, "universe")

	for _, kind := range []BasicKind{Bool, Int, Float, Char} {
		typ := Typ[kind]
		Universe.Insert(NewTypeName(NoPos, typ.name, typ))
	}

	universePrint = NewBuiltin("print", BuiltinPrint)
	Universe.Insert(universePrint)
}

// UniversePrint returns the print builtin.
func UniversePrint() *Builtin { return universePrint }
