package resolver

import (
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// operandMode describes the mode of an operand.
type operandMode int

const (
	_        operandMode = iota
	novalue                     // call without result
	variable                    // addressable storage: variable or field
	value                       // computed value
)

// operand represents the result of resolving an expression.
type operand struct {
	mode operandMode
	pos  syntax.Pos
	typ  types.Type
	expr syntax.Expr
}

func (x *operand) String() string {
	if x.mode == novalue || x.typ == nil {
		return "no value"
	}
	return x.typ.String()
}

func (x *operand) setValue(typ types.Type) {
	x.mode = value
	x.typ = typ
}

func (x *operand) setVar(typ types.Type) {
	x.mode = variable
	x.typ = typ
}

// describe renders a short source-like form of e for messages.
func describe(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Name:
		return e.Value
	case *syntax.BasicLit:
		return e.Value
	case *syntax.FieldExpr:
		return describe(e.X) + "." + e.Sel.Value
	case *syntax.CallExpr:
		return e.Fun.Value + "(...)"
	case *syntax.MethodCallExpr:
		return describe(e.Recv) + "." + e.Method.Value + "(...)"
	case *syntax.StructLit:
		return e.Type.Value + "{...}"
	}
	return "expression"
}
