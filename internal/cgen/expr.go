package cgen

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/boron/internal/rtabi"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// Expressions of struct type have three C renderings:
//
//	value   the struct itself, for initializers and stores
//	ptr     a pointer to it, for arguments and receivers
//	access  (for field selections) the selected member as an lvalue
//
// Locals are struct objects, parameters are pointers, and calls return
// the pointer they were given as out argument.

// expr returns the C value of e.
func (g *generator) expr(e syntax.Expr) string {
	if isStruct(g.f.Info.TypeOf(e)) {
		return g.value(e)
	}

	switch e := e.(type) {
	case *syntax.Name:
		return rtabi.Ident(e.Value)
	case *syntax.BasicLit:
		return literal(e)
	case *syntax.UnaryExpr:
		if lit, ok := e.X.(*syntax.BasicLit); ok && e.Op == syntax.Sub && literal(lit) == rtabi.MinIntMagnitude {
			return rtabi.MinInt
		}
		x := g.expr(e.X)
		switch e.X.(type) {
		case *syntax.UnaryExpr, *syntax.BinaryExpr, *syntax.TernaryExpr:
			x = "(" + x + ")"
		}
		return e.Op.String() + x
	case *syntax.BinaryExpr:
		op := e.Op.String()
		if e.Op == syntax.Eql {
			op = "=="
		}
		return g.operand(e.X) + " " + op + " " + g.operand(e.Y)
	case *syntax.TernaryExpr:
		return g.operand(e.Cond) + " ? " + g.operand(e.Then) + " : " + g.operand(e.Else)
	case *syntax.CallExpr, *syntax.MethodCallExpr:
		return g.call(e)
	case *syntax.FieldExpr:
		return g.access(e)
	}
	panic(fmt.Sprintf("cgen: unexpected expression %T", e))
}

// operand returns e as the operand of a binary or conditional operator,
// parenthesized if it is itself one.
func (g *generator) operand(e syntax.Expr) string {
	switch e.(type) {
	case *syntax.BinaryExpr, *syntax.TernaryExpr:
		return "(" + g.expr(e) + ")"
	}
	return g.expr(e)
}

// isParam reports whether e names a parameter.
func (g *generator) isParam(e syntax.Expr) bool {
	n, ok := e.(*syntax.Name)
	if !ok {
		return false
	}
	v, ok := g.f.Info.Uses[n].(*types.Var)
	return ok && v.IsParam()
}

// value returns the struct denoted by e.
func (g *generator) value(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Name:
		if g.isParam(e) {
			return "*" + rtabi.Ident(e.Value)
		}
		return rtabi.Ident(e.Value)
	case *syntax.StructLit:
		return g.structLit(e)
	case *syntax.FieldExpr:
		return g.access(e)
	case *syntax.CallExpr, *syntax.MethodCallExpr, *syntax.TernaryExpr:
		return "*" + g.ptr(e)
	}
	panic(fmt.Sprintf("cgen: unexpected struct expression %T", e))
}

// ptr returns a pointer to the struct denoted by e.
func (g *generator) ptr(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Name:
		if g.isParam(e) {
			return rtabi.Ident(e.Value)
		}
		return "&" + rtabi.Ident(e.Value)
	case *syntax.StructLit:
		return "&" + g.structLit(e)
	case *syntax.FieldExpr:
		return "&" + g.access(e)
	case *syntax.CallExpr, *syntax.MethodCallExpr:
		return g.call(e)
	case *syntax.TernaryExpr:
		return "(" + g.operand(e.Cond) + " ? " + g.ptr(e.Then) + " : " + g.ptr(e.Else) + ")"
	}
	panic(fmt.Sprintf("cgen: unexpected struct expression %T", e))
}

// access returns the member selected by e.
func (g *generator) access(e *syntax.FieldExpr) string {
	sel := rtabi.Ident(e.Sel.Value)
	switch x := e.X.(type) {
	case *syntax.Name:
		if g.isParam(x) {
			return rtabi.Ident(x.Value) + "->" + sel
		}
		return rtabi.Ident(x.Value) + "." + sel
	case *syntax.StructLit:
		return g.structLit(x) + "." + sel
	case *syntax.FieldExpr:
		return g.access(x) + "." + sel
	}
	return g.ptr(e.X) + "->" + sel
}

// structLit returns a compound literal with one designated initializer
// per field, in field declaration order.
func (g *generator) structLit(e *syntax.StructLit) string {
	s := g.f.Info.TypeOf(e).(*types.Struct)
	vals := g.f.Info.Inits[e]

	var inits []string
	for i, f := range s.Fields() {
		inits = append(inits, "."+rtabi.Ident(f.Name())+" = "+g.expr(vals[i]))
	}
	if len(inits) == 0 {
		return "(" + g.ctype(s) + "){ 0 }"
	}
	return "(" + g.ctype(s) + "){ " + strings.Join(inits, ", ") + " }"
}

// call returns a call to a function or method. Struct arguments are
// passed by pointer, and a struct result is written to a fresh compound
// literal passed as the trailing argument.
func (g *generator) call(e syntax.Expr) string {
	var (
		fn   *types.FuncObj
		args []syntax.Expr
	)
	switch e := e.(type) {
	case *syntax.CallExpr:
		fn = g.f.Info.Uses[e.Fun].(*types.FuncObj)
		args = e.Args
	case *syntax.MethodCallExpr:
		fn = g.f.Info.Uses[e.Method].(*types.FuncObj)
		args = append([]syntax.Expr{e.Recv}, e.Args...)
	}

	sig := fn.Signature()
	var list []string
	for i, arg := range args {
		if isStruct(sig.Param(i).Type()) {
			list = append(list, g.ptr(arg))
		} else {
			list = append(list, g.expr(arg))
		}
	}
	if s, ok := sig.Result().(*types.Struct); ok {
		list = append(list, "&("+g.ctype(s)+"){ 0 }")
	}
	return rtabi.Ident(fn.Name()) + "(" + strings.Join(list, ", ") + ")"
}

// literal returns the C spelling of a basic literal.
func literal(lit *syntax.BasicLit) string {
	switch lit.Kind {
	case syntax.FloatLit:
		v := lit.Value
		if strings.HasSuffix(v, ".") {
			v += "0"
		}
		return v + "f"
	case syntax.CharLit:
		return charLit(lit.Value)
	case syntax.IntLit:
		// A leading zero would make the constant octal.
		if v := strings.TrimLeft(lit.Value, "0"); v != "" {
			return v
		}
		return "0"
	}
	return lit.Value
}

// charLit quotes the single character c as a C character constant.
func charLit(c string) string {
	var b byte
	if len(c) > 0 {
		b = c[0]
	}
	switch b {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\r':
		return `'\r'`
	case 0:
		return `'\0'`
	case '\\':
		return `'\\'`
	case '\'':
		return `'\''`
	}
	if b < 0x20 || b >= 0x7f {
		return fmt.Sprintf(`'\x%02x'`, b)
	}
	return "'" + string(b) + "'"
}
