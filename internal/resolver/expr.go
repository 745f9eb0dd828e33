package resolver

import (
	"fmt"

	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// expr resolves an expression and sets x to the result.
func (r *resolver) expr(x *operand, e syntax.Expr) {
	x.mode = value
	x.pos = e.Pos()
	x.typ = nil
	x.expr = e

	switch e := e.(type) {
	case *syntax.Name:
		r.ident(x, e)
	case *syntax.BasicLit:
		r.basicLit(x, e)
	case *syntax.UnaryExpr:
		r.unary(x, e)
	case *syntax.BinaryExpr:
		r.binary(x, e)
	case *syntax.TernaryExpr:
		r.ternary(x, e)
	case *syntax.CallExpr:
		r.call(x, e)
	case *syntax.MethodCallExpr:
		r.methodCall(x, e)
	case *syntax.FieldExpr:
		r.selector(x, e)
	case *syntax.StructLit:
		r.structLit(x, e)
	default:
		panic(fmt.Sprintf("resolver: unexpected expression %T", e))
	}

	r.info.Types[e] = TypeAndValue{Type: x.typ, mode: x.mode}
}

// value reports an error if x has no value.
func (r *resolver) value(x *operand) {
	if x.mode == novalue {
		r.typeMismatch(x.pos, "value", "no value", "%s (no value) used as value", describe(x.expr))
	}
}

// assignment checks that x can be stored in a location of type T.
func (r *resolver) assignment(x *operand, T types.Type, context string) {
	if !types.AssignableTo(x.typ, T) {
		r.typeMismatch(x.pos, T.String(), x.typ.String(),
			"cannot use %s value as %s in %s", x.typ, T, context)
	}
}

func (r *resolver) ident(x *operand, name *syntax.Name) {
	switch obj := r.resolve(name).(type) {
	case *types.Var:
		x.setVar(obj.Type())
	case *types.TypeName:
		r.typeMismatch(name.Pos(), "value", "type", "%s is a type, not a value", name.Value)
	default:
		r.typeMismatch(name.Pos(), "value", "function", "%s is a function, not a value", name.Value)
	}
}

func (r *resolver) basicLit(x *operand, lit *syntax.BasicLit) {
	switch lit.Kind {
	case syntax.IntLit:
		x.setValue(types.Typ[types.Int])
	case syntax.FloatLit:
		x.setValue(types.Typ[types.Float])
	case syntax.CharLit:
		x.setValue(types.Typ[types.Char])
	case syntax.BoolLit:
		x.setValue(types.Typ[types.Bool])
	default:
		panic(fmt.Sprintf("resolver: unknown literal kind %v", lit.Kind))
	}
}

func (r *resolver) unary(x *operand, e *syntax.UnaryExpr) {
	r.expr(x, e.X)
	r.value(x)

	switch e.Op {
	case syntax.Not:
		if !types.IsBasic(x.typ) {
			r.invalidOp(x, e.Op, "scalar")
		}
		x.setValue(types.Typ[types.Bool])
	case syntax.Sub:
		res := types.Arithmetic(x.typ, x.typ)
		if res == nil {
			r.invalidOp(x, e.Op, "numeric")
		}
		x.setValue(res)
	default:
		panic(fmt.Sprintf("resolver: unknown unary operator %v", e.Op))
	}
	x.pos = e.Pos()
	x.expr = e
}

func (r *resolver) binary(x *operand, e *syntax.BinaryExpr) {
	var y operand
	r.expr(x, e.X)
	r.value(x)
	r.expr(&y, e.Y)
	r.value(&y)

	switch e.Op {
	case syntax.Eql, syntax.Neq:
		if !types.IsBasic(x.typ) {
			r.invalidOp(x, e.Op, "scalar")
		}
		if !types.IsBasic(y.typ) {
			r.invalidOp(&y, e.Op, "scalar")
		}
		x.setValue(types.Typ[types.Bool])
	case syntax.Lss, syntax.Leq, syntax.Gtr, syntax.Geq:
		r.numeric(x, &y, e.Op)
		x.setValue(types.Typ[types.Bool])
	default:
		r.numeric(x, &y, e.Op)
		x.setValue(types.Arithmetic(x.typ, y.typ))
	}
	x.pos = e.Pos()
	x.expr = e
}

// numeric checks that both operands of op are numeric.
func (r *resolver) numeric(x, y *operand, op syntax.Token) {
	if !types.IsNumeric(x.typ) {
		r.invalidOp(x, op, "numeric")
	}
	if !types.IsNumeric(y.typ) {
		r.invalidOp(y, op, "numeric")
	}
}

func (r *resolver) invalidOp(x *operand, op syntax.Token, want string) {
	r.typeMismatch(x.pos, want, x.String(),
		"invalid operation: operator %s not defined on %s (%s value)", op, describe(x.expr), x)
}

func (r *resolver) ternary(x *operand, e *syntax.TernaryExpr) {
	r.cond(e.Cond)

	var y operand
	r.expr(x, e.Then)
	r.value(x)
	r.expr(&y, e.Else)
	r.value(&y)

	switch {
	case types.Identical(x.typ, y.typ):
		x.setValue(x.typ)
	case types.IsBasic(x.typ) && types.IsBasic(y.typ):
		res := types.Arithmetic(x.typ, y.typ)
		if res == nil {
			res = types.Typ[types.Int]
		}
		x.setValue(res)
	default:
		r.typeMismatch(y.pos, x.String(), y.String(),
			"mismatched types %s and %s in conditional", x.typ, y.typ)
	}
	x.pos = e.Pos()
	x.expr = e
}

// selector resolves a field access.
func (r *resolver) selector(x *operand, e *syntax.FieldExpr) {
	r.expr(x, e.X)
	r.value(x)

	st, ok := x.typ.(*types.Struct)
	if !ok {
		r.typeMismatch(e.Sel.Pos(), "struct", x.String(),
			"%s.%s undefined (type %s has no fields)", describe(e.X), e.Sel.Value, x.typ)
	}
	i := st.FieldIndex(e.Sel.Value)
	if i < 0 {
		r.fail(diag.UnknownField(e.Sel.Pos(), st.Name(), e.Sel.Value))
	}
	f := st.Field(i)
	r.info.Uses[e.Sel] = f

	// Struct results of calls are returned through a pointer, so their
	// fields are storage locations too.
	switch e.X.(type) {
	case *syntax.CallExpr, *syntax.MethodCallExpr:
		x.setVar(f.Type())
	default:
		if x.mode == variable {
			x.setVar(f.Type())
		} else {
			x.setValue(f.Type())
		}
	}
	x.pos = e.Pos()
	x.expr = e
}

// structLit resolves a struct literal and records its values in field
// declaration order.
func (r *resolver) structLit(x *operand, e *syntax.StructLit) {
	typ := r.typeName(e.Type)
	st, ok := typ.(*types.Struct)
	if !ok {
		r.typeMismatch(e.Type.Pos(), "struct", typ.String(), "%s is not a struct type", typ)
	}

	vals := make([]syntax.Expr, st.NumFields())
	for _, f := range e.Fields {
		i := st.FieldIndex(f.Name.Value)
		if i < 0 {
			r.fail(diag.UnknownField(f.Name.Pos(), st.Name(), f.Name.Value))
		}
		if vals[i] != nil {
			r.fail(diag.DuplicateField(f.Name.Pos(), st.Name(), f.Name.Value))
		}
		field := st.Field(i)
		r.info.Uses[f.Name] = field

		var v operand
		r.expr(&v, f.Value)
		r.value(&v)
		r.assignment(&v, field.Type(), "field "+field.Name())
		vals[i] = f.Value
	}
	for i, v := range vals {
		if v == nil {
			r.fail(diag.MissingField(e.Pos(), st.Name(), st.Field(i).Name()))
		}
	}

	r.info.Inits[e] = vals
	x.setValue(st)
}
