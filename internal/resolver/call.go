package resolver

import (
	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// call resolves a plain call f(args).
func (r *resolver) call(x *operand, e *syntax.CallExpr) {
	switch obj := r.resolve(e.Fun).(type) {
	case *types.Builtin:
		r.printCall(x, e)
	case *types.FuncObj:
		sig := obj.Signature()
		if len(e.Args) != sig.NumParams() {
			r.fail(diag.Arity(e.Pos(), obj.Name(), sig.NumParams(), len(e.Args)))
		}
		r.args(sig.Params(), e.Args)
		r.result(x, sig)
	default:
		r.typeMismatch(e.Fun.Pos(), "function", obj.Type().String(),
			"cannot call non-function %s", e.Fun.Value)
	}
}

// methodCall resolves r.m(args), which stands for m(r, args). m must be a
// function whose first parameter has the receiver's struct type.
func (r *resolver) methodCall(x *operand, e *syntax.MethodCallExpr) {
	var recv operand
	r.expr(&recv, e.Recv)
	r.value(&recv)
	st, ok := recv.typ.(*types.Struct)
	if !ok {
		r.typeMismatch(e.Recv.Pos(), "struct", recv.String(),
			"%s.%s undefined (type %s has no methods)", describe(e.Recv), e.Method.Value, recv.typ)
	}

	fn, ok := r.resolve(e.Method).(*types.FuncObj)
	if !ok {
		r.typeMismatch(e.Method.Pos(), "function", "non-function",
			"cannot call non-function %s", e.Method.Value)
	}
	if recvType := fn.Receiver(); recvType == nil || recvType != st {
		r.typeMismatch(e.Method.Pos(), st.Name(), fn.Signature().String(),
			"%s is not a method of %s", fn.Name(), st.Name())
	}

	sig := fn.Signature()
	if len(e.Args) != sig.NumParams()-1 {
		r.fail(diag.Arity(e.Pos(), fn.Name(), sig.NumParams()-1, len(e.Args)))
	}
	r.args(sig.Params()[1:], e.Args)
	r.result(x, sig)
}

// args checks call arguments against parameters of equal length.
func (r *resolver) args(params []*types.Var, args []syntax.Expr) {
	for i, arg := range args {
		var a operand
		r.expr(&a, arg)
		r.value(&a)
		r.assignment(&a, params[i].Type(), "argument to parameter "+params[i].Name())
	}
}

func (r *resolver) result(x *operand, sig *types.Func) {
	if res := sig.Result(); res != nil {
		x.setValue(res)
		return
	}
	x.mode = novalue
	x.typ = nil
}

// printCall resolves the variadic print builtin. Every argument must be a
// scalar.
func (r *resolver) printCall(x *operand, e *syntax.CallExpr) {
	if len(e.Args) == 0 {
		err := diag.Errorf(diag.ArityError, e.Pos(), "not enough arguments in call to print")
		err.Name = "print"
		err.Expected = "1"
		err.Found = "0"
		r.fail(err)
	}
	for _, arg := range e.Args {
		var a operand
		r.expr(&a, arg)
		r.value(&a)
		if !types.IsBasic(a.typ) {
			r.typeMismatch(a.pos, "scalar", a.String(), "cannot print %s value", a.typ)
		}
	}
	x.mode = novalue
	x.typ = nil
}
