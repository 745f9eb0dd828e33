package resolver

import (
	"fmt"

	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

func (r *resolver) stmts(list []syntax.Stmt) {
	for _, s := range list {
		r.stmt(s)
	}
}

func (r *resolver) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.LetStmt:
		r.letStmt(s)
	case *syntax.AssignStmt:
		r.assignStmt(s)
	case *syntax.ExprStmt:
		var x operand
		r.expr(&x, s.X)
	case *syntax.ReturnStmt:
		r.returnStmt(s)
	case *syntax.IfStmt:
		r.ifStmt(s)
	case *syntax.WhileStmt:
		r.cond(s.Cond)
		r.block(s.Body, "while")
	case *syntax.BlockStmt:
		r.block(s, "block")
	case *syntax.StructDecl:
		r.localStruct(s)
	default:
		panic(fmt.Sprintf("resolver: unexpected statement %T", s))
	}
}

// block resolves a nested block in its own frame.
func (r *resolver) block(b *syntax.BlockStmt, comment string) {
	r.openScope(b, comment)
	r.stmts(b.Stmts)
	r.closeScope()
}

// letStmt declares a variable. The value is resolved before the name is
// bound, so "let x: x + 1" refers to an outer x.
func (r *resolver) letStmt(s *syntax.LetStmt) {
	var typ types.Type
	if s.Type != nil {
		typ = r.typeName(s.Type)
	}

	var x operand
	r.expr(&x, s.Value)
	r.value(&x)

	if typ == nil {
		typ = x.typ
	} else {
		r.assignment(&x, typ, "let binding")
	}
	r.declare(s.Name, types.NewVar(s.Name.Pos(), s.Name.Value, typ))
}

func (r *resolver) assignStmt(s *syntax.AssignStmt) {
	var lhs, rhs operand
	r.expr(&lhs, s.Target)
	if lhs.mode != variable {
		r.typeMismatch(s.Target.Pos(), "variable", lhs.String(), "cannot assign to %s", describe(s.Target))
	}
	r.expr(&rhs, s.Value)
	r.value(&rhs)
	r.assignment(&rhs, lhs.typ, "assignment")
}

func (r *resolver) returnStmt(s *syntax.ReturnStmt) {
	if r.fn.IsMain() {
		if s.Result != nil {
			r.typeMismatch(s.Result.Pos(), "no value", "value", "main cannot return a value")
		}
		return
	}

	res := r.fn.Signature().Result()
	if s.Result == nil {
		if res != nil {
			r.typeMismatch(s.Pos(), res.String(), "no value", "missing return value")
		}
		return
	}

	var x operand
	r.expr(&x, s.Result)
	r.value(&x)
	if res == nil {
		r.typeMismatch(s.Result.Pos(), "no value", x.String(),
			"too many return values: %s has no result", r.fn.Name())
	}
	r.assignment(&x, res, "return statement")
}

func (r *resolver) ifStmt(s *syntax.IfStmt) {
	r.cond(s.Cond)
	r.block(s.Then, "if")

	switch els := s.Else.(type) {
	case nil:
	case *syntax.IfStmt:
		r.ifStmt(els)
	case *syntax.BlockStmt:
		r.block(els, "else")
	default:
		panic(fmt.Sprintf("resolver: unexpected else branch %T", els))
	}
}

// cond resolves a condition. Any scalar is accepted and tested against
// zero, as in C.
func (r *resolver) cond(e syntax.Expr) {
	var x operand
	r.expr(&x, e)
	r.value(&x)
	if !types.IsBasic(x.typ) {
		r.typeMismatch(e.Pos(), "bool", x.String(), "cannot use %s value as condition", x.typ)
	}
}

// blockMustReturn reports whether every path through stmts ends in a
// return. Loops are treated as possibly not terminating.
func blockMustReturn(stmts []syntax.Stmt) bool {
	for _, s := range stmts {
		if stmtMustReturn(s) {
			return true
		}
	}
	return false
}

func stmtMustReturn(s syntax.Stmt) bool {
	switch s := s.(type) {
	case *syntax.ReturnStmt:
		return true
	case *syntax.BlockStmt:
		return blockMustReturn(s.Stmts)
	case *syntax.IfStmt:
		if s.Else == nil || !blockMustReturn(s.Then.Stmts) {
			return false
		}
		return stmtMustReturn(s.Else)
	}
	return false
}
