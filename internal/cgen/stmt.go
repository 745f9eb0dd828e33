package cgen

import (
	"fmt"

	"github.com/you-not-fish/boron/internal/rtabi"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

func (g *generator) stmts(list []syntax.Stmt) {
	for _, s := range list {
		g.stmt(s)
	}
}

func (g *generator) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.LetStmt:
		g.letStmt(s)
	case *syntax.AssignStmt:
		g.assignStmt(s)
	case *syntax.ExprStmt:
		g.exprStmt(s)
	case *syntax.ReturnStmt:
		g.returnStmt(s)
	case *syntax.IfStmt:
		g.e.open("if (%s)", g.expr(s.Cond))
		g.ifTail(s)
	case *syntax.WhileStmt:
		g.e.open("while (%s)", g.expr(s.Cond))
		g.stmts(s.Body.Stmts)
		g.e.close("")
	case *syntax.BlockStmt:
		g.e.open("")
		g.stmts(s.Stmts)
		g.e.close("")
	case *syntax.StructDecl:
		g.localStruct(s)
	default:
		panic(fmt.Sprintf("cgen: unexpected statement %T", s))
	}
}

// ifTail writes the then branch of s and its else chain. The "if" line
// itself is already open.
func (g *generator) ifTail(s *syntax.IfStmt) {
	g.stmts(s.Then.Stmts)
	switch els := s.Else.(type) {
	case nil:
		g.e.close("")
	case *syntax.IfStmt:
		g.e.reopen("else if (%s)", g.expr(els.Cond))
		g.ifTail(els)
	case *syntax.BlockStmt:
		g.e.reopen("else")
		g.stmts(els.Stmts)
		g.e.close("")
	default:
		panic(fmt.Sprintf("cgen: unexpected else branch %T", els))
	}
}

// letStmt declares a local. In C a name is in scope inside its own
// initializer, so a value that mentions the name being declared is
// computed into a temporary first.
func (g *generator) letStmt(s *syntax.LetStmt) {
	obj := g.f.Info.Defs[s.Name].(*types.Var)
	val := g.expr(s.Value)
	if g.mentions(s.Value, obj.Name()) {
		tmp := g.temp(obj.Name())
		g.e.emit("%s = %s;", g.declare(obj.Type(), tmp), val)
		val = tmp
	}
	g.e.emit("%s = %s;", g.declare(obj.Type(), rtabi.Ident(obj.Name())), val)
}

// mentions reports whether e refers to a variable or function spelled
// name. Field names and struct tags live in their own C namespaces.
func (g *generator) mentions(e syntax.Expr, name string) bool {
	found := false
	syntax.Walk(e, func(n syntax.Node) bool {
		id, ok := n.(*syntax.Name)
		if !ok || found || id.Value != name {
			return !found
		}
		switch obj := g.f.Info.Uses[id].(type) {
		case *types.Var:
			found = !obj.IsField()
		case *types.FuncObj:
			found = true
		}
		return !found
	})
	return found
}

func (g *generator) assignStmt(s *syntax.AssignStmt) {
	val := g.expr(s.Value)
	switch t := s.Target.(type) {
	case *syntax.Name:
		v := g.f.Info.Uses[t].(*types.Var)
		if v.IsParam() && isStruct(v.Type()) {
			g.e.emit("*%s = %s;", rtabi.Ident(v.Name()), val)
			return
		}
		g.e.emit("%s = %s;", rtabi.Ident(v.Name()), val)
	case *syntax.FieldExpr:
		g.e.emit("%s = %s;", g.access(t), val)
	default:
		panic(fmt.Sprintf("cgen: unexpected assignment target %T", t))
	}
}

func (g *generator) exprStmt(s *syntax.ExprStmt) {
	if call, ok := s.X.(*syntax.CallExpr); ok {
		if _, ok := g.f.Info.Uses[call.Fun].(*types.Builtin); ok {
			g.print(call)
			return
		}
	}
	if isStruct(g.f.Info.TypeOf(s.X)) {
		g.e.emit("%s;", g.ptr(s.X))
		return
	}
	g.e.emit("%s;", g.expr(s.X))
}

func (g *generator) returnStmt(s *syntax.ReturnStmt) {
	switch {
	case g.fn.IsMain():
		g.e.emit("return 0;")
	case s.Result == nil:
		g.e.emit("return;")
	case isStruct(g.fn.Signature().Result()):
		g.e.emit("*%s = %s;", rtabi.OutParam, g.expr(s.Result))
		g.e.emit("return %s;", rtabi.OutParam)
	default:
		g.e.emit("return %s;", g.expr(s.Result))
	}
}

// print writes one printf call per argument.
func (g *generator) print(call *syntax.CallExpr) {
	for _, arg := range call.Args {
		x := g.expr(arg)
		b := g.f.Info.TypeOf(arg).(*types.Basic)
		switch b.Kind() {
		case types.Int:
			g.e.emit("%s(%s, %s);", rtabi.Printf, rtabi.FormatInt, x)
		case types.Float:
			g.e.emit("%s(%s, %s);", rtabi.Printf, rtabi.FormatFloat, x)
		case types.Char:
			g.e.emit("%s(%s, %s);", rtabi.Printf, rtabi.FormatChar, x)
		case types.Bool:
			g.e.emit("%s(%s, (%s) ? %s : %s);", rtabi.Printf, rtabi.FormatBool, x, rtabi.TrueText, rtabi.FalseText)
		}
	}
}
