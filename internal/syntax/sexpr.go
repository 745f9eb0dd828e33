package syntax

import (
	"strconv"
	"strings"
)

// Sexpr renders node as a compact S-expression. Parenthesized source
// expressions have no node of their own, so `1 + (2 * 3)` and `1 + 2 * 3`
// render identically.
func Sexpr(node Node) string {
	var b strings.Builder
	writeSexpr(&b, node)
	return b.String()
}

func writeSexpr(b *strings.Builder, node Node) {
	list := func(head string, parts ...func()) {
		b.WriteString("(" + head)
		for _, part := range parts {
			b.WriteByte(' ')
			part()
		}
		b.WriteByte(')')
	}
	sub := func(n Node) func() { return func() { writeSexpr(b, n) } }
	str := func(s string) func() { return func() { b.WriteString(strconv.Quote(s)) } }

	switch n := node.(type) {
	case *Program:
		parts := make([]func(), len(n.Items))
		for i, d := range n.Items {
			parts[i] = sub(d)
		}
		list("program", parts...)

	case *ImportDecl:
		parts := []func(){str(n.Path)}
		for _, s := range n.Symbols {
			parts = append(parts, str(s.Value))
		}
		list("import", parts...)

	case *StructDecl:
		parts := []func(){str(n.Name.Value)}
		for _, f := range n.Fields {
			parts = append(parts, sub(f))
		}
		list("struct", parts...)

	case *Field:
		list("field", str(n.Type.Value), str(n.Name.Value))

	case *FuncDecl:
		if n.IsMain {
			list("main", sub(n.Body))
			return
		}
		params := func() {
			parts := make([]func(), len(n.Params))
			for i, f := range n.Params {
				parts[i] = sub(f)
			}
			list("params", parts...)
		}
		result := func() { b.WriteString("void") }
		if n.Result != nil {
			result = str(n.Result.Value)
		}
		list("func", str(n.Name.Value), params, result, sub(n.Body))

	case *BlockStmt:
		parts := make([]func(), len(n.Stmts))
		for i, s := range n.Stmts {
			parts[i] = sub(s)
		}
		list("block", parts...)

	case *LetStmt:
		if n.Type != nil {
			list("let", str(n.Name.Value), str(n.Type.Value), sub(n.Value))
		} else {
			list("let", str(n.Name.Value), sub(n.Value))
		}

	case *AssignStmt:
		list("assign", sub(n.Target), sub(n.Value))

	case *ExprStmt:
		writeSexpr(b, n.X)

	case *ReturnStmt:
		if n.Result == nil {
			list("return")
		} else {
			list("return", sub(n.Result))
		}

	case *IfStmt:
		if n.Else != nil {
			list("if", sub(n.Cond), sub(n.Then), sub(n.Else))
		} else {
			list("if", sub(n.Cond), sub(n.Then))
		}

	case *WhileStmt:
		list("while", sub(n.Cond), sub(n.Body))

	case *Name:
		list("ident", str(n.Value))

	case *BasicLit:
		switch n.Kind {
		case IntLit:
			list("integer", func() { b.WriteString(n.Value) })
		case FloatLit:
			list("float", func() { b.WriteString(n.Value) })
		case CharLit:
			list("char", str(n.Value))
		case BoolLit:
			list("bool", func() { b.WriteString(n.Value) })
		}

	case *BinaryExpr:
		list("binary", str(n.Op.String()), sub(n.X), sub(n.Y))

	case *UnaryExpr:
		list("unary", str(n.Op.String()), sub(n.X))

	case *TernaryExpr:
		list("ternary", sub(n.Cond), sub(n.Then), sub(n.Else))

	case *CallExpr:
		parts := []func(){sub(n.Fun)}
		for _, a := range n.Args {
			parts = append(parts, sub(a))
		}
		list("call", parts...)

	case *FieldExpr:
		list("field-access", sub(n.X), str(n.Sel.Value))

	case *MethodCallExpr:
		parts := []func(){sub(n.Recv), str(n.Method.Value)}
		for _, a := range n.Args {
			parts = append(parts, sub(a))
		}
		list("method", parts...)

	case *StructLit:
		parts := []func(){str(n.Type.Value)}
		for _, f := range n.Fields {
			parts = append(parts, sub(f))
		}
		list("struct-lit", parts...)

	case *FieldInit:
		list("init", str(n.Name.Value), sub(n.Value))
	}
}
