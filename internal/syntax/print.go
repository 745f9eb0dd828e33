package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// child prints a labelled sub-node one level deeper.
func (p *printer) child(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, d := range n.Items {
			p.print(d)
		}
		p.indent--

	case *ImportDecl:
		p.printf("ImportDecl %s\n", n.pos)
		p.indent++
		p.printf("Path: %s\n", n.Path)
		if n.Symbols != nil {
			names := make([]string, len(n.Symbols))
			for i, s := range n.Symbols {
				names[i] = s.Value
			}
			p.printf("Symbols: %s\n", strings.Join(names, ", "))
		}
		p.indent--

	case *StructDecl:
		p.printf("StructDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		for _, f := range n.Fields {
			p.printf("Field: %s %s\n", f.Type.Value, f.Name.Value)
		}
		p.indent--

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, f := range n.Params {
				p.printf("%s %s\n", f.Type.Value, f.Name.Value)
			}
			p.indent--
		}
		if n.Result != nil {
			p.printf("Result: %s\n", n.Result.Value)
		}
		p.child("Body", n.Body)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *LetStmt:
		p.printf("LetStmt %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		if n.Type != nil {
			p.printf("Type: %s\n", n.Type.Value)
		}
		p.child("Value", n.Value)
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.child("Target", n.Target)
		p.child("Value", n.Value)
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		if n.Else != nil {
			p.child("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Body", n.Body)
		p.indent--

	case *Name:
		p.printf("Name %s %s\n", n.Value, n.pos)

	case *BasicLit:
		p.printf("BasicLit %s %q %s\n", n.Kind, n.Value, n.pos)

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.Op, n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.Op, n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *TernaryExpr:
		p.printf("TernaryExpr %s\n", n.pos)
		p.indent++
		p.child("Cond", n.Cond)
		p.child("Then", n.Then)
		p.child("Else", n.Else)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s %s\n", n.Fun.Value, n.pos)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *FieldExpr:
		p.printf("FieldExpr .%s %s\n", n.Sel.Value, n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *MethodCallExpr:
		p.printf("MethodCallExpr .%s %s\n", n.Method.Value, n.pos)
		p.indent++
		p.child("Recv", n.Recv)
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *StructLit:
		p.printf("StructLit %s %s\n", n.Type.Value, n.pos)
		p.indent++
		for _, f := range n.Fields {
			p.print(f)
		}
		p.indent--

	case *FieldInit:
		p.child(n.Name.Value, n.Value)

	case *Field:
		p.printf("Field %s %s\n", n.Type.Value, n.Name.Value)

	default:
		p.printf("<unknown node %T>\n", n)
	}
}
