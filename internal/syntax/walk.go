package syntax

import "fmt"

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Items {
			Walk(d, v)
		}

	case *ImportDecl:
		for _, s := range n.Symbols {
			Walk(s, v)
		}

	case *StructDecl:
		Walk(n.Name, v)
		for _, f := range n.Fields {
			Walk(f, v)
		}

	case *FuncDecl:
		Walk(n.Name, v)
		for _, f := range n.Params {
			Walk(f, v)
		}
		if n.Result != nil {
			Walk(n.Result, v)
		}
		Walk(n.Body, v)

	case *Field:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *LetStmt:
		if n.Type != nil {
			Walk(n.Type, v)
		}
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *AssignStmt:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *Name, *BasicLit:
		// leaves

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *TernaryExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *FieldExpr:
		Walk(n.X, v)
		Walk(n.Sel, v)

	case *MethodCallExpr:
		Walk(n.Recv, v)
		Walk(n.Method, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *StructLit:
		Walk(n.Type, v)
		for _, f := range n.Fields {
			Walk(f, v)
		}

	case *FieldInit:
		Walk(n.Name, v)
		Walk(n.Value, v)

	default:
		panic(fmt.Sprintf("syntax.Walk: unexpected node type %T", n))
	}
}

// Inspect calls f for every node in the tree rooted at node.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
