package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

type object = map[string]interface{}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	m := object{"pos": node.Pos().String()}
	switch n := node.(type) {
	case *Program:
		m["type"] = "Program"
		m["items"] = mapSlice(n.Items, func(d Decl) interface{} { return toJSON(d) })

	case *ImportDecl:
		m["type"] = "ImportDecl"
		m["path"] = n.Path
		if n.Symbols != nil {
			m["symbols"] = mapSlice(n.Symbols, func(s *Name) interface{} { return s.Value })
		}

	case *StructDecl:
		m["type"] = "StructDecl"
		m["name"] = n.Name.Value
		m["fields"] = mapSlice(n.Fields, func(f *Field) interface{} { return toJSON(f) })

	case *Field:
		m["type"] = "Field"
		m["name"] = n.Name.Value
		m["fieldtype"] = n.Type.Value

	case *FuncDecl:
		m["type"] = "FuncDecl"
		m["name"] = n.Name.Value
		m["main"] = n.IsMain
		m["params"] = mapSlice(n.Params, func(f *Field) interface{} { return toJSON(f) })
		if n.Result != nil {
			m["result"] = n.Result.Value
		}
		m["body"] = toJSON(n.Body)

	case *BlockStmt:
		m["type"] = "BlockStmt"
		m["stmts"] = mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) })

	case *LetStmt:
		m["type"] = "LetStmt"
		m["name"] = n.Name.Value
		if n.Type != nil {
			m["vartype"] = n.Type.Value
		}
		m["value"] = toJSON(n.Value)

	case *AssignStmt:
		m["type"] = "AssignStmt"
		m["target"] = toJSON(n.Target)
		m["value"] = toJSON(n.Value)

	case *ExprStmt:
		m["type"] = "ExprStmt"
		m["x"] = toJSON(n.X)

	case *ReturnStmt:
		m["type"] = "ReturnStmt"
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}

	case *IfStmt:
		m["type"] = "IfStmt"
		m["cond"] = toJSON(n.Cond)
		m["then"] = toJSON(n.Then)
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}

	case *WhileStmt:
		m["type"] = "WhileStmt"
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)

	case *Name:
		m["type"] = "Name"
		m["value"] = n.Value

	case *BasicLit:
		m["type"] = "BasicLit"
		m["kind"] = n.Kind.String()
		m["value"] = n.Value

	case *BinaryExpr:
		m["type"] = "BinaryExpr"
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)
		m["y"] = toJSON(n.Y)

	case *UnaryExpr:
		m["type"] = "UnaryExpr"
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)

	case *TernaryExpr:
		m["type"] = "TernaryExpr"
		m["cond"] = toJSON(n.Cond)
		m["then"] = toJSON(n.Then)
		m["else"] = toJSON(n.Else)

	case *CallExpr:
		m["type"] = "CallExpr"
		m["fun"] = n.Fun.Value
		m["args"] = mapSlice(n.Args, func(e Expr) interface{} { return toJSON(e) })

	case *FieldExpr:
		m["type"] = "FieldExpr"
		m["x"] = toJSON(n.X)
		m["sel"] = n.Sel.Value

	case *MethodCallExpr:
		m["type"] = "MethodCallExpr"
		m["recv"] = toJSON(n.Recv)
		m["method"] = n.Method.Value
		m["args"] = mapSlice(n.Args, func(e Expr) interface{} { return toJSON(e) })

	case *StructLit:
		m["type"] = "StructLit"
		m["structtype"] = n.Type.Value
		m["fields"] = mapSlice(n.Fields, func(f *FieldInit) interface{} { return toJSON(f) })

	case *FieldInit:
		m["type"] = "FieldInit"
		m["name"] = n.Name.Value
		m["value"] = toJSON(n.Value)
	}
	return m
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}
