package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Expressions, Statements, and Declarations.
// All nodes implement the Node interface. The marker methods close each set
// to this package, so a type switch over the concrete node types below is
// exhaustive.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all top-level declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Program and Declarations

// Program is the AST of one source module.
type Program struct {
	node
	Items []Decl // in source order
	End   Pos    // end of input
}

// ImportDecl represents: import a.b.c { X, y }
type ImportDecl struct {
	decl
	Path    string  // module path with "/" separators: "a/b/c"
	Symbols []*Name // imported names; nil imports every export
}

// StructDecl represents: struct Name { Type field, ... }
// It is also a statement when declared inside a block.
type StructDecl struct {
	decl
	Name   *Name
	Fields []*Field // declaration order
}

func (*StructDecl) aStmt() {}

// FuncDecl represents a function: name(Type a, Type b) -> Result { Body }
// or the program entry point: main { Body }.
type FuncDecl struct {
	decl
	Name   *Name
	Params []*Field // declaration order
	Result *Name    // return type name (nil for no result)
	Body   *BlockStmt
	IsMain bool
}

// Field is a typed name in a struct declaration or parameter list.
type Field struct {
	node
	Type *Name
	Name *Name
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// BasicLit represents a number, character or boolean literal.
type BasicLit struct {
	expr
	Value string  // literal text; the decoded character for CharLit
	Kind  LitKind // IntLit, FloatLit, CharLit, BoolLit
}

// BinaryExpr represents X Op Y.
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// UnaryExpr represents Op X.
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// TernaryExpr represents Cond ? Then | Else.
type TernaryExpr struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// CallExpr represents Fun(Args...).
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// FieldExpr represents X.Sel.
type FieldExpr struct {
	expr
	X   Expr
	Sel *Name
}

// MethodCallExpr represents Recv.Method(Args...).
type MethodCallExpr struct {
	expr
	Recv   Expr
	Method *Name
	Args   []Expr
}

// StructLit represents Type{ field: value, ... }.
// Fields keep source order; checking them against the struct declaration
// is left to the resolver.
type StructLit struct {
	expr
	Type   *Name
	Fields []*FieldInit
}

// FieldInit is one field: value entry of a StructLit.
type FieldInit struct {
	node
	Name  *Name
	Value Expr
}

// ----------------------------------------------------------------------------
// Statements

// BlockStmt represents { Stmts }.
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos
}

// LetStmt represents a binding: let [Type] Name: Value, or the struct
// initialization statement Type Name: { ... }.
type LetStmt struct {
	stmt
	Name  *Name
	Type  *Name // declared type (nil if inferred)
	Value Expr
}

// AssignStmt represents a reassignment: Target: Value.
type AssignStmt struct {
	stmt
	Target Expr // *Name or *FieldExpr
	Value  Expr
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// ReturnStmt represents: return [Result].
type ReturnStmt struct {
	stmt
	Result Expr // nil for bare return
}

// IfStmt represents: if Cond { Then } [else Else].
type IfStmt struct {
	stmt
	Cond Expr
	Then *BlockStmt
	Else Stmt // nil, *IfStmt, or *BlockStmt
}

// WhileStmt represents: while Cond { Body }.
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}
