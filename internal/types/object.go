package types

import "github.com/you-not-fish/boron/internal/syntax"

// Object is a Binding: the resolved declaration a name refers to.
// It is a variable, parameter, field, type name, function, or builtin.
type Object interface {
	Name() string    // object name
	Type() Type      // object type
	Pos() syntax.Pos // declaration position
	Parent() *Scope  // enclosing scope

	setParent(*Scope)
	aObject() // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name   string
	typ    Type
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Type() Type         { return o.typ }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// VarKind distinguishes the roles a Var can play.
type VarKind uint8

const (
	LocalVar VarKind = iota // let binding
	ParamVar                // function parameter
	FieldVar                // struct field
)

// Var represents a variable, parameter, or struct field.
type Var struct {
	object
	kind VarKind
}

// NewVar creates a let-bound variable.
func NewVar(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, kind: LocalVar}
}

// NewParam creates a function parameter.
func NewParam(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, kind: ParamVar}
}

// NewField creates a struct field.
func NewField(pos syntax.Pos, name string, typ Type) *Var {
	return &Var{object: object{name: name, typ: typ, pos: pos}, kind: FieldVar}
}

// Kind returns the role of the variable.
func (v *Var) Kind() VarKind {
	return v.kind
}

// IsField reports whether this variable is a struct field.
func (v *Var) IsField() bool {
	return v.kind == FieldVar
}

// IsParam reports whether this variable is a function parameter.
func (v *Var) IsParam() bool {
	return v.kind == ParamVar
}

// TypeName represents a declared type name: a basic type or a struct.
type TypeName struct {
	object
}

// NewTypeName creates a new type name object.
func NewTypeName(pos syntax.Pos, name string, typ Type) *TypeName {
	return &TypeName{object: object{name: name, typ: typ, pos: pos}}
}

// FuncObj represents a declared function.
type FuncObj struct {
	object
	sig    *Func
	module string
	isMain bool
}

// NewFuncObj creates a new function object declared in module.
// The signature is set later using SetSignature.
func NewFuncObj(pos syntax.Pos, module, name string) *FuncObj {
	return &FuncObj{object: object{name: name, pos: pos}, module: module}
}

// NewMain creates the function object for a module's main.
func NewMain(pos syntax.Pos, module string) *FuncObj {
	f := NewFuncObj(pos, module, "main")
	f.isMain = true
	f.SetSignature(NewFunc(nil, nil))
	return f
}

// Signature returns the function signature.
func (f *FuncObj) Signature() *Func {
	return f.sig
}

// SetSignature sets the function signature.
func (f *FuncObj) SetSignature(sig *Func) {
	f.sig = sig
	f.typ = sig
}

// Module returns the path of the declaring module.
func (f *FuncObj) Module() string {
	return f.module
}

// IsMain reports whether f is a program entry point.
func (f *FuncObj) IsMain() bool {
	return f.isMain
}

// Receiver returns the struct type f is a method of, that is the type of
// its first parameter when that is a struct, or nil.
func (f *FuncObj) Receiver() *Struct {
	if f.sig == nil || len(f.sig.params) == 0 {
		return nil
	}
	s, _ := f.sig.params[0].Type().(*Struct)
	return s
}

// BuiltinKind identifies a builtin function.
type BuiltinKind int

const (
	BuiltinPrint BuiltinKind = iota
)

// Builtin represents a built-in function.
type Builtin struct {
	object
	kind BuiltinKind
}

// NewBuiltin creates a new builtin function object.
func NewBuiltin(name string, kind BuiltinKind) *Builtin {
	return &Builtin{object: object{name: name}, kind: kind}
}

// Kind returns the builtin function kind.
func (b *Builtin) Kind() BuiltinKind {
	return b.kind
}
