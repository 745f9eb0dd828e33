package types

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/boron/internal/syntax"
)

// Struct represents a declared struct type. Struct types are nominal: two
// Structs are identical only if they are the same declaration.
type Struct struct {
	typ
	name   string
	module string // declaring module path
	pos    syntax.Pos
	fields []*Var         // declaration order
	index  map[string]int // field name -> position in fields
	local  bool           // declared inside a function body
}

// NewStruct creates a struct type with no fields yet.
// Fields are added with SetFields once all struct names are known.
func NewStruct(pos syntax.Pos, module, name string) *Struct {
	return &Struct{name: name, module: module, pos: pos, index: map[string]int{}}
}

// Name returns the struct name.
func (s *Struct) Name() string {
	return s.name
}

// Module returns the path of the module declaring the struct.
func (s *Struct) Module() string {
	return s.module
}

// Pos returns the declaration position.
func (s *Struct) Pos() syntax.Pos {
	return s.pos
}

// SetLocal marks the struct as declared inside a function body.
func (s *Struct) SetLocal() {
	s.local = true
}

// Local reports whether the struct was declared inside a function body.
func (s *Struct) Local() bool {
	return s.local
}

// SetFields sets the fields of s. It returns the first field whose name
// repeats an earlier one, or nil.
func (s *Struct) SetFields(fields []*Var) *Var {
	s.fields = fields
	s.index = make(map[string]int, len(fields))
	var dup *Var
	for i, f := range fields {
		if _, ok := s.index[f.Name()]; ok {
			if dup == nil {
				dup = f
			}
			continue
		}
		s.index[f.Name()] = i
	}
	return dup
}

// NumFields returns the number of fields.
func (s *Struct) NumFields() int {
	return len(s.fields)
}

// Field returns the field at the given index.
func (s *Struct) Field(i int) *Var {
	return s.fields[i]
}

// Fields returns all fields in declaration order.
func (s *Struct) Fields() []*Var {
	return s.fields
}

// FieldIndex returns the position of the named field, or -1.
func (s *Struct) FieldIndex(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// String implements Type.
func (s *Struct) String() string {
	return s.name
}

// Func represents a function signature.
type Func struct {
	typ
	params []*Var
	result Type // nil for no result
}

// NewFunc creates a new function signature.
func NewFunc(params []*Var, result Type) *Func {
	return &Func{params: params, result: result}
}

// Params returns the parameters in declaration order.
func (f *Func) Params() []*Var {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the i-th parameter.
func (f *Func) Param(i int) *Var {
	return f.params[i]
}

// Result returns the result type, or nil.
func (f *Func) Result() Type {
	return f.result
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("func(")
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Type().String())
	}
	buf.WriteString(")")
	if f.result != nil {
		fmt.Fprintf(&buf, " %s", f.result)
	}
	return buf.String()
}
