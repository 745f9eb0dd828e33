package types

import "github.com/you-not-fish/boron/internal/syntax"

// Module is the symbol table of one resolved source module: its top-level
// scope and the ordered list of declarations it exports.
type Module struct {
	path    string
	scope   *Scope
	exports []Object // *TypeName (struct) and *FuncObj, declaration order
	main    *FuncObj
}

// NewModule creates an empty module with a top-level scope under Universe.
func NewModule(path string) *Module {
	var pos syntax.Pos
	return &Module{
		path:  path,
		scope: NewScope(Universe, pos, pos, "module "+path),
	}
}

// Path returns the module path, e.g. "geometry/shapes".
func (m *Module) Path() string {
	return m.path
}

// Scope returns the module-level scope.
func (m *Module) Scope() *Scope {
	return m.scope
}

// AddExport appends obj to the export list.
func (m *Module) AddExport(obj Object) {
	m.exports = append(m.exports, obj)
}

// Exports returns the exported declarations in declaration order.
func (m *Module) Exports() []Object {
	return m.exports
}

// Export returns the exported declaration with the given name, or nil.
func (m *Module) Export(name string) Object {
	for _, obj := range m.exports {
		if obj.Name() == name {
			return obj
		}
	}
	return nil
}

// SetMain records the module's entry point.
func (m *Module) SetMain(f *FuncObj) {
	m.main = f
}

// Main returns the module's main function, or nil.
func (m *Module) Main() *FuncObj {
	return m.main
}

// String returns the module path.
func (m *Module) String() string {
	return m.path
}
