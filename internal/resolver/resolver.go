package resolver

import (
	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// resolver holds the state of one module's resolution. Nothing in it is
// shared between modules, so independent modules resolve concurrently.
type resolver struct {
	conf *Config
	info *Info
	mod  *types.Module

	scope *types.Scope   // current frame
	fn    *types.FuncObj // function whose body is being resolved
	first *diag.Error    // error that stopped the resolution
}

// bailout is the panic value used to unwind after the first error.
type bailout struct{}

// fail records err and abandons the resolution.
func (r *resolver) fail(err *diag.Error) {
	if r.first == nil {
		r.first = err
	}
	panic(bailout{})
}

func (r *resolver) typeMismatch(pos syntax.Pos, expected, found string, format string, args ...any) {
	r.fail(diag.TypeMismatch(pos, expected, found, format, args...))
}

// openScope pushes a frame for n.
func (r *resolver) openScope(n syntax.Node, comment string) *types.Scope {
	s := types.NewScope(r.scope, n.Pos(), n.Pos(), comment)
	r.scope = s
	r.info.Scopes[n] = s
	return s
}

// closeScope pops the current frame.
func (r *resolver) closeScope() {
	r.scope = r.scope.Parent()
}

// declare binds obj in the current frame.
func (r *resolver) declare(name *syntax.Name, obj types.Object) {
	if existing := r.scope.Insert(obj); existing != nil {
		r.fail(diag.Redeclaration(name.Pos(), name.Value))
	}
	r.info.Defs[name] = obj
}

// resolve returns the innermost binding of name.
func (r *resolver) resolve(name *syntax.Name) types.Object {
	obj, _ := r.scope.LookupParent(name.Value)
	if obj == nil {
		r.fail(diag.UnresolvedName(name.Pos(), name.Value))
	}
	r.info.Uses[name] = obj
	return obj
}

// typeName resolves a name used in type position.
func (r *resolver) typeName(name *syntax.Name) types.Type {
	tn, ok := r.resolve(name).(*types.TypeName)
	if !ok {
		r.typeMismatch(name.Pos(), "type", name.Value, "%s is not a type", name.Value)
	}
	return tn.Type()
}
