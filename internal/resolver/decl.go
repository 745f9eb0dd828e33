package resolver

import (
	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// module resolves a whole program.
//
// Top-level structs and functions are hoisted: every top-level name is
// declared before any field type, signature or body is examined, so
// declarations may refer to each other in any order.
func (r *resolver) module(prog *syntax.Program) {
	r.mod = types.NewModule(r.conf.Module)
	r.scope = r.mod.Scope()
	r.info.Scopes[prog] = r.scope

	// Phase 1: bind imported declarations
	for _, item := range prog.Items {
		if d, ok := item.(*syntax.ImportDecl); ok {
			r.importDecl(d)
		}
	}

	// Phase 2: collect top-level names
	var structs []*syntax.StructDecl
	var funcs []*syntax.FuncDecl
	for _, item := range prog.Items {
		switch d := item.(type) {
		case *syntax.StructDecl:
			r.collectStruct(d)
			structs = append(structs, d)
		case *syntax.FuncDecl:
			if d.IsMain {
				r.collectMain(d)
			} else {
				r.collectFunc(d)
			}
			funcs = append(funcs, d)
		}
	}

	// Phase 3: struct fields, then signatures
	for _, d := range structs {
		r.structFields(d)
	}
	for _, d := range structs {
		r.checkRecursive(d)
	}
	for _, d := range funcs {
		if !d.IsMain {
			r.signature(d)
		}
	}

	// Phase 4: bodies
	for _, d := range funcs {
		r.funcBody(d)
	}

	if r.conf.Mode == Executable && r.mod.Main() == nil {
		r.fail(diag.MissingMain(prog.End, r.mod.Path()))
	}
}

// importDecl makes the exports of an imported module visible.
func (r *resolver) importDecl(d *syntax.ImportDecl) {
	m := r.conf.Imports[d.Path]
	if m == nil {
		r.fail(diag.ModuleNotFound(d.Pos(), d.Path))
	}

	if d.Symbols == nil {
		for _, obj := range m.Exports() {
			r.bind(d.Pos(), obj)
		}
		return
	}
	for _, name := range d.Symbols {
		obj := m.Export(name.Value)
		if obj == nil {
			r.fail(diag.UnresolvedImport(name.Pos(), d.Path, name.Value))
		}
		r.bind(name.Pos(), obj)
		r.info.Uses[name] = obj
	}
}

// bind exposes an imported object in the module scope. Importing the same
// declaration twice is harmless; two different declarations of one name
// are not.
func (r *resolver) bind(pos syntax.Pos, obj types.Object) {
	if existing := r.scope.Bind(obj); existing != nil && existing != obj {
		r.fail(diag.Redeclaration(pos, obj.Name()))
	}
}

func (r *resolver) collectStruct(d *syntax.StructDecl) {
	st := types.NewStruct(d.Name.Pos(), r.mod.Path(), d.Name.Value)
	tn := types.NewTypeName(d.Name.Pos(), d.Name.Value, st)
	r.declare(d.Name, tn)
	r.mod.AddExport(tn)
}

func (r *resolver) collectFunc(d *syntax.FuncDecl) {
	fn := types.NewFuncObj(d.Name.Pos(), r.mod.Path(), d.Name.Value)
	r.declare(d.Name, fn)
	r.mod.AddExport(fn)
}

// collectMain records the module's entry point. main is not a binding:
// it cannot be referred to by name.
func (r *resolver) collectMain(d *syntax.FuncDecl) {
	if r.mod.Main() != nil {
		r.fail(diag.Redeclaration(d.Name.Pos(), "main"))
	}
	if r.conf.Mode == Dependency {
		e := diag.Errorf(diag.RedeclarationError, d.Name.Pos(),
			"imported module %s declares main", r.mod.Path())
		e.Name = "main"
		e.Module = r.mod.Path()
		r.fail(e)
	}
	fn := types.NewMain(d.Name.Pos(), r.mod.Path())
	r.mod.SetMain(fn)
	r.info.Defs[d.Name] = fn
}

// structFields resolves the field types of a declared struct, keeping
// declaration order.
func (r *resolver) structFields(d *syntax.StructDecl) {
	st := r.info.Defs[d.Name].Type().(*types.Struct)
	fields := make([]*types.Var, len(d.Fields))
	for i, f := range d.Fields {
		fields[i] = types.NewField(f.Name.Pos(), f.Name.Value, r.typeName(f.Type))
		r.info.Defs[f.Name] = fields[i]
	}
	if dup := st.SetFields(fields); dup != nil {
		r.fail(diag.DuplicateField(dup.Pos(), st.Name(), dup.Name()))
	}
}

// checkRecursive reports a struct that contains itself by value.
func (r *resolver) checkRecursive(d *syntax.StructDecl) {
	root := r.info.Defs[d.Name].Type().(*types.Struct)
	seen := make(map[*types.Struct]bool)

	var visit func(st *types.Struct)
	visit = func(st *types.Struct) {
		for _, f := range st.Fields() {
			inner, ok := f.Type().(*types.Struct)
			if !ok {
				continue
			}
			if inner == root {
				r.typeMismatch(d.Name.Pos(), "finite type", root.Name(),
					"invalid recursive type %s", root.Name())
			}
			if !seen[inner] {
				seen[inner] = true
				visit(inner)
			}
		}
	}
	visit(root)
}

// signature resolves parameter and result types of a function.
func (r *resolver) signature(d *syntax.FuncDecl) {
	fn := r.info.Defs[d.Name].(*types.FuncObj)
	params := make([]*types.Var, len(d.Params))
	for i, p := range d.Params {
		params[i] = types.NewParam(p.Name.Pos(), p.Name.Value, r.typeName(p.Type))
	}
	var result types.Type
	if d.Result != nil {
		result = r.typeName(d.Result)
	}
	fn.SetSignature(types.NewFunc(params, result))
}

// funcBody resolves a function body. Parameters and the body's top-level
// statements share one frame.
func (r *resolver) funcBody(d *syntax.FuncDecl) {
	fn := r.info.Defs[d.Name].(*types.FuncObj)
	sig := fn.Signature()

	r.fn = fn
	scope := r.openScope(d, "function "+fn.Name())
	r.info.Scopes[d.Body] = scope

	for i, p := range sig.Params() {
		r.declare(d.Params[i].Name, p)
	}
	r.stmts(d.Body.Stmts)

	if res := sig.Result(); res != nil && !blockMustReturn(d.Body.Stmts) {
		r.typeMismatch(d.Body.Rbrace, res.String(), "no value",
			"missing return at end of %s", fn.Name())
	}

	r.closeScope()
	r.fn = nil
}

// localStruct declares a struct inside a function body. It is visible from
// its declaration to the end of the enclosing block.
func (r *resolver) localStruct(d *syntax.StructDecl) {
	st := types.NewStruct(d.Name.Pos(), r.mod.Path(), d.Name.Value)
	st.SetLocal()
	r.declare(d.Name, types.NewTypeName(d.Name.Pos(), d.Name.Value, st))
	r.structFields(d)
	r.checkRecursive(d)
}
