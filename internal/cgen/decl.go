package cgen

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/boron/internal/rtabi"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// funcObj returns the object declared by fd.
func (g *generator) funcObj(fd *syntax.FuncDecl) *types.FuncObj {
	return g.f.Info.Defs[fd.Name].(*types.FuncObj)
}

// structType returns the struct declared by sd.
func (g *generator) structType(sd *syntax.StructDecl) *types.Struct {
	return g.f.Info.Defs[sd.Name].Type().(*types.Struct)
}

// structOrder returns the module's top-level structs in emission order:
// declaration order, except that a struct contained by value in another
// comes first. Structs from other modules are defined by their headers.
func (g *generator) structOrder() []*types.Struct {
	var decls []*types.Struct
	for _, d := range g.f.Program.Items {
		if sd, ok := d.(*syntax.StructDecl); ok {
			decls = append(decls, g.structType(sd))
		}
	}

	var order []*types.Struct
	seen := make(map[*types.Struct]bool)
	var visit func(s *types.Struct)
	visit = func(s *types.Struct) {
		if seen[s] {
			return
		}
		seen[s] = true
		for _, f := range s.Fields() {
			if dep, ok := f.Type().(*types.Struct); ok && dep.Module() == s.Module() && !dep.Local() {
				visit(dep)
			}
		}
		order = append(order, s)
	}
	for _, s := range decls {
		visit(s)
	}
	return order
}

// structDef writes the definition of s.
func (g *generator) structDef(s *types.Struct) {
	g.e.open("struct %s", g.tag(s))
	if s.NumFields() == 0 {
		g.e.emit("char %s;", rtabi.UnusedField)
	}
	for _, f := range s.Fields() {
		g.e.emit("%s;", g.declare(f.Type(), rtabi.Ident(f.Name())))
	}
	g.e.close(";")
}

// localStruct writes a struct declared inside a function body. Its tag is
// a generated name so that it cannot hide a top-level struct of the same
// name inside the rest of the block.
func (g *generator) localStruct(sd *syntax.StructDecl) {
	s := g.structType(sd)
	g.tags[s] = g.temp(s.Name())
	g.structDef(s)
}

// tag returns the C struct tag of s.
func (g *generator) tag(s *types.Struct) string {
	if t, ok := g.tags[s]; ok {
		return t
	}
	return rtabi.Ident(s.Name())
}

// temp returns a fresh generated name derived from base.
func (g *generator) temp(base string) string {
	g.ntemp++
	return rtabi.Temp(base, g.ntemp)
}

// ctype returns the C spelling of t.
func (g *generator) ctype(t types.Type) string {
	switch t := t.(type) {
	case *types.Basic:
		switch t.Kind() {
		case types.Int:
			return rtabi.CTypeInt
		case types.Float:
			return rtabi.CTypeFloat
		case types.Bool:
			return rtabi.CTypeBool
		case types.Char:
			return rtabi.CTypeChar
		}
	case *types.Struct:
		return "struct " + g.tag(t)
	case nil:
		return rtabi.CTypeVoid
	}
	panic(fmt.Sprintf("cgen: unexpected type %v", t))
}

// declare returns the declaration of name with type t.
func (g *generator) declare(t types.Type, name string) string {
	return g.ctype(t) + " " + name
}

// declarePtr returns the declaration of name as a pointer to s.
func (g *generator) declarePtr(s *types.Struct, name string) string {
	return g.ctype(s) + " *" + name
}

// isStruct reports whether t is a struct type.
func isStruct(t types.Type) bool {
	_, ok := t.(*types.Struct)
	return ok
}

// signature returns the C declarator of fn without a trailing semicolon.
func (g *generator) signature(fn *types.FuncObj) string {
	if fn.IsMain() {
		return "int " + rtabi.EntryPoint + "(void)"
	}

	sig := fn.Signature()
	var params []string
	for _, p := range sig.Params() {
		name := rtabi.Ident(p.Name())
		if s, ok := p.Type().(*types.Struct); ok {
			params = append(params, g.declarePtr(s, name))
		} else {
			params = append(params, g.declare(p.Type(), name))
		}
	}

	head := g.declare(sig.Result(), rtabi.Ident(fn.Name()))
	if s, ok := sig.Result().(*types.Struct); ok {
		head = g.declarePtr(s, rtabi.Ident(fn.Name()))
		params = append(params, g.declarePtr(s, rtabi.OutParam))
	}
	if len(params) == 0 {
		params = []string{"void"}
	}
	return head + "(" + strings.Join(params, ", ") + ")"
}

// funcDecl writes the definition of a function or of main.
func (g *generator) funcDecl(fd *syntax.FuncDecl) {
	g.fn = g.funcObj(fd)
	defer func() { g.fn = nil }()

	g.e.open("%s", g.signature(g.fn))
	g.stmts(fd.Body.Stmts)
	if g.fn.IsMain() {
		g.e.emit("return 0;")
	}
	g.e.close("")
}
