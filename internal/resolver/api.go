// Package resolver implements name resolution and semantic validation for
// Boron modules.
package resolver

import (
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// Mode selects how a module's main block is treated.
type Mode int

const (
	Executable Mode = iota // compilation entry: exactly one main required
	Library                // main optional
	Dependency             // imported module: main not allowed
)

func (m Mode) String() string {
	switch m {
	case Executable:
		return "executable"
	case Library:
		return "library"
	case Dependency:
		return "dependency"
	}
	return "unknown"
}

// Config specifies the configuration for resolving one module.
type Config struct {
	// Module is the module path, e.g. "geometry/shapes".
	Module string

	Mode Mode

	// Imports maps import paths to the already resolved modules they name.
	// A path missing from the map fails with ModuleNotFoundError.
	Imports map[string]*types.Module
}

// Info holds the results of resolution, keyed by AST node. The emitter
// reads the module exclusively through these tables.
type Info struct {
	// Types maps expressions to their type and mode.
	Types map[syntax.Expr]TypeAndValue

	// Defs maps declaring identifiers (lets, params, fields, structs,
	// functions and main) to the objects they declare.
	Defs map[*syntax.Name]types.Object

	// Uses maps referring identifiers to the objects they denote,
	// including type names, field selectors and method names.
	Uses map[*syntax.Name]types.Object

	// Inits maps each struct literal to its field values in field
	// declaration order.
	Inits map[*syntax.StructLit][]syntax.Expr

	// Scopes maps the program, functions and blocks to their scopes.
	// A function and its body share one scope.
	Scopes map[syntax.Node]*types.Scope
}

// NewInfo returns an Info with all maps allocated.
func NewInfo() *Info {
	return &Info{
		Types:  make(map[syntax.Expr]TypeAndValue),
		Defs:   make(map[*syntax.Name]types.Object),
		Uses:   make(map[*syntax.Name]types.Object),
		Inits:  make(map[*syntax.StructLit][]syntax.Expr),
		Scopes: make(map[syntax.Node]*types.Scope),
	}
}

// TypeOf returns the type of expression e, or nil if unknown.
func (info *Info) TypeOf(e syntax.Expr) types.Type {
	return info.Types[e].Type
}

// ObjectOf returns the object declared or denoted by name, or nil.
func (info *Info) ObjectOf(name *syntax.Name) types.Object {
	if obj := info.Defs[name]; obj != nil {
		return obj
	}
	return info.Uses[name]
}

// TypeAndValue holds the type information for an expression.
type TypeAndValue struct {
	Type types.Type // nil for calls without result
	mode operandMode
}

// IsVoid reports whether the expression is a call without result.
func (tv TypeAndValue) IsVoid() bool {
	return tv.mode == novalue
}

// IsAddressable reports whether the expression denotes a storage location.
func (tv TypeAndValue) IsAddressable() bool {
	return tv.mode == variable
}

// IsValue reports whether the expression has a value.
func (tv TypeAndValue) IsValue() bool {
	return tv.mode == variable || tv.mode == value
}

// Resolve validates a parsed module and builds its symbol table.
// It stops at the first error; on failure no module is returned.
func Resolve(prog *syntax.Program, conf *Config, info *Info) (mod *types.Module, err error) {
	if conf == nil {
		conf = &Config{}
	}
	if info == nil {
		info = NewInfo()
	}

	r := &resolver{conf: conf, info: info}
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(bailout); !ok {
				panic(p)
			}
			mod, err = nil, r.first
		}
	}()

	r.module(prog)
	return r.mod, nil
}
