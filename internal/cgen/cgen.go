// Package cgen translates resolved Boron modules into C.
//
// Every module becomes one C source file. A module that other modules can
// import also gets a header holding its struct definitions and function
// prototypes behind an include guard. Output is a pure function of the
// resolved module and the Config, so emitting twice yields identical text.
//
// Structs keep value semantics in Boron but are passed by reference in C:
// a struct parameter is a pointer, and a struct-returning function takes a
// trailing out pointer, stores its result there and returns it. Method
// calls r.m(a) are lowered to m(&r, a).
package cgen

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/you-not-fish/boron/internal/resolver"
	"github.com/you-not-fish/boron/internal/rtabi"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// Generator is the name written into the header comment of every file.
const Generator = "boronc"

// File is one resolved module ready for emission.
type File struct {
	Program *syntax.Program
	Info    *resolver.Info
	Module  *types.Module

	// Imports lists the paths of the modules Program imports directly,
	// in first occurrence order. Each becomes an #include of its header.
	Imports []string

	// Importable reports whether other modules include this module's
	// header. Such a module's declarations live in the header; otherwise
	// they are emitted at the top of the C source.
	Importable bool
}

// Config configures emission.
type Config struct {
	// Timestamp, if non-zero, is written into the header comment as
	// "Created on YYYY-MM-DD at HH:MM:SS".
	Timestamp time.Time
}

// Output holds the emitted text of one module.
type Output struct {
	Module string
	Source string // C source
	Header string // C header; empty unless the module is importable
}

// Emit translates f into C text.
func Emit(f *File, conf *Config) (*Output, error) {
	out := &Output{Module: f.Module.Path()}

	var buf bytes.Buffer
	if err := WriteSource(&buf, f, conf); err != nil {
		return nil, err
	}
	out.Source = buf.String()

	if f.Importable {
		buf.Reset()
		if err := WriteHeader(&buf, f, conf); err != nil {
			return nil, err
		}
		out.Header = buf.String()
	}
	return out, nil
}

// WriteSource writes the C source of f to w.
func WriteSource(w io.Writer, f *File, conf *Config) error {
	g := newGenerator(w, f, conf)
	g.source()
	return g.e.err
}

// WriteHeader writes the C header of f to w. It fails if f is not
// importable.
func WriteHeader(w io.Writer, f *File, conf *Config) error {
	if !f.Importable {
		return fmt.Errorf("cgen: module %s is not importable", f.Module.Path())
	}
	g := newGenerator(w, f, conf)
	g.header()
	return g.e.err
}

// generator holds the state for emitting one file.
type generator struct {
	e    *emitter
	f    *File
	conf Config

	fn    *types.FuncObj          // function being emitted
	tags  map[*types.Struct]string // C tags of local structs
	ntemp int                      // counter for generated names
}

func newGenerator(w io.Writer, f *File, conf *Config) *generator {
	g := &generator{
		e:    &emitter{w: w},
		f:    f,
		tags: make(map[*types.Struct]string),
	}
	if conf != nil {
		g.conf = *conf
	}
	return g
}

// preamble writes the generated-code comment block.
func (g *generator) preamble() {
	g.e.emitComment("Code generated by %s. DO NOT EDIT.", Generator)
	g.e.emitComment("Source: %s", g.f.Module.Path())
	if ts := g.conf.Timestamp; !ts.IsZero() {
		g.e.emitComment("Created on %s", ts.Format("2006-01-02 at 15:04:05"))
	}
	g.e.emitLine()
}

// includes writes <stdbool.h> followed by the headers of direct imports.
func (g *generator) includes() {
	g.e.emit("#include %s", rtabi.StdBool)
	for _, path := range g.f.Imports {
		g.e.emit("#include %q", rtabi.HeaderPath(path))
	}
}

func (g *generator) header() {
	guard := rtabi.Guard(g.f.Module.Path())

	g.preamble()
	g.e.emit("#ifndef %s", guard)
	g.e.emit("#define %s", guard)
	g.e.emitLine()
	g.includes()
	g.declarations()
	g.e.emitLine()
	g.e.emit("#endif // %s", guard)
}

func (g *generator) source() {
	g.preamble()
	g.includes()
	if g.f.Importable {
		g.e.emit("#include %q", rtabi.HeaderPath(g.f.Module.Path()))
	}
	if usesPrint(g.f) {
		g.e.emitLine()
		g.e.emit("%s", rtabi.PrintfProto)
	}
	if !g.f.Importable {
		g.declarations()
	}
	for _, d := range g.f.Program.Items {
		if fd, ok := d.(*syntax.FuncDecl); ok {
			g.e.emitLine()
			g.funcDecl(fd)
		}
	}
}

// declarations writes the module's top-level struct definitions and the
// prototypes of its functions other than main.
func (g *generator) declarations() {
	for _, s := range g.structOrder() {
		g.e.emitLine()
		g.structDef(s)
	}

	first := true
	for _, d := range g.f.Program.Items {
		fd, ok := d.(*syntax.FuncDecl)
		if !ok || fd.IsMain {
			continue
		}
		if first {
			g.e.emitLine()
			first = false
		}
		g.e.emit("%s;", g.signature(g.funcObj(fd)))
	}
}

// usesPrint reports whether any function of f calls print.
func usesPrint(f *File) bool {
	found := false
	syntax.Walk(f.Program, func(n syntax.Node) bool {
		if found {
			return false
		}
		if call, ok := n.(*syntax.CallExpr); ok {
			if _, ok := f.Info.Uses[call.Fun].(*types.Builtin); ok {
				found = true
			}
		}
		return true
	})
	return found
}
