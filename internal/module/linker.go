package module

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/resolver"
	"github.com/you-not-fish/boron/internal/syntax"
	"github.com/you-not-fish/boron/internal/types"
)

// Unit is one linked module: its source, syntax tree and resolution.
type Unit struct {
	Source  Source
	Program *syntax.Program
	Info    *resolver.Info
	Module  *types.Module
	Mode    resolver.Mode
	Imports []string // direct imports, first occurrence order
}

// Path returns the module path of u.
func (u *Unit) Path() string {
	return u.Source.Path
}

// Entry reports whether u is the compilation entry.
func (u *Unit) Entry() bool {
	return u.Mode != resolver.Dependency
}

// Config configures a link.
type Config struct {
	// Mode is the mode of the entry module, Executable or Library.
	// Imported modules are always resolved in Dependency mode.
	Mode resolver.Mode

	// Trace, if non-nil, receives one line per phase per module.
	Trace io.Writer
}

// mark is the state of a module during the import graph walk.
type mark int

const (
	unvisited mark = iota
	inProgress
	done
)

// Linker walks the import graph of one compilation. A Linker is not safe
// for concurrent use; independent compilations use independent Linkers.
type Linker struct {
	loc  Locator
	conf Config

	marks   map[string]mark
	units   map[string]*Unit
	order   []*Unit  // post-order: dependencies first
	stack   []string // modules in progress, outermost first
	symbols map[string]types.Object
}

// NewLinker returns a linker loading imports through loc.
func NewLinker(loc Locator, conf *Config) *Linker {
	l := &Linker{
		loc:     loc,
		marks:   make(map[string]mark),
		units:   make(map[string]*Unit),
		symbols: make(map[string]types.Object),
	}
	if conf != nil {
		l.conf = *conf
	}
	return l
}

// Link parses and resolves entry and, transitively, every module it
// imports. Units are returned dependencies first, entry last. The first
// error anywhere in the graph fails the whole link.
func (l *Linker) Link(entry Source) ([]*Unit, error) {
	if err := l.visit(entry.Path, &entry, syntax.Pos{}); err != nil {
		return nil, err
	}
	return l.order, nil
}

// Link is shorthand for NewLinker(loc, conf).Link(entry).
func Link(entry Source, loc Locator, conf *Config) ([]*Unit, error) {
	return NewLinker(loc, conf).Link(entry)
}

// visit links the module at p. src is the entry's source, nil for imports.
// pos is the position of the import naming p.
func (l *Linker) visit(p string, src *Source, pos syntax.Pos) error {
	switch l.marks[p] {
	case done:
		return nil
	case inProgress:
		return diag.CyclicImport(pos, l.cycle(p))
	}
	l.marks[p] = inProgress
	l.stack = append(l.stack, p)

	mode := resolver.Dependency
	if src == nil {
		s, err := l.locate(p, pos)
		if err != nil {
			return err
		}
		src = &s
	} else {
		mode = l.conf.Mode
	}

	u := &Unit{Source: *src, Mode: mode, Info: resolver.NewInfo()}

	var err error
	l.phase(p, "parse", func() {
		u.Program, err = syntax.Parse(src.Filename, src.Text)
	})
	if err != nil {
		return err
	}

	imports := make(map[string]*types.Module)
	for _, item := range u.Program.Items {
		d, ok := item.(*syntax.ImportDecl)
		if !ok {
			continue
		}
		if err := l.visit(d.Path, nil, d.Pos()); err != nil {
			return err
		}
		if _, seen := imports[d.Path]; !seen {
			imports[d.Path] = l.units[d.Path].Module
			u.Imports = append(u.Imports, d.Path)
		}
	}

	l.phase(p, "resolve", func() {
		u.Module, err = resolver.Resolve(u.Program, &resolver.Config{
			Module:  p,
			Mode:    mode,
			Imports: imports,
		}, u.Info)
	})
	if err != nil {
		return err
	}
	if err := l.claim(u.Module); err != nil {
		return err
	}

	l.stack = l.stack[:len(l.stack)-1]
	l.marks[p] = done
	l.units[p] = u
	l.order = append(l.order, u)
	return nil
}

func (l *Linker) locate(p string, pos syntax.Pos) (Source, error) {
	src, err := l.loc.Locate(p)
	if errors.Is(err, ErrNotFound) {
		return Source{}, diag.ModuleNotFound(pos, p)
	}
	if err != nil {
		return Source{}, fmt.Errorf("loading module %s: %w", p, err)
	}
	src.Path = p
	if src.Filename == "" {
		src.Filename = p + Ext
	}
	return src, nil
}

// cycle returns the import cycle closed by revisiting p, starting and
// ending with p.
func (l *Linker) cycle(p string) []string {
	for i, q := range l.stack {
		if q == p {
			path := append([]string(nil), l.stack[i:]...)
			return append(path, p)
		}
	}
	return []string{p, p}
}

// claim records the exports of mod as global symbols of the program. All
// linked modules share one C namespace, so a top-level name may be
// declared by one module only.
func (l *Linker) claim(mod *types.Module) error {
	for _, obj := range mod.Exports() {
		if prev := l.symbols[obj.Name()]; prev != nil {
			e := diag.Errorf(diag.RedeclarationError, obj.Pos(),
				"%s redeclared: already declared in module %s", obj.Name(), ownerOf(prev))
			e.Name = obj.Name()
			e.Module = mod.Path()
			return e
		}
		l.symbols[obj.Name()] = obj
	}
	return nil
}

func ownerOf(obj types.Object) string {
	switch obj := obj.(type) {
	case *types.FuncObj:
		return obj.Module()
	case *types.TypeName:
		if st, ok := obj.Type().(*types.Struct); ok {
			return st.Module()
		}
	}
	return "?"
}

// phase runs f, tracing its duration if enabled.
func (l *Linker) phase(module, name string, f func()) {
	Trace(l.conf.Trace, module, name, f)
}

// Trace runs f and, if w is non-nil, writes a line with its duration:
// "trace: <module> <phase> <duration>".
func Trace(w io.Writer, module, phase string, f func()) {
	if w == nil {
		f()
		return
	}
	start := time.Now()
	f()
	fmt.Fprintf(w, "trace: %s %s %v\n", module, phase, time.Since(start))
}
