// Package boron compiles Boron programs to C.
//
// Compile takes the source of an entry module and a Locator for the
// modules it imports, and returns the C text of every module of the
// program: dependencies first, the entry last. Importable modules come
// with a header. The standard library (std/...) is always available.
//
// Nothing is read from or written to disk; callers own all I/O.
package boron

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/boron/internal/cgen"
	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/module"
	"github.com/you-not-fish/boron/internal/resolver"
	"github.com/you-not-fish/boron/internal/rtabi"
	"github.com/you-not-fish/boron/internal/stdlib"
)

// Mode selects whether the entry module must declare main.
type Mode int

const (
	Executable Mode = iota // the entry must declare main
	Library                // main is optional and the entry gets a header
)

func (m Mode) String() string {
	if m == Library {
		return "library"
	}
	return "executable"
}

func (m Mode) resolverMode() resolver.Mode {
	if m == Library {
		return resolver.Library
	}
	return resolver.Executable
}

// DefaultModule is the path of the entry module when Config.Module is
// empty.
const DefaultModule = "main"

// Config configures a compilation. The zero value compiles an executable
// named "main" without a timestamp.
type Config struct {
	Mode Mode

	// Module is the module path of the entry, e.g. "app" or "geo/shapes".
	// It names the emitted files.
	Module string

	// Filename is the entry's name in diagnostics. It defaults to Module
	// with the .bn extension.
	Filename string

	// Timestamp, if non-zero, is recorded in every emitted file.
	Timestamp time.Time

	// Trace, if non-nil, receives one line per phase per module.
	Trace io.Writer
}

// Module loading types.
type (
	Locator      = module.Locator
	Source       = module.Source
	MapLocator   = module.MapLocator
	FSLocator    = module.FSLocator
	ChainLocator = module.ChainLocator
)

// ErrNotFound is returned by a Locator without the requested module.
var ErrNotFound = module.ErrNotFound

// Error is a semantic compilation error. Lexical and syntax errors have
// their own types; KindOf classifies all of them.
type Error = diag.Error

// KindOf returns the error kind of err, e.g. "ArityError".
func KindOf(err error) string {
	return diag.KindOf(err).String()
}

// UnitKind tells source and header units apart.
type UnitKind int

const (
	CSource UnitKind = iota
	CHeader
)

func (k UnitKind) String() string {
	if k == CHeader {
		return "header"
	}
	return "source"
}

// Unit is one emitted file.
type Unit struct {
	Module string   // module path
	Path   string   // output path relative to the output root: "geo/shapes.h"
	Kind   UnitKind // source or header
	Text   string
}

// Compile compiles the entry module src and every module it imports,
// loaded through loc (which may be nil for programs importing only the
// standard library). It stops at the first error.
func Compile(src []byte, loc Locator, conf *Config) ([]Unit, error) {
	var c Config
	if conf != nil {
		c = *conf
	}
	if c.Module == "" {
		c.Module = DefaultModule
	}
	if c.Filename == "" {
		c.Filename = c.Module + module.Ext
	}

	chain := ChainLocator{stdlib.Locator()}
	if loc != nil {
		chain = append(chain, loc)
	}
	entry := Source{Path: c.Module, Filename: c.Filename, Text: src}
	linked, err := module.Link(entry, chain, &module.Config{
		Mode:  c.Mode.resolverMode(),
		Trace: c.Trace,
	})
	if err != nil {
		return nil, err
	}

	var units []Unit
	for _, u := range linked {
		f := &cgen.File{
			Program:    u.Program,
			Info:       u.Info,
			Module:     u.Module,
			Imports:    u.Imports,
			Importable: !u.Entry() || c.Mode == Library,
		}
		var out *cgen.Output
		module.Trace(c.Trace, u.Path(), "emit", func() {
			out, err = cgen.Emit(f, &cgen.Config{Timestamp: c.Timestamp})
		})
		if err != nil {
			return nil, err
		}
		if out.Header != "" {
			units = append(units, Unit{
				Module: out.Module,
				Path:   rtabi.HeaderPath(out.Module),
				Kind:   CHeader,
				Text:   out.Header,
			})
		}
		units = append(units, Unit{
			Module: out.Module,
			Path:   rtabi.SourcePath(out.Module),
			Kind:   CSource,
			Text:   out.Source,
		})
	}
	return units, nil
}

// Job is one compilation of a batch.
type Job struct {
	Source []byte
	Config Config
}

// Result is the outcome of one Job.
type Result struct {
	Module string
	Units  []Unit
	Err    error
}

// CompileAll runs independent compilations in parallel. Every job links
// its own module graph; loc is shared and must be safe for concurrent
// use. Results are in job order, and a failed job does not stop the
// others. The returned error is non-nil only if ctx is done before every
// job has started.
func CompileAll(ctx context.Context, jobs []Job, loc Locator) ([]Result, error) {
	results := make([]Result, len(jobs))
	var traceMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		conf := job.Config
		if conf.Module == "" {
			conf.Module = DefaultModule
		}
		if conf.Trace != nil {
			conf.Trace = &lockedWriter{mu: &traceMu, w: conf.Trace}
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			units, err := Compile(job.Source, loc, &conf)
			results[i] = Result{Module: conf.Module, Units: units, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BuildStd compiles every standard library module as a library, each
// resolved on its own. Mode and Module of conf are ignored.
func BuildStd(ctx context.Context, conf *Config) ([]Result, error) {
	var base Config
	if conf != nil {
		base = *conf
	}
	base.Mode = Library

	var jobs []Job
	for _, name := range stdlib.Names() {
		src, err := stdlib.Source(name)
		if err != nil {
			return nil, err
		}
		c := base
		c.Module = src.Path
		c.Filename = src.Filename
		jobs = append(jobs, Job{Source: src.Text, Config: c})
	}
	return CompileAll(ctx, jobs, nil)
}

// StdModules returns the paths of the standard library modules.
func StdModules() []string {
	return stdlib.Names()
}

// lockedWriter serializes writes from concurrent compilations. All
// writers of one batch share mu.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
