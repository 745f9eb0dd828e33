// Package main implements the Boron compiler command.
//
// Usage:
//
//	boronc [options] <file.bn>...
//
// Each input file is an entry module named after the file. Imports are
// looked up in the -I directories, then in the directory of the input.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/you-not-fish/boron"
	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/stdlib"
	"github.com/you-not-fish/boron/internal/syntax"
)

// Version information
const Version = "0.1.0-dev"

const srcExt = ".bn"

// includeDirs collects repeated -I flags.
type includeDirs []string

func (d *includeDirs) String() string { return strings.Join(*d, ",") }

func (d *includeDirs) Set(v string) error {
	*d = append(*d, v)
	return nil
}

// options are the parsed command line flags.
type options struct {
	output     string
	lib        bool
	include    includeDirs
	emitTokens bool
	emitAST    bool
	astFormat  string
	buildStd   bool
	trace      bool
	noDate     bool
	version    bool
	args       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet("boronc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.output, "o", ".", "Output directory")
	fs.BoolVar(&o.lib, "lib", false, "Compile as a library (main optional, header emitted)")
	fs.Var(&o.include, "I", "Add a module search directory (repeatable)")
	fs.BoolVar(&o.emitTokens, "emit-tokens", false, "Output token stream")
	fs.BoolVar(&o.emitAST, "emit-ast", false, "Output AST")
	fs.StringVar(&o.astFormat, "ast-format", "text", "AST output format (text, json or sexpr)")
	fs.BoolVar(&o.buildStd, "build-std", false, "Compile the standard library")
	fs.BoolVar(&o.trace, "trace", false, "Output timing trace")
	fs.BoolVar(&o.noDate, "no-date", false, "Omit the creation date from emitted files")
	fs.BoolVar(&o.version, "version", false, "Print version")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Boron Compiler %s\n\n", Version)
		fmt.Fprintf(stderr, "Usage: boronc [options] <file.bn>...\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	o.args = fs.Args()

	if o.version {
		fmt.Fprintf(stdout, "boronc version %s\n", Version)
		fmt.Fprintf(stdout, "go version %s\n", runtime.Version())
		return 0
	}

	if o.buildStd {
		return runBuildStd(&o, stderr)
	}

	if len(o.args) == 0 {
		fmt.Fprintln(stderr, "error: no input file")
		fmt.Fprintln(stderr, "usage: boronc [options] <file.bn>...")
		return 1
	}

	if o.emitTokens {
		return runEmitTokens(o.args[0], stdout, stderr)
	}
	if o.emitAST {
		return runEmitAST(o.args[0], o.astFormat, stdout, stderr)
	}
	return runCompile(&o, stderr)
}

// runCompile compiles every input file and writes the emitted units.
func runCompile(o *options, stderr io.Writer) int {
	var (
		jobs    []boron.Job
		sources = make(map[string][]byte)
		dirs    []string
	)
	for _, filename := range o.args {
		src, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		sources[filename] = src

		name, err := moduleName(filename)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		conf := config(o, stderr)
		conf.Module = name
		conf.Filename = filename
		jobs = append(jobs, boron.Job{Source: src, Config: conf})
		dirs = appendUnique(dirs, filepath.Dir(filename))
	}

	results, err := boron.CompileAll(context.Background(), jobs, locator(append(o.include, dirs...)))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return report(results, o.output, sources, stderr)
}

// runBuildStd compiles the standard library into the output directory.
func runBuildStd(o *options, stderr io.Writer) int {
	conf := config(o, stderr)
	results, err := boron.BuildStd(context.Background(), &conf)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return report(results, o.output, nil, stderr)
}

func config(o *options, stderr io.Writer) boron.Config {
	conf := boron.Config{}
	if o.lib {
		conf.Mode = boron.Library
	}
	if !o.noDate {
		conf.Timestamp = time.Now()
	}
	if o.trace {
		conf.Trace = stderr
	}
	return conf
}

// report writes the units of successful results and renders the errors
// of failed ones.
func report(results []boron.Result, outDir string, sources map[string][]byte, stderr io.Writer) int {
	code := 0
	for _, r := range results {
		if r.Err != nil {
			diag.Render(stderr, r.Err, sourceOf(r.Err, sources))
			code = 1
			continue
		}
		for _, u := range r.Units {
			if err := writeUnit(outDir, u); err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				return 1
			}
		}
	}
	return code
}

func writeUnit(outDir string, u boron.Unit) error {
	path := filepath.Join(outDir, filepath.FromSlash(u.Path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(u.Text), 0o644)
}

// sourceOf returns the text of the file err points into, for the excerpt
// in diagnostics. It returns nil when the file cannot be read.
func sourceOf(err error, sources map[string][]byte) []byte {
	pos := diag.PosOf(err)
	if !pos.IsValid() {
		return nil
	}
	name := pos.Filename()
	if src, ok := sources[name]; ok {
		return src
	}
	if rest, ok := strings.CutPrefix(name, stdlib.FileRoot+"/"); ok {
		src, err := stdlib.Source(strings.TrimSuffix(rest, srcExt))
		if err != nil {
			return nil
		}
		return src.Text
	}
	src, rerr := os.ReadFile(name)
	if rerr != nil {
		return nil
	}
	return src
}

// locator searches dirs in order.
func locator(dirs []string) boron.Locator {
	var chain boron.ChainLocator
	for _, dir := range dirs {
		chain = append(chain, &boron.FSLocator{FS: os.DirFS(dir), Prefix: filepath.ToSlash(dir)})
	}
	return chain
}

// moduleName derives the module path of an entry file from its name:
// "src/app.bn" is module "app".
func moduleName(filename string) (string, error) {
	base := filepath.Base(filename)
	name, ok := strings.CutSuffix(base, srcExt)
	if !ok || name == "" {
		return "", fmt.Errorf("%s: not a %s file", filename, srcExt)
	}
	return name, nil
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename, format string, stdout, stderr io.Writer) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	prog, err := syntax.Parse(filename, src)
	if err != nil {
		diag.Render(stderr, err, src)
		return 1
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(stdout, prog); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	case "sexpr":
		fmt.Fprintln(stdout, syntax.Sexpr(prog))
	case "text":
		syntax.Fprint(stdout, prog)
	default:
		fmt.Fprintf(stderr, "error: unknown AST format %q\n", format)
		return 1
	}
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string, stdout, stderr io.Writer) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	toks, err := syntax.Tokenize(filename, src)
	if err != nil {
		diag.Render(stderr, err, src)
		return 1
	}

	fmt.Fprintf(stdout, "%-20s %-12s %s\n", "POSITION", "CLASS", "TEXT")
	fmt.Fprintf(stdout, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for _, t := range toks {
		fmt.Fprintf(stdout, "%-20s %-12s %s\n", t.Pos, t.Class(), formatLiteral(t.Text))
	}
	return 0
}

// formatLiteral formats token text for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
