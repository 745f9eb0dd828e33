package module

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/boron/internal/diag"
	"github.com/you-not-fish/boron/internal/resolver"
)

func entry(text string) Source {
	return Source{Path: "app", Filename: "app.bn", Text: []byte(text)}
}

func paths(units []*Unit) []string {
	var out []string
	for _, u := range units {
		out = append(out, u.Path())
	}
	return out
}

var shapes = MapLocator{
	"geo/point": "struct Point {\n\tint x\n\tint y\n}\n",
	"geo/shapes": `
import geo.point

area(Point a, Point b) -> int {
	return (b.x - a.x) * (b.y - a.y)
}
`,
	"geo/draw": `
import geo.point { Point }
import geo.shapes

show(Point a, Point b) {
	print(area(a, b))
}
`,
}

func TestLinkOrder(t *testing.T) {
	units, err := Link(entry(`
import geo.draw
import geo.point

main {
	Point a: { x: 0, y: 0 }
	Point b: { x: 2, y: 3 }
	show(a, b)
}
`), shapes, nil)
	be.Err(t, err, nil)
	be.Equal(t, paths(units), []string{"geo/point", "geo/shapes", "geo/draw", "app"})

	app := units[3]
	be.True(t, app.Entry())
	be.Equal(t, app.Mode, resolver.Executable)
	be.Equal(t, app.Imports, []string{"geo/draw", "geo/point"})
	be.True(t, app.Module.Main() != nil)

	draw := units[2]
	be.Equal(t, draw.Entry(), false)
	be.Equal(t, draw.Source.Filename, "geo/draw.bn")
	be.Equal(t, draw.Imports, []string{"geo/point", "geo/shapes"})
}

func TestLinkSharedDependencyOnce(t *testing.T) {
	units, err := Link(entry(`
import geo.shapes
import geo.draw

main {}
`), shapes, nil)
	be.Err(t, err, nil)
	be.Equal(t, paths(units), []string{"geo/point", "geo/shapes", "geo/draw", "app"})
}

func TestLinkCycle(t *testing.T) {
	loc := MapLocator{
		"b": "import app\n",
	}
	_, err := Link(entry("import b\n\nmain {}\n"), loc, nil)
	be.Equal(t, diag.KindOf(err), diag.CyclicImportError)

	var e *diag.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Path, []string{"app", "b", "app"})
	be.Equal(t, e.Pos.Filename(), "b.bn")
	be.Equal(t, e.Pos.Line(), uint32(1))
}

func TestLinkLongCycle(t *testing.T) {
	loc := MapLocator{
		"a": "import b\n",
		"b": "import c\n",
		"c": "import a\n",
	}
	_, err := Link(entry("import a\n\nmain {}\n"), loc, nil)
	var e *diag.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Kind, diag.CyclicImportError)
	be.Equal(t, e.Path, []string{"a", "b", "c", "a"})
	be.Err(t, err, "import cycle: a -> b -> c -> a")
}

func TestLinkSelfImport(t *testing.T) {
	_, err := Link(entry("import app\n\nmain {}\n"), MapLocator{}, nil)
	var e *diag.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Path, []string{"app", "app"})
}

func TestLinkModuleNotFound(t *testing.T) {
	_, err := Link(entry("import geo.solids\n\nmain {}\n"), shapes, nil)
	var e *diag.Error
	be.True(t, errors.As(err, &e))
	be.Equal(t, e.Kind, diag.ModuleNotFoundError)
	be.Equal(t, e.Module, "geo/solids")
	be.Equal(t, e.Pos.Filename(), "app.bn")
}

func TestLinkErrorPropagates(t *testing.T) {
	loc := MapLocator{
		"lib":    "import broken\n",
		"broken": "f() {\n\tprint(nope)\n}\n",
	}
	_, err := Link(entry("import lib\n\nmain {}\n"), loc, nil)
	be.Equal(t, diag.KindOf(err), diag.UnresolvedNameError)
	be.Equal(t, diag.PosOf(err).Filename(), "broken.bn")

	loc["broken"] = "f( {}\n"
	_, err = Link(entry("import lib\n\nmain {}\n"), loc, nil)
	be.Equal(t, diag.KindOf(err), diag.ParseError)
}

func TestLinkImportedMain(t *testing.T) {
	loc := MapLocator{"tool": "main {}\n"}
	_, err := Link(entry("import tool\n\nmain {}\n"), loc, nil)
	be.Equal(t, diag.KindOf(err), diag.RedeclarationError)
	be.Err(t, err, "imported module tool declares main")
}

func TestLinkLibraryMode(t *testing.T) {
	src := entry("import geo.shapes\n\ndouble(int n) -> int {\n\treturn n * 2\n}\n")

	_, err := Link(src, shapes, nil)
	be.Equal(t, diag.KindOf(err), diag.MissingMainError)

	units, err := Link(src, shapes, &Config{Mode: resolver.Library})
	be.Err(t, err, nil)
	be.Equal(t, units[len(units)-1].Mode, resolver.Library)
	be.True(t, units[len(units)-1].Entry())
}

func TestLinkGlobalNames(t *testing.T) {
	loc := MapLocator{
		"left":  "helper() -> int {\n\treturn 1\n}\n",
		"right": "helper() -> int {\n\treturn 2\n}\n",
	}
	_, err := Link(entry("import left {}\nimport right {}\n\nmain {}\n"), loc, nil)
	be.Equal(t, diag.KindOf(err), diag.RedeclarationError)
	be.Err(t, err, "helper redeclared: already declared in module left")
	be.Equal(t, diag.PosOf(err).Filename(), "right.bn")
}

func TestLinkTrace(t *testing.T) {
	var buf bytes.Buffer
	_, err := Link(entry("import geo.point\n\nmain {}\n"), shapes, &Config{Trace: &buf})
	be.Err(t, err, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	be.Equal(t, len(lines), 4)
	be.True(t, strings.HasPrefix(lines[0], "trace: app parse "))
	be.True(t, strings.HasPrefix(lines[1], "trace: geo/point parse "))
	be.True(t, strings.HasPrefix(lines[2], "trace: geo/point resolve "))
	be.True(t, strings.HasPrefix(lines[3], "trace: app resolve "))
}

func TestMapLocator(t *testing.T) {
	src, err := shapes.Locate("geo/point")
	be.Err(t, err, nil)
	be.Equal(t, src.Path, "geo/point")
	be.Equal(t, src.Filename, "geo/point.bn")

	_, err = shapes.Locate("geo/none")
	be.Err(t, err, ErrNotFound)
}

func TestFSLocator(t *testing.T) {
	fsys := fstest.MapFS{
		"geo/point.bn": {Data: []byte("struct Point {}\n")},
	}
	loc := &FSLocator{FS: fsys, Prefix: "src"}

	src, err := loc.Locate("geo/point")
	be.Err(t, err, nil)
	be.Equal(t, src.Filename, "src/geo/point.bn")
	be.Equal(t, string(src.Text), "struct Point {}\n")

	_, err = loc.Locate("geo/none")
	be.Err(t, err, ErrNotFound)

	_, err = loc.Locate("../etc/passwd")
	be.Err(t, err, ErrNotFound)
}

type failingLocator struct{}

func (failingLocator) Locate(string) (Source, error) {
	return Source{}, errors.New("permission denied")
}

func TestChainLocator(t *testing.T) {
	first := MapLocator{"a": "f() {}\n"}
	second := MapLocator{"a": "g() {}\n", "b": "h() {}\n"}
	chain := ChainLocator{first, second}

	src, err := chain.Locate("a")
	be.Err(t, err, nil)
	be.Equal(t, string(src.Text), "f() {}\n")

	src, err = chain.Locate("b")
	be.Err(t, err, nil)
	be.Equal(t, string(src.Text), "h() {}\n")

	_, err = chain.Locate("c")
	be.Err(t, err, ErrNotFound)

	_, err = ChainLocator{first, failingLocator{}, second}.Locate("b")
	be.Err(t, err, "permission denied")
	be.Equal(t, errors.Is(err, ErrNotFound), false)

	_, err = Link(entry("import b\n\nmain {}\n"), ChainLocator{failingLocator{}}, nil)
	be.Err(t, err, "loading module b: permission denied")
}
