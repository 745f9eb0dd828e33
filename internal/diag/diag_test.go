package diag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/boron/internal/syntax"
)

func TestKindCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		code string
	}{
		{Unknown, "Unknown", "E0000"},
		{LexError, "LexError", "E0001"},
		{ParseError, "ParseError", "E0002"},
		{UnresolvedNameError, "UnresolvedNameError", "E0003"},
		{CyclicImportError, "CyclicImportError", "E0006"},
		{ModuleNotFoundError, "ModuleNotFoundError", "E0009"},
		{TypeMismatchError, "TypeMismatchError", "E0011"},
		{Kind(99), "Kind(99)", "E0000"},
	}
	for _, tt := range tests {
		be.Equal(t, tt.kind.String(), tt.name)
		be.Equal(t, tt.kind.Code(), tt.code)
	}
}

func TestParseKind(t *testing.T) {
	for k := Unknown; k < kindCount; k++ {
		got, ok := ParseKind(k.String())
		be.True(t, ok)
		be.Equal(t, got, k)
	}
	_, ok := ParseKind("SyntaxError")
	be.Equal(t, ok, false)
}

func TestKindOf(t *testing.T) {
	pos := syntax.NewPos("main.bn", 1, 1)
	_, lexErr := syntax.Tokenize("main.bn", []byte("let x: @"))
	_, parseErr := syntax.Parse("main.bn", []byte("main { let : 1 }"))

	tests := []struct {
		err  error
		want Kind
	}{
		{nil, Unknown},
		{errors.New("boom"), Unknown},
		{lexErr, LexError},
		{parseErr, ParseError},
		{UnresolvedName(pos, "y"), UnresolvedNameError},
		{MissingMain(pos, "app"), MissingMainError},
		{fmt.Errorf("linking app: %w", ModuleNotFound(pos, "geo")), ModuleNotFoundError},
	}
	for _, tt := range tests {
		be.Equal(t, KindOf(tt.err), tt.want)
	}
}

func TestBuilders(t *testing.T) {
	pos := syntax.NewPos("app.bn", 4, 7)

	e := Arity(pos, "area", 1, 2)
	be.Equal(t, e.Kind, ArityError)
	be.Equal(t, e.Name, "area")
	be.Equal(t, e.Expected, "1")
	be.Equal(t, e.Found, "2")
	be.Equal(t, e.Error(), "app.bn:4:7: wrong number of arguments in call to area: want 1, got 2")

	e = CyclicImport(pos, []string{"a", "b", "a"})
	be.Equal(t, e.Module, "a")
	be.Equal(t, e.Path, []string{"a", "b", "a"})
	be.Equal(t, e.Msg, "import cycle: a -> b -> a")

	e = UnresolvedImport(pos, "geometry", "Circle")
	be.Equal(t, e.Module, "geometry")
	be.Equal(t, e.Name, "Circle")

	e = MissingMain(syntax.NewPos("app.bn", 9, 1), "app")
	be.Equal(t, e.Error(), "app.bn:9:1: module app has no main")
	be.Equal(t, e.Module, "app")

	for _, e := range []*Error{
		UnknownField(pos, "Point", "z"),
		MissingField(pos, "Point", "y"),
		DuplicateField(pos, "Point", "x"),
	} {
		be.Equal(t, e.Kind, FieldMismatchError)
	}
}

func TestPosAndMessage(t *testing.T) {
	_, err := syntax.Parse("main.bn", []byte("main { let : 1 }"))
	be.Equal(t, PosOf(err).Line(), uint32(1))
	be.Equal(t, Message(err), "expected identifier, found \":\"")

	be.Equal(t, PosOf(ModuleNotFound(syntax.Pos{}, "app")).IsValid(), false)
	be.Equal(t, Message(errors.New("plain")), "plain")
}

func TestRender(t *testing.T) {
	src := []byte("main {\n\tlet x: y + 1\r\n}\n")
	err := UnresolvedName(syntax.NewPos("app.bn", 2, 9), "y")

	var buf bytes.Buffer
	be.Err(t, Render(&buf, err, src), nil)
	want := "app.bn:2:9: error[E0003]: undefined: y\n" +
		"  2 | \tlet x: y + 1\n" +
		"    | \t       ^\n"
	be.Equal(t, buf.String(), want)
}

func TestRenderWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, ModuleNotFound(syntax.Pos{}, "app"), []byte("main {}"))
	be.Equal(t, buf.String(), "error[E0009]: module app not found\n")

	buf.Reset()
	Render(&buf, UnresolvedName(syntax.NewPos("app.bn", 9, 1), "y"), []byte("main {}\n"))
	be.Equal(t, buf.String(), "app.bn:9:1: error[E0003]: undefined: y\n")

	buf.Reset()
	Render(&buf, errors.New("disk full"), nil)
	be.Equal(t, buf.String(), "error[E0000]: disk full\n")
}
