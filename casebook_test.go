package boron

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/boron/internal/casebook"
	"github.com/you-not-fish/boron/internal/syntax"
)

const caseModule = "app"

func TestCasebooks(t *testing.T) {
	files, err := filepath.Glob("testdata/*.md")
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".md"), func(t *testing.T) {
			doc, err := os.ReadFile(file)
			be.Err(t, err, nil)
			cases, err := casebook.Extract(doc)
			be.Err(t, err, nil)
			be.True(t, len(cases) > 0)

			for _, c := range cases {
				t.Run(c.Name, func(t *testing.T) {
					runCase(t, &c)
				})
			}
		})
	}
}

func runCase(t *testing.T, c *casebook.Case) {
	t.Helper()

	var compiles bool
	for _, a := range c.Assertions {
		if a.Kind != casebook.KindSexpr {
			compiles = true
		}
	}

	var (
		units []Unit
		err   error
	)
	if compiles {
		loc := MapLocator{}
		for _, m := range c.Modules {
			loc[m.Path] = m.Text
		}
		conf := &Config{Module: caseModule}
		if c.Library {
			conf.Mode = Library
		}
		units, err = Compile([]byte(c.Input), loc, conf)
	}

	for _, a := range c.Assertions {
		switch a.Kind {
		case casebook.KindSexpr:
			prog, perr := syntax.Parse(caseModule+".bn", []byte(c.Input))
			be.Err(t, perr, nil)
			be.Equal(t, syntax.Sexpr(prog), a.Content)

		case casebook.KindError:
			if err == nil {
				t.Fatalf("line %d: expected error containing %q", a.Line, a.Content)
			}
			be.Err(t, err, a.Content)
			if kind, ok := a.Attrs["kind"]; ok {
				be.Equal(t, KindOf(err), kind)
			}

		case casebook.KindC, casebook.KindH:
			if err != nil {
				t.Fatalf("line %d: compile: %v", a.Line, err)
			}
			mod := a.Module
			if mod == "" {
				mod = caseModule
			}
			kind := CSource
			if a.Kind == casebook.KindH {
				kind = CHeader
			}
			text, ok := findUnit(units, mod, kind)
			if !ok {
				t.Fatalf("line %d: no %s emitted for %s", a.Line, kind, mod)
			}
			if !strings.Contains(text, a.Content) {
				t.Fatalf("line %d: %s of %s does not contain\n%s\n\ngot:\n%s", a.Line, kind, mod, a.Content, text)
			}
		}
	}
}

func findUnit(units []Unit, mod string, kind UnitKind) (string, bool) {
	for _, u := range units {
		if u.Module == mod && u.Kind == kind {
			return u.Text, true
		}
	}
	return "", false
}
