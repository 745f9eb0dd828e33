package types

import (
	"testing"

	"github.com/you-not-fish/boron/internal/syntax"
)

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		kind BasicKind
		name string
		info BasicInfo
	}{
		{Bool, "bool", InfoBoolean},
		{Int, "int", InfoInteger},
		{Float, "float", InfoFloat},
		{Char, "char", InfoInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := Typ[tt.kind]
			if typ == nil {
				t.Fatalf("Typ[%d] is nil", tt.kind)
			}
			if typ.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", typ.Kind(), tt.kind)
			}
			if typ.Info() != tt.info {
				t.Errorf("Info() = %v, want %v", typ.Info(), tt.info)
			}
			if typ.String() != tt.name {
				t.Errorf("String() = %q, want %q", typ.String(), tt.name)
			}
		})
	}
}

func TestStructFieldOrder(t *testing.T) {
	s := NewStruct(syntax.Pos{}, "main", "Point")
	dup := s.SetFields([]*Var{
		NewField(syntax.Pos{}, "y", Typ[Int]),
		NewField(syntax.Pos{}, "x", Typ[Float]),
		NewField(syntax.Pos{}, "label", Typ[Char]),
	})
	if dup != nil {
		t.Fatalf("unexpected duplicate %s", dup.Name())
	}

	want := []string{"y", "x", "label"}
	for i, f := range s.Fields() {
		if f.Name() != want[i] {
			t.Errorf("field %d = %s, want %s", i, f.Name(), want[i])
		}
		if s.FieldIndex(f.Name()) != i {
			t.Errorf("FieldIndex(%s) = %d, want %d", f.Name(), s.FieldIndex(f.Name()), i)
		}
	}
	if s.FieldIndex("z") != -1 {
		t.Error("FieldIndex of unknown field should be -1")
	}
	if s.String() != "Point" || s.Module() != "main" {
		t.Errorf("got %s in %s", s, s.Module())
	}
}

func TestStructDuplicateField(t *testing.T) {
	s := NewStruct(syntax.Pos{}, "m", "S")
	second := NewField(syntax.NewPos("m", 1, 20), "a", Typ[Int])
	dup := s.SetFields([]*Var{NewField(syntax.Pos{}, "a", Typ[Int]), second})
	if dup != second {
		t.Errorf("SetFields duplicate = %v, want second a", dup)
	}
}

func TestFuncType(t *testing.T) {
	pt := NewStruct(syntax.Pos{}, "main", "Point")
	sig := NewFunc([]*Var{
		NewParam(syntax.Pos{}, "p", pt),
		NewParam(syntax.Pos{}, "n", Typ[Int]),
	}, Typ[Float])

	if sig.NumParams() != 2 || sig.Param(1).Name() != "n" {
		t.Errorf("params = %v", sig.Params())
	}
	if got := sig.String(); got != "func(Point, int) float" {
		t.Errorf("String() = %q", got)
	}
	if got := NewFunc(nil, nil).String(); got != "func()" {
		t.Errorf("void String() = %q", got)
	}
}

func TestFuncReceiver(t *testing.T) {
	pt := NewStruct(syntax.Pos{}, "main", "Point")

	method := NewFuncObj(syntax.Pos{}, "main", "len")
	method.SetSignature(NewFunc([]*Var{NewParam(syntax.Pos{}, "p", pt)}, Typ[Int]))
	if method.Receiver() != pt {
		t.Errorf("Receiver() = %v, want Point", method.Receiver())
	}

	plain := NewFuncObj(syntax.Pos{}, "main", "abs")
	plain.SetSignature(NewFunc([]*Var{NewParam(syntax.Pos{}, "x", Typ[Int])}, Typ[Int]))
	if plain.Receiver() != nil {
		t.Errorf("Receiver() = %v, want nil", plain.Receiver())
	}

	main := NewMain(syntax.Pos{}, "app")
	if !main.IsMain() || main.Receiver() != nil || main.Module() != "app" {
		t.Error("NewMain built a wrong object")
	}
}

func TestVarKinds(t *testing.T) {
	if v := NewVar(syntax.Pos{}, "x", Typ[Int]); v.Kind() != LocalVar || v.IsParam() || v.IsField() {
		t.Error("NewVar should create a local")
	}
	if v := NewParam(syntax.Pos{}, "x", Typ[Int]); !v.IsParam() {
		t.Error("NewParam should create a parameter")
	}
	if v := NewField(syntax.Pos{}, "x", Typ[Int]); !v.IsField() {
		t.Error("NewField should create a field")
	}
}

func TestModuleExports(t *testing.T) {
	m := NewModule("geometry")
	pt := NewTypeName(syntax.Pos{}, "Point", NewStruct(syntax.Pos{}, "geometry", "Point"))
	area := NewFuncObj(syntax.Pos{}, "geometry", "area")

	m.AddExport(pt)
	m.AddExport(area)

	if m.Export("Point") != pt || m.Export("area") != area {
		t.Error("Export lookup failed")
	}
	if m.Export("missing") != nil {
		t.Error("Export of unknown name should be nil")
	}
	if len(m.Exports()) != 2 || m.Exports()[0] != pt {
		t.Error("Exports should keep declaration order")
	}
	if m.Scope().Parent() != Universe {
		t.Error("module scope should be nested in Universe")
	}
}
