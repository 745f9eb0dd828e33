package types

import (
	"testing"

	"github.com/you-not-fish/boron/internal/syntax"
)

func TestIdentical(t *testing.T) {
	a := NewStruct(syntax.Pos{}, "m", "A")
	a2 := NewStruct(syntax.Pos{}, "m", "A")

	tests := []struct {
		name string
		x, y Type
		want bool
	}{
		{"same basic", Typ[Int], Typ[Int], true},
		{"different basic", Typ[Int], Typ[Float], false},
		{"same struct", a, a, true},
		{"same name different decl", a, a2, false},
		{"struct vs basic", a, Typ[Int], false},
		{"nil", nil, Typ[Int], false},
		{"funcs", NewFunc(nil, Typ[Int]), NewFunc(nil, Typ[Int]), true},
		{"funcs result", NewFunc(nil, Typ[Int]), NewFunc(nil, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.x, tt.y); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAssignableTo(t *testing.T) {
	p := NewStruct(syntax.Pos{}, "m", "P")
	q := NewStruct(syntax.Pos{}, "m", "Q")

	tests := []struct {
		v, t Type
		want bool
	}{
		{Typ[Int], Typ[Float], true},
		{Typ[Float], Typ[Int], true},
		{Typ[Char], Typ[Int], true},
		{Typ[Bool], Typ[Int], true},
		{p, p, true},
		{p, q, false},
		{p, Typ[Int], false},
		{Typ[Int], p, false},
	}

	for _, tt := range tests {
		if got := AssignableTo(tt.v, tt.t); got != tt.want {
			t.Errorf("AssignableTo(%v, %v) = %v, want %v", tt.v, tt.t, got, tt.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		x, y Type
		want Type
	}{
		{Typ[Int], Typ[Int], Typ[Int]},
		{Typ[Int], Typ[Float], Typ[Float]},
		{Typ[Char], Typ[Int], Typ[Int]},
		{Typ[Bool], Typ[Int], nil},
		{NewStruct(syntax.Pos{}, "m", "S"), Typ[Int], nil},
	}

	for _, tt := range tests {
		if got := Arithmetic(tt.x, tt.y); got != tt.want {
			t.Errorf("Arithmetic(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	s := NewStruct(syntax.Pos{}, "m", "S")
	if !IsNumeric(Typ[Char]) || IsNumeric(Typ[Bool]) || IsNumeric(s) {
		t.Error("IsNumeric misclassifies")
	}
	if !IsBoolean(Typ[Bool]) || IsBoolean(Typ[Int]) {
		t.Error("IsBoolean misclassifies")
	}
	if !IsStruct(s) || IsStruct(Typ[Int]) {
		t.Error("IsStruct misclassifies")
	}
	if !IsFloat(Typ[Float]) || IsFloat(Typ[Int]) {
		t.Error("IsFloat misclassifies")
	}
}
