package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"with filename", NewPos("test.bn", 10, 5), "test.bn:10:5"},
		{"without filename", NewPos("", 10, 5), "10:5"},
		{"module path", NewPos("geometry/shapes", 1, 1), "geometry/shapes:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	if (Pos{}).IsValid() {
		t.Error("zero Pos should be invalid")
	}
	if !NewPos("x", 1, 1).IsValid() {
		t.Error("1:1 should be valid")
	}
}

func TestPosBefore(t *testing.T) {
	tests := []struct {
		a, b Pos
		want bool
	}{
		{NewPos("f", 1, 1), NewPos("f", 1, 2), true},
		{NewPos("f", 1, 9), NewPos("f", 2, 1), true},
		{NewPos("f", 2, 1), NewPos("f", 1, 9), false},
		{NewPos("f", 3, 3), NewPos("f", 3, 3), false},
	}
	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.want {
			t.Errorf("%s.Before(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
