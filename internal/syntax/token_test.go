package syntax

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Name, "NAME"},
		{_Literal, "LITERAL"},
		{_Eql, "="},
		{_Neq, "!="},
		{_Leq, "<="},
		{_Question, "?"},
		{_Pipe, "|"},
		{_Arrow, "->"},
		{_Colon, ":"},
		{_Let, "let"},
		{_Main, "main"},
		{_While, "while"},
		{tokenCount + 5, "token(40)"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tokenNames[tok] == "" {
			t.Errorf("token %d has no name", tok)
		}
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		tok  Token
		want int
	}{
		{_Eql, 1}, {_Neq, 1}, {_Lss, 1}, {_Geq, 1},
		{_Add, 2}, {_Sub, 2},
		{_Mul, 3}, {_Div, 3},
		{_Not, 0}, {_Question, 0}, {_Pipe, 0}, {_Colon, 0},
	}

	for _, tt := range tests {
		if got := tt.tok.Precedence(); got != tt.want {
			t.Errorf("%s.Precedence() = %d, want %d", tt.tok, got, tt.want)
		}
	}
}

func TestKeywords(t *testing.T) {
	for _, kw := range []string{"let", "return", "struct", "if", "else", "while", "true", "false", "main", "import"} {
		tok := LookupKeyword(kw)
		if !tok.IsKeyword() {
			t.Errorf("LookupKeyword(%q) = %s, want a keyword", kw, tok)
		}
		if tok.String() != kw {
			t.Errorf("keyword %q has name %q", kw, tok.String())
		}
	}

	for _, id := range []string{"int", "float", "bool", "char", "print", "Point", "lets"} {
		if tok := LookupKeyword(id); tok != _Name {
			t.Errorf("LookupKeyword(%q) = %s, want NAME", id, tok)
		}
	}
}

func TestTokenClass(t *testing.T) {
	tests := []struct {
		tok  Token
		want Class
	}{
		{_EOF, ClassEOF},
		{_Literal, ClassLiteral},
		{_Name, ClassIdentifier},
		{_True, ClassKeyword},
		{_Import, ClassKeyword},
		{_Add, ClassOperator},
		{_Question, ClassOperator},
		{_Arrow, ClassOperator},
		{_Lbrace, ClassPunctuation},
		{_Colon, ClassPunctuation},
	}

	for _, tt := range tests {
		if got := tt.tok.Class(); got != tt.want {
			t.Errorf("%s.Class() = %s, want %s", tt.tok, got, tt.want)
		}
	}
}
