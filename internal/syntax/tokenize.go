package syntax

import "fmt"

// A Lexeme is one token of a token sequence together with its source text.
type Lexeme struct {
	Tok   Token
	Kind  LitKind // literal kind, valid when Tok is a literal
	Text  string  // raw source text; "\n" or "" for inserted terminators
	Value string  // decoded value for char literals, otherwise Text
	Pos   Pos
}

// Class returns the category of the lexeme's token.
func (l Lexeme) Class() Class {
	return l.Tok.Class()
}

// Implicit reports whether l is a statement terminator inserted at a
// newline or at the end of the input.
func (l Lexeme) Implicit() bool {
	return l.Tok == _Semi && l.Text != ";"
}

// String describes the lexeme for diagnostics.
func (l Lexeme) String() string {
	switch {
	case l.Tok == _EOF:
		return "EOF"
	case l.Implicit() && l.Text == "":
		return "EOF"
	case l.Implicit():
		return "newline"
	case l.Tok == _Name, l.Tok == _Literal:
		return l.Text
	}
	return fmt.Sprintf("%q", l.Tok.String())
}

// LexError reports a character the tokenizer could not accept.
type LexError struct {
	Pos  Pos
	Char rune // offending character, -1 at end of input
	Msg  string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Tokenize scans src eagerly and returns its token sequence, terminated by
// an EOF lexeme. It stops at the first lexical error.
func Tokenize(filename string, src []byte) ([]Lexeme, error) {
	var first *LexError
	s := NewScanner(filename, src, func(pos Pos, ch rune, msg string) {
		if first == nil {
			first = &LexError{Pos: pos, Char: ch, Msg: msg}
		}
	})

	var toks []Lexeme
	for {
		s.Next()
		if first != nil {
			return nil, first
		}
		toks = append(toks, Lexeme{
			Tok:   s.tok,
			Kind:  s.kind,
			Text:  s.text,
			Value: s.val,
			Pos:   s.tokPos,
		})
		if s.tok == _EOF {
			return toks, nil
		}
	}
}
