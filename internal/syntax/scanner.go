package syntax

import "fmt"

// Scanner performs lexical analysis on Boron source code.
type Scanner struct {
	source

	// Current token info
	tok    Token
	text   string  // raw source text of the token
	val    string  // decoded value (char literals), otherwise text
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos

	// nlsemi reports whether a newline or EOF should produce a ';'.
	nlsemi bool
}

// NewScanner creates a new Scanner for src.
// The errh function is called for each lexical error; if nil, errors are
// silently ignored.
func NewScanner(filename string, src []byte, errh func(pos Pos, ch rune, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	nlsemi := s.nlsemi
	s.nlsemi = false

redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	if s.ch == '#' {
		for s.ch != '\n' && s.ch >= 0 {
			s.nextch()
		}
		goto redo
	}

	s.tokPos = s.pos()
	start := s.chOff

	// A newline or EOF after an expression-ending token terminates the statement.
	if nlsemi && (s.ch == '\n' || s.ch < 0) {
		s.tok = _Semi
		if s.ch == '\n' {
			s.nextch()
		}
		s.setText(start)
		return
	}

	if s.ch == '\n' {
		s.nextch()
		goto redo
	}

	switch {
	case s.ch < 0:
		s.tok = _EOF

	case isLetter(s.ch):
		for isLetter(s.ch) || isDigit(s.ch) {
			s.nextch()
		}
		s.tok = LookupKeyword(s.segment(start, s.chOff))

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '\'':
		s.text, s.val = "", ""
		s.scanChar(start)
		s.nlsemi = true
		return

	default:
		if !s.scanOperator() {
			ch := s.ch
			s.error(ch, fmt.Sprintf("unexpected character %q", ch))
			s.nextch()
			s.tok = _EOF
		}
	}

	s.setText(start)
	s.nlsemi = s.shouldInsertSemi()
}

func (s *Scanner) setText(start int) {
	s.text = s.segment(start, s.chOff)
	s.val = s.text
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Text returns the raw source text of the current token.
func (s *Scanner) Text() string {
	return s.text
}

// Value returns the decoded value of the current token. For character
// literals this is the character itself; for all other tokens it is Text.
func (s *Scanner) Value() string {
	return s.val
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// shouldInsertSemi reports whether a newline after the current token
// terminates a statement. Closing braces never do.
func (s *Scanner) shouldInsertSemi() bool {
	switch s.tok {
	case _Name, _Literal, _True, _False, _Return, _Rparen:
		return true
	}
	return false
}

// scanNumber scans INT = digit+ or FLOAT = digit+ "." digit*.
func (s *Scanner) scanNumber() {
	s.kind = IntLit
	for isDigit(s.ch) {
		s.nextch()
	}
	if s.ch == '.' {
		s.kind = FloatLit
		s.nextch()
		for isDigit(s.ch) {
			s.nextch()
		}
	}
	if isLetter(s.ch) {
		s.error(s.ch, fmt.Sprintf("malformed number: unexpected %q", s.ch))
	}
	s.tok = _Literal
}

// scanChar scans a character literal. The opening quote is the current
// character. The raw text is fixed up by the caller via setText.
func (s *Scanner) scanChar(start int) {
	s.nextch() // skip opening '
	s.tok = _Literal
	s.kind = CharLit

	var r rune
	switch {
	case s.ch == '\'':
		s.error(s.ch, "empty character literal")
		return
	case s.ch == '\n' || s.ch < 0:
		s.error(s.ch, "character literal not terminated")
		return
	case s.ch == '\\':
		var ok bool
		if r, ok = s.scanEscape(); !ok {
			return
		}
	default:
		r = s.ch
		if r > 0x7f {
			s.error(r, fmt.Sprintf("character %q does not fit in a char", r))
			return
		}
		s.nextch()
	}

	if s.ch != '\'' {
		s.error(s.ch, "character literal not terminated")
		return
	}
	s.nextch()
	s.text = s.segment(start, s.chOff)
	s.val = string(r)
}

// scanEscape scans an escape sequence and returns the decoded rune.
func (s *Scanner) scanEscape() (rune, bool) {
	s.nextch() // skip \

	switch s.ch {
	case 'n':
		s.nextch()
		return '\n', true
	case 't':
		s.nextch()
		return '\t', true
	case 'r':
		s.nextch()
		return '\r', true
	case '0':
		s.nextch()
		return 0, true
	case '\\', '\'':
		r := s.ch
		s.nextch()
		return r, true
	case 'x':
		s.nextch()
		var val rune
		for i := 0; i < 2; i++ {
			if !isHexDigit(s.ch) {
				s.error(s.ch, "invalid hex escape")
				return 0, false
			}
			val = val*16 + hexValue(s.ch)
			s.nextch()
		}
		if val > 0x7f {
			s.error(val, "hex escape does not fit in a char")
			return 0, false
		}
		return val, true
	}
	s.error(s.ch, fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
	return 0, false
}

func hexValue(r rune) rune {
	switch {
	case '0' <= r && r <= '9':
		return r - '0'
	case 'a' <= lower(r) && lower(r) <= 'f':
		return lower(r) - 'a' + 10
	}
	return 0
}

// scanOperator scans an operator or delimiter.
// It reports false if the current character starts no token.
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	switch ch {
	case '+', '*', '/', '?', '|', '(', ')', '{', '}', ',', ';', ':', '.', '=':
	case '-', '!', '<', '>':
	default:
		return false
	}
	s.nextch()

	switch ch {
	case '+':
		s.tok = _Add
	case '-':
		if s.ch == '>' {
			s.nextch()
			s.tok = _Arrow
		} else {
			s.tok = _Sub
		}
	case '*':
		s.tok = _Mul
	case '/':
		s.tok = _Div
	case '!':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Neq
		} else {
			s.tok = _Not
		}
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Leq
		} else {
			s.tok = _Lss
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Geq
		} else {
			s.tok = _Gtr
		}
	case '=':
		s.tok = _Eql
	case '?':
		s.tok = _Question
	case '|':
		s.tok = _Pipe
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	case ':':
		s.tok = _Colon
	case '.':
		s.tok = _Dot
	}
	return true
}
