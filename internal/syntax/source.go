package syntax

import "unicode/utf8"

// source is a character reader with position tracking over an in-memory
// Boron source text.
type source struct {
	buf      []byte
	filename string

	line uint32 // line of ch (1-based)
	col  uint32 // column of ch (1-based, byte offset)

	ch    rune // current character, -1 for EOF
	chOff int  // byte offset of ch
	offs  int  // byte offset of the character after ch

	// errh is called for the first malformed byte sequence.
	errh func(pos Pos, ch rune, msg string)
}

func newSource(filename string, src []byte, errh func(pos Pos, ch rune, msg string)) *source {
	s := &source{
		buf:      src,
		filename: filename,
		line:     1,
		col:      0, // incremented to 1 by the first nextch
		ch:       -1,
		errh:     errh,
	}
	s.nextch()
	return s
}

// nextch reads the next character and updates position.
//
// (line, col) always refer to s.ch after nextch returns. A carriage return
// advances the column like any other byte but never the line, so "\r\n" and
// "\n" sources report the same line numbers.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.chOff = s.offs
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error(r, "invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return Pos{filename: s.filename, line: s.line, col: s.col, offset: s.chOff}
}

// error reports a lexical error at the current position.
func (s *source) error(ch rune, msg string) {
	if s.errh != nil {
		s.errh(s.pos(), ch, msg)
	}
}

// segment returns the raw source text between two byte offsets.
func (s *source) segment(from, to int) string {
	return string(s.buf[from:to])
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= lower(r) && lower(r) <= 'f'
}

// lower returns the lowercase version of r if r is an ASCII letter.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

// isWhitespace reports whether r is skipped between tokens.
// Newline is excluded because it may terminate a statement.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
