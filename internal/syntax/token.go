// Package syntax implements lexical and syntactic analysis for the Boron
// programming language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	_EOF Token = iota // end of file

	// Literals
	_Name    // identifier: foo, Point
	_Literal // literal value (used with LitKind)

	// Comparison operators
	_Eql // =
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Additive
	_Add // +
	_Sub // -

	// Multiplicative
	_Mul // *
	_Div // /

	// Unary
	_Not // !

	// Ternary markers
	_Question // ?
	_Pipe     // |

	_Arrow // ->

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Colon  // :
	_Dot    // .

	// Keywords
	_Else
	_False
	_If
	_Import
	_Let
	_Main
	_Return
	_Struct
	_True
	_While

	tokenCount
)

var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Eql: "=",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Not: "!",

	_Question: "?",
	_Pipe:     "|",
	_Arrow:    "->",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",
	_Dot:    ".",

	_Else:   "else",
	_False:  "false",
	_If:     "if",
	_Import: "import",
	_Let:    "let",
	_Main:   "main",
	_Return: "return",
	_Struct: "struct",
	_True:   "true",
	_While:  "while",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
//
//	1: = != < <= > >=
//	2: + -
//	3: * /
func (t Token) Precedence() int {
	switch t {
	case _Eql, _Neq, _Lss, _Leq, _Gtr, _Geq:
		return 1
	case _Add, _Sub:
		return 2
	case _Mul, _Div:
		return 3
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Else && t <= _While
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Eql && t <= _Arrow
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Class is the coarse category of a token.
type Class uint8

const (
	ClassEOF Class = iota
	ClassLiteral
	ClassIdentifier
	ClassKeyword
	ClassOperator
	ClassPunctuation
)

var classNames = [...]string{
	ClassEOF:         "eof",
	ClassLiteral:     "literal",
	ClassIdentifier:  "identifier",
	ClassKeyword:     "keyword",
	ClassOperator:    "operator",
	ClassPunctuation: "punctuation",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", c)
}

// Class returns the category of t.
func (t Token) Class() Class {
	switch {
	case t == _EOF:
		return ClassEOF
	case t == _Literal:
		return ClassLiteral
	case t == _Name:
		return ClassIdentifier
	case t.IsKeyword():
		return ClassKeyword
	case t.IsOperator():
		return ClassOperator
	}
	return ClassPunctuation
}

// Exported operator tokens for the resolver and emitter.
const (
	Eql Token = _Eql // =
	Neq Token = _Neq // !=
	Lss Token = _Lss // <
	Leq Token = _Leq // <=
	Gtr Token = _Gtr // >
	Geq Token = _Geq // >=
	Add Token = _Add // +
	Sub Token = _Sub // -
	Mul Token = _Mul // *
	Div Token = _Div // /
	Not Token = _Not // !
)

// IsComparison reports whether t is a comparison operator.
func (t Token) IsComparison() bool {
	return t.Precedence() == 1
}

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit   LitKind = iota // 42
	FloatLit                // 3.14, 3.
	CharLit                 // 'a', '\n'
	BoolLit                 // true, false (AST only)
)

var litKindNames = [...]string{
	IntLit:   "int",
	FloatLit: "float",
	CharLit:  "char",
	BoolLit:  "bool",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= BoolLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
// The type names int, float, bool and char and the builtin print are not
// keywords; they are scanned as _Name and bound in the Universe.
var keywords = map[string]Token{
	"else":   _Else,
	"false":  _False,
	"if":     _If,
	"import": _Import,
	"let":    _Let,
	"main":   _Main,
	"return": _Return,
	"struct": _Struct,
	"true":   _True,
	"while":  _While,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
