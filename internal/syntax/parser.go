package syntax

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError reports the first token the parser could not accept.
type ParseError struct {
	Pos      Pos
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// Parser performs syntax analysis over a token sequence.
// Parsing stops at the first error; there is no recovery.
type Parser struct {
	toks []Lexeme
	i    int // index of the current token

	// Current token info (cached from toks[i])
	tok Token
	lit string
	pos Pos

	prev  Token // previously consumed token
	first *ParseError

	// noLit is set while parsing if/while conditions, where "{" opens the
	// body rather than a struct literal.
	noLit bool
}

// NewParser creates a Parser over toks, which should end with an EOF lexeme.
func NewParser(toks []Lexeme) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Tok != _EOF {
		var pos Pos
		if len(toks) > 0 {
			pos = toks[len(toks)-1].Pos
		}
		toks = append(toks, Lexeme{Tok: _EOF, Pos: pos})
	}
	p := &Parser{toks: toks}
	p.load()
	return p
}

// Parse tokenizes and parses one module.
func Parse(filename string, src []byte) (*Program, error) {
	toks, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return NewParser(toks).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) load() {
	l := p.toks[p.i]
	p.tok = l.Tok
	p.lit = l.Text
	p.pos = l.Pos
}

// next advances to the next token. After an error the parser stays at EOF.
func (p *Parser) next() {
	if p.first != nil {
		return
	}
	p.prev = p.tok
	if p.i < len(p.toks)-1 {
		p.i++
	}
	p.load()
}

// peek returns the token n positions ahead of the current one.
func (p *Parser) peek(n int) Token {
	if j := p.i + n; j < len(p.toks) {
		return p.toks[j].Tok
	}
	return _EOF
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.errorf(describe(tok))
	}
}

func describe(tok Token) string {
	switch tok {
	case _Name:
		return "identifier"
	case _Literal:
		return "literal"
	}
	return strconv.Quote(tok.String())
}

// ----------------------------------------------------------------------------
// Error handling

// errorf records a ParseError at the current token and stops the parse.
func (p *Parser) errorf(expected string) {
	p.errorAt(p.pos, expected, p.toks[p.i].String())
}

func (p *Parser) errorAt(pos Pos, expected, found string) {
	if p.first != nil {
		return
	}
	p.first = &ParseError{Pos: pos, Expected: expected, Found: found}
	p.tok = _EOF
}

// FirstError returns the error that stopped the parse, or nil.
func (p *Parser) FirstError() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete module and returns its AST.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos

	for p.tok != _EOF {
		if d := p.topItem(); d != nil {
			prog.Items = append(prog.Items, d)
		}
	}

	if p.first != nil {
		return nil, p.first
	}
	prog.End = p.pos
	return prog, nil
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{Value: "_"}
	n.pos = p.pos
	if p.tok != _Name {
		p.errorf("identifier")
		return n
	}
	n.Value = p.lit
	p.next()
	return n
}

// sep consumes a list separator in brace-delimited lists.
func (p *Parser) sep() bool {
	if p.tok == _Comma || p.tok == _Semi {
		p.next()
		return true
	}
	return false
}

// closeParen consumes ")" and a newline terminator inserted just before it.
func (p *Parser) closeParen() {
	if p.tok == _Semi && p.toks[p.i].Implicit() && p.peek(1) == _Rparen {
		p.next()
	}
	p.want(_Rparen)
}

// terminator ends a simple statement. A statement whose last token was "}"
// needs no terminator.
func (p *Parser) terminator() {
	switch {
	case p.tok == _Semi:
		p.next()
	case p.tok == _Rbrace, p.tok == _EOF, p.prev == _Rbrace:
	default:
		p.errorf(`";" or newline`)
	}
}

// noTerminator rejects a ";" written right after a closing brace.
func (p *Parser) noTerminator() {
	if p.tok == _Semi {
		p.errorf(`statement after "}"`)
	}
}

// ----------------------------------------------------------------------------
// Top-level declarations

func (p *Parser) topItem() Decl {
	switch p.tok {
	case _Import:
		return p.importDecl()
	case _Struct:
		d := p.structDecl()
		p.noTerminator()
		return d
	case _Main:
		return p.mainDecl()
	case _Name:
		return p.funcDecl()
	}
	p.errorf("declaration")
	return nil
}

// importDecl parses: import a.b.c [{ X, y }]
func (p *Parser) importDecl() *ImportDecl {
	d := &ImportDecl{}
	d.pos = p.pos
	p.want(_Import)

	parts := []string{p.name().Value}
	for p.got(_Dot) {
		parts = append(parts, p.name().Value)
	}
	d.Path = strings.Join(parts, "/")

	if p.got(_Lbrace) {
		d.Symbols = []*Name{}
		for p.tok != _Rbrace && p.tok != _EOF {
			d.Symbols = append(d.Symbols, p.name())
			if !p.sep() {
				break
			}
		}
		p.want(_Rbrace)
	}

	p.terminator()
	return d
}

// structDecl parses: struct Name { Type field, ... }
func (p *Parser) structDecl() *StructDecl {
	d := &StructDecl{}
	d.pos = p.pos
	p.want(_Struct)
	d.Name = p.name()

	p.want(_Lbrace)
	for p.tok != _Rbrace && p.tok != _EOF {
		d.Fields = append(d.Fields, p.field())
		if !p.sep() {
			break
		}
	}
	p.want(_Rbrace)
	return d
}

// field parses: Type name
func (p *Parser) field() *Field {
	f := &Field{}
	f.pos = p.pos
	f.Type = p.name()
	f.Name = p.name()
	return f
}

// funcDecl parses: name(Type a, Type b) [-> Result] { Body }
func (p *Parser) funcDecl() *FuncDecl {
	d := &FuncDecl{}
	d.pos = p.pos
	d.Name = p.name()

	p.want(_Lparen)
	for p.tok != _Rparen && p.tok != _EOF {
		d.Params = append(d.Params, p.field())
		if !p.got(_Comma) {
			break
		}
	}
	p.closeParen()

	if p.got(_Arrow) {
		d.Result = p.name()
	}

	d.Body = p.blockStmt()
	p.noTerminator()
	return d
}

// mainDecl parses: main [()] { Body }
func (p *Parser) mainDecl() *FuncDecl {
	d := &FuncDecl{IsMain: true}
	d.pos = p.pos
	d.Name = &Name{Value: "main"}
	d.Name.pos = p.pos
	p.want(_Main)

	if p.got(_Lparen) {
		p.closeParen()
	}

	d.Body = p.blockStmt()
	p.noTerminator()
	return d
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos
	p.want(_Lbrace)

	for p.tok != _Rbrace && p.tok != _EOF {
		if s := p.stmt(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}

	b.Rbrace = p.pos
	p.want(_Rbrace)
	return b
}

func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Let:
		return p.letStmt()
	case _If:
		s := p.ifStmt()
		p.noTerminator()
		return s
	case _While:
		s := p.whileStmt()
		p.noTerminator()
		return s
	case _Return:
		return p.returnStmt()
	case _Struct:
		d := p.structDecl()
		p.noTerminator()
		return d
	case _Name:
		if p.peek(1) == _Name && p.peek(2) == _Colon {
			return p.structInitStmt()
		}
	}
	return p.simpleStmt()
}

// letStmt parses: let [Type] name: value
func (p *Parser) letStmt() Stmt {
	s := &LetStmt{}
	s.pos = p.pos
	p.want(_Let)

	if p.tok == _Name && p.peek(1) == _Name {
		s.Type = p.name()
	}
	s.Name = p.name()
	p.want(_Colon)

	if s.Type != nil && p.tok == _Lbrace {
		s.Value = p.structBody(s.Type, p.pos)
	} else {
		s.Value = p.expr()
	}

	p.terminator()
	return s
}

// structInitStmt parses: Type name: { field: value, ... }
func (p *Parser) structInitStmt() Stmt {
	s := &LetStmt{}
	s.pos = p.pos
	s.Type = p.name()
	s.Name = p.name()
	p.want(_Colon)

	if p.tok != _Lbrace {
		p.errorf(`"{"`)
		return s
	}
	s.Value = p.structBody(s.Type, p.pos)

	p.terminator()
	return s
}

// simpleStmt parses an expression statement or a reassignment.
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	x := p.expr()

	if p.tok == _Colon {
		switch x.(type) {
		case *Name, *FieldExpr:
		default:
			p.errorAt(pos, "variable or field before \":\"", "expression")
		}
		s := &AssignStmt{Target: x}
		s.pos = pos
		p.next()
		s.Value = p.expr()
		p.terminator()
		return s
	}

	s := &ExprStmt{X: x}
	s.pos = pos
	p.terminator()
	return s
}

func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.pos
	p.want(_Return)

	if p.tok != _Semi && p.tok != _Rbrace && p.tok != _EOF {
		s.Result = p.expr()
	}

	p.terminator()
	return s
}

func (p *Parser) ifStmt() *IfStmt {
	s := &IfStmt{}
	s.pos = p.pos
	p.want(_If)

	s.Cond = p.cond()
	s.Then = p.blockStmt()

	if p.got(_Else) {
		if p.tok == _If {
			s.Else = p.ifStmt() // else if
		} else {
			s.Else = p.blockStmt() // else
		}
	}

	return s
}

func (p *Parser) whileStmt() *WhileStmt {
	s := &WhileStmt{}
	s.pos = p.pos
	p.want(_While)

	s.Cond = p.cond()
	s.Body = p.blockStmt()
	return s
}

// cond parses the condition of an if or while statement.
func (p *Parser) cond() Expr {
	old := p.noLit
	p.noLit = true
	x := p.expr()
	p.noLit = old
	return x
}

// ----------------------------------------------------------------------------
// Expressions

func (p *Parser) expr() Expr {
	return p.ternary()
}

// ternary parses: cond ? then | else (right associative).
func (p *Parser) ternary() Expr {
	x := p.binaryExpr(0)
	if p.tok != _Question {
		return x
	}

	t := &TernaryExpr{Cond: x}
	t.pos = x.Pos()
	p.next()

	t.Then = p.ternary()
	p.want(_Pipe)
	t.Else = p.ternary()
	return t
}

func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &BinaryExpr{Op: p.tok, X: x}
		op.pos = x.Pos()
		p.next()

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Not, _Sub:
		op := &UnaryExpr{Op: p.tok}
		op.pos = p.pos
		p.next()
		if op.Op == _Sub && p.tok == _Literal {
			// The magnitude of the smallest int is only valid negated.
			if l := p.toks[p.i]; l.Kind == IntLit && intValue(l.Text) == -math.MinInt32 {
				lit := &BasicLit{Value: l.Value, Kind: IntLit}
				lit.pos = l.Pos
				p.next()
				op.X = lit
				return op
			}
		}
		op.X = p.unaryExpr()
		return op
	}
	return p.postfixExpr()
}

// postfixExpr parses field accesses and method calls after an operand.
func (p *Parser) postfixExpr() Expr {
	x := p.operand()

	for p.tok == _Dot {
		p.next()
		sel := p.name()

		if p.tok == _Lparen {
			m := &MethodCallExpr{Recv: x, Method: sel}
			m.pos = x.Pos()
			m.Args = p.args()
			x = m
			continue
		}

		f := &FieldExpr{X: x, Sel: sel}
		f.pos = x.Pos()
		x = f
	}
	return x
}

func (p *Parser) operand() Expr {
	switch p.tok {
	case _Literal:
		return p.basicLit()

	case _True, _False:
		lit := &BasicLit{Value: p.lit, Kind: BoolLit}
		lit.pos = p.pos
		p.next()
		return lit

	case _Name:
		n := p.name()
		switch {
		case p.tok == _Lparen:
			call := &CallExpr{Fun: n}
			call.pos = n.pos
			call.Args = p.args()
			return call
		case p.tok == _Lbrace && !p.noLit:
			return p.structBody(n, n.pos)
		}
		return n

	case _Lparen:
		p.next()
		old := p.noLit
		p.noLit = false
		x := p.expr()
		p.noLit = old
		p.closeParen()
		return x
	}

	p.errorf("expression")
	bad := &Name{Value: "_"}
	bad.pos = p.pos
	return bad
}

func (p *Parser) basicLit() Expr {
	l := p.toks[p.i]
	lit := &BasicLit{Value: l.Value, Kind: l.Kind}
	lit.pos = l.Pos

	if l.Kind == IntLit {
		if _, err := strconv.ParseInt(l.Text, 10, 32); err != nil {
			p.errorf("32-bit integer literal")
			return lit
		}
	}

	p.next()
	return lit
}

// intValue returns the value of a decimal literal, or -1 if it does not
// fit in 64 bits.
func intValue(text string) int64 {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return -1
	}
	return v
}

// args parses a parenthesized argument list. A trailing comma is allowed.
func (p *Parser) args() []Expr {
	p.want(_Lparen)
	old := p.noLit
	p.noLit = false

	var list []Expr
	for p.tok != _Rparen && p.tok != _EOF {
		list = append(list, p.expr())
		if !p.got(_Comma) {
			break
		}
	}

	p.noLit = old
	p.closeParen()
	return list
}

// structBody parses { field: value, ... } for a struct of type typ.
// The type name node is duplicated so the literal owns its own reference.
func (p *Parser) structBody(typ *Name, pos Pos) *StructLit {
	lit := &StructLit{Type: &Name{Value: typ.Value}}
	lit.Type.pos = typ.pos
	lit.pos = pos

	p.want(_Lbrace)
	old := p.noLit
	p.noLit = false

	for p.tok != _Rbrace && p.tok != _EOF {
		f := &FieldInit{}
		f.pos = p.pos
		f.Name = p.name()
		p.want(_Colon)
		f.Value = p.expr()
		lit.Fields = append(lit.Fields, f)
		if !p.sep() {
			break
		}
	}

	p.noLit = old
	p.want(_Rbrace)
	return lit
}
