// Package diag classifies and renders the errors produced by the boron
// compiler pipeline.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/you-not-fish/boron/internal/syntax"
)

// Kind classifies a compilation failure.
type Kind int

const (
	Unknown Kind = iota
	LexError
	ParseError
	UnresolvedNameError
	FieldMismatchError
	ArityError
	CyclicImportError
	UnresolvedImportError
	MissingMainError
	ModuleNotFoundError
	RedeclarationError
	TypeMismatchError
	kindCount
)

var kindNames = [...]string{
	Unknown:               "Unknown",
	LexError:              "LexError",
	ParseError:            "ParseError",
	UnresolvedNameError:   "UnresolvedNameError",
	FieldMismatchError:    "FieldMismatchError",
	ArityError:            "ArityError",
	CyclicImportError:     "CyclicImportError",
	UnresolvedImportError: "UnresolvedImportError",
	MissingMainError:      "MissingMainError",
	ModuleNotFoundError:   "ModuleNotFoundError",
	RedeclarationError:    "RedeclarationError",
	TypeMismatchError:     "TypeMismatchError",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the stable diagnostic code of k, e.g. "E0003".
// Unknown has code "E0000".
func (k Kind) Code() string {
	if k < 0 || k >= kindCount {
		k = Unknown
	}
	return fmt.Sprintf("E%04d", int(k))
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Unknown, false
}

// Error is a semantic or linking failure. Lexical and syntactic failures
// are reported as *syntax.LexError and *syntax.ParseError instead.
type Error struct {
	Kind     Kind
	Pos      syntax.Pos // invalid for errors with no source location
	Name     string     // offending identifier, field or imported name
	Module   string     // module the error refers to
	Expected string
	Found    string
	Path     []string // import cycle, first module repeated at the end
	Msg      string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}

// Errorf returns an error of the given kind with a formatted message.
func Errorf(kind Kind, pos syntax.Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// UnresolvedName reports a use of a name with no binding in scope.
func UnresolvedName(pos syntax.Pos, name string) *Error {
	e := Errorf(UnresolvedNameError, pos, "undefined: %s", name)
	e.Name = name
	return e
}

// UnknownField reports a field name that typ does not declare.
func UnknownField(pos syntax.Pos, typ, field string) *Error {
	e := Errorf(FieldMismatchError, pos, "%s has no field %s", typ, field)
	e.Name = field
	return e
}

// MissingField reports a struct literal that omits a declared field.
func MissingField(pos syntax.Pos, typ, field string) *Error {
	e := Errorf(FieldMismatchError, pos, "missing field %s in %s literal", field, typ)
	e.Name = field
	return e
}

// DuplicateField reports a field given twice in a literal or declaration.
func DuplicateField(pos syntax.Pos, typ, field string) *Error {
	e := Errorf(FieldMismatchError, pos, "duplicate field %s in %s", field, typ)
	e.Name = field
	return e
}

// Arity reports a call with the wrong number of arguments.
func Arity(pos syntax.Pos, fn string, want, got int) *Error {
	e := Errorf(ArityError, pos, "wrong number of arguments in call to %s: want %d, got %d", fn, want, got)
	e.Name = fn
	e.Expected = fmt.Sprint(want)
	e.Found = fmt.Sprint(got)
	return e
}

// CyclicImport reports an import cycle. path lists the modules of the cycle
// starting and ending with the same module.
func CyclicImport(pos syntax.Pos, path []string) *Error {
	e := Errorf(CyclicImportError, pos, "import cycle: %s", strings.Join(path, " -> "))
	e.Path = path
	if len(path) > 0 {
		e.Module = path[0]
	}
	return e
}

// UnresolvedImport reports an imported name that module does not export.
func UnresolvedImport(pos syntax.Pos, module, name string) *Error {
	e := Errorf(UnresolvedImportError, pos, "module %s does not export %s", module, name)
	e.Module = module
	e.Name = name
	return e
}

// MissingMain reports an executable entry module without a main block.
// pos is the end of the module's source.
func MissingMain(pos syntax.Pos, module string) *Error {
	e := Errorf(MissingMainError, pos, "module %s has no main", module)
	e.Module = module
	return e
}

// ModuleNotFound reports an import path no locator could resolve.
// pos is the importing declaration, or invalid for the entry module.
func ModuleNotFound(pos syntax.Pos, module string) *Error {
	e := Errorf(ModuleNotFoundError, pos, "module %s not found", module)
	e.Module = module
	return e
}

// Redeclaration reports a second binding of name in the same frame.
func Redeclaration(pos syntax.Pos, name string) *Error {
	e := Errorf(RedeclarationError, pos, "%s redeclared in this block", name)
	e.Name = name
	return e
}

// TypeMismatch reports an operand or value of the wrong type.
func TypeMismatch(pos syntax.Pos, expected, found, format string, args ...any) *Error {
	e := Errorf(TypeMismatchError, pos, format, args...)
	e.Expected = expected
	e.Found = found
	return e
}

// KindOf classifies any error returned by the pipeline.
func KindOf(err error) Kind {
	var lex *syntax.LexError
	var parse *syntax.ParseError
	var d *Error
	switch {
	case err == nil:
		return Unknown
	case errors.As(err, &lex):
		return LexError
	case errors.As(err, &parse):
		return ParseError
	case errors.As(err, &d):
		return d.Kind
	}
	return Unknown
}

// PosOf returns the source position carried by err, if any.
func PosOf(err error) syntax.Pos {
	var lex *syntax.LexError
	var parse *syntax.ParseError
	var d *Error
	switch {
	case errors.As(err, &lex):
		return lex.Pos
	case errors.As(err, &parse):
		return parse.Pos
	case errors.As(err, &d):
		return d.Pos
	}
	return syntax.Pos{}
}

// Message returns the description of err without its position prefix.
func Message(err error) string {
	var lex *syntax.LexError
	var parse *syntax.ParseError
	var d *Error
	switch {
	case errors.As(err, &lex):
		return lex.Msg
	case errors.As(err, &parse):
		return "expected " + parse.Expected + ", found " + parse.Found
	case errors.As(err, &d):
		return d.Msg
	}
	return err.Error()
}
