package cgen

import (
	"fmt"
	"io"
	"strings"
)

// emitter wraps an io.Writer with helpers for emitting C text.
type emitter struct {
	w      io.Writer
	err    error // first write error
	indent int   // current nesting depth
}

// emit writes a formatted line at the current indentation.
func (e *emitter) emit(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, strings.Repeat("    ", e.indent)+format+"\n", args...)
}

// emitRaw writes a string verbatim.
func (e *emitter) emitRaw(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// emitLine writes a blank line.
func (e *emitter) emitLine() {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, "\n")
}

// emitComment writes a line comment.
func (e *emitter) emitComment(format string, args ...any) {
	e.emit("// "+format, args...)
}

// open writes a line ending in "{" and indents what follows.
func (e *emitter) open(format string, args ...any) {
	if format == "" {
		e.emit("{")
	} else {
		e.emit(format+" {", args...)
	}
	e.indent++
}

// close dedents and writes the closing brace followed by suffix.
func (e *emitter) close(suffix string) {
	e.indent--
	e.emit("}" + suffix)
}

// reopen closes the current block and opens the next one on the same
// line, as in "} else {".
func (e *emitter) reopen(format string, args ...any) {
	e.indent--
	e.open("} "+format, args...)
}
