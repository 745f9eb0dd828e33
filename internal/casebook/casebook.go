// Package casebook extracts compiler test cases from Markdown documents.
//
// A case starts at a heading "Test: name". Its fenced code blocks are
// either inputs or assertions, told apart by the fence info string:
//
//	boron                    the entry module (exactly one)
//	boron lib                the entry module, compiled as a library
//	boron module=geo/shapes  another module the entry can import
//	c [module=path]          text the emitted C source must contain
//	h [module=path]          text the emitted header must contain
//	sexpr                    S-expression the entry must parse to
//	error [kind=Kind]        text the compilation error must contain
//
// An assertion without module= refers to the entry module. Standard
// library modules (std/...) may be asserted on without being supplied.
package casebook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/you-not-fish/boron/internal/stdlib"
)

// Kind is the kind of an assertion fence.
type Kind string

const (
	KindC     Kind = "c"
	KindH     Kind = "h"
	KindSexpr Kind = "sexpr"
	KindError Kind = "error"
)

// Fence language of input blocks.
const langBoron = "boron"

const headingPrefix = "Test: "

// Module is an importable module supplied by a case.
type Module struct {
	Path string
	Text string
}

// Assertion is one expectation about the compilation result.
type Assertion struct {
	Kind    Kind
	Module  string            // module the assertion is about; "" for the entry
	Attrs   map[string]string // further key=value attributes, e.g. kind
	Content string
	Line    int
}

// Case is one compilation test.
type Case struct {
	Name       string
	Line       int
	Input      string   // entry module source
	Library    bool     // compile the entry in library mode
	Modules    []Module // in document order
	Assertions []Assertion
}

// Locate returns the text of module p supplied by the case.
func (c *Case) Locate(p string) (string, bool) {
	for _, m := range c.Modules {
		if m.Path == p {
			return m.Text, true
		}
	}
	return "", false
}

// Extract parses a Markdown document and returns its cases in order.
func Extract(doc []byte) ([]Case, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(doc))

	var (
		cases []Case
		cur   *Case
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := validate(cur); err != nil {
			return err
		}
		cases = append(cases, *cur)
		cur = nil
		return nil
	}

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			title := nodeText(n, doc)
			name, ok := strings.CutPrefix(title, headingPrefix)
			if !ok {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			cur = &Case{Name: strings.TrimSpace(name), Line: lineOf(n, doc)}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			if err := addFence(cur, n, doc); err != nil {
				return ast.WalkStop, err
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

// addFence records the fenced block n in the current case.
func addFence(cur *Case, n *ast.FencedCodeBlock, doc []byte) error {
	var info string
	if n.Info != nil {
		info = string(n.Info.Segment.Value(doc))
	}
	lang, attrs, err := parseInfo(info)
	line := lineOf(n, doc)
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	if cur == nil {
		if lang == "" {
			return nil
		}
		return fmt.Errorf("line %d: %s fence outside of a test case", line, lang)
	}
	content := blockText(n, doc)

	switch lang {
	case langBoron:
		if path, ok := attrs["module"]; ok {
			if _, dup := cur.Locate(path); dup {
				return fmt.Errorf("line %d: module %s supplied twice in test %q", line, path, cur.Name)
			}
			cur.Modules = append(cur.Modules, Module{Path: path, Text: content})
			return nil
		}
		if cur.Input != "" {
			return fmt.Errorf("line %d: multiple entry fences in test %q", line, cur.Name)
		}
		cur.Input = content
		_, cur.Library = attrs["lib"]

	case string(KindC), string(KindH), string(KindSexpr), string(KindError):
		a := Assertion{
			Kind:    Kind(lang),
			Module:  attrs["module"],
			Content: strings.TrimRight(content, "\n"),
			Line:    line,
		}
		delete(attrs, "module")
		if len(attrs) > 0 {
			a.Attrs = attrs
		}
		cur.Assertions = append(cur.Assertions, a)

	default:
		return fmt.Errorf("line %d: unknown fence language %q in test %q", line, lang, cur.Name)
	}
	return nil
}

// parseInfo splits a fence info string into its language and attributes.
// A bare word after the language is an attribute with an empty value.
func parseInfo(info string) (string, map[string]string, error) {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return "", nil, nil
	}
	attrs := make(map[string]string)
	for _, f := range fields[1:] {
		key, val, _ := strings.Cut(f, "=")
		if key == "" {
			return "", nil, fmt.Errorf("malformed fence attribute %q", f)
		}
		if _, dup := attrs[key]; dup {
			return "", nil, fmt.Errorf("duplicate fence attribute %q", key)
		}
		attrs[key] = val
	}
	return fields[0], attrs, nil
}

// validate checks that c has an entry and something to assert.
func validate(c *Case) error {
	if c.Input == "" {
		return fmt.Errorf("line %d: test %q has no boron fence", c.Line, c.Name)
	}
	if len(c.Assertions) == 0 {
		return fmt.Errorf("line %d: test %q has no assertion fences", c.Line, c.Name)
	}
	for _, a := range c.Assertions {
		if a.Module == "" || strings.HasPrefix(a.Module, stdlib.Prefix) {
			continue
		}
		if _, ok := c.Locate(a.Module); !ok {
			return fmt.Errorf("line %d: test %q asserts on unknown module %s", a.Line, c.Name, a.Module)
		}
	}
	return nil
}

// nodeText returns the plain text below node.
func nodeText(node ast.Node, doc []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(doc))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// blockText returns the content lines of a fenced block.
func blockText(n *ast.FencedCodeBlock, doc []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(doc))
	}
	return buf.String()
}

// lineOf returns the 1-based line of the first content line of node.
func lineOf(node ast.Node, doc []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	return bytes.Count(doc[:node.Lines().At(0).Start], []byte("\n")) + 1
}
