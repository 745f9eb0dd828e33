package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/boron/internal/syntax"
)

// Scope is one frame of the lexical scope stack. Frames are pushed on block
// entry and popped on block exit; lookup walks from the innermost frame
// outwards through the parent chain.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]Object
	order    []string // insertion order
	pos, end syntax.Pos
	comment  string // debugging comment (e.g., "function foo", "block")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, pos, end syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		pos:     pos,
		end:     end,
		comment: comment,
	}
	// Universe is shared by concurrent resolutions and never records children.
	if parent != nil && parent != Universe {
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the parent scope, or nil for the Universe scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Pos returns the start position of the scope in source.
func (s *Scope) Pos() syntax.Pos {
	return s.pos
}

// End returns the end position of the scope in source.
func (s *Scope) End() syntax.Pos {
	return s.end
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the object with the given name in this frame only.
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent returns the innermost object with the given name, searching
// from s outwards, together with the scope it was found in.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, returns the existing object.
// Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	s.order = append(s.order, name)
	obj.setParent(s)
	return nil
}

// Bind makes obj visible under its name without changing obj's parent.
// Imported declarations are bound this way into the importer's scope.
// Like Insert, it returns the existing object if the name is taken.
func (s *Scope) Bind(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	s.order = append(s.order, name)
	return nil
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := append([]string(nil), s.order...)
	sort.Strings(names)
	return names
}

// Objects returns the objects of the scope in insertion order.
func (s *Scope) Objects() []Object {
	objs := make([]Object, len(s.order))
	for i, name := range s.order {
		objs[i] = s.elems[name]
	}
	return objs
}

// NumObjects returns the number of objects in the scope.
func (s *Scope) NumObjects() int {
	return len(s.elems)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		obj := s.elems[name]
		if obj.Type() != nil {
			fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, obj.Type())
		} else {
			fmt.Fprintf(buf, "%s  %s\n", prefix, name)
		}
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
