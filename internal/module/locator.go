// Package module links Boron modules: it locates the sources named by
// import declarations, walks the import graph and resolves every module
// after its dependencies.
package module

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Ext is the file extension of Boron source files.
const Ext = ".bn"

// ErrNotFound is returned, possibly wrapped, by a Locator that has no
// module with the requested path.
var ErrNotFound = errors.New("module not found")

// Source is the text of one module.
type Source struct {
	Path     string // module path, e.g. "geometry/shapes"
	Filename string // name used in diagnostics, e.g. "geometry/shapes.bn"
	Text     []byte
}

// A Locator maps import paths to module sources.
type Locator interface {
	Locate(path string) (Source, error)
}

// MapLocator serves modules from memory, keyed by module path.
type MapLocator map[string]string

// Locate implements Locator.
func (m MapLocator) Locate(p string) (Source, error) {
	text, ok := m[p]
	if !ok {
		return Source{}, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	return Source{Path: p, Filename: p + Ext, Text: []byte(text)}, nil
}

// FSLocator serves modules from a file system. Module "a/b" is read from
// the file "a/b.bn" below the root of FS.
type FSLocator struct {
	FS fs.FS

	// Prefix is prepended to filenames reported in diagnostics,
	// typically the directory FS was opened on.
	Prefix string
}

// Locate implements Locator.
func (l *FSLocator) Locate(p string) (Source, error) {
	name := p + Ext
	if !fs.ValidPath(name) {
		return Source{}, fmt.Errorf("%s: invalid module path: %w", p, ErrNotFound)
	}
	text, err := fs.ReadFile(l.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return Source{}, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if err != nil {
		return Source{}, err
	}
	filename := name
	if l.Prefix != "" {
		filename = path.Join(l.Prefix, name)
	}
	return Source{Path: p, Filename: filename, Text: text}, nil
}

// ChainLocator tries each locator in turn. The first one that has the
// module wins; any failure other than ErrNotFound stops the search.
type ChainLocator []Locator

// Locate implements Locator.
func (c ChainLocator) Locate(p string) (Source, error) {
	for _, l := range c {
		src, err := l.Locate(p)
		if err == nil {
			return src, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Source{}, err
		}
	}
	return Source{}, fmt.Errorf("%s: %w", p, ErrNotFound)
}
