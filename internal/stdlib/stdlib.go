// Package stdlib embeds the Boron standard library. Module "std/math" is
// the file std/math.bn of this package.
package stdlib

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/you-not-fish/boron/internal/module"
)

// Prefix starts the path of every standard module.
const Prefix = "std/"

// FileRoot is the directory standard module filenames are reported under
// in diagnostics: "<std>/std/math.bn".
const FileRoot = "<std>"

//go:embed std/*.bn
var files embed.FS

// FS returns the library sources.
func FS() fs.FS {
	return files
}

// Names returns the paths of all standard modules, sorted.
func Names() []string {
	entries, err := fs.ReadDir(files, strings.TrimSuffix(Prefix, "/"))
	if err != nil {
		panic(err) // embedded directory always exists
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), module.Ext); ok && !e.IsDir() {
			names = append(names, Prefix+name)
		}
	}
	sort.Strings(names)
	return names
}

// Locator serves the standard modules. Paths outside Prefix are not
// found, so it can be chained in front of user locators.
func Locator() module.Locator {
	return locator{fs: module.FSLocator{FS: files, Prefix: FileRoot}}
}

type locator struct {
	fs module.FSLocator
}

func (l locator) Locate(p string) (module.Source, error) {
	if !strings.HasPrefix(p, Prefix) {
		return module.Source{}, fmt.Errorf("%s: %w", p, module.ErrNotFound)
	}
	src, err := l.fs.Locate(p)
	if err != nil {
		return module.Source{}, fmt.Errorf("%w (available: %s)", err, strings.Join(Names(), ", "))
	}
	return src, nil
}

// Source returns the source of the standard module at path p.
func Source(p string) (module.Source, error) {
	return Locator().Locate(p)
}
