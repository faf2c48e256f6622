// Package testutil resolves test font fixtures embedded in
// github.com/go-text/typesetting-utils to real files on disk, so tests
// that parse fonts via ot.ParseFont can os.ReadFile a path rather than
// carrying their own binary font fixtures in this repository.
package testutil

import (
	"io/fs"
	"os"
	"path"
	"sync"

	td "github.com/go-text/typesetting-utils/opentype"
)

var (
	once     sync.Once
	byName   map[string]string // basename -> embedded path
	extracts sync.Map          // embedded path -> extracted temp file path
)

func index() map[string]string {
	once.Do(func() {
		byName = make(map[string]string)
		fs.WalkDir(td.Files, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			byName[path.Base(p)] = p
			return nil
		})
	})
	return byName
}

// FindTestFont returns a filesystem path to the named embedded test
// font (matched by base filename, e.g. "Roboto-Regular.ttf"), writing
// it out to a temp file on first use. Returns "" if no fixture with
// that name is embedded.
func FindTestFont(name string) string {
	embeddedPath, ok := index()[name]
	if !ok {
		return ""
	}
	if cached, ok := extracts.Load(embeddedPath); ok {
		return cached.(string)
	}

	data, err := td.Files.ReadFile(embeddedPath)
	if err != nil {
		return ""
	}

	f, err := os.CreateTemp("", "glyphkit-*-"+name)
	if err != nil {
		return ""
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return ""
	}

	extracts.Store(embeddedPath, f.Name())
	return f.Name()
}
