// Package fs provides file-based storage for mirrored documentation.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/docmirror"
)

// Ensure Dir implements docmirror.FS at compile time.
var _ docmirror.FS = (*Dir)(nil)

// Dir writes files under a root directory. All paths passed to its
// methods are relative to the root.
type Dir struct {
	root string
}

// NewDir creates a new Dir rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// WriteFile writes data to the given path atomically: the data lands in a
// temporary file first and is renamed into place, so readers never observe
// a partially written file.
func (d *Dir) WriteFile(path string, data []byte) error {
	fullPath := filepath.Join(d.root, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), "."+filepath.Base(fullPath)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}

// MkdirAll creates the given directory and any missing parents.
func (d *Dir) MkdirAll(path string) error {
	return os.MkdirAll(filepath.Join(d.root, path), 0755)
}

// Exists reports whether a file or directory exists at the given path.
func (d *Dir) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(d.root, path))
	return err == nil
}
