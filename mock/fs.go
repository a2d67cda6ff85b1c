package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.FS = (*FS)(nil)

// FS is a mock implementation of docmirror.FS.
type FS struct {
	WriteFileFn func(path string, data []byte) error
	MkdirAllFn  func(path string) error
	ExistsFn    func(path string) bool
}

func (f *FS) WriteFile(path string, data []byte) error {
	return f.WriteFileFn(path, data)
}

func (f *FS) MkdirAll(path string) error {
	return f.MkdirAllFn(path)
}

func (f *FS) Exists(path string) bool {
	return f.ExistsFn(path)
}
