package docmirror

// FS persists output artifacts. Paths are relative to the corpus root.
type FS interface {
	// WriteFile writes data to path with atomic replace semantics: a
	// partially written file is never visible at path. Parent directories
	// are created as needed.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error

	// Exists reports whether a file exists at path.
	Exists(path string) bool
}
