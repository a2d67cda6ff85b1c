package docmirror

// ImageAsset tracks one remote image and its locally assigned filename.
// Assets are scoped to one profile run and deduplicated by remote URL.
type ImageAsset struct {
	URL        string
	Filename   string
	Downloaded bool
}

// ImageScanner discovers and rewrites image references inside content HTML.
type ImageScanner interface {
	// Scan returns the image URLs referenced by the content, resolved
	// against baseURL, deduplicated, in document order.
	Scan(html, baseURL string) ([]string, error)

	// Rewrite replaces image src attributes whose resolved URL appears in
	// mapping with the mapped local path. Unmapped references are left
	// untouched.
	Rewrite(html, baseURL string, mapping map[string]string) (string, error)
}
