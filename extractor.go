package docmirror

// Content holds the documentation body located inside a fetched page.
type Content struct {
	// Title is the page title, usually from the page's <h1>.
	Title string

	// HTML is the content container with chrome removed.
	HTML string

	// HasH1 reports whether the container keeps its own top-level heading.
	// When false the page title was rendered separately as chrome and the
	// renderer shifts every heading up one level.
	HasH1 bool
}

// Extractor locates the meaningful content node inside a full page and
// strips chrome (navigation, breadcrumbs, edit affordances, related-content
// widgets). Each implementation covers one site family.
type Extractor interface {
	// Extract processes raw HTML and returns the cleaned content.
	// Returns ENOTFOUND when no recognizable content container exists, or
	// when the container is empty after cleaning.
	Extract(html string) (*Content, error)
}
