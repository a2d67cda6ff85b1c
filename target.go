package docmirror

// TargetKind distinguishes parser-driven HTML pages from verbatim files.
type TargetKind int

// Fetch target kinds.
const (
	TargetPage TargetKind = iota
	TargetRaw
)

// FetchTarget is one unit of orchestrator work: either a doc path fetched
// through a parser pipeline, or a raw URL written verbatim.
type FetchTarget struct {
	Kind TargetKind

	// Path is the doc path (relative to the profile's base URL) for page
	// targets, or the full URL for raw targets.
	Path string

	// Slug is the output filename, including the .md extension.
	Slug string

	// Position is the target's index in the profile's configured order.
	Position int
}

// URL returns the absolute URL to fetch, resolving page paths against the
// profile's base URL.
func (t FetchTarget) URL(baseURL string) string {
	if t.Kind == TargetRaw {
		return t.Path
	}
	return baseURL + t.Path
}
