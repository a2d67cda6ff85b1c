package docmirror

// PageStatus is the outcome of processing one fetch target.
type PageStatus string

// Page statuses.
const (
	StatusSuccess PageStatus = "success"
	StatusFailed  PageStatus = "failed"
)

// PageResult is the outcome of processing one fetch target.
type PageResult struct {
	Status PageStatus

	// Slug is the resolved output filename (post-disambiguation).
	Slug string

	// Path is the source doc path or raw URL.
	Path string

	// OutputPath is the written file path, relative to the corpus root.
	// Empty on failure.
	OutputPath string

	// Title is the extracted page title, when available.
	Title string

	// Images lists referenced image URLs in document order.
	Images []string

	// ContentHash is an xxhash of the written markdown.
	ContentHash string

	// Err holds a human-readable error detail on failure.
	Err string
}

// Failure pairs a failed source path with its reason for summary reporting.
type Failure struct {
	Path   string
	Reason string
}

// Summary reports the outcome of one profile's batch run.
type Summary struct {
	// RunID uniquely identifies the batch run in logs.
	RunID string

	// Profile is the profile name.
	Profile string

	Total     int
	Succeeded int
	Failed    int

	// Failures lists failed targets in configured order.
	Failures []Failure

	// AssetsDownloaded counts image assets persisted during the run.
	AssetsDownloaded int

	// Warnings counts non-fatal problems (asset failures, slug collisions).
	Warnings int
}

// Reporter receives per-page events and the final batch summary. It is the
// sink through which a CLI or plugin shell surfaces results to the user.
type Reporter interface {
	// PageDone is called once per target, success or failure.
	PageDone(result *PageResult)

	// AssetWarning reports a failed image download. The page still succeeds.
	AssetWarning(slug, url string, err error)

	// SlugCollision reports that a slug was disambiguated.
	SlugCollision(slug, resolved string)

	// BatchDone is called once after all targets are processed.
	BatchDone(summary *Summary)
}
