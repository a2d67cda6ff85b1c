package docmirror

import "strings"

// Parser identifies the extractor+renderer pairing used for a profile's
// HTML pages.
type Parser string

// Supported parser tags.
const (
	// ParserArticle handles sites that mark their documentation body with
	// structured-data attributes (itemprop=articleBody).
	ParserArticle Parser = "structured-article"

	// ParserGenerator handles pages produced by documentation generators
	// (Docusaurus and similar article/main layouts).
	ParserGenerator Parser = "generator-specific"

	// ParserGeneric handles unrecognized sites via readability extraction.
	ParserGeneric Parser = "generic"

	// ParserRaw marks profiles whose targets are verbatim text files.
	// Raw targets bypass extraction and rendering entirely.
	ParserRaw Parser = "raw"
)

// RawURL is a direct file URL paired with an explicit output slug.
type RawURL struct {
	URL  string `yaml:"url"`
	Slug string `yaml:"slug"`
}

// Profile describes one documentation source to batch-fetch. Profiles are
// immutable once loaded; the orchestrator consumes them read-only.
type Profile struct {
	// Name identifies the profile in reporting and CLI selection.
	Name string `yaml:"name"`

	// BaseURL is prepended to every doc path.
	BaseURL string `yaml:"base_url"`

	// Parser selects the extractor+renderer pairing for HTML pages.
	Parser Parser `yaml:"parser"`

	// OutputDir is the directory (relative to the corpus root) that
	// receives the profile's markdown files and assets.
	OutputDir string `yaml:"output_dir"`

	// PathPrefix is stripped from doc paths when deriving slugs.
	PathPrefix string `yaml:"path_prefix"`

	// IndexTitle is the heading of the generated index.md.
	IndexTitle string `yaml:"index_title"`

	// DocPaths are the page paths to fetch, in output order.
	DocPaths []string `yaml:"doc_paths"`

	// RawURLs are verbatim file URLs fetched after the doc paths.
	RawURLs []RawURL `yaml:"raw_urls"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if p.OutputDir == "" {
		return Errorf(EINVALID, "profile %q: output directory required", p.Name)
	}
	if len(p.DocPaths) == 0 && len(p.RawURLs) == 0 {
		return Errorf(EINVALID, "profile %q: no doc paths or raw URLs", p.Name)
	}
	if len(p.DocPaths) > 0 {
		if p.BaseURL == "" {
			return Errorf(EINVALID, "profile %q: base URL required for doc paths", p.Name)
		}
		switch p.Parser {
		case ParserArticle, ParserGenerator, ParserGeneric:
		case ParserRaw, "":
			return Errorf(EINVALID, "profile %q: parser required for doc paths", p.Name)
		default:
			return Errorf(EINVALID, "profile %q: unknown parser %q", p.Name, p.Parser)
		}
	}
	for _, raw := range p.RawURLs {
		if raw.URL == "" || raw.Slug == "" {
			return Errorf(EINVALID, "profile %q: raw URLs require both url and slug", p.Name)
		}
		// Slugs become filenames inside the output directory; anything that
		// navigates the tree is a config error.
		if strings.ContainsAny(raw.Slug, `/\`) || strings.Contains(raw.Slug, "..") {
			return Errorf(EINVALID, "profile %q: raw slug %q must be a plain filename", p.Name, raw.Slug)
		}
	}
	return nil
}

// Targets builds the ordered list of fetch targets for the profile: doc
// paths first, then raw URLs. Slugs are not yet disambiguated; the
// orchestrator resolves collisions and reports them.
func (p *Profile) Targets() []FetchTarget {
	targets := make([]FetchTarget, 0, len(p.DocPaths)+len(p.RawURLs))
	for _, path := range p.DocPaths {
		targets = append(targets, FetchTarget{
			Kind:     TargetPage,
			Path:     path,
			Slug:     Slugify(path, p.PathPrefix),
			Position: len(targets),
		})
	}
	for _, raw := range p.RawURLs {
		targets = append(targets, FetchTarget{
			Kind:     TargetRaw,
			Path:     raw.URL,
			Slug:     raw.Slug + ".md",
			Position: len(targets),
		})
	}
	return targets
}

// ProfileStore supplies the configured Source Profiles.
// Implementations load profiles once; the core reads them only.
type ProfileStore interface {
	Profiles() ([]*Profile, error)
}
