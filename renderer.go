package docmirror

// Renderer converts extracted content into Markdown text. Code fences keep
// their language hints and verbatim whitespace; heading levels are preserved
// 1:1 unless the content lost its top-level heading to page chrome, in which
// case every heading shifts up exactly one level (never above level 1).
type Renderer interface {
	Render(content *Content) (string, error)
}
