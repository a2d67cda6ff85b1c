package mirror

import (
	"strings"

	"github.com/fwojciec/docmirror"
)

// BuildIndex renders the index.md contents for a profile run: a title, one
// link per successfully mirrored page in configured order, and a trailing
// section listing anything that could not be downloaded.
func BuildIndex(title string, results []docmirror.PageResult) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, res := range results {
		if res.Status != docmirror.StatusSuccess {
			continue
		}
		label := res.Title
		if label == "" {
			label = strings.TrimSuffix(res.Slug, ".md")
		}
		b.WriteString("- [")
		b.WriteString(label)
		b.WriteString("](")
		b.WriteString(res.Slug)
		b.WriteString(")\n")
	}

	var failed []docmirror.PageResult
	for _, res := range results {
		if res.Status == docmirror.StatusFailed {
			failed = append(failed, res)
		}
	}
	if len(failed) > 0 {
		b.WriteString("\n## Not downloaded\n\n")
		for _, res := range failed {
			b.WriteString("- ")
			b.WriteString(res.Path)
			if res.Err != "" {
				b.WriteString(" (")
				b.WriteString(res.Err)
				b.WriteString(")")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
