package docmirror

import "strings"

// Slugify derives a filesystem-safe output filename from a URL path.
// The prefix is stripped when present, remaining path separators and unsafe
// characters become single hyphens, the result is lowercased and suffixed
// with ".md". Deterministic: the same (path, prefix) always yields the same
// slug.
//
//	Slugify("/docs/k8s/helm", "/docs") == "k8s-helm.md"
func Slugify(path, prefix string) string {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")

	if rest == "" {
		// Root page: fall back to the last prefix segment, or the path
		// itself when there is no prefix.
		fallback := strings.Trim(prefix, "/")
		if fallback == "" {
			fallback = strings.Trim(path, "/")
		}
		if i := strings.LastIndex(fallback, "/"); i >= 0 {
			fallback = fallback[i+1:]
		}
		if fallback == "" {
			fallback = "index"
		}
		rest = fallback
	}

	slug := sanitizeSlug(rest)
	if slug == "" {
		slug = "index"
	}
	return slug + ".md"
}

// sanitizeSlug lowercases s and maps separators and unsafe runes to single
// hyphens, collapsing runs.
func sanitizeSlug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range strings.ToLower(s) {
		safe := r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '.' || r == '_'
		switch {
		case safe:
			b.WriteRune(r)
			lastHyphen = false
		case lastHyphen:
			// collapse runs
		default:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
