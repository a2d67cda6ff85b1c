package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
)

var _ docmirror.ImageScanner = (*ImageScanner)(nil)

// ImageScanner discovers and rewrites image references in content HTML.
type ImageScanner struct{}

// NewImageScanner creates a new ImageScanner.
func NewImageScanner() *ImageScanner {
	return &ImageScanner{}
}

// Scan returns the image URLs referenced by the content, resolved against
// baseURL, deduplicated, in document order.
func (s *ImageScanner) Scan(html, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var urls []string
	doc.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		resolved := resolveImageURL(base, img.AttrOr("src", ""))
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		urls = append(urls, resolved)
	})

	return urls, nil
}

// Rewrite replaces image src attributes whose resolved URL appears in
// mapping with the mapped local path. The srcset attribute is dropped on
// rewritten images so markdown conversion uses the local reference.
func (s *ImageScanner) Rewrite(html, baseURL string, mapping map[string]string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", docmirror.Errorf(docmirror.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := parse(html)
	if err != nil {
		return "", err
	}

	doc.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		resolved := resolveImageURL(base, img.AttrOr("src", ""))
		local, ok := mapping[resolved]
		if !ok {
			return
		}
		img.SetAttr("src", local)
		img.RemoveAttr("srcset")
	})

	return doc.Find("body").Html()
}

// resolveImageURL resolves an image src against the page URL. Returns the
// empty string for unusable references (data URIs, unparsable values).
func resolveImageURL(base *url.URL, src string) string {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "data:") {
		return ""
	}
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
