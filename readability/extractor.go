// Package readability provides a generic content extractor for sites that
// no site-family specific extractor recognizes.
package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docmirror.Extractor at compile time.
var _ docmirror.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docmirror.Content, error) {
	if rawHTML == "" {
		return nil, docmirror.Errorf(docmirror.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "readability extraction failed: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "content container empty after cleaning")
	}

	return &docmirror.Content{
		Title: article.Title,
		HTML:  article.Content,
		HasH1: hasH1(article.Content),
	}, nil
}

// hasH1 reports whether the extracted content keeps a top-level heading.
// Readability usually promotes the page title out of the content, in which
// case the renderer shifts heading levels up by one.
func hasH1(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find("h1").Length() > 0
}
