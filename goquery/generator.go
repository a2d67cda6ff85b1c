package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
)

var _ docmirror.Extractor = (*GeneratorExtractor)(nil)

var editLinkPattern = regexp.MustCompile(`(?i)edit this page|редактировать`)

// GeneratorExtractor extracts content from documentation-generator sites
// (Docusaurus and similar layouts). It locates the content container by
// trying <article>, then <main>, then the generator's main-content class,
// and strips the chrome these generators render inside it: breadcrumbs,
// prev/next pagination, edit links, duplicated table-of-contents blocks,
// heading anchor links, and copy buttons.
type GeneratorExtractor struct{}

// NewGeneratorExtractor creates a new GeneratorExtractor.
func NewGeneratorExtractor() *GeneratorExtractor {
	return &GeneratorExtractor{}
}

// Extract processes raw HTML and returns the cleaned content.
func (e *GeneratorExtractor) Extract(html string) (*docmirror.Content, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	container := doc.Find("article").First()
	if container.Length() == 0 {
		container = doc.Find("main").First()
	}
	if container.Length() == 0 {
		container = doc.Find("div[class*='docMainContainer']").First()
	}
	if container.Length() == 0 {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "content container not found")
	}

	removeAll(container,
		"script", "style", "svg", "noscript",
		"nav[aria-label='Breadcrumbs']", ".breadcrumbs",
		"nav[class*='pagination']",
		"a[class*='editThisPage']",
		"div[class*='tableOfContents']",
		"a.hash-link", "a[aria-hidden='true']",
		"button",
		"footer",
	)
	removeEditLinks(container)
	removeOnThisPage(container)
	removeTinyImages(container)

	return content(doc, container)
}

// removeEditLinks drops "edit this page" anchors found by link text, along
// with their wrapping div or footer.
func removeEditLinks(container *goquery.Selection) {
	container.Find("a").Each(func(_ int, a *goquery.Selection) {
		if !editLinkPattern.MatchString(a.Text()) {
			return
		}
		parent := a.Parent()
		if goquery.NodeName(parent) == "div" || goquery.NodeName(parent) == "footer" {
			parent.Remove()
			return
		}
		a.Remove()
	})
}

// removeOnThisPage drops "On this page" TOC labels duplicated into the
// content container from page chrome.
func removeOnThisPage(container *goquery.Selection) {
	container.Find("div,span,aside,li").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "On this page" {
			s.Remove()
		}
	})
}
