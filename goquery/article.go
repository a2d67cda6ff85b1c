package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
)

var _ docmirror.Extractor = (*ArticleExtractor)(nil)

// feedbackPattern matches "was this article helpful" footers (the sites
// this parser targets publish in Russian and English).
var feedbackPattern = regexp.MustCompile(`(?i)была ли статья полезна|was this (article|page) helpful`)

// ArticleExtractor extracts content from sites that mark their
// documentation body with schema.org structured data
// (itemprop="articleBody"). The page title lives in an <h1> outside the
// container, so extracted content never carries its own top-level heading.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// Extract processes raw HTML and returns the cleaned content.
func (e *ArticleExtractor) Extract(html string) (*docmirror.Content, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	container := doc.Find("[itemprop='articleBody']").First()
	if container.Length() == 0 {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "articleBody container not found")
	}

	removeAll(container,
		"script", "style", "svg", "noscript",
		"div[class*='copyButton']",
		"div[class*='qr']",
		"button",
	)
	removeFeedbackSections(container)
	removeTinyImages(container)

	return content(doc, container)
}

// removeFeedbackSections drops "was this article helpful" widgets together
// with everything that follows them: these footers trail the real content.
func removeFeedbackSections(container *goquery.Selection) {
	container.Find("h1,h2,h3,h4,h5,h6").Each(func(_ int, heading *goquery.Selection) {
		if feedbackPattern.MatchString(heading.Text()) {
			heading.NextAll().Remove()
			heading.Remove()
		}
	})
	container.Find("section").Each(func(_ int, section *goquery.Selection) {
		if feedbackPattern.MatchString(section.Text()) {
			section.Remove()
		}
	})
}
