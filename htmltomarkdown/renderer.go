package htmltomarkdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
	"golang.org/x/net/html"
)

// Ensure Renderer implements docmirror.Renderer at compile time.
var _ docmirror.Renderer = (*Renderer)(nil)

// Renderer wraps html-to-markdown to render extracted content as Markdown.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// Render transforms extracted content into Markdown. When the content has
// no h1 of its own, heading levels shift up by one so the document reads
// correctly under the title emitted by the writer.
func (r *Renderer) Render(content *docmirror.Content) (string, error) {
	if content == nil || strings.TrimSpace(content.HTML) == "" {
		return "", docmirror.Errorf(docmirror.EINVALID, "empty content")
	}

	src, err := prepare(content.HTML, !content.HasH1)
	if err != nil {
		return "", err
	}

	result, err := r.conv.ConvertString(src)
	if err != nil {
		return "", err
	}

	result = blankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result) + "\n", nil
}

// prepare runs HTML-level passes the converter cannot do on its own:
// normalizing code block language hints and shifting heading levels.
func prepare(rawHTML string, shiftHeadings bool) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", docmirror.Errorf(docmirror.EINVALID, "parse HTML: %v", err)
	}

	dedupeTitle(doc)
	normalizeLangHints(doc)
	if shiftHeadings {
		promoteHeadings(doc)
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", docmirror.Errorf(docmirror.EINTERNAL, "serialize HTML: %v", err)
	}
	return out, nil
}

// dedupeTitle collapses a duplicated page title: some generators render the
// title twice as consecutive h1 elements. When the first two h1s carry the
// same text the first one is dropped.
func dedupeTitle(doc *goquery.Document) {
	h1s := doc.Find("h1")
	if h1s.Length() < 2 {
		return
	}
	first := h1s.Eq(0)
	if strings.TrimSpace(first.Text()) == strings.TrimSpace(h1s.Eq(1).Text()) {
		first.Remove()
	}
}

// normalizeLangHints rewrites data-language and data-lang attributes into
// the language- class convention the commonmark plugin recognizes.
func normalizeLangHints(doc *goquery.Document) {
	doc.Find("pre, code").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.AttrOr("class", ""), "language-") {
			return
		}
		lang := s.AttrOr("data-language", s.AttrOr("data-lang", ""))
		if lang == "" {
			return
		}
		class := strings.TrimSpace(s.AttrOr("class", "") + " language-" + lang)
		s.SetAttr("class", class)
	})
}

// promoteHeadings shifts every heading up one level, clamping at h1.
// Levels go in ascending order so an h2 never collides with a freshly
// renamed h3.
func promoteHeadings(doc *goquery.Document) {
	for level := 2; level <= 6; level++ {
		doc.Find("h" + strconv.Itoa(level)).Each(func(_ int, s *goquery.Selection) {
			for _, node := range s.Nodes {
				if node.Type == html.ElementNode {
					node.Data = "h" + strconv.Itoa(level-1)
				}
			}
		})
	}
}
