// Package goquery provides CSS-selector based content extractors and image
// reference handling for documentation pages.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docmirror"
)

// removeAll removes every element matching the selectors from s.
func removeAll(s *goquery.Selection, selectors ...string) {
	for _, selector := range selectors {
		s.Find(selector).Remove()
	}
}

// removeTinyImages drops images with explicit dimensions of 100x100 or
// smaller. These are icons and tracking pixels, not documentation content.
func removeTinyImages(s *goquery.Selection) {
	s.Find("img[width][height]").Each(func(_ int, img *goquery.Selection) {
		w, werr := strconv.Atoi(img.AttrOr("width", ""))
		h, herr := strconv.Atoi(img.AttrOr("height", ""))
		if werr == nil && herr == nil && w <= 100 && h <= 100 {
			img.Remove()
		}
	})
}

// pageTitle returns the text of the first h1 on the page, falling back to
// the <title> element.
func pageTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// content serializes a cleaned container into a docmirror.Content, failing
// with ENOTFOUND when nothing meaningful survived the cleaning pass. An
// empty container is almost always a cleaning bug and is reported rather
// than written as a blank page.
func content(doc *goquery.Document, container *goquery.Selection) (*docmirror.Content, error) {
	if strings.TrimSpace(container.Text()) == "" && container.Find("img").Length() == 0 {
		return nil, docmirror.Errorf(docmirror.ENOTFOUND, "content container empty after cleaning")
	}

	html, err := goquery.OuterHtml(container)
	if err != nil {
		return nil, err
	}

	return &docmirror.Content{
		Title: pageTitle(doc),
		HTML:  html,
		HasH1: container.Find("h1").Length() > 0,
	}, nil
}

func parse(html string) (*goquery.Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, docmirror.Errorf(docmirror.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docmirror.Errorf(docmirror.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
