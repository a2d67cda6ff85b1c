package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docmirror.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docmirror.Content, error)
}

func (e *Extractor) Extract(html string) (*docmirror.Content, error) {
	return e.ExtractFn(html)
}
