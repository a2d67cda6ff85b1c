package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.ImageScanner = (*ImageScanner)(nil)

// ImageScanner is a mock implementation of docmirror.ImageScanner.
type ImageScanner struct {
	ScanFn    func(html, baseURL string) ([]string, error)
	RewriteFn func(html, baseURL string, mapping map[string]string) (string, error)
}

func (s *ImageScanner) Scan(html, baseURL string) ([]string, error) {
	return s.ScanFn(html, baseURL)
}

func (s *ImageScanner) Rewrite(html, baseURL string, mapping map[string]string) (string, error) {
	return s.RewriteFn(html, baseURL, mapping)
}
