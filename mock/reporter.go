package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of docmirror.Reporter. Nil callbacks
// are ignored so tests only wire the events they care about.
type Reporter struct {
	PageDoneFn      func(result *docmirror.PageResult)
	AssetWarningFn  func(slug, url string, err error)
	SlugCollisionFn func(slug, resolved string)
	BatchDoneFn     func(summary *docmirror.Summary)
}

func (r *Reporter) PageDone(result *docmirror.PageResult) {
	if r.PageDoneFn != nil {
		r.PageDoneFn(result)
	}
}

func (r *Reporter) AssetWarning(slug, url string, err error) {
	if r.AssetWarningFn != nil {
		r.AssetWarningFn(slug, url, err)
	}
}

func (r *Reporter) SlugCollision(slug, resolved string) {
	if r.SlugCollisionFn != nil {
		r.SlugCollisionFn(slug, resolved)
	}
}

func (r *Reporter) BatchDone(summary *docmirror.Summary) {
	if r.BatchDoneFn != nil {
		r.BatchDoneFn(summary)
	}
}
