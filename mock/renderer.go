package mock

import "github.com/fwojciec/docmirror"

var _ docmirror.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docmirror.Renderer.
type Renderer struct {
	RenderFn func(content *docmirror.Content) (string, error)
}

func (r *Renderer) Render(content *docmirror.Content) (string, error) {
	return r.RenderFn(content)
}
