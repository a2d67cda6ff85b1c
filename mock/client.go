package mock

import (
	"context"

	"github.com/fwojciec/docmirror"
)

var _ docmirror.Client = (*Client)(nil)

// Client is a mock implementation of docmirror.Client.
type Client struct {
	GetFn func(ctx context.Context, url string) (*docmirror.Response, error)
}

func (c *Client) Get(ctx context.Context, url string) (*docmirror.Response, error) {
	return c.GetFn(ctx, url)
}
