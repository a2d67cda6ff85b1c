// Package http provides an HTTP-based implementation of docmirror.Client
// for fetching pages and image assets from documentation sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docmirror"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies requests as coming from a regular browser.
// Some documentation hosts serve stripped-down pages to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Ensure Client implements docmirror.Client at compile time.
var _ docmirror.Client = (*Client)(nil)

// Client retrieves content from URLs using HTTP requests. It does not
// execute JavaScript and is suitable for static sites only.
type Client struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new HTTP-based Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Get retrieves the content at the given URL. Non-2xx responses are not
// errors; callers inspect the status code to decide how to proceed.
func (c *Client) Get(ctx context.Context, url string) (*docmirror.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &docmirror.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		FinalURL:   resp.Request.URL.String(),
	}, nil
}
