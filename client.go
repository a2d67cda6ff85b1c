package docmirror

import "context"

// Response is the result of a successful HTTP exchange. The status code may
// still indicate failure; callers decide how to treat non-2xx responses.
type Response struct {
	StatusCode int
	Body       []byte

	// FinalURL is the effective URL after redirects, used to resolve
	// relative image references.
	FinalURL string
}

// Client retrieves resources over HTTP. Implementations own connection
// pooling, headers, and timeouts; errors are returned only for transport
// failures, never for HTTP status codes.
type Client interface {
	Get(ctx context.Context, url string) (*Response, error)
}
