package docmirror_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docmirror.Errorf(docmirror.ENOTFOUND, "profile %q not found", "test")

	assert.Equal(t, docmirror.ENOTFOUND, docmirror.ErrorCode(err))
	assert.Equal(t, "profile \"test\" not found", docmirror.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docmirror.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docmirror.EINTERNAL, docmirror.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docmirror.ErrorMessage(nil))
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transport error", errors.New("connection reset"), true},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"http 500", &docmirror.StatusError{URL: "http://x", StatusCode: 500}, true},
		{"http 503", &docmirror.StatusError{URL: "http://x", StatusCode: 503}, true},
		{"http 429", &docmirror.StatusError{URL: "http://x", StatusCode: 429}, true},
		{"http 404", &docmirror.StatusError{URL: "http://x", StatusCode: 404}, false},
		{"http 403", &docmirror.StatusError{URL: "http://x", StatusCode: 403}, false},
		{"extraction not found", docmirror.Errorf(docmirror.ENOTFOUND, "no container"), false},
		{"unavailable", docmirror.Errorf(docmirror.EUNAVAILABLE, "down"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docmirror.Retryable(tt.err))
		})
	}
}

func TestStatusError_Error(t *testing.T) {
	t.Parallel()

	err := &docmirror.StatusError{URL: "https://example.com/docs/a", StatusCode: 404}

	assert.Equal(t, "HTTP 404 for https://example.com/docs/a", err.Error())
}
