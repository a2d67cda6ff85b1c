package mirror_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/mirror"
	"github.com/fwojciec/docmirror/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okClient() *mock.Client {
	return &mock.Client{GetFn: func(ctx context.Context, url string) (*docmirror.Response, error) {
		return &docmirror.Response{StatusCode: 200, Body: []byte("img"), FinalURL: url}, nil
	}}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("names assets after the URL basename", func(t *testing.T) {
		t.Parallel()
		fsys := newMemFS()
		r := mirror.NewResolver(okClient(), fsys, "out", nil, fastRetry)

		mapping, failed := r.Resolve(context.Background(), []string{"https://example.com/img/diagram.png"})
		require.Empty(t, failed)
		assert.Equal(t, "images/diagram.png", mapping["https://example.com/img/diagram.png"])
		assert.True(t, fsys.Exists("out/images/diagram.png"))
		assert.Equal(t, 1, r.Downloaded())
	})

	t.Run("extensionless URLs get a hashed name", func(t *testing.T) {
		t.Parallel()
		fsys := newMemFS()
		r := mirror.NewResolver(okClient(), fsys, "out", nil, fastRetry)

		mapping, failed := r.Resolve(context.Background(), []string{"https://example.com/asset/42"})
		require.Empty(t, failed)
		name := mapping["https://example.com/asset/42"]
		assert.True(t, strings.HasPrefix(name, "images/"))
		assert.True(t, strings.HasSuffix(name, ".png"))
		assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(name, "images/"), ".png"), 12)
	})

	t.Run("same basename from different URLs stays distinct", func(t *testing.T) {
		t.Parallel()
		fsys := newMemFS()
		r := mirror.NewResolver(okClient(), fsys, "out", nil, fastRetry)

		urls := []string{
			"https://example.com/a/shot.png",
			"https://example.com/b/shot.png",
		}
		mapping, failed := r.Resolve(context.Background(), urls)
		require.Empty(t, failed)
		assert.NotEqual(t, mapping[urls[0]], mapping[urls[1]])
		assert.Equal(t, 2, r.Downloaded())
	})

	t.Run("duplicate URL downloads once", func(t *testing.T) {
		t.Parallel()
		var fetches atomic.Int64
		client := &mock.Client{GetFn: func(ctx context.Context, url string) (*docmirror.Response, error) {
			fetches.Add(1)
			return &docmirror.Response{StatusCode: 200, Body: []byte("img"), FinalURL: url}, nil
		}}
		r := mirror.NewResolver(client, newMemFS(), "out", nil, fastRetry)

		const u = "https://example.com/logo.svg"
		m1, _ := r.Resolve(context.Background(), []string{u})
		m2, _ := r.Resolve(context.Background(), []string{u})
		assert.Equal(t, m1[u], m2[u])
		assert.Equal(t, int64(1), fetches.Load())
	})

	t.Run("tracks every asset with its download state", func(t *testing.T) {
		t.Parallel()
		client := &mock.Client{GetFn: func(ctx context.Context, url string) (*docmirror.Response, error) {
			if strings.Contains(url, "gone") {
				return &docmirror.Response{StatusCode: 404, FinalURL: url}, nil
			}
			return &docmirror.Response{StatusCode: 200, Body: []byte("img"), FinalURL: url}, nil
		}}
		r := mirror.NewResolver(client, newMemFS(), "out", nil, fastRetry)

		r.Resolve(context.Background(), []string{
			"https://example.com/img/ok.png",
			"https://example.com/img/gone.png",
		})

		assets := r.Assets()
		require.Len(t, assets, 2)
		assert.Equal(t, "https://example.com/img/gone.png", assets[0].URL)
		assert.False(t, assets[0].Downloaded)
		assert.Equal(t, "https://example.com/img/ok.png", assets[1].URL)
		assert.Equal(t, "ok.png", assets[1].Filename)
		assert.True(t, assets[1].Downloaded)
	})

	t.Run("failed URL is not retried within the run", func(t *testing.T) {
		t.Parallel()
		var fetches atomic.Int64
		client := &mock.Client{GetFn: func(ctx context.Context, url string) (*docmirror.Response, error) {
			fetches.Add(1)
			return &docmirror.Response{StatusCode: 404, FinalURL: url}, nil
		}}
		r := mirror.NewResolver(client, newMemFS(), "out", nil, fastRetry)

		const u = "https://example.com/gone.png"
		_, failed := r.Resolve(context.Background(), []string{u})
		require.Contains(t, failed, u)
		_, failed = r.Resolve(context.Background(), []string{u})
		require.Contains(t, failed, u)
		assert.Equal(t, int64(1), fetches.Load())
		assert.Equal(t, 0, r.Downloaded())
	})
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("enforces per-domain spacing", func(t *testing.T) {
		t.Parallel()
		limiter := mirror.NewDomainLimiter(50) // 20ms between requests
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "example.com"))
		require.NoError(t, limiter.Wait(ctx, "example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	})

	t.Run("different domains do not share a bucket", func(t *testing.T) {
		t.Parallel()
		limiter := mirror.NewDomainLimiter(1)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "a.example.com"))
		require.NoError(t, limiter.Wait(ctx, "b.example.com"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()
		limiter := mirror.NewDomainLimiter(0.001)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		require.NoError(t, limiter.Wait(context.Background(), "slow.example.com"))
		assert.Error(t, limiter.Wait(ctx, "slow.example.com"))
	})
}
