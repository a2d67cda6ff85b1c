package goquery_test

import (
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts articleBody container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h1>Creating a cluster</h1>
			<div itemprop="articleBody">
				<p>Use the control panel.</p>
				<h2>Prerequisites</h2>
				<p>An account.</p>
			</div>
		</body></html>`

		extractor := goquery.NewArticleExtractor()
		got, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Creating a cluster", got.Title)
		assert.Contains(t, got.HTML, "Use the control panel.")
		assert.Contains(t, got.HTML, "<h2>Prerequisites</h2>")
		assert.False(t, got.HasH1)
	})

	t.Run("strips copy buttons and scripts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>T</h1><div itemprop="articleBody">
			<p>Content.</p>
			<div class="copyButton_x1">copy</div>
			<button>copy</button>
			<script>alert(1)</script>
			<style>.x{}</style>
		</div></body></html>`

		extractor := goquery.NewArticleExtractor()
		got, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, got.HTML, "copyButton")
		assert.NotContains(t, got.HTML, "<button>")
		assert.NotContains(t, got.HTML, "<script>")
		assert.NotContains(t, got.HTML, "<style>")
	})

	t.Run("strips feedback footer and everything after it", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>T</h1><div itemprop="articleBody">
			<p>Real content.</p>
			<h5>Была ли статья полезна?</h5>
			<div>Да / Нет</div>
		</div></body></html>`

		extractor := goquery.NewArticleExtractor()
		got, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, got.HTML, "Real content.")
		assert.NotContains(t, got.HTML, "полезна")
		assert.NotContains(t, got.HTML, "Да / Нет")
	})

	t.Run("drops tracking pixels", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>T</h1><div itemprop="articleBody">
			<p>Content.</p>
			<img src="/pixel.gif" width="1" height="1">
			<img src="/diagram.png" width="800" height="600">
		</div></body></html>`

		extractor := goquery.NewArticleExtractor()
		got, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, got.HTML, "pixel.gif")
		assert.Contains(t, got.HTML, "diagram.png")
	})

	t.Run("missing container", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewArticleExtractor()
		_, err := extractor.Extract(`<html><body><main><p>x</p></main></body></html>`)

		assert.Equal(t, docmirror.ENOTFOUND, docmirror.ErrorCode(err))
	})

	t.Run("container empty after cleaning", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>T</h1><div itemprop="articleBody">
			<script>x</script>
		</div></body></html>`

		extractor := goquery.NewArticleExtractor()
		_, err := extractor.Extract(html)

		assert.Equal(t, docmirror.ENOTFOUND, docmirror.ErrorCode(err))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewArticleExtractor()
		_, err := extractor.Extract("")

		assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
	})
}
