package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	render := func(t *testing.T, content *docmirror.Content) string {
		t.Helper()
		r := htmltomarkdown.NewRenderer()
		out, err := r.Render(content)
		require.NoError(t, err)
		return out
	}

	t.Run("converts basic HTML", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<h1>Title</h1><p>Some <strong>bold</strong> text.</p>",
			HasH1: true,
		})
		assert.Contains(t, out, "# Title")
		assert.Contains(t, out, "**bold**")
	})

	t.Run("fenced code block keeps language hint", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  `<pre><code class="language-yaml">key: value</code></pre>`,
			HasH1: true,
		})
		assert.Contains(t, out, "```yaml\nkey: value\n```")
	})

	t.Run("data-language attribute becomes a fence hint", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  `<pre data-language="go"><code>fmt.Println("hi")</code></pre>`,
			HasH1: true,
		})
		assert.Contains(t, out, "```go")
	})

	t.Run("inline code containing backticks widens the span", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<p>Use <code>a `b` c</code> here.</p>",
			HasH1: true,
		})
		assert.Contains(t, out, "``a `b` c``")
	})

	t.Run("code containing backticks gets a wider fence", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<pre><code>run ```inline``` fences</code></pre>",
			HasH1: true,
		})
		assert.Contains(t, out, "````")
	})

	t.Run("headings shift up when content has no h1", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<h2>Section</h2><p>Body.</p><h3>Subsection</h3>",
			HasH1: false,
		})
		assert.Contains(t, out, "# Section")
		assert.Contains(t, out, "## Subsection")
	})

	t.Run("headings stay put when content has an h1", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<h1>Page</h1><h2>Section</h2>",
			HasH1: true,
		})
		assert.Contains(t, out, "# Page")
		assert.Contains(t, out, "## Section")
	})

	t.Run("duplicated page title collapses to one heading", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<h1>Deploying</h1><h1>Deploying</h1><p>Body.</p>",
			HasH1: true,
		})
		assert.Equal(t, 1, strings.Count(out, "# Deploying"))
	})

	t.Run("distinct h1 headings are kept", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<h1>One</h1><p>a</p><h1>Two</h1>",
			HasH1: true,
		})
		assert.Contains(t, out, "# One")
		assert.Contains(t, out, "# Two")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<table><thead><tr><th>Name</th><th>Value</th></tr></thead><tbody><tr><td>a</td><td>1</td></tr></tbody></table>",
			HasH1: true,
		})
		assert.Contains(t, out, "| Name | Value |")
		assert.Contains(t, out, "| a | 1 |")
	})

	t.Run("collapses runs of blank lines", func(t *testing.T) {
		t.Parallel()
		out := render(t, &docmirror.Content{
			HTML:  "<p>One</p><div></div><div></div><div></div><p>Two</p>",
			HasH1: true,
		})
		assert.NotContains(t, out, "\n\n\n")
		assert.True(t, strings.HasSuffix(out, "\n"))
		assert.False(t, strings.HasSuffix(out, "\n\n"))
	})

	t.Run("empty content returns EINVALID", func(t *testing.T) {
		t.Parallel()
		r := htmltomarkdown.NewRenderer()
		_, err := r.Render(&docmirror.Content{HTML: "   "})
		require.Error(t, err)
		assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))

		_, err = r.Render(nil)
		require.Error(t, err)
		assert.Equal(t, docmirror.EINVALID, docmirror.ErrorCode(err))
	})
}
