package docmirror_test

import (
	"testing"

	"github.com/fwojciec/docmirror"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		prefix string
		want   string
	}{
		{"strips matching prefix", "/docs/k8s/helm", "/docs", "k8s-helm.md"},
		{"no prefix", "/self-hosting/configuration", "", "self-hosting-configuration.md"},
		{"deep path", "/docs/k8s/addons/nginx-ingress", "/docs/k8s", "addons-nginx-ingress.md"},
		{"prefix equals path", "/docs/k8s", "/docs/k8s", "k8s.md"},
		{"root path no prefix", "/", "", "index.md"},
		{"lowercases", "/Docs/API", "", "docs-api.md"},
		{"unsafe characters", "/docs/a b?c", "", "docs-a-b-c.md"},
		{"collapses separator runs", "/docs//guide", "", "docs-guide.md"},
		{"keeps dots and underscores", "/docs/v1.2_beta", "", "docs-v1.2_beta.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docmirror.Slugify(tt.path, tt.prefix))
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	t.Parallel()

	first := docmirror.Slugify("/docs/k8s/helm", "/docs")
	second := docmirror.Slugify("/docs/k8s/helm", "/docs")

	assert.Equal(t, first, second)
}
