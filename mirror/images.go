package mirror

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docmirror"
)

// assetSubdir is the per-profile directory that receives downloaded images,
// relative to the profile's output directory.
const assetSubdir = "images"

// assetEntry tracks one remote image for the duration of a profile run.
// The once gate guarantees a URL is downloaded at most one time even when
// multiple pages reference it concurrently.
type assetEntry struct {
	once  sync.Once
	asset docmirror.ImageAsset
	err   error
}

// Resolver downloads image assets referenced by pages and assigns them
// stable local filenames. A Resolver is scoped to one profile run.
type Resolver struct {
	client    docmirror.Client
	fs        docmirror.FS
	outputDir string
	limiter   *DomainLimiter
	retry     RetryConfig

	mu         sync.Mutex
	entries    map[string]*assetEntry
	names      map[string]bool
	downloaded atomic.Int64
}

// NewResolver creates a Resolver that writes assets under
// outputDir/images.
func NewResolver(client docmirror.Client, fsys docmirror.FS, outputDir string, limiter *DomainLimiter, retry RetryConfig) *Resolver {
	return &Resolver{
		client:    client,
		fs:        fsys,
		outputDir: outputDir,
		limiter:   limiter,
		retry:     retry,
		entries:   make(map[string]*assetEntry),
		names:     make(map[string]bool),
	}
}

// Resolve downloads the given image URLs and returns a mapping from remote
// URL to the local path a page should reference (relative to the page's own
// directory). URLs that fail to download are reported in failed and left
// out of the mapping; a previously failed URL is not retried within the run.
func (r *Resolver) Resolve(ctx context.Context, urls []string) (mapping map[string]string, failed map[string]error) {
	mapping = make(map[string]string)
	failed = make(map[string]error)

	for _, u := range urls {
		entry := r.reserve(u)
		entry.once.Do(func() {
			entry.err = r.download(ctx, u, entry.asset.Filename)
			entry.asset.Downloaded = entry.err == nil
		})
		if entry.err != nil {
			failed[u] = entry.err
			continue
		}
		mapping[u] = path.Join(assetSubdir, entry.asset.Filename)
	}

	return mapping, failed
}

// Downloaded returns the number of assets persisted so far.
func (r *Resolver) Downloaded() int {
	return int(r.downloaded.Load())
}

// Assets returns the state of every asset seen during the run, sorted by
// URL. Call after the run completes; download state is settled only once
// all workers have finished.
func (r *Resolver) Assets() []docmirror.ImageAsset {
	r.mu.Lock()
	defer r.mu.Unlock()
	assets := make([]docmirror.ImageAsset, 0, len(r.entries))
	for _, e := range r.entries {
		assets = append(assets, e.asset)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].URL < assets[j].URL })
	return assets
}

// reserve returns the entry for a URL, creating it with a unique filename
// on first sight. The check-and-reserve happens under one lock so two pages
// can never claim the same filename.
func (r *Resolver) reserve(u string) *assetEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[u]; ok {
		return entry
	}

	name := assetName(u)
	if r.names[name] {
		// Same basename from a different URL. Prefix with a hash of the
		// full URL to keep both.
		name = fmt.Sprintf("%s-%s", urlHash(u), name)
	}
	r.names[name] = true

	entry := &assetEntry{asset: docmirror.ImageAsset{URL: u, Filename: name}}
	r.entries[u] = entry
	return entry
}

func (r *Resolver) download(ctx context.Context, u, filename string) error {
	if r.limiter != nil {
		parsed, err := url.Parse(u)
		if err != nil {
			return docmirror.Errorf(docmirror.EINVALID, "invalid image URL %s: %v", u, err)
		}
		if err := r.limiter.Wait(ctx, parsed.Host); err != nil {
			return err
		}
	}

	body, err := retryValue(ctx, r.retry, func() ([]byte, error) {
		resp, err := r.client.Get(ctx, u)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &docmirror.StatusError{URL: u, StatusCode: resp.StatusCode}
		}
		return resp.Body, nil
	})
	if err != nil {
		return err
	}

	if err := r.fs.WriteFile(path.Join(r.outputDir, assetSubdir, filename), body); err != nil {
		return err
	}
	r.downloaded.Add(1)
	return nil
}

// assetName derives a local filename from an image URL: the URL path
// basename, sanitized. URLs without a usable basename or extension fall
// back to a hash of the URL.
func assetName(u string) string {
	base := ""
	if parsed, err := url.Parse(u); err == nil {
		base = path.Base(parsed.Path)
	}
	base = sanitizeFilename(base)

	if base == "" || base == "." || !strings.Contains(base, ".") {
		return urlHash(u) + ".png"
	}
	return base
}

// sanitizeFilename keeps letters, digits, dots, hyphens, and underscores.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ".")
}

// urlHash returns a short stable hash of a URL for filename use.
func urlHash(u string) string {
	return fmt.Sprintf("%012x", xxhash.Sum64String(u))[:12]
}
