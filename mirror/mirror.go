// Package mirror orchestrates batch fetching of documentation sites.
// It coordinates fetching, extraction, image resolution, rendering, and
// storage of documentation pages, then generates a per-profile index.
package mirror

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docmirror"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the worker pool when the caller sets none.
const DefaultConcurrency = 4

// Orchestrator runs batch fetches for source profiles. One page failing
// never aborts the batch; failures are recorded and surface in the summary
// and the generated index.
type Orchestrator struct {
	Client      docmirror.Client
	Registry    *docmirror.Registry
	Scanner     docmirror.ImageScanner
	FS          docmirror.FS
	Reporter    docmirror.Reporter
	Limiter     *DomainLimiter
	Concurrency int
	Retry       RetryConfig

	// Now supplies the crawl date stamped into frontmatter.
	// Defaults to time.Now.
	Now func() time.Time
}

// outcome holds the result of processing a single target plus the asset
// warnings raised along the way. Reporter callbacks happen on the
// collecting goroutine, not in workers.
type outcome struct {
	position int
	result   docmirror.PageResult
	warnings []assetWarning
}

type assetWarning struct {
	slug string
	url  string
	err  error
}

// Run executes one profile's batch: every configured doc path and raw URL,
// then the index. Configuration problems fail fast before any network
// traffic; per-page failures are collected into the returned summary.
func (o *Orchestrator) Run(ctx context.Context, profile *docmirror.Profile) (*docmirror.Summary, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if len(profile.DocPaths) > 0 {
		if _, ok := o.Registry.Get(profile.Parser); !ok {
			return nil, docmirror.Errorf(docmirror.EINVALID, "profile %q: no pipeline registered for parser %q", profile.Name, profile.Parser)
		}
	}

	summary := &docmirror.Summary{
		RunID:   uuid.New().String(),
		Profile: profile.Name,
	}

	targets := profile.Targets()
	summary.Total = len(targets)
	summary.Warnings += o.resolveSlugs(targets)

	if err := o.FS.MkdirAll(profile.OutputDir); err != nil {
		return nil, err
	}

	resolver := NewResolver(o.Client, o.FS, profile.OutputDir, o.Limiter, o.retryConfig())

	concurrency := o.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomeCh := make(chan outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, target := range targets {
			target := target
			g.Go(func() error {
				outcomeCh <- o.processTarget(gctx, profile, target, resolver)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	results := make([]docmirror.PageResult, len(targets))
	for out := range outcomeCh {
		results[out.position] = out.result

		for _, w := range out.warnings {
			summary.Warnings++
			if o.Reporter != nil {
				o.Reporter.AssetWarning(w.slug, w.url, w.err)
			}
		}
		if o.Reporter != nil {
			o.Reporter.PageDone(&out.result)
		}
	}

	for _, res := range results {
		switch res.Status {
		case docmirror.StatusSuccess:
			summary.Succeeded++
		case docmirror.StatusFailed:
			summary.Failed++
			summary.Failures = append(summary.Failures, docmirror.Failure{
				Path:   res.Path,
				Reason: res.Err,
			})
		}
	}

	summary.AssetsDownloaded = resolver.Downloaded()

	index := BuildIndex(o.indexTitle(profile), results)
	if err := o.FS.WriteFile(path.Join(profile.OutputDir, "index.md"), []byte(index)); err != nil {
		return nil, err
	}

	if o.Reporter != nil {
		o.Reporter.BatchDone(summary)
	}

	return summary, nil
}

// resolveSlugs disambiguates duplicate slugs with a numeric suffix, in
// configured order, and returns the number of collisions.
func (o *Orchestrator) resolveSlugs(targets []docmirror.FetchTarget) int {
	used := make(map[string]bool, len(targets))
	var collisions int
	for i := range targets {
		slug := targets[i].Slug
		if used[slug] {
			base := strings.TrimSuffix(slug, ".md")
			resolved := slug
			for n := 2; used[resolved]; n++ {
				resolved = fmt.Sprintf("%s-%d.md", base, n)
			}
			collisions++
			if o.Reporter != nil {
				o.Reporter.SlugCollision(slug, resolved)
			}
			targets[i].Slug = resolved
		}
		used[targets[i].Slug] = true
	}
	return collisions
}

func (o *Orchestrator) processTarget(ctx context.Context, profile *docmirror.Profile, target docmirror.FetchTarget, resolver *Resolver) outcome {
	out := outcome{
		position: target.Position,
		result: docmirror.PageResult{
			Slug: target.Slug,
			Path: target.Path,
		},
	}

	var err error
	switch target.Kind {
	case docmirror.TargetRaw:
		err = o.processRaw(ctx, profile, target, &out)
	default:
		err = o.processPage(ctx, profile, target, resolver, &out)
	}

	if err != nil {
		out.result.Status = docmirror.StatusFailed
		out.result.Err = err.Error()
		return out
	}

	out.result.Status = docmirror.StatusSuccess
	out.result.OutputPath = path.Join(profile.OutputDir, target.Slug)
	return out
}

func (o *Orchestrator) processPage(ctx context.Context, profile *docmirror.Profile, target docmirror.FetchTarget, resolver *Resolver, out *outcome) error {
	pipeline, _ := o.Registry.Get(profile.Parser)

	resp, err := o.fetch(ctx, target.URL(profile.BaseURL))
	if err != nil {
		return err
	}

	content, err := pipeline.Extractor.Extract(string(resp.Body))
	if err != nil {
		return err
	}

	imageURLs, err := o.Scanner.Scan(content.HTML, resp.FinalURL)
	if err != nil {
		return err
	}
	out.result.Images = imageURLs

	if len(imageURLs) > 0 {
		mapping, failed := resolver.Resolve(ctx, imageURLs)
		for _, u := range imageURLs {
			if ferr, ok := failed[u]; ok {
				out.warnings = append(out.warnings, assetWarning{slug: target.Slug, url: u, err: ferr})
			}
		}
		if len(mapping) > 0 {
			rewritten, err := o.Scanner.Rewrite(content.HTML, resp.FinalURL, mapping)
			if err != nil {
				return err
			}
			content.HTML = rewritten
		}
	}

	markdown, err := pipeline.Renderer.Render(content)
	if err != nil {
		return err
	}

	title := content.Title
	if title == "" {
		title = strings.TrimSuffix(target.Slug, ".md")
	}
	out.result.Title = title

	page := formatPage(target.URL(profile.BaseURL), title, o.now(), markdown)
	out.result.ContentHash = contentHash(page)

	return o.FS.WriteFile(path.Join(profile.OutputDir, target.Slug), []byte(page))
}

func (o *Orchestrator) processRaw(ctx context.Context, profile *docmirror.Profile, target docmirror.FetchTarget, out *outcome) error {
	resp, err := o.fetch(ctx, target.Path)
	if err != nil {
		return err
	}

	if err := validateText(resp.Body); err != nil {
		return err
	}

	out.result.Title = strings.TrimSuffix(target.Slug, ".md")
	out.result.ContentHash = contentHash(string(resp.Body))

	return o.FS.WriteFile(path.Join(profile.OutputDir, target.Slug), resp.Body)
}

// fetch rate-limits, retrieves a URL with retries, and turns non-2xx
// responses into errors.
func (o *Orchestrator) fetch(ctx context.Context, rawURL string) (*docmirror.Response, error) {
	if o.Limiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return nil, docmirror.Errorf(docmirror.EINVALID, "invalid URL %s: %v", rawURL, err)
		}
		if err := o.Limiter.Wait(ctx, parsed.Host); err != nil {
			return nil, err
		}
	}

	return retryValue(ctx, o.retryConfig(), func() (*docmirror.Response, error) {
		resp, err := o.Client.Get(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &docmirror.StatusError{URL: rawURL, StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
}

func (o *Orchestrator) retryConfig() RetryConfig {
	if o.Retry == (RetryConfig{}) {
		return DefaultRetryConfig()
	}
	return o.Retry
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *Orchestrator) indexTitle(profile *docmirror.Profile) string {
	if profile.IndexTitle != "" {
		return profile.IndexTitle
	}
	return profile.Name
}

// validateText rejects bodies that are not plain text: anything containing
// a NUL byte or invalid UTF-8.
func validateText(body []byte) error {
	if bytes.IndexByte(body, 0) >= 0 {
		return docmirror.Errorf(docmirror.EINVALID, "response body is not text")
	}
	if !utf8.Valid(body) {
		return docmirror.Errorf(docmirror.EINVALID, "response body is not valid UTF-8")
	}
	return nil
}

// formatPage formats a mirrored page with YAML frontmatter.
func formatPage(source, title string, crawled time.Time, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(source)
	b.WriteString("\ntitle: ")
	b.WriteString(title)
	b.WriteString("\ncrawled: ")
	b.WriteString(crawled.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
