// Package slog provides structured-logging implementations of reporting
// interfaces.
package slog

import (
	"log/slog"

	"github.com/fwojciec/docmirror"
)

// Ensure Reporter implements docmirror.Reporter at compile time.
var _ docmirror.Reporter = (*Reporter)(nil)

// Reporter logs batch progress through a slog.Logger.
type Reporter struct {
	logger *slog.Logger
}

// NewReporter creates a new Reporter.
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// PageDone logs the outcome of one target.
func (r *Reporter) PageDone(result *docmirror.PageResult) {
	if result.Status == docmirror.StatusFailed {
		r.logger.Warn("page failed",
			"path", result.Path,
			"error", result.Err,
		)
		return
	}
	r.logger.Info("page mirrored",
		"path", result.Path,
		"output", result.OutputPath,
		"title", result.Title,
		"images", len(result.Images),
	)
}

// AssetWarning logs a failed image download.
func (r *Reporter) AssetWarning(slug, url string, err error) {
	r.logger.Warn("image download failed",
		"page", slug,
		"url", url,
		"error", err,
	)
}

// SlugCollision logs a disambiguated output filename.
func (r *Reporter) SlugCollision(slug, resolved string) {
	r.logger.Warn("slug collision",
		"slug", slug,
		"resolved", resolved,
	)
}

// BatchDone logs the final summary for a profile run.
func (r *Reporter) BatchDone(summary *docmirror.Summary) {
	r.logger.Info("batch finished",
		"run_id", summary.RunID,
		"profile", summary.Profile,
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"assets", summary.AssetsDownloaded,
		"warnings", summary.Warnings,
	)
}
