// Command docmirror mirrors documentation websites to local markdown files.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docmirror"
	"github.com/fwojciec/docmirror/fs"
	"github.com/fwojciec/docmirror/goquery"
	"github.com/fwojciec/docmirror/htmltomarkdown"
	dochttp "github.com/fwojciec/docmirror/http"
	"github.com/fwojciec/docmirror/mirror"
	"github.com/fwojciec/docmirror/readability"
	docslog "github.com/fwojciec/docmirror/slog"
	"github.com/fwojciec/docmirror/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string        `short:"f" default:"sources.yaml" help:"Profile configuration file"`
	Output      string        `short:"o" default:"." help:"Corpus root directory"`
	Profile     string        `short:"p" help:"Run a single profile by name"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64       `default:"2" help:"Requests per second per domain"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per request"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docmirror"),
		kong.Description("Mirror documentation websites to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err = parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// All profiles are validated up front; a configuration problem fails
	// the run before any network traffic.
	profiles, err := loadProfiles(yaml.NewStore(cli.Config), cli.Profile)
	if err != nil {
		return err
	}

	renderer := htmltomarkdown.NewRenderer()
	registry := docmirror.NewRegistry()
	registry.Register(docmirror.ParserArticle, docmirror.Pipeline{
		Extractor: goquery.NewArticleExtractor(),
		Renderer:  renderer,
	})
	registry.Register(docmirror.ParserGenerator, docmirror.Pipeline{
		Extractor: goquery.NewGeneratorExtractor(),
		Renderer:  renderer,
	})
	registry.Register(docmirror.ParserGeneric, docmirror.Pipeline{
		Extractor: readability.NewExtractor(),
		Renderer:  renderer,
	})

	orchestrator := &mirror.Orchestrator{
		Client:      dochttp.NewClient(dochttp.WithTimeout(cli.Timeout)),
		Registry:    registry,
		Scanner:     goquery.NewImageScanner(),
		FS:          fs.NewDir(cli.Output),
		Reporter:    docslog.NewReporter(logger),
		Limiter:     mirror.NewDomainLimiter(cli.RPS),
		Concurrency: cli.Concurrency,
	}

	var totalFailed int
	for _, profile := range profiles {
		summary, err := orchestrator.Run(ctx, profile)
		if err != nil {
			return fmt.Errorf("profile %s: %w", profile.Name, err)
		}

		fmt.Fprintf(stdout, "%s: %d/%d pages mirrored, %d assets, %d warnings\n",
			summary.Profile, summary.Succeeded, summary.Total,
			summary.AssetsDownloaded, summary.Warnings)
		for _, f := range summary.Failures {
			fmt.Fprintf(stdout, "  failed %s: %s\n", f.Path, f.Reason)
		}
		totalFailed += summary.Failed
	}

	if totalFailed > 0 {
		return fmt.Errorf("%d pages failed", totalFailed)
	}
	return nil
}

// loadProfiles reads all profiles from the store, optionally narrowing to a
// single profile by name.
func loadProfiles(store docmirror.ProfileStore, name string) ([]*docmirror.Profile, error) {
	profiles, err := store.Profiles()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return profiles, nil
	}

	for _, p := range profiles {
		if p.Name == name {
			return []*docmirror.Profile{p}, nil
		}
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return nil, docmirror.Errorf(docmirror.ENOTFOUND, "profile %q not found (available: %s)", name, strings.Join(names, ", "))
}
