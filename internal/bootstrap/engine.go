// Package bootstrap wires configuration into the adapters every entrypoint shares.
package bootstrap

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"seolink/internal/adapters/analytics"
	"seolink/internal/adapters/filesystem"
	"seolink/internal/adapters/markup"
	"seolink/internal/adapters/report"
	"seolink/internal/adapters/sqlite"
	"seolink/internal/application"
	"seolink/internal/application/commands"
	"seolink/internal/config"
	"seolink/internal/domain"
	"seolink/internal/logger"
)

// Engine is a configured linking pipeline and its adapters
type Engine struct {
	Config   *config.Config
	Logger   *log.Logger
	Store    *filesystem.Store
	Reports  *report.JSONWriter
	Pipeline *commands.Pipeline
}

// New validates cfg and builds the pipeline. Logs go to w (stderr when nil).
func New(cfg *config.Config, w io.Writer, prefix string) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lg := logger.New(logger.Options{Debug: cfg.Debug, Writer: w, Prefix: prefix})

	store := filesystem.NewStore(cfg.ContentRoot, filesystem.ScanOptions{
		Extensions:    cfg.Scan.Extensions,
		ExcludedFiles: cfg.Scan.ExcludedFiles,
		ExcludedDirs:  cfg.Scan.ExcludedDirs,
	})
	extractors := markup.NewRegistry(markup.Options{
		MetaTag:    cfg.Markup.MetaTag,
		ClosingTag: cfg.Markup.ClosingTag,
	})

	var source *analytics.CSVSource
	if cfg.AnalyticsPath != "" {
		source = analytics.NewCSVSource(cfg.AnalyticsPath, lg)
	}

	p := commands.NewPipeline(store, extractors, nil)
	if source != nil {
		p.Analytics = source
	}
	p.Resolver = domain.NewURLResolver(cfg.LegacySlugs)
	p.Keywords = domain.NewKeywordExtractor(cfg.Ranking.MaxKeywords, cfg.StopWords)
	p.Authority = cfg.AuthorityPolicy()
	p.Ranking = cfg.RankPolicy()
	p.Logger = lg

	return &Engine{
		Config:   cfg,
		Logger:   lg,
		Store:    store,
		Reports:  report.NewJSONWriter(cfg.ReportPath),
		Pipeline: p,
	}, nil
}

// RequireRoot fails when the content root is not an existing directory
func (e *Engine) RequireRoot() error {
	if !e.Store.Exists() {
		return &application.RootError{Root: e.Store.Root(), Err: application.ErrRootNotFound}
	}
	return nil
}

// GraphPath returns the configured snapshot database, or the per-site default
func (e *Engine) GraphPath() string {
	if e.Config.DBPath != "" {
		return e.Config.DBPath
	}
	return sqlite.DatabasePath(e.Store.Root())
}

// OpenGraph opens the snapshot database; the caller closes it
func (e *Engine) OpenGraph() (*sqlite.Graph, error) {
	g := sqlite.NewGraph()
	if err := g.Open(e.GraphPath()); err != nil {
		return nil, fmt.Errorf("failed to open link graph: %w", err)
	}
	return g, nil
}

// QueryGraph opens an existing snapshot read-only. It fails with
// sqlite.ErrNoSnapshot when "index" has not run for this site.
func (e *Engine) QueryGraph() (*sqlite.Graph, error) {
	g := sqlite.NewGraph()
	if err := g.OpenReadOnly(e.GraphPath()); err != nil {
		return nil, fmt.Errorf("failed to open link graph: %w", err)
	}
	return g, nil
}
