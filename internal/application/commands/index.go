package commands

import (
	"context"
	"fmt"

	"seolink/internal/application"
	"seolink/internal/domain"
)

// AnalyticsErrorFile labels run errors that concern the analytics export rather than a page
const AnalyticsErrorFile = "analytics"

// BuildIndexResult contains the content index of one run
type BuildIndexResult struct {
	Index   *domain.ContentIndex
	Run     *domain.RunResult
	Message string
}

// BuildIndexCommand scans, extracts and indexes every page
type BuildIndexCommand struct {
	pipeline *Pipeline
	Run      *domain.RunResult // optional; a new run is started when nil
}

// NewBuildIndexCommand creates a new BuildIndexCommand
func NewBuildIndexCommand(p *Pipeline) *BuildIndexCommand {
	return &BuildIndexCommand{pipeline: p}
}

// Validate checks if the index can be built
func (c *BuildIndexCommand) Validate() error {
	return c.pipeline.Validate()
}

// Execute runs the build index command
func (c *BuildIndexCommand) Execute(ctx context.Context) (*BuildIndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := c.pipeline
	run := c.Run
	if run == nil {
		run = p.NewRun()
	}

	paths, err := p.Store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	run.Stats.PagesScanned = len(paths)
	p.log().Debug("scanned content root", "pages", len(paths))

	lookup := c.loadAnalytics(ctx, run)

	resolver := p.resolver()
	keywords := p.keywords()
	seen := make(map[string]string, len(paths))
	var pages []*domain.PageRecord

	for _, path := range paths {
		extractor := p.Extractors.ExtractorFor(path)
		if extractor == nil {
			p.log().Debug("no extractor for page", "path", path)
			continue
		}

		url, ok := resolver.Resolve(path)
		if !ok {
			run.Stats.Unresolved++
			p.log().Warn("unresolvable page url", "path", path, "err", application.ErrUnresolvableURL)
			continue
		}
		if first, dup := seen[url]; dup {
			run.Stats.Duplicates++
			p.log().Warn("duplicate page url", "path", path, "url", url, "kept", first, "err", application.ErrDuplicateURL)
			continue
		}

		text, err := p.Store.Read(path)
		if err != nil {
			run.RecordError(path, &application.PageError{Path: path, Op: "read", Err: err})
			p.log().Error("failed to read page", "path", path, "err", err)
			continue
		}
		seen[url] = path

		model := extractor.Extract(text)
		record := &domain.PageRecord{
			SourcePath:    path,
			URL:           url,
			Title:         model.Title,
			Description:   model.Description,
			Heading:       model.Heading,
			Keywords:      keywords.Extract(model.Title, model.Description, model.Heading),
			OutgoingLinks: make(domain.LinkSet),
			Performance:   lookup.Get(url),
		}
		for _, raw := range model.Links {
			if target, ok := domain.NormalizeLinkTarget(raw); ok && target != "" {
				record.OutgoingLinks.Add(target)
			}
		}
		if record.Performance != nil {
			run.Stats.WithAnalytics++
		}

		pages = append(pages, record)
	}

	idx := domain.NewContentIndex(pages)
	run.Stats.PagesIndexed = idx.Len()

	return &BuildIndexResult{
		Index:   idx,
		Run:     run,
		Message: fmt.Sprintf("Indexed %d of %d pages (%d with analytics)", idx.Len(), len(paths), run.Stats.WithAnalytics),
	}, nil
}

// loadAnalytics never fails the run. An unreadable export is recorded
// against the run and indexing continues without performance data.
func (c *BuildIndexCommand) loadAnalytics(ctx context.Context, run *domain.RunResult) domain.PerformanceLookup {
	p := c.pipeline
	if p.Analytics == nil {
		return domain.PerformanceLookup{}
	}

	rows, err := p.Analytics.LoadPerformanceRows(ctx)
	if err != nil {
		p.log().Error("failed to load analytics, continuing without it", "err", err)
		run.RecordError(AnalyticsErrorFile, fmt.Errorf("failed to load analytics: %w", err))
		return domain.PerformanceLookup{}
	}
	if len(rows) == 0 {
		p.log().Warn("no analytics rows; no page will qualify as high authority")
	}
	return domain.NewPerformanceLookup(rows)
}
