package commands

import (
	"context"
	"fmt"

	"seolink/internal/application"
	"seolink/internal/domain"
	"seolink/internal/ports"
)

// DefaultReportLimit bounds the added and skipped lists of a report
const DefaultReportLimit = 100

// RunLinksResult contains the report of a full linking run
type RunLinksResult struct {
	Report  domain.Report
	Run     *domain.RunResult
	Message string
}

// RunLinksCommand indexes, ranks, mutates and reports in one pass
type RunLinksCommand struct {
	pipeline    *Pipeline
	reports     ports.ReportWriter
	ReportLimit int
	DryRun      bool
}

// NewRunLinksCommand creates a new RunLinksCommand
func NewRunLinksCommand(p *Pipeline, reports ports.ReportWriter) *RunLinksCommand {
	return &RunLinksCommand{
		pipeline:    p,
		reports:     reports,
		ReportLimit: DefaultReportLimit,
	}
}

// Validate checks if the run can start
func (c *RunLinksCommand) Validate() error {
	if err := c.pipeline.Validate(); err != nil {
		return err
	}
	if c.reports == nil {
		return &application.ValidationError{Field: "reports", Message: "report writer is required"}
	}
	return nil
}

// Execute runs the full linking pipeline. The report is written even when
// some pages failed.
func (c *RunLinksCommand) Execute(ctx context.Context) (*RunLinksResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	run := c.pipeline.NewRun()
	c.pipeline.log().Info("starting link run", "run_id", run.RunID, "dry_run", c.DryRun)

	suggested, err := (&SuggestCommand{pipeline: c.pipeline, Run: run}).Execute(ctx)
	if err != nil {
		return nil, err
	}

	apply := NewApplyLinksCommand(c.pipeline, suggested.Plans, run)
	apply.DryRun = c.DryRun
	if _, err := apply.Execute(ctx); err != nil {
		return nil, err
	}

	report := run.Report(c.ReportLimit, c.pipeline.now())
	if err := c.reports.Write(report); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	s := report.Summary
	return &RunLinksResult{
		Report: report,
		Run:    run,
		Message: fmt.Sprintf("Added %d links to %d pages (%d skipped, %d errors)",
			s.LinksAdded, s.PagesUpdated, s.PagesSkipped, s.Errors),
	}, nil
}
