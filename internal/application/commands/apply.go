package commands

import (
	"context"
	"fmt"

	"seolink/internal/application"
	"seolink/internal/domain"
	"seolink/internal/ports"
)

// followWindow is how many bytes after an insertion point are checked for an
// existing link to the same target
const followWindow = 200

// ApplyLinksResult contains the outcome of mutating source pages
type ApplyLinksResult struct {
	Run          *domain.RunResult
	PagesUpdated int
	LinksAdded   int
	Errors       int // pages that failed during this apply
	Message      string
}

// ApplyLinksCommand inserts suggested links into their source pages
type ApplyLinksCommand struct {
	pipeline *Pipeline
	Plans    []domain.SourcePlan
	Run      *domain.RunResult
	DryRun   bool // compute edits and record them without writing
}

// NewApplyLinksCommand creates a new ApplyLinksCommand
func NewApplyLinksCommand(p *Pipeline, plans []domain.SourcePlan, run *domain.RunResult) *ApplyLinksCommand {
	return &ApplyLinksCommand{
		pipeline: p,
		Plans:    plans,
		Run:      run,
	}
}

// Validate checks if the apply operation is valid
func (c *ApplyLinksCommand) Validate() error {
	if err := c.pipeline.Validate(); err != nil {
		return err
	}
	for _, plan := range c.Plans {
		if plan.Source == nil || plan.Source.SourcePath == "" {
			return &application.ValidationError{
				Field:   "plans",
				Message: "every plan needs a source page",
			}
		}
	}
	return nil
}

// Execute runs the apply links command. Per-page failures are recorded in the
// run and never abort the remaining pages.
func (c *ApplyLinksCommand) Execute(ctx context.Context) (*ApplyLinksResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	run := c.Run
	if run == nil {
		run = c.pipeline.NewRun()
	}

	before := len(run.Added())
	linksBefore := run.LinksAdded()
	errorsBefore := len(run.Errors())

	for _, plan := range c.Plans {
		c.applyPlan(plan, run)
	}

	updated := len(run.Added()) - before
	links := run.LinksAdded() - linksBefore
	failed := len(run.Errors()) - errorsBefore

	verb := "Updated"
	if c.DryRun {
		verb = "Would update"
	}
	message := fmt.Sprintf("%s %d pages with %d links", verb, updated, links)
	if failed > 0 {
		message += fmt.Sprintf(", %d pages failed", failed)
	}
	return &ApplyLinksResult{
		Run:          run,
		PagesUpdated: updated,
		LinksAdded:   links,
		Errors:       failed,
		Message:      message,
	}, nil
}

func (c *ApplyLinksCommand) applyPlan(plan domain.SourcePlan, run *domain.RunResult) {
	p := c.pipeline
	path, url := plan.Source.SourcePath, plan.Source.URL

	extractor := p.Extractors.ExtractorFor(path)
	if extractor == nil {
		run.RecordError(path, fmt.Errorf("%s: %w", path, application.ErrNoExtractor))
		return
	}

	text, err := p.Store.Read(path)
	if err != nil {
		pageErr := &application.PageError{Path: path, Op: "read", Err: err}
		run.RecordError(path, pageErr)
		p.log().Error("failed to read page", "path", path, "err", err)
		return
	}

	text, added, reason := InsertLinks(extractor, text, plan.Suggestions)
	if len(added) == 0 {
		run.RecordSkipped(path, url, reason)
		if reason == domain.SkipNoLocation {
			p.log().Warn("skipped page", "path", path, "err", application.ErrNoInsertionPoint)
		} else {
			p.log().Debug("skipped page", "path", path, "reason", reason)
		}
		return
	}

	if !c.DryRun {
		if err := p.Store.Write(path, text); err != nil {
			pageErr := &application.PageError{Path: path, Op: "write", Err: err}
			run.RecordError(path, pageErr)
			p.log().Error("failed to write page", "path", path, "err", err)
			return
		}
	}

	run.RecordAdded(path, url, added)
	p.log().Info("linked page", "path", path, "links", len(added), "dry_run", c.DryRun)
}

// InsertLinks adds every suggestion not yet present in text, in order. When
// nothing is added the returned reason says why.
func InsertLinks(extractor ports.PageModelExtractor, text string, suggestions []domain.LinkSuggestion) (string, []domain.AddedLink, domain.SkipReason) {
	var added []domain.AddedLink
	missingLocation := false

	for _, s := range suggestions {
		target := s.Target.URL
		if extractor.References(text, target) {
			continue
		}

		point, ok := insertionPoint(extractor, text, target)
		if !ok {
			missingLocation = true
			continue
		}

		element := extractor.LinkElement(target, s.AnchorText)
		if point.Before {
			element += "\n"
		} else {
			element = "\n" + element
		}
		text = text[:point.Offset] + element + text[point.Offset:]

		added = append(added, domain.AddedLink{
			Target:     target,
			Anchor:     s.AnchorText,
			Similarity: s.Similarity,
			Strategy:   point.Strategy,
		})
	}

	if len(added) > 0 {
		return text, added, ""
	}
	if missingLocation {
		return text, nil, domain.SkipNoLocation
	}
	return text, nil, domain.SkipAlreadyLinked
}

// insertionPoint picks the first candidate not already followed by a link to target
func insertionPoint(extractor ports.PageModelExtractor, text, target string) (ports.InsertionPoint, bool) {
	for _, point := range extractor.InsertionPoints(text) {
		end := min(len(text), point.Offset+followWindow)
		if extractor.References(text[point.Offset:end], target) {
			continue
		}
		return point, true
	}
	return ports.InsertionPoint{}, false
}
