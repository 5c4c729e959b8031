package commands

import (
	"context"
	"fmt"

	"seolink/internal/domain"
)

// SuggestResult contains ranked link suggestions grouped by source page
type SuggestResult struct {
	Index          *domain.ContentIndex
	Classification domain.Classification
	Suggestions    []domain.LinkSuggestion
	Plans          []domain.SourcePlan
	Run            *domain.RunResult
	Message        string
}

// SuggestCommand ranks links from high-authority pages to link-starved ones.
// It never writes.
type SuggestCommand struct {
	pipeline *Pipeline
	Run      *domain.RunResult
}

// NewSuggestCommand creates a new SuggestCommand
func NewSuggestCommand(p *Pipeline) *SuggestCommand {
	return &SuggestCommand{pipeline: p}
}

// Execute runs the suggest command
func (c *SuggestCommand) Execute(ctx context.Context) (*SuggestResult, error) {
	classified, err := (&ClassifyCommand{pipeline: c.pipeline, Run: c.Run}).Execute(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := c.pipeline.Ranking.Rank(classified.Classification)
	plans := domain.GroupBySource(suggestions)
	classified.Run.Stats.Suggestions = len(suggestions)

	c.pipeline.log().Info("ranked suggestions", "suggestions", len(suggestions), "sources", len(plans))

	return &SuggestResult{
		Index:          classified.Index,
		Classification: classified.Classification,
		Suggestions:    suggestions,
		Plans:          plans,
		Run:            classified.Run,
		Message:        fmt.Sprintf("%d suggestions across %d source pages", len(suggestions), len(plans)),
	}, nil
}
