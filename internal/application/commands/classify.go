package commands

import (
	"context"
	"fmt"

	"seolink/internal/domain"
)

// ClassifyResult contains the authority buckets of the indexed pages
type ClassifyResult struct {
	Index          *domain.ContentIndex
	Classification domain.Classification
	Run            *domain.RunResult
	Message        string
}

// ClassifyCommand indexes the corpus and buckets its pages
type ClassifyCommand struct {
	pipeline *Pipeline
	Run      *domain.RunResult
}

// NewClassifyCommand creates a new ClassifyCommand
func NewClassifyCommand(p *Pipeline) *ClassifyCommand {
	return &ClassifyCommand{pipeline: p}
}

// Execute runs the classify command
func (c *ClassifyCommand) Execute(ctx context.Context) (*ClassifyResult, error) {
	built, err := (&BuildIndexCommand{pipeline: c.pipeline, Run: c.Run}).Execute(ctx)
	if err != nil {
		return nil, err
	}

	cls := c.pipeline.Authority.Classify(built.Index)
	run := built.Run
	run.Stats.HighAuthority = len(cls.HighAuthority)
	run.Stats.LowAuthority = len(cls.LowAuthority)
	run.Stats.LinkStarved = len(cls.LinkStarved)

	c.pipeline.log().Info("classified pages",
		"high", run.Stats.HighAuthority,
		"low", run.Stats.LowAuthority,
		"starved", run.Stats.LinkStarved)

	return &ClassifyResult{
		Index:          built.Index,
		Classification: cls,
		Run:            run,
		Message: fmt.Sprintf("%d high-authority, %d low-authority, %d link-starved of %d pages",
			run.Stats.HighAuthority, run.Stats.LowAuthority, run.Stats.LinkStarved, built.Index.Len()),
	}, nil
}
