package commands

import (
	"context"
	"fmt"

	"seolink/internal/application"
	"seolink/internal/domain"
	"seolink/internal/ports"
)

// SnapshotResult contains the outcome of persisting the link graph
type SnapshotResult struct {
	Stats   *domain.SnapshotStats
	Run     *domain.RunResult
	Message string
}

// SnapshotCommand classifies the corpus and stores it in a link graph
type SnapshotCommand struct {
	pipeline *Pipeline
	graph    ports.LinkGraph
}

// NewSnapshotCommand creates a new SnapshotCommand. The graph must already be open.
func NewSnapshotCommand(p *Pipeline, graph ports.LinkGraph) *SnapshotCommand {
	return &SnapshotCommand{pipeline: p, graph: graph}
}

// Execute runs the snapshot command
func (c *SnapshotCommand) Execute(ctx context.Context) (*SnapshotResult, error) {
	if c.graph == nil {
		return nil, &application.ValidationError{Field: "graph", Message: "link graph is required"}
	}

	classified, err := NewClassifyCommand(c.pipeline).Execute(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := c.graph.SaveSnapshot(classified.Run.RunID, classified.Index, classified.Classification)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return &SnapshotResult{
		Stats:   stats,
		Run:     classified.Run,
		Message: fmt.Sprintf("Stored %d pages and %d links in %v", stats.PagesWritten, stats.LinksWritten, stats.Duration),
	}, nil
}

// StarvedCommand lists link-starved pages from a stored snapshot
type StarvedCommand struct {
	graph ports.LinkGraph
	Limit int
}

// NewStarvedCommand creates a new StarvedCommand
func NewStarvedCommand(graph ports.LinkGraph, limit int) *StarvedCommand {
	return &StarvedCommand{graph: graph, Limit: limit}
}

// Validate checks if the query is valid
func (c *StarvedCommand) Validate() error {
	if c.graph == nil {
		return &application.ValidationError{Field: "graph", Message: "link graph is required"}
	}
	if c.Limit < 0 {
		return &application.ValidationError{Field: "limit", Message: fmt.Sprintf("limit must not be negative, got: %d", c.Limit)}
	}
	return nil
}

// Execute runs the starved command
func (c *StarvedCommand) Execute(ctx context.Context) ([]domain.StarvedPage, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	pages, err := c.graph.LinkStarved(c.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	return pages, nil
}
