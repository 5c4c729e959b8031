package ports

import "seolink/internal/domain"

// LinkGraph stores an inspectable snapshot of the content index.
// The linking engine only writes it; nothing in a run reads it back.
type LinkGraph interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// SaveSnapshot replaces the stored graph with idx and its classification
	SaveSnapshot(runID string, idx *domain.ContentIndex, c domain.Classification) (*domain.SnapshotStats, error)

	// LinkStarved returns stored link-starved pages, fewest incoming links first
	LinkStarved(limit int) ([]domain.StarvedPage, error)
}
