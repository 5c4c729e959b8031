package domain

import "time"

// SnapshotStats holds statistics from persisting a link-graph snapshot
type SnapshotStats struct {
	PagesWritten int
	LinksWritten int
	Duration     time.Duration
}

// StarvedPage is a link-starved page as stored in a snapshot
type StarvedPage struct {
	URL        string
	SourcePath string
	Title      string
	Incoming   int
	Keywords   []string
}
