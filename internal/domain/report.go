package domain

import "time"

// SkipReason explains why a source page received no links
type SkipReason string

const (
	SkipNoLocation    SkipReason = "no suitable location found"
	SkipAlreadyLinked SkipReason = "all suggested links already present"
)

// AddedLink is one link written into a page
type AddedLink struct {
	Target     string  `json:"target"`
	Anchor     string  `json:"anchor"`
	Similarity float64 `json:"similarity"`
	Strategy   string  `json:"strategy"`
}

// AddedRecord lists the links written into one page
type AddedRecord struct {
	File  string      `json:"file"`
	URL   string      `json:"url"`
	Links []AddedLink `json:"links"`
}

// SkippedRecord is a page left untouched on purpose
type SkippedRecord struct {
	File   string     `json:"file"`
	URL    string     `json:"url"`
	Reason SkipReason `json:"reason"`
}

// FileError is a page that could not be read or written
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// RunStats are the counters gathered while the pipeline runs
type RunStats struct {
	PagesScanned  int `json:"pages_scanned"`
	PagesIndexed  int `json:"pages_indexed"`
	Unresolved    int `json:"unresolved_urls"`
	Duplicates    int `json:"duplicate_urls"`
	WithAnalytics int `json:"pages_with_analytics"`
	HighAuthority int `json:"high_authority"`
	LowAuthority  int `json:"low_authority"`
	LinkStarved   int `json:"link_starved"`
	Suggestions   int `json:"suggestions"`
}

// RunResult accumulates the outcome of one run. Each run gets its own value;
// it is passed from stage to stage rather than shared.
type RunResult struct {
	RunID     string
	StartedAt time.Time
	Stats     RunStats

	added   []AddedRecord
	skipped []SkippedRecord
	errors  []FileError
}

// NewRunResult starts an empty result
func NewRunResult(runID string, startedAt time.Time) *RunResult {
	return &RunResult{RunID: runID, StartedAt: startedAt}
}

// RecordAdded notes links written into file
func (r *RunResult) RecordAdded(file, url string, links []AddedLink) {
	r.added = append(r.added, AddedRecord{File: file, URL: url, Links: links})
}

// RecordSkipped notes a page left untouched
func (r *RunResult) RecordSkipped(file, url string, reason SkipReason) {
	r.skipped = append(r.skipped, SkippedRecord{File: file, URL: url, Reason: reason})
}

// RecordError notes a page that failed
func (r *RunResult) RecordError(file string, err error) {
	r.errors = append(r.errors, FileError{File: file, Error: err.Error()})
}

// Added returns the pages that received links
func (r *RunResult) Added() []AddedRecord { return r.added }

// Skipped returns the pages left untouched
func (r *RunResult) Skipped() []SkippedRecord { return r.skipped }

// Errors returns the pages that failed
func (r *RunResult) Errors() []FileError { return r.errors }

// LinksAdded counts every link written during the run
func (r *RunResult) LinksAdded() int {
	n := 0
	for _, a := range r.added {
		n += len(a.Links)
	}
	return n
}

// ReportSummary holds the aggregate counts of a report
type ReportSummary struct {
	RunStats
	PagesUpdated int `json:"pages_updated"`
	LinksAdded   int `json:"links_added"`
	PagesSkipped int `json:"pages_skipped"`
	Errors       int `json:"errors"`
}

// Report is the serialized form of a run
type Report struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Summary     ReportSummary   `json:"summary"`
	Added       []AddedRecord   `json:"added"`
	Skipped     []SkippedRecord `json:"skipped"`
	Errors      []FileError     `json:"errors"`
}

// Report builds the serializable report. The added and skipped lists are cut
// to limit entries; errors are always complete.
func (r *RunResult) Report(limit int, generatedAt time.Time) Report {
	return Report{
		RunID:       r.RunID,
		GeneratedAt: generatedAt,
		Summary: ReportSummary{
			RunStats:     r.Stats,
			PagesUpdated: len(r.added),
			LinksAdded:   r.LinksAdded(),
			PagesSkipped: len(r.skipped),
			Errors:       len(r.errors),
		},
		Added:   bounded(r.added, limit),
		Skipped: bounded(r.skipped, limit),
		Errors:  append([]FileError{}, r.errors...),
	}
}

func bounded[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return append([]T{}, items...)
}
