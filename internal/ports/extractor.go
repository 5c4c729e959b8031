package ports

import "seolink/internal/domain"

// InsertionPoint is a byte offset in a page where a link element may go
type InsertionPoint struct {
	Strategy string // e.g. "after-h2", "before-close"
	Offset   int
	Before   bool // the point precedes a closing tag instead of following a block
}

// PageModelExtractor understands one page source dialect
type PageModelExtractor interface {
	// Extract reads metadata, first heading and internal links. It never fails;
	// structures it cannot find are left empty.
	Extract(text string) domain.PageModel

	// InsertionPoints returns candidate offsets in priority order
	InsertionPoints(text string) []InsertionPoint

	// References reports whether text already contains a link to url
	// (site-relative, without leading slash)
	References(text, url string) bool

	// LinkElement renders a self-contained related-link element
	LinkElement(url, anchor string) string
}

// ExtractorResolver picks the extractor for a page path
type ExtractorResolver interface {
	// ExtractorFor returns nil when no extractor handles the path
	ExtractorFor(path string) PageModelExtractor
}
