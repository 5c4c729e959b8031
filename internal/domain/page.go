package domain

import "sort"

// Performance is the search-console signal joined onto a page
type Performance struct {
	Clicks      int
	Impressions int
	CTR         float64
	Position    float64
}

// PerformanceRow is one analytics row before it is joined to a page
type PerformanceRow struct {
	URL string
	Performance
}

// PageModel is the structural view of a page source produced by an extractor.
// Empty strings mean the field could not be found.
type PageModel struct {
	Title       string
	Description string
	Heading     string
	Links       []string // raw internal targets, e.g. "/inventory-guide"
}

// LinkSet is a set of normalized site-relative urls
type LinkSet map[string]struct{}

// Add inserts a url into the set
func (s LinkSet) Add(url string) {
	s[url] = struct{}{}
}

// Has reports whether url is in the set
func (s LinkSet) Has(url string) bool {
	_, ok := s[url]
	return ok
}

// Sorted returns the members in ascending order
func (s LinkSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// PageRecord is one indexed content page
type PageRecord struct {
	SourcePath    string // path relative to the content root, slash separated
	URL           string // site-relative, no leading slash (e.g. "glossary/inventory-management")
	Title         string
	Description   string
	Heading       string
	Keywords      []string
	OutgoingLinks LinkSet
	Performance   *Performance // nil when no analytics row matched
}

// LinksTo reports whether the page body already links to url
func (p *PageRecord) LinksTo(url string) bool {
	return p.OutgoingLinks != nil && p.OutgoingLinks.Has(url)
}

// Path returns the url with its leading slash, as it appears in markup
func (p *PageRecord) Path() string {
	return "/" + p.URL
}
