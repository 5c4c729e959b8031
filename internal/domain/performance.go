package domain

import "strings"

// PerformanceKey returns the page-url form of an analytics url ("https://x.com/a/b/" -> "a/b")
func PerformanceKey(url string) string {
	return strings.TrimPrefix(NormalizeURL(url), "/")
}

// PerformanceLookup indexes analytics by page url
type PerformanceLookup map[string]Performance

// NewPerformanceLookup keys rows by normalized url. When several rows collapse
// onto one url the row with more impressions wins.
func NewPerformanceLookup(rows []PerformanceRow) PerformanceLookup {
	l := make(PerformanceLookup, len(rows))
	for _, r := range rows {
		k := PerformanceKey(r.URL)
		if prev, ok := l[k]; ok && prev.Impressions >= r.Impressions {
			continue
		}
		l[k] = r.Performance
	}
	return l
}

// Get returns the performance for a page url, or nil
func (l PerformanceLookup) Get(url string) *Performance {
	p, ok := l[url]
	if !ok {
		return nil
	}
	return &p
}
