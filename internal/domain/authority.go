package domain

// AuthorityPolicy holds the thresholds used to bucket pages
type AuthorityPolicy struct {
	HighMaxPosition    float64 // high authority needs position below this
	HighMinImpressions int     // and impressions above this
	LowMinPosition     float64 // low authority needs position above this
	LowMaxImpressions  int     // and impressions below this
	StarvedBelow       int     // link-starved when incoming links are fewer than this
}

// DefaultAuthorityPolicy returns the standard thresholds
func DefaultAuthorityPolicy() AuthorityPolicy {
	return AuthorityPolicy{
		HighMaxPosition:    20,
		HighMinImpressions: 100,
		LowMinPosition:     30,
		LowMaxImpressions:  50,
		StarvedBelow:       10,
	}
}

// IsHighAuthority reports whether perf qualifies a page as a link source
func (p AuthorityPolicy) IsHighAuthority(perf *Performance) bool {
	return perf != nil && perf.Position < p.HighMaxPosition && perf.Impressions > p.HighMinImpressions
}

// IsLowAuthority reports whether perf marks a page as weak
func (p AuthorityPolicy) IsLowAuthority(perf *Performance) bool {
	return perf != nil && perf.Position > p.LowMinPosition && perf.Impressions < p.LowMaxImpressions
}

// IsLinkStarved reports whether a page with incoming links needs more
func (p AuthorityPolicy) IsLinkStarved(incoming int) bool {
	return incoming < p.StarvedBelow
}

// Classification partitions indexed pages. The authority buckets are exclusive
// of each other but not of LinkStarved.
type Classification struct {
	HighAuthority []*PageRecord
	LowAuthority  []*PageRecord
	LinkStarved   []*PageRecord

	high, low, starved LinkSet
}

// Classify buckets every page of idx except the site root
func (p AuthorityPolicy) Classify(idx *ContentIndex) Classification {
	c := Classification{
		high:    make(LinkSet),
		low:     make(LinkSet),
		starved: make(LinkSet),
	}

	for _, page := range idx.Pages() {
		if page.URL == "" {
			continue
		}
		if p.IsHighAuthority(page.Performance) {
			c.HighAuthority = append(c.HighAuthority, page)
			c.high.Add(page.URL)
		} else if p.IsLowAuthority(page.Performance) {
			c.LowAuthority = append(c.LowAuthority, page)
			c.low.Add(page.URL)
		}
		if p.IsLinkStarved(idx.IncomingCount(page.URL)) {
			c.LinkStarved = append(c.LinkStarved, page)
			c.starved.Add(page.URL)
		}
	}

	return c
}

// IsHigh reports whether url is in the high-authority bucket
func (c Classification) IsHigh(url string) bool { return c.high.Has(url) }

// IsLow reports whether url is in the low-authority bucket
func (c Classification) IsLow(url string) bool { return c.low.Has(url) }

// IsStarved reports whether url is link-starved
func (c Classification) IsStarved(url string) bool { return c.starved.Has(url) }
