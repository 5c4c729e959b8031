package domain

import "sort"

// IncomingLinkIndex maps a target url to the set of source urls linking to it
type IncomingLinkIndex map[string]LinkSet

// Count returns how many distinct sources link to url
func (ix IncomingLinkIndex) Count(url string) int {
	return len(ix[url])
}

// ContentIndex holds every indexed page keyed by url plus the reverse link index.
// It is read-only once built.
type ContentIndex struct {
	pages    map[string]*PageRecord
	urls     []string
	incoming IncomingLinkIndex
}

// NewContentIndex builds the index from pages whose urls are already unique.
// A later page with a url already present is ignored.
func NewContentIndex(pages []*PageRecord) *ContentIndex {
	idx := &ContentIndex{
		pages:    make(map[string]*PageRecord, len(pages)),
		incoming: make(IncomingLinkIndex),
	}

	for _, p := range pages {
		if _, dup := idx.pages[p.URL]; dup {
			continue
		}
		idx.pages[p.URL] = p
		idx.urls = append(idx.urls, p.URL)
	}
	sort.Strings(idx.urls)

	for _, u := range idx.urls {
		p := idx.pages[u]
		for target := range p.OutgoingLinks {
			sources, ok := idx.incoming[target]
			if !ok {
				sources = make(LinkSet)
				idx.incoming[target] = sources
			}
			sources.Add(p.URL)
		}
	}

	return idx
}

// Len returns the number of indexed pages
func (ix *ContentIndex) Len() int {
	return len(ix.urls)
}

// Pages returns all pages ordered by url
func (ix *ContentIndex) Pages() []*PageRecord {
	out := make([]*PageRecord, 0, len(ix.urls))
	for _, u := range ix.urls {
		out = append(out, ix.pages[u])
	}
	return out
}

// Get looks a page up by url
func (ix *ContentIndex) Get(url string) (*PageRecord, bool) {
	p, ok := ix.pages[url]
	return p, ok
}

// Incoming returns the reverse link index
func (ix *ContentIndex) Incoming() IncomingLinkIndex {
	return ix.incoming
}

// IncomingCount returns how many indexed pages link to url
func (ix *ContentIndex) IncomingCount(url string) int {
	return ix.incoming.Count(url)
}
