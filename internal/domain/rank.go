package domain

import "sort"

// RankPolicy controls which candidate links survive ranking
type RankPolicy struct {
	MinSimilarity   float64 // candidates must score strictly above this
	MaxPerTarget    int
	AnchorMaxLength int // in runes
}

// DefaultRankPolicy returns the standard ranking limits
func DefaultRankPolicy() RankPolicy {
	return RankPolicy{
		MinSimilarity:   0.2,
		MaxPerTarget:    3,
		AnchorMaxLength: 50,
	}
}

// LinkSuggestion is a proposed link from a high-authority page to a link-starved one.
// Suggestions live for one run and are never persisted.
type LinkSuggestion struct {
	Source     *PageRecord
	Target     *PageRecord
	Similarity float64
	AnchorText string
}

// SourcePlan is every suggestion assigned to one source page, in insertion order
type SourcePlan struct {
	Source      *PageRecord
	Suggestions []LinkSuggestion
}

// Jaccard returns |a ∩ b| / |a ∪ b| over the distinct members of a and b
func Jaccard(a, b []string) float64 {
	set := make(map[string]uint8, len(a)+len(b))
	for _, k := range a {
		set[k] |= 1
	}
	for _, k := range b {
		set[k] |= 2
	}
	if len(set) == 0 {
		return 0
	}
	shared := 0
	for _, bits := range set {
		if bits == 3 {
			shared++
		}
	}
	return float64(shared) / float64(len(set))
}

// AnchorText picks the link text for target: its heading, then its title,
// then a title-cased form of its last url segment.
func AnchorText(target *PageRecord, maxLen int) string {
	if target.Heading != "" {
		return Truncate(target.Heading, maxLen)
	}
	if target.Title != "" {
		return Truncate(target.Title, maxLen)
	}
	return TitleFromSlug(target.URL)
}

// Rank scores every link-starved target against every high-authority source and
// keeps the best candidates per target. Targets are visited in url order and
// equal scores are ordered by source url, so output is deterministic.
func (p RankPolicy) Rank(c Classification) []LinkSuggestion {
	var out []LinkSuggestion

	for _, target := range c.LinkStarved {
		var candidates []LinkSuggestion
		for _, source := range c.HighAuthority {
			if source.URL == target.URL || source.LinksTo(target.URL) {
				continue
			}
			sim := Jaccard(source.Keywords, target.Keywords)
			if sim <= p.MinSimilarity {
				continue
			}
			candidates = append(candidates, LinkSuggestion{
				Source:     source,
				Target:     target,
				Similarity: sim,
			})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].Similarity != candidates[j].Similarity {
				return candidates[i].Similarity > candidates[j].Similarity
			}
			return candidates[i].Source.URL < candidates[j].Source.URL
		})
		if p.MaxPerTarget > 0 && len(candidates) > p.MaxPerTarget {
			candidates = candidates[:p.MaxPerTarget]
		}

		anchor := AnchorText(target, p.AnchorMaxLength)
		for i := range candidates {
			candidates[i].AnchorText = anchor
		}
		out = append(out, candidates...)
	}

	return out
}

// GroupBySource collects suggestions per source page. Groups are ordered by
// source url; within a group the original suggestion order is kept.
func GroupBySource(suggestions []LinkSuggestion) []SourcePlan {
	bySource := make(map[string]*SourcePlan)
	var urls []string

	for _, s := range suggestions {
		plan, ok := bySource[s.Source.URL]
		if !ok {
			plan = &SourcePlan{Source: s.Source}
			bySource[s.Source.URL] = plan
			urls = append(urls, s.Source.URL)
		}
		plan.Suggestions = append(plan.Suggestions, s)
	}

	sort.Strings(urls)
	out := make([]SourcePlan, 0, len(urls))
	for _, u := range urls {
		out = append(out, *bySource[u])
	}
	return out
}
