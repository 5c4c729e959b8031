package domain

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxKeywords is how many terms a page keeps
	DefaultMaxKeywords = 10
	minKeywordRunes    = 3
)

// DefaultStopWords are dropped before counting
var DefaultStopWords = []string{
	"the", "and", "for", "with", "your", "you", "are", "this", "that", "from",
	"how", "what", "why", "when", "who", "which", "our", "can", "will", "all",
	"into", "about", "more", "most", "than", "then", "them", "they", "their",
	"there", "these", "those", "its", "it's", "was", "were", "been", "being",
	"have", "has", "had", "not", "but", "any", "each", "also", "just", "use",
	"using", "get", "out", "over", "per", "via", "we're", "you're", "here",
	"best", "top", "new", "free", "learn", "page",
}

// KeywordExtractor ranks the terms of a page by raw frequency.
//
// It has no notion of meaning: stems, synonyms and phrases are separate tokens,
// so similarity built on its output approximates topical overlap and nothing more.
type KeywordExtractor struct {
	max       int
	stopWords map[string]struct{}
}

// NewKeywordExtractor creates an extractor keeping at most max terms.
// A non-positive max falls back to DefaultMaxKeywords.
func NewKeywordExtractor(max int, stopWords []string) *KeywordExtractor {
	if max <= 0 {
		max = DefaultMaxKeywords
	}
	sw := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		sw[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return &KeywordExtractor{max: max, stopWords: sw}
}

// Extract returns the most frequent significant terms across parts, ordered by
// descending count with ties kept in first-seen order.
func (e *KeywordExtractor) Extract(parts ...string) []string {
	text := strings.ToLower(StripMarkup(strings.Join(parts, " ")))

	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(text) {
		tok = strings.TrimFunc(tok, isEdgePunct)
		if utf8.RuneCountInString(tok) < minKeywordRunes {
			continue
		}
		if _, stop := e.stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > e.max {
		order = order[:e.max]
	}
	return order
}

func isEdgePunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
