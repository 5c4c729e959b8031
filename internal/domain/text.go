package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	expressionPattern = regexp.MustCompile(`\{[^{}]*\}`)
)

// StripMarkup removes tags and embedded {expressions}, collapsing whitespace
func StripMarkup(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = expressionPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most maxRunes runes and trims trailing space
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxRunes]))
}

// TitleFromSlug turns "inventory-basics" into "Inventory Basics"
func TitleFromSlug(slug string) string {
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
