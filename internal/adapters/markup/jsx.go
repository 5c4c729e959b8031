package markup

import (
	"fmt"
	"regexp"
	"strings"

	"seolink/internal/domain"
	"seolink/internal/ports"
)

var (
	jsxHeadingPattern = regexp.MustCompile(`(?s)<h1\b[^>]*>(.*?)</h1>`)
	jsxLinkPattern    = regexp.MustCompile(`<(?:Link|a)\b[^>]*?\b(?:to|href)\s*=\s*\{?\s*["'` + "`" + `]([^"'` + "`" + `]*)["'` + "`" + `]`)
	titleAttr         = attrPattern("title")
	descriptionAttr   = attrPattern("description")

	jsxTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "{", "&#123;", "}", "&#125;")
)

// JSXExtractor reads React page components (.tsx, .jsx) with regular expressions.
// It does not parse JSX; it recognizes the few structures the engine needs.
type JSXExtractor struct {
	metaTag    *regexp.Regexp
	closingTag string
	blocks     []blockPattern
}

type blockPattern struct {
	strategy string
	open     *regexp.Regexp
	close    string
}

// NewJSXExtractor creates an extractor for the given options
func NewJSXExtractor(opts Options) *JSXExtractor {
	meta := opts.MetaTag
	if meta == "" {
		meta = defaultMetaTag
	}
	closing := opts.ClosingTag
	if closing == "" {
		closing = defaultClosingTag
	}

	return &JSXExtractor{
		metaTag: regexp.MustCompile(`<` + regexp.QuoteMeta(meta) +
			`\b((?:[^>"'{` + "`" + `]|"[^"]*"|'[^']*'|` + "`[^`]*`" + `|\{\s*` + "`[^`]*`" + `\s*\}|\{[^}]*\})*)/?>`),
		closingTag: "</" + closing + ">",
		blocks: []blockPattern{
			{strategy: StrategyAfterH2, open: regexp.MustCompile(`<h2\b[^>]*>`), close: "</h2>"},
			{strategy: StrategyAfterH3, open: regexp.MustCompile(`<h3\b[^>]*>`), close: "</h3>"},
			{strategy: StrategyAfterP, open: regexp.MustCompile(`<p\b[^>]*>`), close: "</p>"},
		},
	}
}

// Extract reads the metadata tag, first h1 and internal links
func (e *JSXExtractor) Extract(text string) domain.PageModel {
	var model domain.PageModel

	if m := e.metaTag.FindStringSubmatch(text); m != nil {
		attrs := m[1]
		if a := titleAttr.FindStringSubmatch(attrs); a != nil {
			model.Title = strings.TrimSpace(firstGroup(a))
		}
		if a := descriptionAttr.FindStringSubmatch(attrs); a != nil {
			model.Description = strings.TrimSpace(firstGroup(a))
		}
	}

	if m := jsxHeadingPattern.FindStringSubmatch(text); m != nil {
		model.Heading = cleanText(m[1])
	}

	var targets []string
	for _, m := range jsxLinkPattern.FindAllStringSubmatch(text, -1) {
		targets = append(targets, m[1])
	}
	model.Links = internalLinks(targets)

	return model
}

// InsertionPoints returns the end of the first h2, h3 and p blocks, then the
// start of the last closing content tag
func (e *JSXExtractor) InsertionPoints(text string) []ports.InsertionPoint {
	var points []ports.InsertionPoint

	for _, b := range e.blocks {
		loc := b.open.FindStringIndex(text)
		if loc == nil {
			continue
		}
		end := strings.Index(text[loc[1]:], b.close)
		if end < 0 {
			continue
		}
		points = append(points, ports.InsertionPoint{
			Strategy: b.strategy,
			Offset:   loc[1] + end + len(b.close),
		})
	}

	if i := strings.LastIndex(text, e.closingTag); i >= 0 {
		points = append(points, ports.InsertionPoint{Strategy: StrategyBeforeClose, Offset: i, Before: true})
	}

	return points
}

// References reports whether text links to url
func (e *JSXExtractor) References(text, url string) bool {
	return referencesURL(text, url)
}

// LinkElement renders a related-link paragraph using the router Link component
func (e *JSXExtractor) LinkElement(url, anchor string) string {
	return fmt.Sprintf(`<p className="%s">%s<Link to="/%s">%s</Link></p>`,
		relatedLinkClass, relatedLinkLeadIn, strings.Trim(url, "/"), jsxTextEscaper.Replace(anchor))
}
