package markup

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"seolink/internal/domain"
	"seolink/internal/ports"
)

// Insertion strategies in priority order
const (
	StrategyAfterH2     = "after-h2"
	StrategyAfterH3     = "after-h3"
	StrategyAfterP      = "after-p"
	StrategyBeforeClose = "before-close"
)

const (
	relatedLinkClass  = "related-link"
	relatedLinkLeadIn = "Related: "
	defaultMetaTag    = "SEO"
	defaultClosingTag = "main"
)

// Options configures the dialect extractors
type Options struct {
	MetaTag    string // JSX component carrying title/description, e.g. "SEO"
	ClosingTag string // content-section element whose closing tag is the last-resort insertion point
}

// DefaultOptions returns the standard extractor options
func DefaultOptions() Options {
	return Options{MetaTag: defaultMetaTag, ClosingTag: defaultClosingTag}
}

// Registry implements ports.ExtractorResolver keyed by file extension
type Registry struct {
	byExt map[string]ports.PageModelExtractor
}

// NewRegistry creates a registry with the JSX and HTML extractors
func NewRegistry(opts Options) *Registry {
	if opts.MetaTag == "" {
		opts.MetaTag = defaultMetaTag
	}
	if opts.ClosingTag == "" {
		opts.ClosingTag = defaultClosingTag
	}

	jsx := NewJSXExtractor(opts)
	htm := NewHTMLExtractor(opts)
	return &Registry{byExt: map[string]ports.PageModelExtractor{
		".tsx":  jsx,
		".jsx":  jsx,
		".html": htm,
		".htm":  htm,
	}}
}

// Register adds or replaces the extractor for ext
func (r *Registry) Register(ext string, e ports.PageModelExtractor) {
	r.byExt[strings.ToLower(ext)] = e
}

// ExtractorFor returns the extractor for the page's extension, or nil
func (r *Registry) ExtractorFor(p string) ports.PageModelExtractor {
	return r.byExt[strings.ToLower(path.Ext(p))]
}

const attrValue = `\s*=\s*(?:"([^"]*)"|'([^']*)'|` + "`([^`]*)`" +
	`|\{\s*"([^"]*)"\s*\}|\{\s*'([^']*)'\s*\}|\{\s*` + "`([^`]*)`" + `\s*\})`

// attrPattern matches name="…" in any of the quoting forms pages use
func attrPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + attrValue)
}

// firstGroup returns the first non-empty capture of m
func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// cleanText strips nested tags and expressions, unescapes entities and trims
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(domain.StripMarkup(s)))
}

// referencePattern matches a to= or href= attribute pointing at /url
func referencePattern(url string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:to|href)\s*=\s*\{?\s*["'` + "`" + `]/` +
		regexp.QuoteMeta(strings.Trim(url, "/")) + `/?(?:["'` + "`" + `?#])`)
}

// referencesURL reports whether text links to url
func referencesURL(text, url string) bool {
	return referencePattern(url).MatchString(text)
}

// internalLinks keeps targets that are site-relative paths
func internalLinks(targets []string) []string {
	var out []string
	for _, t := range targets {
		t = strings.TrimSpace(t)
		if strings.HasPrefix(t, "/") && !strings.HasPrefix(t, "//") {
			out = append(out, t)
		}
	}
	return out
}
