package domain

import (
	"net/url"
	"path"
	"strings"
)

// GlossarySegment is the namespace directory whose children keep their full path
const GlossarySegment = "glossary"

// indexName is the file name that stands for its directory
const indexName = "index"

// DefaultLegacySlugs are glossary pages that were published at the site root
// before moving under /glossary/ and must keep their old url.
var DefaultLegacySlugs = []string{
	"asset-tracking",
	"inventory-turnover",
	"safety-stock",
	"reorder-point",
	"economic-order-quantity",
	"stock-keeping-unit",
	"cycle-counting",
	"just-in-time-inventory",
}

// URLResolver derives a page url from its source path
type URLResolver struct {
	legacy map[string]bool
}

// NewURLResolver creates a resolver with the given legacy slug allow-list
func NewURLResolver(legacySlugs []string) *URLResolver {
	legacy := make(map[string]bool, len(legacySlugs))
	for _, s := range legacySlugs {
		legacy[strings.Trim(strings.TrimSpace(s), "/")] = true
	}
	return &URLResolver{legacy: legacy}
}

// Resolve maps a source path relative to the content root onto a url.
//
// Outside the glossary only the last path segment survives, so pages that share
// a basename in different folders resolve to the same url; callers drop the
// duplicates. The second return value is false when no url can be derived.
func (r *URLResolver) Resolve(sourcePath string) (string, bool) {
	p := strings.ReplaceAll(sourcePath, "\\", "/")
	p = strings.TrimSuffix(p, path.Ext(p))

	segments := splitSegments(p)
	if n := len(segments); n > 0 && segments[n-1] == indexName {
		segments = segments[:n-1]
	}
	if len(segments) == 0 {
		return "", false
	}

	if segments[0] == GlossarySegment {
		rest := segments[1:]
		if len(rest) == 0 {
			return GlossarySegment, true
		}
		if len(rest) == 1 && r.legacy[rest[0]] {
			return rest[0], true
		}
		return strings.Join(segments, "/"), true
	}

	return segments[len(segments)-1], true
}

// NormalizeLinkTarget turns an internal link target ("/a/b/?x#y") into the
// site-relative form used by PageRecord.URL ("a/b"). Targets that do not
// start with a single "/" are external or relative and are rejected.
func NormalizeLinkTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "", false
	}
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	return strings.Trim(target, "/"), true
}

// NormalizeURL strips scheme and host and drops a trailing slash except on the root.
// It is the join key between analytics rows and pages.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil {
			raw = u.Path
		}
	}
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	if len(raw) > 1 {
		raw = strings.TrimRight(raw, "/")
		if raw == "" {
			raw = "/"
		}
	}
	return raw
}

func splitSegments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" && s != "." {
			out = append(out, s)
		}
	}
	return out
}
