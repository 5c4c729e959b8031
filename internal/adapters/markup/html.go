package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"seolink/internal/domain"
	"seolink/internal/ports"
)

var htmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// HTMLExtractor reads static HTML pages. The page model comes from a goquery
// document; insertion offsets come from the tokenizer so the source bytes are
// never re-rendered.
type HTMLExtractor struct {
	closingTag string
}

// NewHTMLExtractor creates an extractor for the given options
func NewHTMLExtractor(opts Options) *HTMLExtractor {
	closing := opts.ClosingTag
	if closing == "" {
		closing = defaultClosingTag
	}
	return &HTMLExtractor{closingTag: strings.ToLower(closing)}
}

// Extract reads <title>, meta description, first h1 and internal anchors
func (e *HTMLExtractor) Extract(text string) domain.PageModel {
	var model domain.PageModel

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return model
	}

	model.Title = collapse(doc.Find("title").First().Text())
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		model.Description = collapse(desc)
	}
	model.Heading = collapse(doc.Find("h1").First().Text())

	var targets []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			targets = append(targets, href)
		}
	})
	model.Links = internalLinks(targets)

	return model
}

// InsertionPoints walks the token stream and records byte offsets of the first
// closing h2, h3 and p tags and of the last closing content tag
func (e *HTMLExtractor) InsertionPoints(text string) []ports.InsertionPoint {
	after := map[string]int{"h2": -1, "h3": -1, "p": -1}
	closeAt := -1

	z := html.NewTokenizer(strings.NewReader(text))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())

		if tt != html.EndTagToken {
			continue
		}
		name, _ := z.TagName()
		tag := string(name)
		if pos, tracked := after[tag]; tracked && pos < 0 {
			after[tag] = offset
		}
		if tag == e.closingTag {
			closeAt = start
		}
	}

	var points []ports.InsertionPoint
	for _, s := range []struct{ tag, strategy string }{
		{"h2", StrategyAfterH2},
		{"h3", StrategyAfterH3},
		{"p", StrategyAfterP},
	} {
		if after[s.tag] >= 0 {
			points = append(points, ports.InsertionPoint{Strategy: s.strategy, Offset: after[s.tag]})
		}
	}
	if closeAt >= 0 {
		points = append(points, ports.InsertionPoint{Strategy: StrategyBeforeClose, Offset: closeAt, Before: true})
	}

	return points
}

// References reports whether text links to url
func (e *HTMLExtractor) References(text, url string) bool {
	return referencesURL(text, url)
}

// LinkElement renders a related-link paragraph with a plain anchor
func (e *HTMLExtractor) LinkElement(url, anchor string) string {
	return fmt.Sprintf(`<p class="%s">%s<a href="/%s">%s</a></p>`,
		relatedLinkClass, relatedLinkLeadIn, strings.Trim(url, "/"), htmlTextEscaper.Replace(anchor))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
