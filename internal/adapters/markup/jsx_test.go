package markup

import (
	"reflect"
	"strings"
	"testing"
)

const guidePage = `import { SEO } from "../components/SEO";
import { Link } from "react-router-dom";

export default function InventoryGuide() {
  return (
    <Layout>
      <SEO
        title="Inventory Guide for Small Teams"
        description={"How to run stock control without spreadsheets"}
        canonical="/inventory-guide"
      />
      <main>
        <h1 className="hero">The <em>complete</em> inventory guide &amp; {year} checklist</h1>
        <p>Start with <Link to="/inventory-basics">the basics</Link>.</p>
        <h2>Why it matters</h2>
        <p>See <Link to={"/glossary/safety-stock/"}>safety stock</Link> and <a href="https://example.com">this</a>.</p>
      </main>
    </Layout>
  );
}
`

func TestJSXExtractor_Extract(t *testing.T) {
	e := NewJSXExtractor(DefaultOptions())
	model := e.Extract(guidePage)

	if model.Title != "Inventory Guide for Small Teams" {
		t.Errorf("unexpected title: %q", model.Title)
	}
	if model.Description != "How to run stock control without spreadsheets" {
		t.Errorf("unexpected description: %q", model.Description)
	}
	if model.Heading != "The complete inventory guide & checklist" {
		t.Errorf("unexpected heading: %q", model.Heading)
	}
	want := []string{"/inventory-basics", "/glossary/safety-stock/"}
	if !reflect.DeepEqual(model.Links, want) {
		t.Errorf("expected links %v, got %v", want, model.Links)
	}
}

func TestJSXExtractor_ExtractQuotingForms(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"double", `<SEO title="A" />`, "A"},
		{"single", `<SEO title='A' />`, "A"},
		{"backtick", "<SEO title=`A` />", "A"},
		{"brace double", `<SEO title={"A"} />`, "A"},
		{"brace backtick", "<SEO title={`A`} />", "A"},
		{"absent", `<SEO description="x" />`, ""},
	}

	e := NewJSXExtractor(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Extract(tt.tag).Title; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestJSXExtractor_ExtractTemplateInterpolation(t *testing.T) {
	e := NewJSXExtractor(DefaultOptions())

	got := e.Extract("<SEO title={`Stock ${year} guide`} description=\"Inventory basics\" />\n<h1>Hi</h1>")
	if got.Title != "Stock ${year} guide" {
		t.Errorf("expected interpolated title, got %q", got.Title)
	}
	if got.Description != "Inventory basics" {
		t.Errorf("expected description after template literal, got %q", got.Description)
	}
	if got.Heading != "Hi" {
		t.Errorf("expected heading Hi, got %q", got.Heading)
	}
}

func TestJSXExtractor_ExtractEmpty(t *testing.T) {
	model := NewJSXExtractor(DefaultOptions()).Extract("export const x = 1;")
	if model.Title != "" || model.Heading != "" || len(model.Links) != 0 {
		t.Errorf("expected empty model, got %+v", model)
	}
}

func TestJSXExtractor_CustomMetaTag(t *testing.T) {
	e := NewJSXExtractor(Options{MetaTag: "PageMeta"})
	model := e.Extract(`<SEO title="wrong" /><PageMeta title="right" />`)
	if model.Title != "right" {
		t.Errorf("expected custom meta tag to be used, got %q", model.Title)
	}
}

func TestJSXExtractor_InsertionPoints(t *testing.T) {
	e := NewJSXExtractor(DefaultOptions())
	points := e.InsertionPoints(guidePage)

	if len(points) != 3 {
		t.Fatalf("expected h2, p and close points, got %+v", points)
	}
	if points[0].Strategy != StrategyAfterH2 {
		t.Errorf("expected h2 first, got %s", points[0].Strategy)
	}
	if !strings.HasSuffix(guidePage[:points[0].Offset], "<h2>Why it matters</h2>") {
		t.Errorf("h2 offset not at end of block: %q", guidePage[points[0].Offset-20:points[0].Offset])
	}
	if points[1].Strategy != StrategyAfterP {
		t.Errorf("expected p second, got %s", points[1].Strategy)
	}
	last := points[2]
	if last.Strategy != StrategyBeforeClose || !last.Before {
		t.Errorf("expected before-close point, got %+v", last)
	}
	if !strings.HasPrefix(guidePage[last.Offset:], "</main>") {
		t.Errorf("close offset not at </main>: %q", guidePage[last.Offset:last.Offset+10])
	}
}

func TestJSXExtractor_InsertionPointsNone(t *testing.T) {
	e := NewJSXExtractor(DefaultOptions())
	if points := e.InsertionPoints(`<div><h1>Only a title</h1><svg><path d="M0" /></svg></div>`); len(points) != 0 {
		t.Errorf("expected no points, got %+v", points)
	}
}

func TestJSXExtractor_LinkElement(t *testing.T) {
	e := NewJSXExtractor(DefaultOptions())

	got := e.LinkElement("glossary/safety-stock", "Safety {Stock} <Guide>")
	want := `<p className="related-link">Related: <Link to="/glossary/safety-stock">Safety &#123;Stock&#125; &lt;Guide&gt;</Link></p>`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	if !e.References(got, "glossary/safety-stock") {
		t.Error("rendered element should reference its own target")
	}
}
