package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"seolink/internal/adapters/markup"
	"seolink/internal/adapters/memstore"
	"seolink/internal/application/commands"
	"seolink/internal/domain"
)

type staticAnalytics []domain.PerformanceRow

func (s staticAnalytics) LoadPerformanceRows(ctx context.Context) ([]domain.PerformanceRow, error) {
	return s, nil
}

type discardReports struct {
	written int
	last    domain.Report
}

func (d *discardReports) Write(r domain.Report) error {
	d.written++
	d.last = r
	return nil
}

const basicsPage = `<Layout>
  <SEO title="Stock inventory warehouse" />
  <main>
    <p>Counting what you own.</p>
  </main>
</Layout>
`

const guidePage = `<Layout>
  <SEO title="Inventory stock software" />
  <main>
    <h2>Overview</h2>
    <p>Pick a system.</p>
  </main>
</Layout>
`

func newTestPipeline() (*commands.Pipeline, *memstore.Store) {
	store := memstore.New(map[string]string{
		"inventory-basics.tsx":      basicsPage,
		"inventory-guide/index.tsx": guidePage,
	})
	rows := staticAnalytics{{
		URL:         "https://www.example.com/inventory-guide/",
		Performance: domain.Performance{Clicks: 80, Impressions: 1000, CTR: 0.08, Position: 5},
	}}
	return commands.NewPipeline(store, markup.NewRegistry(markup.DefaultOptions()), rows), store
}

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("expected tool content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestSuggestHandler(t *testing.T) {
	p, _ := newTestPipeline()

	res, err := suggestHandler(p)(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	got := resultText(t, res)
	if !strings.Contains(got, "inventory-guide") || !strings.Contains(got, "-> /inventory-basics") {
		t.Errorf("expected guide -> basics suggestion, got:\n%s", got)
	}

	res, _ = suggestHandler(p)(context.Background(), request(map[string]any{"source": "inventory-basics"}))
	if got := resultText(t, res); got != "No suggestions." {
		t.Errorf("expected no suggestions for basics, got %q", got)
	}
}

func TestClassifyHandler(t *testing.T) {
	p, _ := newTestPipeline()

	tests := []struct {
		name    string
		bucket  string
		want    string
		isError bool
	}{
		{name: "summary", bucket: "", want: "1 high-authority"},
		{name: "high bucket", bucket: "high", want: "/inventory-guide"},
		{name: "starved bucket", bucket: "starved", want: "/inventory-basics"},
		{name: "unknown bucket", bucket: "medium", want: "invalid bucket", isError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := classifyHandler(p)(context.Background(), request(map[string]any{"bucket": tt.bucket}))
			if err != nil {
				t.Fatalf("handler failed: %v", err)
			}
			if res.IsError != tt.isError {
				t.Errorf("expected IsError=%v, got %v", tt.isError, res.IsError)
			}
			if got := resultText(t, res); !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in %q", tt.want, got)
			}
		})
	}
}

func TestPageInfoHandler(t *testing.T) {
	p, _ := newTestPipeline()

	res, _ := pageInfoHandler(p)(context.Background(), request(map[string]any{"url": "https://www.example.com/inventory-guide/"}))
	got := resultText(t, res)
	for _, want := range []string{"file: inventory-guide/index.tsx", "high-authority", "suggested to /inventory-basics"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}

	res, _ = pageInfoHandler(p)(context.Background(), request(nil))
	if !res.IsError {
		t.Error("expected error without url")
	}

	res, _ = pageInfoHandler(p)(context.Background(), request(map[string]any{"url": "missing-page"}))
	if !res.IsError {
		t.Error("expected error for unknown page")
	}
}

func TestApplyHandler_PreviewThenConfirm(t *testing.T) {
	p, store := newTestPipeline()
	reports := &discardReports{}

	res, _ := applyHandler(p, reports, commands.DefaultReportLimit)(context.Background(), request(nil))
	got := resultText(t, res)
	if !strings.Contains(got, "Preview: Would update 1 pages") {
		t.Errorf("unexpected preview: %q", got)
	}
	if store.TotalWrites() != 0 || reports.written != 0 {
		t.Fatal("preview must not write pages or reports")
	}

	res, _ = applyHandler(p, reports, commands.DefaultReportLimit)(context.Background(), request(map[string]any{"confirm": true}))
	got = resultText(t, res)
	if !strings.Contains(got, "Added 1 links to 1 pages") {
		t.Errorf("unexpected apply result: %q", got)
	}
	if !strings.Contains(store.Text("inventory-guide/index.tsx"), `<Link to="/inventory-basics">`) {
		t.Error("expected link written into the guide page")
	}
	if reports.written != 1 {
		t.Errorf("expected one report, got %d", reports.written)
	}
}

func TestApplyHandler_ReportLimit(t *testing.T) {
	store := memstore.New(map[string]string{
		"inventory-basics.tsx":      basicsPage,
		"inventory-guide/index.tsx": guidePage,
		"stock-guide/index.tsx":     guidePage,
	})
	perf := domain.Performance{Clicks: 80, Impressions: 1000, CTR: 0.08, Position: 5}
	rows := staticAnalytics{
		{URL: "/inventory-guide", Performance: perf},
		{URL: "/stock-guide", Performance: perf},
	}
	p := commands.NewPipeline(store, markup.NewRegistry(markup.DefaultOptions()), rows)
	reports := &discardReports{}

	res, _ := applyHandler(p, reports, 1)(context.Background(), request(map[string]any{"confirm": true}))
	if res.IsError {
		t.Fatalf("apply failed: %s", resultText(t, res))
	}

	rep := reports.last
	if rep.Summary.PagesUpdated < 2 {
		t.Fatalf("expected both hubs updated, got %+v", rep.Summary)
	}
	if len(rep.Added) != 1 {
		t.Errorf("expected added list cut to 1 entry, got %d", len(rep.Added))
	}
}
