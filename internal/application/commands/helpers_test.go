package commands

import (
	"context"
	"strings"
	"time"

	"seolink/internal/adapters/markup"
	"seolink/internal/adapters/memstore"
	"seolink/internal/domain"
)

type stubAnalytics struct {
	rows []domain.PerformanceRow
	err  error
}

func (s *stubAnalytics) LoadPerformanceRows(ctx context.Context) ([]domain.PerformanceRow, error) {
	return s.rows, s.err
}

type captureReports struct {
	reports []domain.Report
	err     error
}

func (c *captureReports) Write(r domain.Report) error {
	if c.err != nil {
		return c.err
	}
	c.reports = append(c.reports, r)
	return nil
}

func strongRow(url string) domain.PerformanceRow {
	return domain.PerformanceRow{
		URL:         "https://www.example.com/" + url + "/",
		Performance: domain.Performance{Clicks: 80, Impressions: 1000, CTR: 0.08, Position: 5},
	}
}

const basicsPage = `export default function Page() {
  return (
    <Layout>
      <SEO title="Stock inventory warehouse" />
      <main>
        <p>Counting what you own.</p>
      </main>
    </Layout>
  );
}
`

const guidePage = `export default function Page() {
  return (
    <Layout>
      <SEO title="Inventory stock software" />
      <main>
        <h2>Overview</h2>
        <p>Pick a system.</p>
      </main>
    </Layout>
  );
}
`

func newTestPipeline(pages map[string]string, rows ...domain.PerformanceRow) (*Pipeline, *memstore.Store) {
	store := memstore.New(pages)
	p := NewPipeline(store, markup.NewRegistry(markup.DefaultOptions()), &stubAnalytics{rows: rows})
	p.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return p, store
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
