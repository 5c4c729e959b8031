package bootstrap

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"seolink/internal/adapters/sqlite"
	"seolink/internal/application"
	"seolink/internal/application/commands"
	"seolink/internal/config"
)

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Ranking.MinSimilarity = 1.5

	if _, err := New(cfg, io.Discard, ""); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRequireRoot(t *testing.T) {
	cfg := config.Default()
	cfg.ContentRoot = filepath.Join(t.TempDir(), "missing")

	e, err := New(cfg, io.Discard, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.RequireRoot(); !errors.Is(err, application.ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}
}

func TestEngine_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	pages := filepath.Join(dir, "src", "pages")
	if err := os.MkdirAll(filepath.Join(pages, "inventory-guide"), 0755); err != nil {
		t.Fatal(err)
	}
	write := func(rel, text string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("src/pages/inventory-basics.tsx", `<SEO title="Stock inventory warehouse" />
<main>
  <p>Counting.</p>
</main>
`)
	write("src/pages/inventory-guide/index.tsx", `<SEO title="Inventory stock software" />
<main>
  <h2>Overview</h2>
</main>
`)
	write("analytics.csv", "page,clicks,impressions,ctr,position\nhttps://www.example.com/inventory-guide/,80,1000,8%,5\n")

	cfg := config.Default()
	cfg.ContentRoot = pages
	cfg.AnalyticsPath = filepath.Join(dir, "analytics.csv")
	cfg.ReportPath = filepath.Join(dir, "report.json")
	cfg.DBPath = filepath.Join(dir, "graph.db")

	e, err := New(cfg, io.Discard, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.RequireRoot(); err != nil {
		t.Fatalf("RequireRoot failed: %v", err)
	}

	result, err := commands.NewRunLinksCommand(e.Pipeline, e.Reports).Execute(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Report.Summary.LinksAdded != 1 {
		t.Errorf("expected 1 link, got %+v", result.Report.Summary)
	}
	if _, err := os.Stat(cfg.ReportPath); err != nil {
		t.Errorf("expected report file: %v", err)
	}

	if _, err := e.QueryGraph(); !errors.Is(err, sqlite.ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot before index, got %v", err)
	}
	if _, err := os.Stat(cfg.DBPath); !os.IsNotExist(err) {
		t.Errorf("querying must not create the snapshot, got %v", err)
	}

	g, err := e.OpenGraph()
	if err != nil {
		t.Fatalf("OpenGraph failed: %v", err)
	}
	defer g.Close()
	if g.Path() != cfg.DBPath {
		t.Errorf("expected configured db path, got %s", g.Path())
	}
}
