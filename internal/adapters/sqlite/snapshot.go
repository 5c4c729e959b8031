package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"seolink/internal/domain"
)

// SaveSnapshot replaces the stored graph in a single transaction
func (g *Graph) SaveSnapshot(runID string, idx *domain.ContentIndex, c domain.Classification) (*domain.SnapshotStats, error) {
	start := time.Now()
	stats := &domain.SnapshotStats{}

	tx, err := g.begin()
	if err != nil {
		return nil, err
	}
	defer tx.rollback()

	if err := tx.clear(); err != nil {
		return nil, fmt.Errorf("failed to clear snapshot: %w", err)
	}

	for _, page := range idx.Pages() {
		if err := tx.insertPage(page, c); err != nil {
			return nil, fmt.Errorf("failed to store page %s: %w", page.URL, err)
		}
		stats.PagesWritten++

		for _, target := range page.OutgoingLinks.Sorted() {
			if err := tx.insertLink(page.URL, target); err != nil {
				return nil, fmt.Errorf("failed to store link %s -> %s: %w", page.URL, target, err)
			}
			stats.LinksWritten++
		}
	}

	if err := tx.setMeta("run_id", runID); err != nil {
		return nil, err
	}
	if err := tx.setMeta("snapshot_time", fmt.Sprint(time.Now().Unix())); err != nil {
		return nil, err
	}

	if err := tx.commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// snapshotTx batches snapshot writes with prepared statements
type snapshotTx struct {
	tx       *sql.Tx
	pageStmt *sql.Stmt
	linkStmt *sql.Stmt
	done     bool
}

func (g *Graph) begin() (*snapshotTx, error) {
	if g.db == nil {
		return nil, fmt.Errorf("snapshot database is not open")
	}

	tx, err := g.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	pageStmt, err := tx.Prepare(`
		INSERT INTO pages (url, source_path, title, heading, keywords,
			clicks, impressions, ctr, position,
			high_authority, low_authority, link_starved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	linkStmt, err := tx.Prepare(`INSERT OR IGNORE INTO links (source_url, target_url) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	return &snapshotTx{tx: tx, pageStmt: pageStmt, linkStmt: linkStmt}, nil
}

func (t *snapshotTx) clear() error {
	if _, err := t.tx.Exec(`DELETE FROM pages`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM links`)
	return err
}

func (t *snapshotTx) insertPage(p *domain.PageRecord, c domain.Classification) error {
	var clicks, impressions sql.NullInt64
	var ctr, position sql.NullFloat64
	if perf := p.Performance; perf != nil {
		clicks = sql.NullInt64{Int64: int64(perf.Clicks), Valid: true}
		impressions = sql.NullInt64{Int64: int64(perf.Impressions), Valid: true}
		ctr = sql.NullFloat64{Float64: perf.CTR, Valid: true}
		position = sql.NullFloat64{Float64: perf.Position, Valid: true}
	}

	_, err := t.pageStmt.Exec(
		p.URL, p.SourcePath, p.Title, p.Heading, strings.Join(p.Keywords, " "),
		clicks, impressions, ctr, position,
		c.IsHigh(p.URL), c.IsLow(p.URL), c.IsStarved(p.URL),
	)
	return err
}

func (t *snapshotTx) insertLink(source, target string) error {
	_, err := t.linkStmt.Exec(source, target)
	return err
}

func (t *snapshotTx) setMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (t *snapshotTx) commit() error {
	t.done = true
	return t.tx.Commit()
}

// rollback aborts the transaction unless it was committed
func (t *snapshotTx) rollback() {
	if !t.done {
		t.tx.Rollback()
	}
}
