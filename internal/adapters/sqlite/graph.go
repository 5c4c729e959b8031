package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"seolink/internal/domain"
	"seolink/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// ErrNoSnapshot is returned by OpenReadOnly when no snapshot has been written
var ErrNoSnapshot = errors.New("no link graph snapshot")

// Graph implements ports.LinkGraph using SQLite
type Graph struct {
	db     *sql.DB
	dbPath string
}

// Ensure Graph implements LinkGraph
var _ ports.LinkGraph = (*Graph)(nil)

// NewGraph creates a new SQLite link graph
func NewGraph() *Graph {
	return &Graph{}
}

// Open initializes the database at dbPath, creating it when needed
func (g *Graph) Open(dbPath string) error {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return err
	}
	g.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	g.db = db

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS pages (
			url TEXT PRIMARY KEY,
			source_path TEXT NOT NULL,
			title TEXT NOT NULL,
			heading TEXT NOT NULL,
			keywords TEXT NOT NULL,
			clicks INTEGER,
			impressions INTEGER,
			ctr REAL,
			position REAL,
			high_authority INTEGER NOT NULL,
			low_authority INTEGER NOT NULL,
			link_starved INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			source_url TEXT NOT NULL,
			target_url TEXT NOT NULL,
			PRIMARY KEY (source_url, target_url)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_url);
		CREATE INDEX IF NOT EXISTS idx_pages_starved ON pages(link_starved);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// OpenReadOnly opens an existing snapshot for queries. It never creates the
// file or its directory; a missing file yields ErrNoSnapshot.
func (g *Graph) OpenReadOnly(dbPath string) error {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return err
	}
	g.dbPath = dbPath

	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", dbPath, ErrNoSnapshot)
	} else if err != nil {
		return fmt.Errorf("failed to stat snapshot: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to open database: %w", err)
	}
	g.db = db
	return nil
}

func expandHome(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// Close closes the database connection
func (g *Graph) Close() error {
	if g.db != nil {
		return g.db.Close()
	}
	return nil
}

// Path returns the database file path
func (g *Graph) Path() string {
	return g.dbPath
}

// LinkStarved returns stored link-starved pages, fewest incoming links first.
// A non-positive limit returns every page.
func (g *Graph) LinkStarved(limit int) ([]domain.StarvedPage, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := g.db.Query(`
		SELECT p.url, p.source_path, p.title, p.keywords,
			(SELECT COUNT(*) FROM links l WHERE l.target_url = p.url) AS incoming
		FROM pages p
		WHERE p.link_starved = 1
		ORDER BY incoming ASC, p.url ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.StarvedPage
	for rows.Next() {
		var p domain.StarvedPage
		var keywords string
		if err := rows.Scan(&p.URL, &p.SourcePath, &p.Title, &keywords, &p.Incoming); err != nil {
			return nil, err
		}
		p.Keywords = strings.Fields(keywords)
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// LastRunID returns the run id of the stored snapshot, or "" when none was saved
func (g *Graph) LastRunID() (string, error) {
	var runID string
	err := g.db.QueryRow(`SELECT value FROM meta WHERE key = 'run_id'`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return runID, err
}

// DatabasePath returns the default snapshot location for a content root
func DatabasePath(contentRoot string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	if abs, err := filepath.Abs(contentRoot); err == nil {
		contentRoot = abs
	}

	return filepath.Join(dataHome, "seolink", hashRoot(contentRoot)+".db")
}

// hashRoot returns a short hash of the content root
func hashRoot(root string) string {
	h := sha256.Sum256([]byte(root))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}
