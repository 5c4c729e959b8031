package analytics

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"seolink/internal/domain"
)

// Header aliases accepted for each column, lowercased
var columnAliases = map[string][]string{
	"url":         {"url", "page", "pages", "top pages", "address", "landing page"},
	"clicks":      {"clicks", "url clicks"},
	"impressions": {"impressions"},
	"ctr":         {"ctr", "url ctr"},
	"position":    {"position", "average position", "avg. position"},
}

// RowError is a data row that could not be parsed and was left out
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("invalid analytics row %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// CSVSource implements ports.AnalyticsSource over a search-console "Pages" export
type CSVSource struct {
	path   string
	logger *log.Logger
}

// NewCSVSource creates a source reading path. Skipped rows are logged to logger;
// a nil logger uses the default one.
func NewCSVSource(path string, logger *log.Logger) *CSVSource {
	if logger == nil {
		logger = log.Default()
	}
	return &CSVSource{path: path, logger: logger}
}

// LoadPerformanceRows reads every row of the export. A missing file yields no rows
// and malformed rows are skipped with a warning.
func (s *CSVSource) LoadPerformanceRows(ctx context.Context) ([]domain.PerformanceRow, error) {
	if s.path == "" {
		return nil, nil
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics export: %w", err)
	}
	defer f.Close()

	rows, skipped, err := ParseCSV(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, rowErr := range skipped {
		s.logger.Warn("skipping analytics row", "file", s.path, "line", rowErr.Line, "err", rowErr.Err)
	}
	return rows, nil
}

// ParseCSV reads performance rows from r. The header row is matched
// case-insensitively; only the url column is required. Rows whose values
// cannot be parsed are returned as RowErrors instead of failing the read.
func ParseCSV(ctx context.Context, r io.Reader) ([]domain.PerformanceRow, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read analytics header: %w", err)
	}

	cols := mapColumns(header)
	if _, ok := cols["url"]; !ok {
		return nil, nil, fmt.Errorf("analytics export has no url column (header: %s)", strings.Join(header, ", "))
	}

	var (
		rows    []domain.PerformanceRow
		skipped []RowError
	)
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read analytics row %d: %w", line, err)
		}

		row, ok, err := parseRecord(record, cols)
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}
		if ok {
			rows = append(rows, row)
		}
	}

	return rows, skipped, nil
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for key, aliases := range columnAliases {
			if _, seen := cols[key]; seen {
				continue
			}
			for _, a := range aliases {
				if h == a {
					cols[key] = i
				}
			}
		}
	}
	return cols
}

func parseRecord(record []string, cols map[string]int) (domain.PerformanceRow, bool, error) {
	field := func(key string) string {
		i, ok := cols[key]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var row domain.PerformanceRow
	raw := field("url")
	if raw == "" {
		return row, false, nil
	}
	row.URL = Normalize(raw)

	var err error
	if row.Clicks, err = parseCount(field("clicks")); err != nil {
		return row, false, fmt.Errorf("clicks: %w", err)
	}
	if row.Impressions, err = parseCount(field("impressions")); err != nil {
		return row, false, fmt.Errorf("impressions: %w", err)
	}
	if row.CTR, err = parseRatio(field("ctr")); err != nil {
		return row, false, fmt.Errorf("ctr: %w", err)
	}
	if row.Position, err = parseFloat(field("position")); err != nil {
		return row, false, fmt.Errorf("position: %w", err)
	}

	return row, true, nil
}

func parseCount(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

// parseRatio accepts "12.5%" or "0.125"
func parseRatio(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := parseFloat(strings.TrimSpace(pct))
		return v / 100, err
	}
	return parseFloat(s)
}
