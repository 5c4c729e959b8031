package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seolink/internal/domain"
)

// JSONWriter implements ports.ReportWriter as an indented JSON file
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a writer targeting path
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Path returns the report file path
func (w *JSONWriter) Path() string {
	return w.path
}

// Write encodes the report to a temporary file in the same directory and
// renames it over the target, so readers never see a partial report
func (w *JSONWriter) Write(r domain.Report) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".seolink-report-*.json")
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	return nil
}
