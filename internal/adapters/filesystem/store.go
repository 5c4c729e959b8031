package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions controls which files under the content root count as pages
type ScanOptions struct {
	Extensions    []string // e.g. ".tsx"
	ExcludedFiles []string // base names without extension
	ExcludedDirs  []string
}

// DefaultScanOptions returns the standard page filters
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Extensions:    []string{".tsx", ".jsx", ".html"},
		ExcludedFiles: []string{"_app", "_document", "_template", "template", "404"},
		ExcludedDirs:  []string{"components", "utils", "hooks", "lib", "data", "styles", "__tests__"},
	}
}

// Store implements ports.PageStore over a content directory
type Store struct {
	root          string
	extensions    map[string]bool
	excludedFiles map[string]bool
	excludedDirs  map[string]bool
}

// NewStore creates a new filesystem page store
func NewStore(root string, opts ScanOptions) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Store{
		root:          root,
		extensions:    toSet(opts.Extensions, strings.ToLower),
		excludedFiles: toSet(opts.ExcludedFiles, nil),
		excludedDirs:  toSet(opts.ExcludedDirs, nil),
	}
}

// Root returns the expanded content root
func (s *Store) Root() string {
	return s.root
}

// Exists reports whether the content root is an existing directory
func (s *Store) Exists() bool {
	info, err := os.Stat(s.root)
	return err == nil && info.IsDir()
}

// List returns every page source below the root, sorted
func (s *Store) List() ([]string, error) {
	info, err := os.Stat(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat content root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root is not a directory: %s", s.root)
	}

	var pages []string
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			// Unreadable subtrees are skipped
			return nil
		}

		if d.IsDir() {
			if path != s.root && s.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.isPage(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return nil
		}
		pages = append(pages, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan content root: %w", err)
	}

	sort.Strings(pages)
	return pages, nil
}

// Read returns the text of a page
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(s.abs(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the text of a page, keeping its permissions
func (s *Store) Write(path, text string) error {
	full := s.abs(path)
	mode := fs.FileMode(0644)
	if info, err := os.Stat(full); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(full, []byte(text), mode)
}

func (s *Store) abs(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(path))
}

func (s *Store) skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || s.excludedDirs[name]
}

func (s *Store) isPage(name string) bool {
	ext := filepath.Ext(name)
	if !s.extensions[strings.ToLower(ext)] {
		return false
	}
	base := strings.TrimSuffix(name, ext)
	return !strings.HasPrefix(base, "_") && !s.excludedFiles[base]
}

func toSet(values []string, norm func(string) string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if norm != nil {
			v = norm(v)
		}
		if v != "" {
			set[v] = true
		}
	}
	return set
}
