package memstore

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

// Store implements ports.PageStore in memory
type Store struct {
	mu     sync.Mutex
	pages  map[string]string
	fail   map[string]string // path -> op ("read" or "write")
	writes map[string]int
}

// New creates a store seeded with pages keyed by relative path
func New(pages map[string]string) *Store {
	s := &Store{
		pages:  make(map[string]string, len(pages)),
		fail:   make(map[string]string),
		writes: make(map[string]int),
	}
	for p, text := range pages {
		s.pages[p] = text
	}
	return s
}

// Fail makes every subsequent op ("read" or "write") on path return an error
func (s *Store) Fail(path, op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = op
}

// List returns all page paths, sorted
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.pages))
	for p := range s.pages {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// Read returns the text of a page
func (s *Store) Read(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail[path] == "read" {
		return "", fmt.Errorf("read %s: %w", path, fs.ErrPermission)
	}
	text, ok := s.pages[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return text, nil
}

// Write replaces the text of a page
func (s *Store) Write(path, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail[path] == "write" {
		return fmt.Errorf("write %s: %w", path, fs.ErrPermission)
	}
	s.pages[path] = text
	s.writes[path]++
	return nil
}

// Text returns the current text of a page
func (s *Store) Text(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages[path]
}

// Writes returns how many times path was written
func (s *Store) Writes(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[path]
}

// TotalWrites returns the number of writes across all pages
func (s *Store) TotalWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.writes {
		n += c
	}
	return n
}
