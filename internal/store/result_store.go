package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"primers/internal/domain"
)

const resultsFilename = "results.json"

// ResultFileStore persists the history of finished games to disk.
type ResultFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewResultFileStore returns a ResultFileStore rooted at dir.
func NewResultFileStore(dir string) *ResultFileStore {
	return &ResultFileStore{dir: dir}
}

// Path is the location of the history file.
func (s *ResultFileStore) Path() string {
	return filepath.Join(s.dir, resultsFilename)
}

// SaveResult appends r to the history.
func (s *ResultFileStore) SaveResult(r domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []domain.Result
	if err := readJSON(s.Path(), &results); err != nil {
		return err
	}
	results = append(results, r)
	return writeJSON(s.Path(), results, 0o600)
}

// ListResults returns every stored result ordered by start time.
func (s *ResultFileStore) ListResults() ([]domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []domain.Result
	if err := readJSON(s.Path(), &results); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StartedAt.Before(results[j].StartedAt)
	})
	return results, nil
}

// ClearResults removes the history file.
func (s *ResultFileStore) ClearResults() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that ResultFileStore implements domain.ResultStore.
var _ domain.ResultStore = (*ResultFileStore)(nil)
