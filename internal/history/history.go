// Package history records actions against data sources in a JSON file.
package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tablewise/tablewise/internal/table"
)

// Entry is one recorded action.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Action        string    `json:"action"`
	Source        string    `json:"source"`
	Query         string    `json:"query,omitempty"`
	ResultPreview string    `json:"result_preview,omitempty"`
}

// Store reads and appends history entries, keeping the newest maxEntries.
type Store struct {
	path       string
	maxEntries int
}

// NewStore uses dir/history.json, trimming to maxEntries on every append.
func NewStore(dir string, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = 100
	}
	return &Store{path: filepath.Join(dir, "history.json"), maxEntries: maxEntries}
}

// Load returns recorded entries, oldest first. A missing file is an empty
// history; a corrupt file is discarded with a warning rather than failing.
func (s *Store) Load() []Entry {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("discarding corrupt history file %s: %v", s.path, err)
		return nil
	}
	return entries
}

// Append records one action, truncating the preview to the cell bound.
func (s *Store) Append(action, source, query, resultPreview string) error {
	entries := s.Load()
	entries = append(entries, Entry{
		ID:            uuid.NewString(),
		Timestamp:     time.Now(),
		Action:        action,
		Source:        source,
		Query:         query,
		ResultPreview: table.Truncate(resultPreview, table.MaxCellLen),
	})
	if len(entries) > s.maxEntries {
		entries = entries[len(entries)-s.maxEntries:]
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir state dir: %w", err)
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Clear deletes the history file.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
