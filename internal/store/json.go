package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"learnmaths/internal/user"
)

// JSONStore keeps every record in memory and rewrites one JSON document on
// each Put.
type JSONStore struct {
	mu      sync.RWMutex
	path    string
	records map[string]user.Record
}

// OpenJSON loads the store at path. A missing file is an empty store.
func OpenJSON(path string) (*JSONStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	s := &JSONStore{path: path, records: map[string]user.Record{}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store: %w", err)
	}
	records := map[string]user.Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse store %s: %w", s.path, err)
	}
	if records == nil {
		records = map[string]user.Record{}
	}
	s.records = records
	return nil
}

// Get returns a copy of the record stored under key.
func (s *JSONStore) Get(_ context.Context, key string) (user.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[key]
	if !ok {
		return user.Record{}, false, nil
	}
	return record.Clone(), true, nil
}

// Put stores record under key and persists the whole document.
func (s *JSONStore) Put(_ context.Context, key string, record user.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, existed := s.records[key]
	s.records[key] = record.Clone()
	if err := s.save(); err != nil {
		if existed {
			s.records[key] = previous
		} else {
			delete(s.records, key)
		}
		return err
	}
	return nil
}

// Close is a no-op; every Put is already on disk.
func (s *JSONStore) Close() error { return nil }

// save writes the document through a temporary file and an atomic rename.
func (s *JSONStore) save() error {
	payload, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return err
		}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
