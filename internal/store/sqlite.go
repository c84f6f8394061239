package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"learnmaths/internal/user"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS users (
	key TEXT PRIMARY KEY,
	record_json TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteStore keeps one row per record, holding the record as JSON.
type SQLiteStore struct {
	mu  sync.Mutex
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens or creates the database at dsn and ensures the schema.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Get returns the record stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (user.Record, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT record_json FROM users WHERE key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, false, nil
	}
	if err != nil {
		return user.Record{}, false, fmt.Errorf("get user %s: %w", key, err)
	}
	var record user.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return user.Record{}, false, fmt.Errorf("decode user %s: %w", key, err)
	}
	return record.Clone(), true, nil
}

// Put inserts or replaces the record under key.
func (s *SQLiteStore) Put(ctx context.Context, key string, record user.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `INSERT INTO users (key, record_json, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET record_json = excluded.record_json, updated_at = excluded.updated_at`,
		key, string(payload), s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("put user %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
