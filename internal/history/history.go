// Package history records finished sessions in a DuckDB database.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"learnmaths/internal/question"
)

// schemaDDL holds the history schema.
//
//go:embed schema.sql
var schemaDDL string

// DefaultLimit is used by Recent when limit is not positive.
const DefaultLimit = 10

// Entry is one finished session.
type Entry struct {
	ID         string
	UserKey    string
	Topic      question.Topic
	Level      int
	Correct    int
	Total      int
	Points     int
	Stars      int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Recorder appends and lists session entries.
type Recorder struct {
	db *sql.DB
}

// Open opens or creates the history database at path and applies the schema.
// An empty path opens an in-memory database.
func Open(ctx context.Context, path string) (*Recorder, error) {
	dsn := path
	if path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Recorder{db: db}, nil
}

// EnsureSchema applies the history schema to db.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("history: db is nil")
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply history schema: %w", err)
	}
	return nil
}

// Record appends an entry.
func (r *Recorder) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		return errors.New("history: entry id is required")
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO sessions
(id, user_key, topic, level, correct, total, points, stars, started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserKey, string(entry.Topic), entry.Level, entry.Correct, entry.Total,
		entry.Points, entry.Stars, entry.StartedAt.UTC(), entry.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("record session %s: %w", entry.ID, err)
	}
	return nil
}

// Recent returns up to limit entries for userKey, newest first.
func (r *Recorder) Recent(ctx context.Context, userKey string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_key, topic, level, correct, total, points, stars, started_at, finished_at
FROM sessions WHERE user_key = ? ORDER BY finished_at DESC, id LIMIT ?`, userKey, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		var (
			entry Entry
			topic string
		)
		if err := rows.Scan(&entry.ID, &entry.UserKey, &topic, &entry.Level, &entry.Correct, &entry.Total,
			&entry.Points, &entry.Stars, &entry.StartedAt, &entry.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entry.Topic = question.Topic(topic)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (r *Recorder) Close() error {
	return r.db.Close()
}
