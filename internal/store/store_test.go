package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"learnmaths/internal/question"
	"learnmaths/internal/testutil"
	"learnmaths/internal/user"
)

func sampleRecord() user.Record {
	rec := user.NewRecord("Alex", "1234")
	rec.Points = 80
	rec.Stars = 3
	rec.Progress[question.TopicAddition] = 0.8
	return rec
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := testutil.Context(t, time.Second)
	if _, ok, err := s.Get(ctx, "Alex_1234"); err != nil || ok {
		t.Fatalf("expected missing record, got ok=%v err=%v", ok, err)
	}
	rec := sampleRecord()
	if err := s.Put(ctx, rec.Key(), rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := s.Get(ctx, rec.Key())
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Username != "Alex" || got.Points != 80 || got.Stars != 3 || got.Progress[question.TopicAddition] != 0.8 {
		t.Fatalf("unexpected record %+v", got)
	}
	got.Progress[question.TopicAddition] = 5
	again, _, _ := s.Get(ctx, rec.Key())
	if again.Progress[question.TopicAddition] != 0.8 {
		t.Fatalf("returned record shares state with the store")
	}
	rec.Points = 120
	if err := s.Put(ctx, rec.Key(), rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	again, _, _ = s.Get(ctx, rec.Key())
	if again.Points != 120 {
		t.Fatalf("expected overwrite, got %d", again.Points)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "users.json")
	s, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseStore(t, s)
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, got %v", err)
	}
	reopened, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok, err := reopened.Get(testutil.Context(t, time.Second), "Alex_1234")
	if err != nil || !ok || got.Points != 120 {
		t.Fatalf("unexpected reopened record %+v ok=%v err=%v", got, ok, err)
	}
	if _, ok, _ := reopened.Get(testutil.Context(t, time.Second), "Alex_0000"); ok {
		t.Fatalf("expected only the stored key to resolve")
	}
}

func TestJSONStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := OpenJSON(path); err == nil {
		t.Fatalf("expected error for corrupt store")
	}
}

func TestJSONStoreTreatsNullDocumentAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("null"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := testutil.Context(t, time.Second)
	if _, ok, err := s.Get(ctx, "Alex_1234"); err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
	rec := sampleRecord()
	if err := s.Put(ctx, rec.Key(), rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	if got, ok, err := s.Get(ctx, rec.Key()); err != nil || !ok || got.Points != 80 {
		t.Fatalf("unexpected record %+v ok=%v err=%v", got, ok, err)
	}
}

func TestJSONStoreRequiresPath(t *testing.T) {
	if _, err := OpenJSON(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	s, err := OpenSQLite(testutil.Context(t, 5*time.Second), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseStore(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopened, err := OpenSQLite(testutil.Context(t, 5*time.Second), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, ok, err := reopened.Get(testutil.Context(t, time.Second), "Alex_1234")
	if err != nil || !ok || got.Points != 120 {
		t.Fatalf("unexpected reopened record %+v ok=%v err=%v", got, ok, err)
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	ctx := testutil.Context(t, 5*time.Second)
	dir := t.TempDir()
	s, err := Open(ctx, "JSON", filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("open json: %v", err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Fatalf("expected JSONStore, got %T", s)
	}
	s, err = Open(ctx, DriverSQLite, filepath.Join(dir, "users.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, ok := s.(*SQLiteStore); !ok {
		t.Fatalf("expected SQLiteStore, got %T", s)
	}
	_ = s.Close()
	if _, err := Open(ctx, "redis", "x"); !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}
