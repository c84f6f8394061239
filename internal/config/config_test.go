package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestParseConfigRejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\nstorage:\n  driver: json\n"))
	if err == nil || !strings.Contains(err.Error(), "storage") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestParseConfigRejectsMultipleDocuments(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

func TestParseConfigDuration(t *testing.T) {
	cfg, err := ParseConfig([]byte("version: 1\nplay:\n  feedback_delay: 500ms\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Play.FeedbackDelay != 500*time.Millisecond {
		t.Fatalf("unexpected delay %s", cfg.Play.FeedbackDelay)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Store.Driver != "json" || cfg.Store.Path != filepath.Join(".learnmaths", "users.json") {
		t.Fatalf("unexpected store defaults %+v", cfg.Store)
	}
	if !cfg.History.IsEnabled() || cfg.Play.FeedbackDelay != 2*time.Second || cfg.Play.UI != "auto" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := Validate(&cfg, t.TempDir()); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestNormalizeSQLitePath(t *testing.T) {
	cfg := Config{Version: 1, Store: StoreConfig{Driver: " SQLite "}}
	Normalize(&cfg)
	if cfg.Store.Driver != "sqlite" || cfg.Store.Path != filepath.Join(".learnmaths", "users.db") {
		t.Fatalf("unexpected store %+v", cfg.Store)
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	cfg := Config{
		Version: 2,
		Store:   StoreConfig{Driver: "redis", Path: "x"},
		Play:    PlayConfig{UI: "web", FeedbackDelay: -time.Second, MaxDraws: -1},
		Banks:   []BankConfig{{Topic: "addition", File: "missing.yml"}, {}},
	}
	err := Validate(&cfg, t.TempDir())
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, field := range []string{"version", "store.driver", "play.ui", "play.feedback_delay", "play.max_draws", "banks[0].file", "banks[1].file"} {
		if !fields[field] {
			t.Fatalf("expected issue for %s, got %v", field, validationErr.Issues)
		}
	}
}

func TestValidateBankTopicCollisions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yml"), "version: 1\n")
	cfg := Default()
	cfg.Banks = []BankConfig{{Topic: "shapes", File: "a.yml"}, {Topic: "space", File: "a.yml"}, {Topic: "space", File: "a.yml"}}
	err := Validate(&cfg, dir)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "built-in topic") || !strings.Contains(err.Error(), "duplicate topic") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	overrides, err := ParseEnv(map[string]string{
		"LEARNMATHS_STORE_DRIVER":    "SQLITE",
		"LEARNMATHS_STORE_PATH":      "/tmp/users.db",
		"LEARNMATHS_HISTORY_ENABLED": "false",
		"LEARNMATHS_UI":              "plain",
		"LEARNMATHS_FEEDBACK_DELAY":  "1s",
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	cfg := Default()
	overrides.Apply(&cfg)
	if cfg.Store.Driver != "sqlite" || cfg.Store.Path != "/tmp/users.db" {
		t.Fatalf("unexpected store %+v", cfg.Store)
	}
	if cfg.History.IsEnabled() || cfg.Play.UI != "plain" || cfg.Play.FeedbackDelay != time.Second {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestEnvOverridesRejectBadBool(t *testing.T) {
	if _, err := ParseEnv(map[string]string{"LEARNMATHS_HISTORY_ENABLED": "sometimes"}); err == nil {
		t.Fatalf("expected error for invalid bool")
	}
}

func TestEnvLeavesHistoryUnsetWhenAbsent(t *testing.T) {
	overrides, err := ParseEnv(map[string]string{})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if overrides.HistoryEnabled != nil {
		t.Fatalf("expected no history override, got %v", *overrides.HistoryEnabled)
	}
	cfg := Default()
	overrides.Apply(&cfg)
	if !cfg.History.IsEnabled() {
		t.Fatalf("expected default history setting to survive")
	}
}

func TestEnvRejectsBadDuration(t *testing.T) {
	if _, err := ParseEnv(map[string]string{"LEARNMATHS_FEEDBACK_DELAY": "soon"}); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestScaffoldThenLoad(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected error when config exists")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Driver != "json" || cfg.Play.FeedbackDelay != 2*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(root, ".learnmaths", "banks", "planets.yml")); err != nil {
		t.Fatalf("expected example bank: %v", err)
	}
}

func TestLoadBanks(t *testing.T) {
	root := t.TempDir()
	var b strings.Builder
	b.WriteString("version: 1\ntopic: Planets\ntitle: Space!\nquestions:\n")
	for i := 1; i <= 10; i++ {
		b.WriteString("  - question: \"Q" + string(rune('A'+i)) + "?\"\n    answer: \"" + string(rune('0'+i%10)) + "\"\n")
	}
	writeFile(t, filepath.Join(root, "banks", "planets.yml"), b.String())
	cfg := Default()
	cfg.Banks = []BankConfig{{File: "banks/planets.yml"}}
	banks, err := LoadBanks(cfg, root)
	if err != nil {
		t.Fatalf("load banks: %v", err)
	}
	if len(banks) != 1 || banks[0].Topic != "planets" || len(banks[0].Questions) != 10 {
		t.Fatalf("unexpected banks %+v", banks)
	}
	cfg.Banks = []BankConfig{{File: "banks/planets.yml", Topic: "numbers"}}
	if _, err := LoadBanks(cfg, root); err == nil {
		t.Fatalf("expected error for built-in topic")
	}
}

func TestFindConfigPathSearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, ConfigPath(root), "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if RepoRootFromConfigPath(path) != root {
		t.Fatalf("unexpected root for %s", path)
	}
}

func TestFindConfigPathMissing(t *testing.T) {
	if _, err := FindConfigPath(t.TempDir()); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestScaffoldedBankIsPlayable(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg := Default()
	cfg.Banks = []BankConfig{{File: filepath.Join(ConfigDirName, "banks", "planets.yml")}}
	banks, err := LoadBanks(cfg, root)
	if err != nil {
		t.Fatalf("load banks: %v", err)
	}
	if len(banks[0].Questions) < 10 {
		t.Fatalf("example bank has %d questions", len(banks[0].Questions))
	}
}
