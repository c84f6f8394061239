package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Defaults applied by Normalize.
const (
	DefaultStoreDriver   = "json"
	DefaultFeedbackDelay = 2 * time.Second
	DefaultUI            = "auto"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize fills defaults and canonicalizes enum values.
func Normalize(cfg *Config) {
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DefaultStoreDriver
	}
	if strings.TrimSpace(cfg.Store.Path) == "" {
		cfg.Store.Path = defaultStorePath(cfg.Store.Driver)
	}
	if strings.TrimSpace(cfg.History.Path) == "" {
		cfg.History.Path = filepath.Join(ConfigDirName, "history.duckdb")
	}
	cfg.Play.UI = strings.ToLower(strings.TrimSpace(cfg.Play.UI))
	if cfg.Play.UI == "" {
		cfg.Play.UI = DefaultUI
	}
	if cfg.Play.FeedbackDelay == 0 {
		cfg.Play.FeedbackDelay = DefaultFeedbackDelay
	}
	for i := range cfg.Banks {
		cfg.Banks[i].Topic = strings.ToLower(strings.TrimSpace(cfg.Banks[i].Topic))
		cfg.Banks[i].File = strings.TrimSpace(cfg.Banks[i].File)
	}
}

func defaultStorePath(driver string) string {
	if driver == "sqlite" {
		return filepath.Join(ConfigDirName, "users.db")
	}
	return filepath.Join(ConfigDirName, "users.json")
}
