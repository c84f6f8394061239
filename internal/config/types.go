package config

import "time"

// Config is the contents of .learnmaths/config.yml.
type Config struct {
	Version int           `yaml:"version"`
	Store   StoreConfig   `yaml:"store"`
	History HistoryConfig `yaml:"history"`
	Play    PlayConfig    `yaml:"play"`
	Banks   []BankConfig  `yaml:"banks"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// IsEnabled reports whether sessions should be recorded. History is on
// unless explicitly disabled.
func (h HistoryConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

type PlayConfig struct {
	FeedbackDelay time.Duration `yaml:"feedback_delay"`
	UI            string        `yaml:"ui"`
	NoColor       bool          `yaml:"no_color"`
	MaxDraws      int           `yaml:"max_draws"`
}

// BankConfig points at a question bank file. Topic overrides the topic
// named inside the file.
type BankConfig struct {
	Topic string `yaml:"topic"`
	File  string `yaml:"file"`
}
