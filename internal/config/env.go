package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Overrides are environment variables that take precedence over the file.
type Overrides struct {
	StoreDriver    string        `env:"LEARNMATHS_STORE_DRIVER"`
	StorePath      string        `env:"LEARNMATHS_STORE_PATH"`
	HistoryPath    string        `env:"LEARNMATHS_HISTORY_PATH"`
	HistoryEnabled *bool         `env:"LEARNMATHS_HISTORY_ENABLED"`
	UI             string        `env:"LEARNMATHS_UI"`
	FeedbackDelay  time.Duration `env:"LEARNMATHS_FEEDBACK_DELAY"`
}

// ParseEnv reads overrides from environ, or from the process environment
// when environ is nil.
func ParseEnv(environ map[string]string) (Overrides, error) {
	var overrides Overrides
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&overrides, opts); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return overrides, nil
}

// Apply copies set overrides onto cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.StoreDriver != "" {
		cfg.Store.Driver = strings.ToLower(strings.TrimSpace(o.StoreDriver))
	}
	if o.StorePath != "" {
		cfg.Store.Path = o.StorePath
	}
	if o.HistoryPath != "" {
		cfg.History.Path = o.HistoryPath
	}
	if o.HistoryEnabled != nil {
		enabled := *o.HistoryEnabled
		cfg.History.Enabled = &enabled
	}
	if o.UI != "" {
		cfg.Play.UI = strings.ToLower(strings.TrimSpace(o.UI))
	}
	if o.FeedbackDelay != 0 {
		cfg.Play.FeedbackDelay = o.FeedbackDelay
	}
}
