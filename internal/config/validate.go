package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"learnmaths/internal/generator"
	"learnmaths/internal/question"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config. Bank files are resolved against baseDir.
func Validate(cfg *Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	switch cfg.Store.Driver {
	case "json", "sqlite":
	default:
		collector.add("store.driver", fmt.Sprintf("unsupported driver %q (expected json or sqlite)", cfg.Store.Driver))
	}
	if strings.TrimSpace(cfg.Store.Path) == "" {
		collector.add("store.path", "is required")
	}
	if cfg.History.IsEnabled() && strings.TrimSpace(cfg.History.Path) == "" {
		collector.add("history.path", "is required when history is enabled")
	}

	switch cfg.Play.UI {
	case "auto", "live", "plain":
	default:
		collector.add("play.ui", fmt.Sprintf("unsupported ui %q (expected auto, live, or plain)", cfg.Play.UI))
	}
	if cfg.Play.FeedbackDelay < 0 {
		collector.add("play.feedback_delay", "must be >= 0")
	}
	if cfg.Play.MaxDraws < 0 {
		collector.add("play.max_draws", "must be >= 0")
	}

	validateBanks(cfg, baseDir, collector)
	return collector.result()
}

func validateBanks(cfg *Config, baseDir string, collector *issueCollector) {
	if baseDir == "" {
		baseDir = "."
	}
	topics := map[string]struct{}{}
	for i, bank := range cfg.Banks {
		prefix := fmt.Sprintf("banks[%d]", i)
		if bank.File == "" {
			collector.add(prefix+".file", "is required")
			continue
		}
		path := ResolvePath(baseDir, bank.File)
		info, err := os.Stat(path)
		if err != nil {
			collector.add(prefix+".file", fmt.Sprintf("cannot read %q: %v", bank.File, err))
			continue
		}
		if info.IsDir() {
			collector.add(prefix+".file", fmt.Sprintf("%q is a directory", bank.File))
			continue
		}
		if bank.Topic == "" {
			continue
		}
		if generator.IsBuiltin(question.Topic(bank.Topic)) {
			collector.add(prefix+".topic", fmt.Sprintf("%q is a built-in topic", bank.Topic))
		}
		if _, exists := topics[bank.Topic]; exists {
			collector.add(prefix+".topic", fmt.Sprintf("duplicate topic %q", bank.Topic))
		}
		topics[bank.Topic] = struct{}{}
	}
}

// ResolvePath joins a relative path onto baseDir.
func ResolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
