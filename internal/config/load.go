package config

import (
	"fmt"
	"os"

	"learnmaths/internal/generator"
	"learnmaths/internal/question"
)

// Load reads, parses, normalizes, applies environment overrides to, and
// validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	return finish(cfg, RepoRootFromConfigPath(path))
}

// LoadDefault returns the defaults with environment overrides applied, for
// running without a config file.
func LoadDefault(root string) (Config, error) {
	return finish(Config{Version: 1}, root)
}

func finish(cfg Config, root string) (Config, error) {
	Normalize(&cfg)
	overrides, err := ParseEnv(nil)
	if err != nil {
		return Config{}, err
	}
	overrides.Apply(&cfg)
	if err := Validate(&cfg, root); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadBanks loads every configured bank, applying topic overrides. Bank
// topics may not shadow built-in topics or each other.
func LoadBanks(cfg Config, root string) ([]question.Bank, error) {
	banks := make([]question.Bank, 0, len(cfg.Banks))
	seen := map[question.Topic]string{}
	for _, entry := range cfg.Banks {
		bank, err := question.LoadBank(ResolvePath(root, entry.File))
		if err != nil {
			return nil, err
		}
		if entry.Topic != "" {
			bank.Topic = question.Topic(entry.Topic)
		}
		if generator.IsBuiltin(bank.Topic) {
			return nil, fmt.Errorf("bank %s: topic %q is a built-in topic", entry.File, bank.Topic)
		}
		if other, exists := seen[bank.Topic]; exists {
			return nil, fmt.Errorf("bank %s: topic %q already defined by %s", entry.File, bank.Topic, other)
		}
		seen[bank.Topic] = entry.File
		banks = append(banks, bank)
	}
	return banks, nil
}
