package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"learnmaths/internal/config"
)

// loadedConfig is a config and the directory its relative paths resolve against.
type loadedConfig struct {
	cfg  config.Config
	root string
}

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads an explicit or discovered config. Without one the
// defaults apply, rooted at the working directory.
func loadConfig(configPath string) (loadedConfig, error) {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		if strings.TrimSpace(configPath) != "" || !errors.Is(err, config.ErrConfigNotFound) {
			return loadedConfig{}, err
		}
		wd, err := os.Getwd()
		if err != nil {
			return loadedConfig{}, fmt.Errorf("get working directory: %w", err)
		}
		cfg, err := config.LoadDefault(wd)
		if err != nil {
			return loadedConfig{}, err
		}
		return loadedConfig{cfg: cfg, root: wd}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return loadedConfig{}, err
	}
	return loadedConfig{cfg: cfg, root: config.RepoRootFromConfigPath(path)}, nil
}
