package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

store:
  driver: json
  path: .learnmaths/users.json

history:
  enabled: true
  path: .learnmaths/history.duckdb

play:
  feedback_delay: 2s
  ui: auto
  no_color: false

# Extra topics loaded from question bank files.
# banks:
#   - file: .learnmaths/banks/planets.yml
`

const exampleBank = `version: 1
topic: planets
title: "Space Explorers!"
questions:
  - question: "How many planets are in our solar system?"
    kind: input
    answer: "8"
  - question: "Which planet is known as the red planet?"
    answer: Mars
    options: [Venus, Mars, Jupiter]
  - question: "Which planet is the biggest?"
    answer: Jupiter
    options: [Jupiter, Earth, Mercury]
  - question: "Which planet do we live on?"
    answer: Earth
  - question: "Which planet is closest to the Sun?"
    answer: Mercury
    options: [Neptune, Mercury, Saturn]
  - question: "Which planet has the famous rings?"
    answer: Saturn
    options: [Saturn, Mars, Venus]
  - question: "How many moons does Earth have?"
    kind: input
    answer: "1"
  - question: "What is the name of our star?"
    answer: sun
  - question: "Which planet is furthest from the Sun?"
    answer: Neptune
    options: [Uranus, Neptune, Earth]
  - question: "How many planets are closer to the Sun than Earth?"
    kind: input
    answer: "2"
`

// Scaffold writes a default config, and an example bank next to it, at configPath.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	banksDir := filepath.Join(filepath.Dir(configPath), "banks")
	if err := os.MkdirAll(banksDir, 0o755); err != nil {
		return fmt.Errorf("create banks dir: %w", err)
	}
	bankPath := filepath.Join(banksDir, "planets.yml")
	if _, err := os.Stat(bankPath); os.IsNotExist(err) {
		if err := os.WriteFile(bankPath, []byte(exampleBank), 0o644); err != nil {
			return fmt.Errorf("write example bank: %w", err)
		}
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
