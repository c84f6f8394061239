//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"learnmaths/internal/progress"
	"learnmaths/internal/question"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theErrorMessageMentions(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected error to mention %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) hasPointsAndStars(name string, points, stars int) error {
	rec, err := s.loadRecord(name)
	if err != nil {
		return err
	}
	if rec.Points != points || rec.Stars != stars {
		return fmt.Errorf("expected %d points and %d stars, got %d and %d", points, stars, rec.Points, rec.Stars)
	}
	return nil
}

func (s *featureState) hasProgress(name, topic, value string) error {
	want, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	rec, err := s.loadRecord(name)
	if err != nil {
		return err
	}
	got := rec.Progress[question.Topic(topic)]
	if math.Abs(got-want) > 1e-9 {
		return fmt.Errorf("expected %s progress %.2f, got %.2f", topic, want, got)
	}
	return nil
}

func (s *featureState) playsAtLevel(name, topic string, level int) error {
	rec, err := s.loadRecord(name)
	if err != nil {
		return err
	}
	if got := progress.LevelFor(rec, question.Topic(topic)); got != level {
		return fmt.Errorf("expected %s level %d, got %d", topic, level, got)
	}
	return nil
}
