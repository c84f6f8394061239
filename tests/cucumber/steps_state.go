//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for the learnmaths features.
type featureState struct {
	projectDir string
	configPath string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a learnmaths project$`, state.aLearnmathsProject)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^"([^"]+)" has registered with secret number "([^"]+)"$`, state.hasRegistered)
	ctx.Step(`^"([^"]+)" answers every (\w+) question correctly$`, state.answersEveryQuestionCorrectly)
	ctx.Step(`^"([^"]+)" answers (\w+) with these first and second answers:$`, state.answersWithTable)
	ctx.Step(`^"([^"]+)" answers (\d+) (\w+) questions correctly and quits$`, state.answersSomeAndQuits)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the error message mentions "([^"]+)"$`, state.theErrorMessageMentions)
	ctx.Step(`^"([^"]+)" has (\d+) points and (\d+) stars?$`, state.hasPointsAndStars)
	ctx.Step(`^"([^"]+)" has (\w+) progress (\d+(?:\.\d+)?)$`, state.hasProgress)
	ctx.Step(`^"([^"]+)" plays (\w+) at level (\d+)$`, state.playsAtLevel)
}

// reset clears buffers before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.projectDir = ""
	s.configPath = ""
	s.previousWD = ""
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
	}
}

func (s *featureState) aLearnmathsProject() error {
	dir, err := os.MkdirTemp("", "learnmaths-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	s.configPath = filepath.Join(dir, ".learnmaths", "config.yml")
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := s.writeConfig(validConfigYAML()); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

func (s *featureState) theConfigIsInvalid() error {
	return s.writeConfig("version: 2\n")
}

func (s *featureState) writeConfig(contents string) error {
	if s.configPath == "" {
		return fmt.Errorf("config path is not set")
	}
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s *featureState) storePath() string {
	return filepath.Join(s.projectDir, ".learnmaths", "users.json")
}

func validConfigYAML() string {
	return `version: 1
store:
  driver: json
  path: .learnmaths/users.json
history:
  enabled: false
play:
  feedback_delay: 1ms
  ui: plain
`
}
