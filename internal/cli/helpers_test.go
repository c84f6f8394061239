package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `version: 1
store:
  driver: json
  path: .learnmaths/users.json
history:
  enabled: false
play:
  feedback_delay: 1ms
  ui: plain
banks:
  - file: .learnmaths/banks/sevens.yml
`

// sevensBank is a bank whose every answer is 7.
func sevensBank() string {
	var b strings.Builder
	b.WriteString("version: 1\ntopic: sevens\ntitle: \"Lucky Sevens!\"\nquestions:\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "  - question: \"What is %d + %d?\"\n    kind: input\n    answer: \"7\"\n", i, 7-i)
	}
	return b.String()
}

// writeProject writes a config and the sevens bank under dir and returns the
// config path.
func writeProject(t *testing.T, dir, configBody string) string {
	t.Helper()
	configPath := filepath.Join(dir, ".learnmaths", "config.yml")
	bankPath := filepath.Join(dir, ".learnmaths", "banks", "sevens.yml")
	if err := os.MkdirAll(filepath.Dir(bankPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(bankPath, []byte(sevensBank()), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, err bytes.Buffer
	code := Run(args, &out, &err)
	return code, out.String(), err.String()
}

func withPlayInput(t *testing.T, input string) {
	t.Helper()
	original := playInput
	playInput = strings.NewReader(input)
	t.Cleanup(func() { playInput = original })
}
