package cli

import (
	"strings"
	"testing"
)

func TestRootHelp(t *testing.T) {
	code, out, stderr := runCLI(t, "--help")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if stderr != "" {
		t.Fatalf("expected no stderr output, got %q", stderr)
	}
	if !strings.Contains(out, "learnmaths <command>") {
		t.Fatalf("expected usage header, got %q", out)
	}
	for _, cmd := range commands {
		if !strings.Contains(out, cmd.Name) {
			t.Fatalf("expected command %q in output", cmd.Name)
		}
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	code, out, stderr := runCLI(t)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if stderr != "" {
		t.Fatalf("expected no stderr output, got %q", stderr)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage output, got %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, out, stderr := runCLI(t, "nope")
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %q", out)
	}
	if !strings.Contains(stderr, "Unknown command") || !strings.Contains(stderr, "Usage:") {
		t.Fatalf("expected unknown command error with usage, got %q", stderr)
	}
}

func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		code, out, stderr := runCLI(t, cmd.Name, "--help")
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		if stderr != "" {
			t.Fatalf("%s: expected no stderr output, got %q", cmd.Name, stderr)
		}
		for _, line := range cmd.Usage {
			if !strings.Contains(out, line) {
				t.Fatalf("%s: expected usage line %q", cmd.Name, line)
			}
		}
	}
}

func TestBadArguments(t *testing.T) {
	cases := [][]string{
		{"register", "--bogus"},
		{"progress", "extra"},
		{"generate", "--level", "two"},
	}
	for _, args := range cases {
		code, out, stderr := runCLI(t, args...)
		if code != ExitUsage {
			t.Fatalf("%v: expected exit %d, got %d", args, ExitUsage, code)
		}
		if out != "" {
			t.Fatalf("%v: expected no stdout output, got %q", args, out)
		}
		if !strings.Contains(stderr, "Usage:") {
			t.Fatalf("%v: expected usage in stderr, got %q", args, stderr)
		}
	}
}
