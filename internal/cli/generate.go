package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"learnmaths/internal/generator"
	"learnmaths/internal/question"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnmaths/config.yml)")
		topic := flags.String("topic", "", "Topic to generate")
		level := flags.Int("level", 1, "Level to generate")
		seed := flags.Int64("seed", 0, "Random seed (default: random)")
		format := flags.String("format", "text", "Output format: text|json|yaml")
		if exit, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return exit
		}
		if strings.TrimSpace(*topic) == "" {
			fmt.Fprintln(stderr, "missing --topic")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		switch *format {
		case "text", "json", "yaml":
		default:
			fmt.Fprintf(stderr, "invalid format %q (expected text|json|yaml)\n", *format)
			return ExitUsage
		}

		lc, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		gen, err := newGenerator(lc, *seed)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}

		t := question.Topic(strings.ToLower(strings.TrimSpace(*topic)))
		set, err := gen.Generate(t, *level)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		if err := question.ValidateSet(set, generator.ExpectedCount(t)); err != nil {
			fmt.Fprintf(stderr, "Generated set is invalid: %v\n", err)
			return ExitError
		}
		if err := writeSet(stdout, gen.Title(t), set, *format); err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func writeSet(w io.Writer, title string, set question.Set, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(set)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(set); err != nil {
			return err
		}
		return encoder.Close()
	}
	fmt.Fprintln(w, title)
	for i, q := range set {
		fmt.Fprintf(w, "%2d. %s\n", i+1, q.Text)
		for j, option := range q.Options {
			fmt.Fprintf(w, "    %c) %s\n", 'a'+j, option)
		}
		fmt.Fprintf(w, "    answer: %s\n", q.Answer)
	}
	return nil
}
