package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"learnmaths/internal/history"
	"learnmaths/internal/report"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnmaths/config.yml)")
		name, code := credentialFlags(flags)
		outPath := flags.String("out", "", "Write the HTML report to a file (default: stdout)")
		if exit, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return exit
		}

		lc, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		ctx := context.Background()
		a, err := openApp(ctx, lc, appOptions{history: true})
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		defer a.Close()

		rec, ok := login(ctx, a, *name, *code, stderr)
		if !ok {
			return ExitError
		}
		var entries []history.Entry
		if a.history != nil {
			entries, err = a.history.Recent(ctx, rec.Key(), history.DefaultLimit)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
		}
		data := report.Build(rec, a.game.Topics(rec), entries, a.gen.Title, time.Now())

		if *outPath == "" {
			html, err := report.RenderHTML(ctx, data)
			if err != nil {
				fmt.Fprintf(stderr, "Report failed: %v\n", err)
				return ExitError
			}
			fmt.Fprint(stdout, html)
			return ExitOK
		}
		if err := report.WriteFile(ctx, *outPath, data); err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		return ExitOK
	}
}
