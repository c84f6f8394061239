package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"learnmaths/internal/history"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnmaths/config.yml)")
		name, code := credentialFlags(flags)
		limit := flags.Int("limit", history.DefaultLimit, "Number of sessions to list")
		if exit, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return exit
		}

		lc, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if !lc.cfg.History.IsEnabled() {
			fmt.Fprintln(stderr, "History is disabled (history.enabled: false)")
			return ExitError
		}
		ctx := context.Background()
		a, err := openApp(ctx, lc, appOptions{history: true})
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		defer a.Close()
		if a.history == nil {
			fmt.Fprintln(stderr, "History failed: history database unavailable")
			return ExitError
		}

		rec, ok := login(ctx, a, *name, *code, stderr)
		if !ok {
			return ExitError
		}
		entries, err := a.history.Recent(ctx, rec.Key(), *limit)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		if len(entries) == 0 {
			fmt.Fprintln(stdout, "No sessions yet.")
			return ExitOK
		}
		fmt.Fprintf(stdout, "%-16s %-30s %5s %7s %6s %5s\n", "FINISHED", "TOPIC", "LEVEL", "CORRECT", "POINTS", "STARS")
		for _, entry := range entries {
			fmt.Fprintf(stdout, "%-16s %-30s %5d %4d/%-2d %6d %5d\n",
				entry.FinishedAt.Local().Format("2006-01-02 15:04"),
				a.gen.Title(entry.Topic),
				entry.Level, entry.Correct, entry.Total, entry.Points, entry.Stars)
		}
		return ExitOK
	}
}
