package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"learnmaths/internal/progress"
)

// runProgress builds the handler for the progress command.
func runProgress(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnmaths/config.yml)")
		name, code := credentialFlags(flags)
		if exit, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return exit
		}

		lc, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		ctx := context.Background()
		a, err := openApp(ctx, lc, appOptions{})
		if err != nil {
			fmt.Fprintf(stderr, "Progress failed: %v\n", err)
			return ExitError
		}
		defer a.Close()

		rec, ok := login(ctx, a, *name, *code, stderr)
		if !ok {
			return ExitError
		}
		fmt.Fprintf(stdout, "%s  ⭐ %d  Points: %d\n\n", rec.Username, rec.Stars, rec.Points)
		fmt.Fprintf(stdout, "%-30s %5s %8s\n", "TOPIC", "LEVEL", "PROGRESS")
		for _, status := range a.game.Topics(rec) {
			fmt.Fprintf(stdout, "%-30s %5d %7d%%\n", status.Title, status.Level, progress.BarPercent(status.Progress))
		}
		return ExitOK
	}
}
