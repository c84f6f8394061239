package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"learnmaths/internal/ui/plain"
	"learnmaths/internal/ui/play"
)

// playInput allows tests to script the plain UI.
var playInput io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnmaths/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (default: play.ui from config)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		verbose := flags.Bool("verbose", false, "Log diagnostics to stderr (uses the plain UI)")
		logPath := flags.String("log", "", "Append diagnostics to a file")
		seed := flags.Int64("seed", 0, "Random seed for questions and messages (default: random)")
		name, code := credentialFlags(flags)
		if exit, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return exit
		}

		lc, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		mode := *uiMode
		if mode == "" {
			mode = lc.cfg.Play.UI
		}
		decision, err := resolveUIMode(mode, *verbose, playInput, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := newLogger(*verbose, *logPath, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		a, err := openApp(ctx, lc, appOptions{seed: *seed, logger: logger, history: true})
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		defer a.Close()

		if decision.useLive {
			err = play.Run(ctx, a.game, playInput, stdout, play.Options{
				NoColor:       *noColor || lc.cfg.Play.NoColor,
				FeedbackDelay: lc.cfg.Play.FeedbackDelay,
				Username:      *name,
				Code:          *code,
			})
		} else {
			err = plain.Run(ctx, a.game, playInput, stdout, plain.Options{
				FeedbackDelay: lc.cfg.Play.FeedbackDelay,
				Username:      *name,
				Code:          *code,
			})
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
