package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"learnmaths/internal/account"
	"learnmaths/internal/config"
	"learnmaths/internal/game"
	"learnmaths/internal/generator"
	"learnmaths/internal/history"
	"learnmaths/internal/session"
	"learnmaths/internal/store"
)

// app holds the services a command needs, opened from config.
type app struct {
	store    store.Store
	accounts *account.Service
	history  *history.Recorder
	gen      *generator.Generator
	game     *game.Game
}

type appOptions struct {
	seed    int64
	logger  *log.Logger
	history bool
}

func openApp(ctx context.Context, lc loadedConfig, opts appOptions) (*app, error) {
	logger := opts.logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	gen, err := newGenerator(lc, opts.seed)
	if err != nil {
		return nil, err
	}
	var sessionOpts []session.Option
	if opts.seed != 0 {
		sessionOpts = append(sessionOpts, session.WithRand(rand.New(rand.NewSource(opts.seed))))
	}

	storePath := config.ResolvePath(lc.root, lc.cfg.Store.Path)
	s, err := store.Open(ctx, lc.cfg.Store.Driver, storePath)
	if err != nil {
		return nil, err
	}
	logger.Printf("store driver=%s path=%s", lc.cfg.Store.Driver, storePath)

	a := &app{
		store:    s,
		accounts: account.NewService(s),
		gen:      gen,
	}
	gameOpts := []game.Option{game.WithLogger(logger), game.WithSessionOptions(sessionOpts...)}
	if opts.history && lc.cfg.History.IsEnabled() {
		historyPath := config.ResolvePath(lc.root, lc.cfg.History.Path)
		rec, err := history.Open(ctx, historyPath)
		if err != nil {
			logger.Printf("history disabled: %v", err)
		} else {
			a.history = rec
			gameOpts = append(gameOpts, game.WithHistory(rec))
		}
	}
	a.game = game.New(a.accounts, a.gen, gameOpts...)
	return a, nil
}

// newGenerator builds a generator with the configured banks. A zero seed
// draws a random one.
func newGenerator(lc loadedConfig, seed int64) (*generator.Generator, error) {
	banks, err := config.LoadBanks(lc.cfg, lc.root)
	if err != nil {
		return nil, err
	}
	opts := []generator.Option{generator.WithBanks(banks...)}
	if lc.cfg.Play.MaxDraws > 0 {
		opts = append(opts, generator.WithMaxDraws(lc.cfg.Play.MaxDraws))
	}
	if seed != 0 {
		opts = append(opts, generator.WithSeed(seed))
	}
	return generator.New(opts...), nil
}

func (a *app) Close() error {
	var firstErr error
	if a.history != nil {
		firstErr = a.history.Close()
	}
	if err := a.store.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// newLogger returns the diagnostics logger: stderr with verbose, a file with
// logPath, discarded otherwise.
func newLogger(verbose bool, logPath string, stderr io.Writer) (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	switch {
	case logPath != "":
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		return log.New(file, "learnmaths ", log.LstdFlags), file.Close, nil
	case verbose:
		return log.New(stderr, "learnmaths ", log.LstdFlags), noop, nil
	default:
		return log.New(io.Discard, "", 0), noop, nil
	}
}

// credentialFlags registers the --name and --code flags.
func credentialFlags(flags *flag.FlagSet) (*string, *string) {
	name := flags.String("name", "", "Superhero name")
	code := flags.String("code", "", "Secret number (4 characters)")
	return name, code
}
