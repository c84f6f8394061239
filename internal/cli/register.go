package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"learnmaths/internal/account"
	"learnmaths/internal/user"
)

// runRegister builds the handler for the register command.
func runRegister(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Register failed: %v\n", err)
			return ExitError
		}
		defer a.Close()

		rec, err := a.accounts.Register(ctx, *name, *code)
		if err != nil {
			if isCredentialError(err) {
				fmt.Fprintln(stderr, err.Error())
				return ExitError
			}
			fmt.Fprintf(stderr, "Register failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, account.Welcome(rec.Username))
		return ExitOK
	}
}

// isCredentialError reports errors whose message is meant for the player.
func isCredentialError(err error) bool {
	return errors.Is(err, user.ErrMissingCredentials) ||
		errors.Is(err, user.ErrInvalidCode) ||
		errors.Is(err, account.ErrUserExists) ||
		errors.Is(err, account.ErrUnknownUser)
}

// login loads a player for the read-only commands.
func login(ctx context.Context, a *app, name, code string, stderr io.Writer) (user.Record, bool) {
	rec, err := a.accounts.Login(ctx, name, code)
	if err != nil {
		if isCredentialError(err) {
			fmt.Fprintln(stderr, err.Error())
		} else {
			fmt.Fprintf(stderr, "Login failed: %v\n", err)
		}
		return user.Record{}, false
	}
	return rec, true
}
