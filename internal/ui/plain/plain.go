// Package plain is a line-oriented game for terminals without full-screen
// support and for scripted input.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"learnmaths/internal/account"
	"learnmaths/internal/attempt"
	"learnmaths/internal/game"
	"learnmaths/internal/progress"
	"learnmaths/internal/question"
	"learnmaths/internal/session"
	"learnmaths/internal/user"
)

// QuitCommand abandons the current level when typed as an answer.
const QuitCommand = "/quit"

// Options configures the plain UI.
type Options struct {
	FeedbackDelay time.Duration
	Username      string
	Code          string
}

// errEOF marks the end of input; it ends the game without an error.
var errEOF = errors.New("end of input")

type ui struct {
	ctx   context.Context
	game  *game.Game
	in    *bufio.Scanner
	out   io.Writer
	opts  Options
	sleep func(context.Context, time.Duration) error
}

// Run plays the game reading answers line by line from in.
func Run(ctx context.Context, g *game.Game, in io.Reader, out io.Writer, opts Options) error {
	u := &ui{ctx: ctx, game: g, in: bufio.NewScanner(in), out: out, opts: opts, sleep: sleepContext}
	err := u.run()
	if errors.Is(err, errEOF) {
		u.println("")
		u.println("Bye for now!")
		return nil
	}
	return err
}

func (u *ui) run() error {
	u.println("Welcome to Maths Superheroes!")
	rec, err := u.login()
	if err != nil {
		return err
	}
	for {
		topic, ok, err := u.pickTopic(rec)
		if err != nil || !ok {
			return err
		}
		updated, err := u.playTopic(rec, topic)
		if err != nil {
			return err
		}
		rec = updated
	}
}

func (u *ui) login() (user.Record, error) {
	name, code := u.opts.Username, u.opts.Code
	for {
		if name == "" || code == "" {
			var err error
			if name, err = u.prompt("Name: "); err != nil {
				return user.Record{}, err
			}
			if code, err = u.prompt("Secret number: "); err != nil {
				return user.Record{}, err
			}
		}
		rec, err := u.game.Login(u.ctx, name, code)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, account.ErrUnknownUser) {
			if !isUserError(err) {
				return user.Record{}, err
			}
			u.println(err.Error())
			name, code = "", ""
			continue
		}
		answer, err := u.prompt("We don't know you yet! Join the team? (y/n): ")
		if err != nil {
			return user.Record{}, err
		}
		if isYes(answer) {
			rec, err := u.game.Register(u.ctx, name, code)
			if err == nil {
				u.println(account.Welcome(rec.Username))
				return rec, nil
			}
			if !isUserError(err) {
				return user.Record{}, err
			}
			u.println(err.Error())
		}
		name, code = "", ""
	}
}

func isUserError(err error) bool {
	return errors.Is(err, user.ErrMissingCredentials) ||
		errors.Is(err, user.ErrInvalidCode) ||
		errors.Is(err, account.ErrUserExists) ||
		errors.Is(err, account.ErrUnknownUser)
}

func (u *ui) pickTopic(rec user.Record) (question.Topic, bool, error) {
	topics := u.game.Topics(rec)
	for {
		u.println("")
		u.printf("Hi %s! ⭐ %d  Points: %d\n", rec.Username, rec.Stars, rec.Points)
		for i, status := range topics {
			u.printf("%2d. %-30s level %d  %3d%%\n", i+1, status.Title, status.Level, progress.BarPercent(status.Progress))
		}
		line, err := u.prompt("Pick a topic number (q to quit): ")
		if err != nil {
			return "", false, err
		}
		if strings.EqualFold(line, "q") {
			u.println("Bye for now!")
			return "", false, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(topics) {
			u.printf("Please pick a number between 1 and %d.\n", len(topics))
			continue
		}
		return topics[n-1].Topic, true, nil
	}
}

func (u *ui) playTopic(rec user.Record, topic question.Topic) (user.Record, error) {
	u.println("")
	if lesson, ok := u.game.Lesson(topic); ok {
		u.println(lesson.Title)
		u.println(lesson.Description)
		if lesson.VideoURL != "" {
			u.println("Video: " + lesson.VideoURL)
		}
		if _, err := u.prompt("Press enter to start! "); err != nil {
			return rec, err
		}
	}
	ctrl, err := u.game.Start(rec, topic)
	if err != nil {
		u.printf("Could not start %s: %v\n", u.game.Title(topic), err)
		return rec, nil
	}
	ctx := ctrl.Context()
	u.printf("%s  Level %d\n", u.game.Title(topic), ctx.Level)

	for !ctrl.Done() {
		quit, err := u.askCurrent(ctrl)
		if err != nil {
			ctrl.Quit()
			return rec, err
		}
		if quit {
			ctrl.Quit()
			u.println("Level abandoned. Your progress in this level was not saved.")
			return rec, nil
		}
	}

	finished, err := u.game.Finish(u.ctx, rec, ctrl)
	if err != nil {
		return rec, err
	}
	u.printSummary(finished.Summary)
	return finished.Record, nil
}

// askCurrent asks the current question until one answer is accepted.
func (u *ui) askCurrent(ctrl *session.Controller) (bool, error) {
	q, err := ctrl.Current()
	if err != nil {
		return false, err
	}
	current, total := ctrl.Position()
	u.println("")
	u.printf("Question %d of %d (score %d)\n", current, total, ctrl.Score())
	u.println(q.Text)
	if previous := ctrl.Attempt().PreviousWrong(); previous != "" {
		u.println("Your first answer: " + previous)
	}
	if q.Kind == question.KindChoice {
		for i, option := range q.Options {
			u.printf("  %d. %s\n", i+1, option)
		}
	}
	for {
		line, err := u.prompt("> ")
		if err != nil {
			return false, err
		}
		if line == QuitCommand {
			answer, err := u.prompt("Are you sure you want to quit this level? (y/n): ")
			if err != nil {
				return false, err
			}
			if isYes(answer) {
				return true, nil
			}
			continue
		}
		out, err := u.answer(ctrl, q, line)
		switch {
		case errors.Is(err, attempt.ErrBlankAnswer):
			u.println("Please type your answer before checking!")
			continue
		case errors.Is(err, attempt.ErrInvalidChoice):
			u.printf("Please pick a number between 1 and %d.\n", len(q.Options))
			continue
		case err != nil:
			return false, err
		}
		return false, u.showOutcome(out)
	}
}

func (u *ui) answer(ctrl *session.Controller, q question.Question, line string) (attempt.Outcome, error) {
	if q.Kind != question.KindChoice {
		return ctrl.Submit(line)
	}
	if strings.TrimSpace(line) == "" {
		return attempt.Outcome{}, attempt.ErrBlankAnswer
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return attempt.Outcome{}, attempt.ErrInvalidChoice
	}
	return ctrl.Choose(n - 1)
}

func (u *ui) showOutcome(out attempt.Outcome) error {
	u.println(out.Message)
	switch out.State {
	case attempt.AwaitingSecondChance:
		u.println("You have one more try!")
	case attempt.ResolvedCorrect:
		return u.sleep(u.ctx, u.opts.FeedbackDelay)
	case attempt.ResolvedIncorrect:
		u.println(attempt.RevealText(out.CorrectAnswer))
	}
	return nil
}

func (u *ui) printSummary(summary progress.Summary) {
	u.println("")
	u.println("Level complete!")
	u.printf("Correct: %d / %d (%d%%)\n", summary.CorrectCount, summary.TotalQuestions, summary.Percentage)
	u.printf("Points earned: %d\n", summary.PointsEarned)
	u.println(progress.StarsText(summary.StarsEarned))
	u.println(summary.Message)
}

func (u *ui) prompt(label string) (string, error) {
	fmt.Fprint(u.out, label)
	if !u.in.Scan() {
		if err := u.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(u.in.Text()), nil
}

func (u *ui) println(line string) {
	fmt.Fprintln(u.out, line)
}

func (u *ui) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
