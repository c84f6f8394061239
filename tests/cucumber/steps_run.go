//go:build cucumber
// +build cucumber

package cucumber

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"learnmaths/internal/account"
	"learnmaths/internal/attempt"
	"learnmaths/internal/cli"
	"learnmaths/internal/game"
	"learnmaths/internal/generator"
	"learnmaths/internal/question"
	"learnmaths/internal/session"
	"learnmaths/internal/store"
	"learnmaths/internal/user"
)

// codes remembers the secret number each player registered with.
var codes = map[string]string{}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "learnmaths" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) hasRegistered(name, code string) error {
	if err := s.iRunCommand(fmt.Sprintf("learnmaths register --name %s --code %s", name, code)); err != nil {
		return err
	}
	if s.exitCode != cli.ExitOK {
		return fmt.Errorf("register %s: exit %d: %s", name, s.exitCode, s.stderr.String())
	}
	codes[name] = code
	return nil
}

// playSession logs name in, plays one level of topic with answer choosing
// each answer, and finishes it unless answer asks to quit.
func (s *featureState) playSession(name, topic string, answer func(n int, q question.Question, second bool) (string, bool)) error {
	ctx := context.Background()
	st, err := store.OpenJSON(s.storePath())
	if err != nil {
		return err
	}
	defer st.Close()
	g := game.New(account.NewService(st), generator.New(generator.WithSeed(1)))

	rec, err := g.Login(ctx, name, codes[name])
	if err != nil {
		return err
	}
	ctrl, err := g.Start(rec, question.Topic(topic))
	if err != nil {
		return err
	}
	for !ctrl.Done() {
		n, _ := ctrl.Position()
		q, err := ctrl.Current()
		if err != nil {
			return err
		}
		second := ctrl.Attempt().State() == attempt.AwaitingSecondChance
		input, quit := answer(n, q, second)
		if quit {
			ctrl.Quit()
			return nil
		}
		if err := submit(ctrl, q, input); err != nil {
			return fmt.Errorf("question %d: %w", n, err)
		}
	}
	_, err = g.Finish(ctx, rec, ctrl)
	return err
}

func submit(ctrl *session.Controller, q question.Question, input string) error {
	if q.Kind != question.KindChoice {
		_, err := ctrl.Submit(input)
		return err
	}
	for i, option := range q.Options {
		if option == input {
			_, err := ctrl.Choose(i)
			return err
		}
	}
	// A wrong choice is any option other than the answer.
	for i, option := range q.Options {
		if option != q.Answer {
			_, err := ctrl.Choose(i)
			return err
		}
	}
	return fmt.Errorf("no option to choose for %q", q.Text)
}

const wrongAnswer = "wrong"

func (s *featureState) answersEveryQuestionCorrectly(name, topic string) error {
	return s.playSession(name, topic, func(_ int, q question.Question, _ bool) (string, bool) {
		return q.Answer, false
	})
}

func (s *featureState) answersWithTable(name, topic string, table *godog.Table) error {
	type plan struct{ first, second string }
	plans := map[int]plan{}
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 3 {
			return fmt.Errorf("row %d: expected 3 cells", i)
		}
		n, err := strconv.Atoi(strings.TrimSpace(row.Cells[0].Value))
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		plans[n] = plan{first: strings.TrimSpace(row.Cells[1].Value), second: strings.TrimSpace(row.Cells[2].Value)}
	}
	return s.playSession(name, topic, func(n int, q question.Question, second bool) (string, bool) {
		p, ok := plans[n]
		if !ok {
			return q.Answer, false
		}
		choice := p.first
		if second {
			choice = p.second
		}
		if choice == "right" {
			return q.Answer, false
		}
		return wrongAnswer, false
	})
}

func (s *featureState) answersSomeAndQuits(name string, count int, topic string) error {
	return s.playSession(name, topic, func(n int, q question.Question, _ bool) (string, bool) {
		if n > count {
			return "", true
		}
		return q.Answer, false
	})
}

func (s *featureState) loadRecord(name string) (user.Record, error) {
	st, err := store.OpenJSON(s.storePath())
	if err != nil {
		return user.Record{}, err
	}
	defer st.Close()
	rec, ok, err := st.Get(context.Background(), user.Key(name, codes[name]))
	if err != nil {
		return user.Record{}, err
	}
	if !ok {
		return user.Record{}, fmt.Errorf("no record for %s", name)
	}
	return rec, nil
}
