// Package game wires accounts, question generation, sessions, progress and
// history into the operations a presentation layer needs.
package game

import (
	"context"
	"fmt"
	"io"
	"log"

	"learnmaths/internal/account"
	"learnmaths/internal/generator"
	"learnmaths/internal/history"
	"learnmaths/internal/progress"
	"learnmaths/internal/question"
	"learnmaths/internal/session"
	"learnmaths/internal/user"
)

// Recorder stores finished sessions.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) error
}

// TopicStatus is one dashboard row.
type TopicStatus struct {
	Topic    question.Topic
	Title    string
	Level    int
	Progress float64
}

// Finished is what a completed session produced.
type Finished struct {
	Record  user.Record
	Result  session.Result
	Summary progress.Summary
}

// Option configures a Game.
type Option func(*Game)

// WithHistory records finished sessions with rec.
func WithHistory(rec Recorder) Option { return func(g *Game) { g.history = rec } }

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSessionOptions passes options to every session.
func WithSessionOptions(opts ...session.Option) Option {
	return func(g *Game) { g.sessionOpts = append(g.sessionOpts, opts...) }
}

// Game is the application service behind both user interfaces.
type Game struct {
	accounts    *account.Service
	gen         *generator.Generator
	history     Recorder
	logger      *log.Logger
	sessionOpts []session.Option
}

// New returns a Game.
func New(accounts *account.Service, gen *generator.Generator, opts ...Option) *Game {
	g := &Game{
		accounts: accounts,
		gen:      gen,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Login returns the record for existing credentials.
func (g *Game) Login(ctx context.Context, username, code string) (user.Record, error) {
	rec, err := g.accounts.Login(ctx, username, code)
	if err != nil {
		return user.Record{}, err
	}
	g.logger.Printf("login user=%s", rec.Username)
	return rec, nil
}

// Register creates a record for new credentials.
func (g *Game) Register(ctx context.Context, username, code string) (user.Record, error) {
	rec, err := g.accounts.Register(ctx, username, code)
	if err != nil {
		return user.Record{}, err
	}
	g.logger.Printf("register user=%s", rec.Username)
	return rec, nil
}

// Topics lists every playable topic with the record's level and progress.
func (g *Game) Topics(rec user.Record) []TopicStatus {
	topics := g.gen.Topics()
	out := make([]TopicStatus, 0, len(topics))
	for _, topic := range topics {
		p := rec.Progress[topic]
		out = append(out, TopicStatus{
			Topic:    topic,
			Title:    g.gen.Title(topic),
			Level:    progress.Level(p),
			Progress: p,
		})
	}
	return out
}

// Title returns the display title of topic.
func (g *Game) Title(topic question.Topic) string { return g.gen.Title(topic) }

// Lesson returns the teaching card for topic, if any.
func (g *Game) Lesson(topic question.Topic) (generator.Lesson, bool) {
	return generator.LessonFor(topic)
}

// Start begins a session on topic at the record's current level.
func (g *Game) Start(rec user.Record, topic question.Topic) (*session.Controller, error) {
	level := progress.LevelFor(rec, topic)
	set, err := g.gen.Generate(topic, level)
	if err != nil {
		return nil, err
	}
	opts := append([]session.Option{session.WithQuestions(set)}, g.sessionOpts...)
	ctrl, err := session.Start(topic, level, opts...)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("session start id=%s user=%s topic=%s level=%d questions=%d", ctrl.ID(), rec.Username, topic, level, len(set))
	return ctrl, nil
}

// Finish applies a completed session to rec, saves it and records history.
// History failures are logged and do not fail the call.
func (g *Game) Finish(ctx context.Context, rec user.Record, ctrl *session.Controller) (Finished, error) {
	result, err := ctrl.Result()
	if err != nil {
		return Finished{}, err
	}
	updated, summary := progress.Apply(rec, result)
	if err := g.accounts.Save(ctx, updated); err != nil {
		return Finished{}, fmt.Errorf("finish session: %w", err)
	}
	g.logger.Printf("session finish id=%s correct=%d/%d points=%d stars=%d", result.SessionID, result.CorrectCount, result.TotalQuestions, summary.PointsEarned, summary.StarsEarned)
	if g.history != nil {
		entry := history.Entry{
			ID:         result.SessionID,
			UserKey:    updated.Key(),
			Topic:      result.Topic,
			Level:      max(result.Level, 1),
			Correct:    result.CorrectCount,
			Total:      result.TotalQuestions,
			Points:     summary.PointsEarned,
			Stars:      summary.StarsEarned,
			StartedAt:  result.StartedAt,
			FinishedAt: result.FinishedAt,
		}
		if err := g.history.Record(ctx, entry); err != nil {
			g.logger.Printf("history record failed id=%s: %v", result.SessionID, err)
		}
	}
	return Finished{Record: updated, Result: result, Summary: summary}, nil
}
