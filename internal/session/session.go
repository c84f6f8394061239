// Package session sequences the questions of one practice round and keeps
// the running score.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"learnmaths/internal/attempt"
	"learnmaths/internal/generator"
	"learnmaths/internal/question"
)

// ErrSessionClosed is returned for calls on a finished or quit session.
var ErrSessionClosed = errors.New("session closed")

// Context is the explicit state of one session.
type Context struct {
	ID        string
	Topic     question.Topic
	Level     int
	Questions question.Set
	Index     int
	Score     int
	StartedAt time.Time
}

// Result summarizes a completed session.
type Result struct {
	SessionID      string
	Topic          question.Topic
	Level          int
	CorrectCount   int
	TotalQuestions int
	Score          int
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Option configures Start.
type Option func(*config)

type config struct {
	genOpts  []generator.Option
	messages attempt.Messages
	rng      *rand.Rand
	now      func() time.Time
	set      question.Set
}

// WithGenerator passes options through to the question generator.
func WithGenerator(opts ...generator.Option) Option {
	return func(c *config) { c.genOpts = append(c.genOpts, opts...) }
}

// WithMessages overrides the feedback phrases.
func WithMessages(messages attempt.Messages) Option {
	return func(c *config) { c.messages = messages }
}

// WithRand sets the source used to pick feedback phrases.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithNow sets the clock used for timestamps.
func WithNow(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// WithQuestions plays a prepared set instead of generating one.
func WithQuestions(set question.Set) Option {
	return func(c *config) { c.set = set }
}

// Controller drives one session. It is not safe for concurrent use.
type Controller struct {
	ctx     Context
	picker  *attempt.Picker
	now     func() time.Time
	current *attempt.Attempt
	closed  bool
	done    time.Time
}

// Start generates the question set for topic and level and presents the
// first question.
func Start(topic question.Topic, level int, opts ...Option) (*Controller, error) {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	set := cfg.set
	if set == nil {
		generated, err := generator.Generate(topic, level, cfg.genOpts...)
		if err != nil {
			return nil, fmt.Errorf("start session: %w", err)
		}
		set = generated
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("start session: %w", generator.ErrQuestionSpaceExhausted)
	}
	c := &Controller{
		ctx: Context{
			ID:        uuid.NewString(),
			Topic:     topic,
			Level:     level,
			Questions: set,
			StartedAt: cfg.now(),
		},
		picker: attempt.NewPicker(cfg.messages, cfg.rng),
		now:    cfg.now,
	}
	c.current = attempt.New(set[0], c.picker)
	return c, nil
}

// Context returns a copy of the session state.
func (c *Controller) Context() Context {
	ctx := c.ctx
	ctx.Questions = append(question.Set(nil), c.ctx.Questions...)
	return ctx
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.ctx.ID }

// Current returns the question awaiting an answer.
func (c *Controller) Current() (question.Question, error) {
	if c.closed || c.Done() {
		return question.Question{}, ErrSessionClosed
	}
	return c.current.Question(), nil
}

// Attempt returns the attempt for the current question, or nil when done.
func (c *Controller) Attempt() *attempt.Attempt {
	if c.closed || c.Done() {
		return nil
	}
	return c.current
}

// Position returns the 1-based number of the current question and the total.
func (c *Controller) Position() (int, int) {
	total := len(c.ctx.Questions)
	return min(c.ctx.Index+1, total), total
}

// Score returns the points earned so far.
func (c *Controller) Score() int { return c.ctx.Score }

// Submit answers the current input or text question.
func (c *Controller) Submit(input string) (attempt.Outcome, error) {
	if c.closed || c.Done() {
		return attempt.Outcome{}, ErrSessionClosed
	}
	out, err := c.current.Submit(input)
	if err != nil {
		return out, err
	}
	c.apply(out)
	return out, nil
}

// Choose answers the current choice question.
func (c *Controller) Choose(index int) (attempt.Outcome, error) {
	if c.closed || c.Done() {
		return attempt.Outcome{}, ErrSessionClosed
	}
	out, err := c.current.Choose(index)
	if err != nil {
		return out, err
	}
	c.apply(out)
	return out, nil
}

func (c *Controller) apply(out attempt.Outcome) {
	if !out.Resolved {
		return
	}
	c.ctx.Score += out.Points
	c.ctx.Index++
	if c.Done() {
		c.done = c.now()
		c.current = nil
		return
	}
	c.current = attempt.New(c.ctx.Questions[c.ctx.Index], c.picker)
}

// Done reports whether every question has been resolved.
func (c *Controller) Done() bool {
	return c.ctx.Index >= len(c.ctx.Questions)
}

// Quit abandons the session. Later calls return ErrSessionClosed.
func (c *Controller) Quit() { c.closed = true }

// Closed reports whether the session was quit.
func (c *Controller) Closed() bool { return c.closed }

// Result returns the summary of a completed session.
func (c *Controller) Result() (Result, error) {
	if c.closed || !c.Done() {
		return Result{}, ErrSessionClosed
	}
	return Result{
		SessionID:      c.ctx.ID,
		Topic:          c.ctx.Topic,
		Level:          c.ctx.Level,
		CorrectCount:   c.ctx.Score / attempt.PointsPerCorrect,
		TotalQuestions: len(c.ctx.Questions),
		Score:          c.ctx.Score,
		StartedAt:      c.ctx.StartedAt,
		FinishedAt:     c.done,
	}, nil
}
