// Package generator builds leveled, deduplicated question sets for each topic.
//
// Every built-in topic has a generator registered in a dispatch table keyed by
// topic. Topics without an entry, and without a configured question bank, are
// served by the addition generator.
//
// Generators redraw a question whose text was already emitted in the set. The
// number of consecutive redraws is capped; when the cap is hit the generator
// fails with ErrQuestionSpaceExhausted instead of looping forever.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"learnmaths/internal/question"
)

const (
	// DefaultCount is the number of questions in a regular set.
	DefaultCount = 10
	// DefaultMaxDraws bounds consecutive duplicate draws for one slot.
	DefaultMaxDraws = 1000
	// HardestLevel is the level from which every generator uses its hardest branch.
	HardestLevel = 3
)

// ErrQuestionSpaceExhausted indicates a generator could not find enough distinct questions.
var ErrQuestionSpaceExhausted = errors.New("question space exhausted")

type generatorFunc func(d *draw, level int) (question.Set, error)

var builtins = map[question.Topic]generatorFunc{
	question.TopicAddition:       additionQuestions,
	question.TopicSubtraction:    subtractionQuestions,
	question.TopicMultiplication: multiplicationQuestions,
	question.TopicDivision:       divisionQuestions,
	question.TopicFractions:      fractionQuestions,
	question.TopicMeasurement:    measurementQuestions,
	question.TopicShapes:         shapeQuestions,
	question.TopicStatistics:     statisticsQuestions,
	question.TopicNumbers:        numberQuestions,
}

// builtinOrder is the menu order of the built-in topics.
var builtinOrder = []question.Topic{
	question.TopicAddition,
	question.TopicSubtraction,
	question.TopicMultiplication,
	question.TopicDivision,
	question.TopicFractions,
	question.TopicMeasurement,
	question.TopicShapes,
	question.TopicStatistics,
	question.TopicNumbers,
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	maxDraws int
	banks    map[question.Topic]question.Bank
}

// WithRand uses the provided random source for every draw.
func WithRand(rng *rand.Rand) Option { return func(o *options) { o.rng = rng } }

// WithSeed uses a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxDraws overrides the consecutive duplicate draw ceiling.
func WithMaxDraws(n int) Option { return func(o *options) { o.maxDraws = n } }

// WithBanks registers custom question banks as additional topics.
func WithBanks(banks ...question.Bank) Option {
	return func(o *options) {
		if o.banks == nil {
			o.banks = map[question.Topic]question.Bank{}
		}
		for _, bank := range banks {
			o.banks[bank.Topic] = bank
		}
	}
}

// Generator produces question sets.
type Generator struct {
	opts options
}

// New constructs a Generator. Without WithRand or WithSeed the random source
// is seeded from crypto/rand.
func New(opts ...Option) *Generator {
	cfg := options{maxDraws: DefaultMaxDraws}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(NewSeed()))
	}
	if cfg.maxDraws <= 0 {
		cfg.maxDraws = DefaultMaxDraws
	}
	return &Generator{opts: cfg}
}

// Generate is a convenience wrapper around New(opts...).Generate.
func Generate(topic question.Topic, level int, opts ...Option) (question.Set, error) {
	return New(opts...).Generate(topic, level)
}

// Generate builds a fresh question set for a topic and level. Levels below 1
// are treated as 1 and levels above HardestLevel as HardestLevel.
func (g *Generator) Generate(topic question.Topic, level int) (question.Set, error) {
	level = NormalizeLevel(level)
	d := &draw{rng: g.opts.rng, maxDraws: g.opts.maxDraws}

	var (
		set question.Set
		err error
	)
	if fn, ok := builtins[topic]; ok {
		set, err = fn(d, level)
	} else if bank, ok := g.opts.banks[topic]; ok {
		set, err = bankQuestions(d, bank)
	} else {
		set, err = additionQuestions(d, level)
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s level %d: %w", topic, level, err)
	}
	return set, nil
}

// Topics lists the built-in topics in menu order followed by bank topics sorted by name.
func (g *Generator) Topics() []question.Topic {
	topics := make([]question.Topic, 0, len(builtinOrder)+len(g.opts.banks))
	topics = append(topics, builtinOrder...)
	extra := make([]question.Topic, 0, len(g.opts.banks))
	for topic := range g.opts.banks {
		if _, builtin := builtins[topic]; builtin {
			continue
		}
		extra = append(extra, topic)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(topics, extra...)
}

// Title returns the display title for a topic.
func (g *Generator) Title(topic question.Topic) string {
	if bank, ok := g.opts.banks[topic]; ok && bank.Title != "" {
		if _, builtin := builtins[topic]; !builtin {
			return bank.Title
		}
	}
	return Title(topic)
}

// IsBuiltin reports whether a topic has a dedicated generator.
func IsBuiltin(topic question.Topic) bool {
	_, ok := builtins[topic]
	return ok
}

// NormalizeLevel clamps a level into the range the generators distinguish.
func NormalizeLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > HardestLevel {
		return HardestLevel
	}
	return level
}

// ExpectedCount returns how many questions a topic produces.
func ExpectedCount(topic question.Topic) int {
	if topic == question.TopicShapes {
		return len(shapes2D) + len(shapes3D) + 1
	}
	return DefaultCount
}
