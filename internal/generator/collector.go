package generator

import (
	"math/rand"

	"learnmaths/internal/question"
)

// draw carries the random source and retry ceiling for one generation.
type draw struct {
	rng      *rand.Rand
	maxDraws int
}

// between returns a uniformly drawn integer in [lo, hi].
func (d *draw) between(lo, hi int) int {
	return lo + d.rng.Intn(hi-lo+1)
}

// chance returns true with probability p.
func (d *draw) chance(p float64) bool {
	return d.rng.Float64() < p
}

// pick returns a uniformly drawn element of values.
func pick[T any](d *draw, values []T) T {
	return values[d.rng.Intn(len(values))]
}

// shuffle returns a shuffled copy of values.
func (d *draw) shuffle(values []string) []string {
	shuffled := make([]string, len(values))
	copy(shuffled, values)
	d.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

func (d *draw) collector() *collector {
	return &collector{seen: map[string]struct{}{}, maxDraws: d.maxDraws}
}

// collector accumulates questions with distinct texts.
type collector struct {
	set      question.Set
	seen     map[string]struct{}
	maxDraws int
}

// add appends q unless its text was already emitted, reporting whether it was kept.
func (c *collector) add(q question.Question) bool {
	if _, exists := c.seen[q.Text]; exists {
		return false
	}
	c.seen[q.Text] = struct{}{}
	c.set = append(c.set, q)
	return true
}

// fill draws questions until the set holds total questions.
func (c *collector) fill(total int, next func() question.Question) error {
	misses := 0
	for len(c.set) < total {
		if c.add(next()) {
			misses = 0
			continue
		}
		misses++
		if misses >= c.maxDraws {
			return ErrQuestionSpaceExhausted
		}
	}
	return nil
}
