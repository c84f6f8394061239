package generator

import (
	"fmt"

	"learnmaths/internal/question"
)

type unitFraction struct {
	name        string
	denominator int
}

var unitFractions = []unitFraction{
	{name: "half", denominator: 2},
	{name: "third", denominator: 3},
	{name: "quarter", denominator: 4},
	{name: "sixth", denominator: 6},
	{name: "eighth", denominator: 8},
	{name: "tenth", denominator: 10},
}

// fractionQuestions asks for a unit fraction of a multiple of its denominator.
// The level does not change the range.
func fractionQuestions(d *draw, _ int) (question.Set, error) {
	c := d.collector()
	err := c.fill(DefaultCount, func() question.Question {
		fraction := pick(d, unitFractions)
		total := fraction.denominator * d.between(2, 4)
		return question.Input(
			fmt.Sprintf("What is one %s of %d?", fraction.name, total),
			total/fraction.denominator,
		)
	})
	return c.set, err
}
