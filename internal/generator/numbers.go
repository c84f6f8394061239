package generator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"learnmaths/internal/question"
)

// numberQuestions covers counting on and back by 10 or 100, and ordering.
func numberQuestions(d *draw, level int) (question.Set, error) {
	c := d.collector()
	err := c.fill(DefaultCount, func() question.Question {
		switch level {
		case 1:
			return stepQuestion(d, d.between(1, 100), 10)
		case 2:
			return stepQuestion(d, d.between(100, 599), 100)
		default:
			return orderingQuestion(d, d.between(100, 1099))
		}
	})
	return c.set, err
}

// stepQuestion asks for step more or less than n. Results never go below zero.
func stepQuestion(d *draw, n, step int) question.Question {
	if d.chance(0.5) {
		return question.Input(fmt.Sprintf("What is %d more than %d?", step, n), n+step)
	}
	return question.Input(fmt.Sprintf("What is %d less than %d?", step, n), max(0, n-step))
}

func orderingQuestion(d *draw, base int) question.Question {
	var numbers []string
	var values []int
	for _, n := range []int{base - 50, base, base + 50, base + 100} {
		if n > 0 {
			values = append(values, n)
			numbers = append(numbers, strconv.Itoa(n))
		}
	}
	sort.Ints(values)
	sorted := make([]string, 0, len(values))
	for _, n := range values {
		sorted = append(sorted, strconv.Itoa(n))
	}
	return question.Text(
		"Put these numbers in order from smallest to largest: "+strings.Join(d.shuffle(numbers), ", "),
		strings.Join(sorted, ","),
	)
}
