package generator

import (
	"fmt"

	"learnmaths/internal/question"
)

const (
	measurementTimeQuestions   = 3
	measurementMoneyQuestions  = 4
	measurementLengthQuestions = 3
)

// measurementQuestions returns time, then money, then length questions.
func measurementQuestions(d *draw, _ int) (question.Set, error) {
	c := d.collector()
	if err := c.fill(measurementTimeQuestions, func() question.Question {
		return clockQuestion(d.between(1, 12), d.between(0, 11)*5)
	}); err != nil {
		return nil, err
	}
	if err := c.fill(measurementTimeQuestions+measurementMoneyQuestions, func() question.Question {
		return penceQuestion(d.between(0, 9), d.between(0, 99))
	}); err != nil {
		return nil, err
	}
	if err := c.fill(DefaultCount, func() question.Question {
		return lengthQuestion(d.between(1, 5))
	}); err != nil {
		return nil, err
	}
	return c.set, nil
}

func clockQuestion(hour, minute int) question.Question {
	spoken := fmt.Sprintf("%d o'clock", hour)
	if minute != 0 {
		spoken = fmt.Sprintf("%d minutes past %d", minute, hour)
	}
	return question.Text(
		fmt.Sprintf("What time is %s in digital format? (Write as HH:MM, like 3:15)", spoken),
		fmt.Sprintf("%d:%02d", hour, minute),
	)
}

func penceQuestion(pounds, pence int) question.Question {
	return question.Input(
		fmt.Sprintf("How many pence is £%d.%02d?", pounds, pence),
		pounds*100+pence,
	)
}

func lengthQuestion(meters int) question.Question {
	plural := ""
	if meters > 1 {
		plural = "s"
	}
	return question.Input(
		fmt.Sprintf("How many centimeters are in %d meter%s?", meters, plural),
		meters*100,
	)
}
