package generator

import (
	"fmt"

	"learnmaths/internal/question"
)

// multiplicationTables are the times tables practised by the multiplication topic.
var multiplicationTables = []int{3, 4, 8}

func sum(a, b int) question.Question {
	return question.Input(fmt.Sprintf("What is %d + %d?", a, b), a+b)
}

func difference(a, b int) question.Question {
	return question.Input(fmt.Sprintf("What is %d - %d?", a, b), a-b)
}

func product(a, b int) question.Question {
	return question.Input(fmt.Sprintf("What is %d × %d?", a, b), a*b)
}

func quotient(dividend, divisor int) question.Question {
	return question.Input(fmt.Sprintf("What is %d ÷ %d?", dividend, divisor), dividend/divisor)
}

// additionQuestions mixes addition with some subtraction. Only level 1
// orders the subtraction operands, so harder levels can go below zero.
func additionQuestions(d *draw, level int) (question.Set, error) {
	c := d.collector()
	err := c.fill(DefaultCount, func() question.Question {
		switch level {
		case 1:
			a, b := d.between(1, 10), d.between(1, 10)
			if d.chance(0.7) {
				return sum(a, b)
			}
			return difference(max(a, b), min(a, b))
		case 2:
			a, b := d.between(10, 59), d.between(5, 34)
			if d.chance(0.6) {
				return sum(a, b)
			}
			return difference(a, b)
		default:
			a, b := d.between(100, 599), d.between(50, 249)
			if d.chance(0.5) {
				return sum(a, b)
			}
			return difference(a, b)
		}
	})
	return c.set, err
}

func subtractionQuestions(d *draw, level int) (question.Set, error) {
	c := d.collector()
	err := c.fill(DefaultCount, func() question.Question {
		switch level {
		case 1:
			a, b := d.between(1, 10), d.between(1, 10)
			return difference(max(a, b), min(a, b))
		case 2:
			return difference(d.between(10, 59), d.between(5, 34))
		default:
			return difference(d.between(100, 599), d.between(50, 249))
		}
	})
	return c.set, err
}

// multiplicationQuestions drills the 3, 4 and 8 times tables. The hardest
// level sometimes asks for the matching division fact instead.
func multiplicationQuestions(d *draw, level int) (question.Set, error) {
	c := d.collector()
	err := c.fill(DefaultCount, func() question.Question {
		table := pick(d, multiplicationTables)
		switch level {
		case 1:
			return product(table, d.between(1, 5))
		case 2:
			return product(table, d.between(1, 10))
		default:
			multiplier := d.between(1, 12)
			if d.chance(0.7) {
				return product(table, multiplier)
			}
			return quotient(table*multiplier, table)
		}
	})
	return c.set, err
}

// divisionQuestions builds the dividend from the divisor and quotient so
// every answer is a whole number.
func divisionQuestions(d *draw, level int) (question.Set, error) {
	c := d.collector()
	err := c.fill(DefaultCount, func() question.Question {
		var divisor, answer int
		switch level {
		case 1:
			divisor, answer = d.between(2, 6), d.between(1, 10)
		case 2:
			divisor, answer = d.between(2, 11), d.between(1, 10)
		default:
			divisor, answer = d.between(2, 13), d.between(1, 20)
		}
		return quotient(divisor*answer, divisor)
	})
	return c.set, err
}
