package generator

import (
	"fmt"
	"strings"

	"learnmaths/internal/question"
)

var statisticsFruits = []string{"Apples", "Bananas", "Oranges", "Grapes"}

// statisticsQuestions shows a small tally and asks either which fruit has
// the most or how many of that fruit there are. Ties go to the first fruit.
func statisticsQuestions(d *draw, _ int) (question.Set, error) {
	c := d.collector()
	err := c.fill(DefaultCount, func() question.Question {
		counts := make([]int, len(statisticsFruits))
		for i := range counts {
			counts[i] = d.between(5, 24)
		}
		most := 0
		for i, count := range counts {
			if count > counts[most] {
				most = i
			}
		}
		data := formatTally(statisticsFruits, counts)
		if d.chance(0.5) {
			return question.Choice(
				fmt.Sprintf("Look at this data: %s. Which fruit has the most?", data),
				statisticsFruits[most],
				d.shuffle(statisticsFruits),
			)
		}
		return question.Input(
			fmt.Sprintf("Look at this data: %s. How many %s are there?", data, statisticsFruits[most]),
			counts[most],
		)
	})
	return c.set, err
}

func formatTally(names []string, counts []int) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d", name, counts[i]))
	}
	return strings.Join(parts, ", ")
}
