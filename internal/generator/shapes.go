package generator

import "learnmaths/internal/question"

type shapeFact struct {
	name  string
	count int
	text  string
}

var shapes2D = []shapeFact{
	{name: "triangle", count: 3, text: "How many sides does a triangle have?"},
	{name: "square", count: 4, text: "How many sides does a square have?"},
	{name: "rectangle", count: 4, text: "How many sides does a rectangle have?"},
	{name: "pentagon", count: 5, text: "How many sides does a pentagon have?"},
	{name: "hexagon", count: 6, text: "How many sides does a hexagon have?"},
}

var shapes3D = []shapeFact{
	{name: "cube", count: 6, text: "How many faces does a cube have?"},
	{name: "sphere", count: 1, text: "How many faces does a sphere have?"},
	{name: "cylinder", count: 3, text: "How many faces does a cylinder have?"},
	{name: "pyramid", count: 5, text: "How many faces does a square-based pyramid have?"},
	{name: "cone", count: 2, text: "How many faces does a cone have?"},
}

const (
	noFlatFacesQuestion = "Which of these is a 3D shape that has no flat faces?"
	noFlatFacesAnswer   = "sphere"
)

// shapeQuestions asks every side and face fact in random order and ends with
// one multiple-choice question, so the set holds 11 questions.
func shapeQuestions(d *draw, _ int) (question.Set, error) {
	c := d.collector()
	for _, facts := range [][]shapeFact{shapes2D, shapes3D} {
		for _, i := range d.rng.Perm(len(facts)) {
			c.add(question.Input(facts[i].text, facts[i].count))
		}
	}
	names := make([]string, 0, len(shapes3D))
	for _, shape := range shapes3D {
		names = append(names, shape.name)
	}
	c.add(question.Choice(noFlatFacesQuestion, noFlatFacesAnswer, d.shuffle(names)))
	return c.set, nil
}
