package generator

import "learnmaths/internal/question"

// DefaultTitle is shown for topics without a dedicated title.
const DefaultTitle = "Let's Learn!"

var titles = map[question.Topic]string{
	question.TopicAddition:       "Addition & Subtraction Fun!",
	question.TopicMultiplication: "Times Tables Adventure!",
	question.TopicFractions:      "Fraction Pizza Party!",
	question.TopicMeasurement:    "Measurement Magic!",
	question.TopicShapes:         "Shape Detective!",
	question.TopicStatistics:     "Chart Champions!",
	question.TopicNumbers:        "Number Heroes!",
}

// Title returns the display title of a built-in topic, or DefaultTitle.
func Title(topic question.Topic) string {
	if title, ok := titles[topic]; ok {
		return title
	}
	return DefaultTitle
}

// Lesson is a short teaching card shown before practising a topic.
type Lesson struct {
	Title       string
	Description string
	VideoURL    string
}

var lessons = map[question.Topic]Lesson{
	question.TopicAddition: {
		Title:       "Learn Addition!",
		Description: "Addition means putting numbers together to find out how many you have in total.",
		VideoURL:    "https://www.youtube.com/embed/mAvuom42NyY",
	},
	question.TopicSubtraction: {
		Title:       "Learn Subtraction!",
		Description: "Subtraction means taking away from a number to see what is left.",
		VideoURL:    "https://www.youtube.com/embed/Y6M89-6106I",
	},
	question.TopicMultiplication: {
		Title:       "Learn Multiplication!",
		Description: "Multiplication is repeated addition. Learn your times tables!",
		VideoURL:    "https://www.youtube.com/embed/FJ5qLWP3Fqo",
	},
	question.TopicDivision: {
		Title:       "Learn Division!",
		Description: "Division means sharing or grouping numbers equally.",
		VideoURL:    "https://www.youtube.com/embed/KGMf314LUc0",
	},
	question.TopicFractions: {
		Title:       "Learn Fractions!",
		Description: "Fractions are parts of a whole.",
		VideoURL:    "https://www.youtube.com/embed/CA9XLJpQp3c",
	},
}

// LessonFor returns the teaching card for a topic, if there is one.
func LessonFor(topic question.Topic) (Lesson, bool) {
	lesson, ok := lessons[topic]
	return lesson, ok
}
