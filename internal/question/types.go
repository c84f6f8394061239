package question

import "strconv"

// Kind identifies how a question expects to be answered.
type Kind string

const (
	// KindInput expects a typed whole number.
	KindInput Kind = "input"
	// KindText expects typed text compared without regard to case.
	KindText Kind = "text"
	// KindChoice expects one of the listed options, selected by index.
	KindChoice Kind = "choice"
)

// Valid reports whether the kind is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindInput, KindText, KindChoice:
		return true
	default:
		return false
	}
}

// Topic names a practice area such as addition or shapes.
type Topic string

// Built-in topics.
const (
	TopicAddition       Topic = "addition"
	TopicSubtraction    Topic = "subtraction"
	TopicMultiplication Topic = "multiplication"
	TopicDivision       Topic = "division"
	TopicFractions      Topic = "fractions"
	TopicMeasurement    Topic = "measurement"
	TopicShapes         Topic = "shapes"
	TopicStatistics     Topic = "statistics"
	TopicNumbers        Topic = "numbers"
)

// Question is a single generated question. It is not modified after creation.
type Question struct {
	Text    string   `json:"question" yaml:"question"`
	Kind    Kind     `json:"kind" yaml:"kind"`
	Answer  string   `json:"answer" yaml:"answer"`
	Number  int      `json:"-" yaml:"-"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Set is an ordered batch of questions for one session.
type Set []Question

// Input builds a question answered with a whole number.
func Input(text string, answer int) Question {
	return Question{Text: text, Kind: KindInput, Answer: strconv.Itoa(answer), Number: answer}
}

// Text builds a question answered with free text.
func Text(text, answer string) Question {
	return Question{Text: text, Kind: KindText, Answer: answer}
}

// Choice builds a multiple-choice question. Options are copied.
func Choice(text, answer string, options []string) Question {
	copied := make([]string, len(options))
	copy(copied, options)
	return Question{Text: text, Kind: KindChoice, Answer: answer, Options: copied}
}
