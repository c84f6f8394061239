// Package attempt implements the two-chance answer flow for a single question.
package attempt

import (
	"errors"
	"fmt"
	"strings"

	"learnmaths/internal/question"
)

// PointsPerCorrect is awarded for every question answered correctly on
// either attempt.
const PointsPerCorrect = 10

// State is the lifecycle position of an attempt.
type State string

const (
	Fresh                State = "fresh"
	AwaitingSecondChance State = "awaiting_second_chance"
	ResolvedCorrect      State = "resolved_correct"
	ResolvedIncorrect    State = "resolved_incorrect"
)

// Resolved reports whether no further answers are accepted.
func (s State) Resolved() bool {
	return s == ResolvedCorrect || s == ResolvedIncorrect
}

var (
	ErrBlankAnswer   = errors.New("answer is blank")
	ErrInvalidChoice = errors.New("choice out of range")
	ErrWrongKind     = errors.New("answer method does not match question kind")
	ErrResolved      = errors.New("question already resolved")
)

// Outcome describes the result of one accepted answer.
type Outcome struct {
	State         State
	Correct       bool
	Resolved      bool
	Points        int
	Message       string
	CorrectAnswer string
	PreviousWrong string
}

// Attempt tracks the answers given to one question.
type Attempt struct {
	question      question.Question
	picker        *Picker
	state         State
	previousWrong string
}

// New starts an attempt at q. A nil picker uses the default messages.
func New(q question.Question, picker *Picker) *Attempt {
	if picker == nil {
		picker = NewPicker(Messages{}, nil)
	}
	return &Attempt{question: q, picker: picker, state: Fresh}
}

// Question returns the question being answered.
func (a *Attempt) Question() question.Question { return a.question }

// State returns the current state.
func (a *Attempt) State() State { return a.state }

// PreviousWrong returns the rejected first answer, if any.
func (a *Attempt) PreviousWrong() string { return a.previousWrong }

// Submit answers an input or text question.
func (a *Attempt) Submit(input string) (Outcome, error) {
	if a.state.Resolved() {
		return Outcome{}, ErrResolved
	}
	if a.question.Kind == question.KindChoice {
		return Outcome{}, ErrWrongKind
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Outcome{}, ErrBlankAnswer
	}
	return a.resolve(a.question.MatchesInput(trimmed), trimmed), nil
}

// Choose answers a choice question with the option at index.
func (a *Attempt) Choose(index int) (Outcome, error) {
	if a.state.Resolved() {
		return Outcome{}, ErrResolved
	}
	if a.question.Kind != question.KindChoice {
		return Outcome{}, ErrWrongKind
	}
	if index < 0 || index >= len(a.question.Options) {
		return Outcome{}, fmt.Errorf("%w: %d of %d", ErrInvalidChoice, index, len(a.question.Options))
	}
	return a.resolve(a.question.MatchesOption(index), a.question.Options[index]), nil
}

func (a *Attempt) resolve(correct bool, given string) Outcome {
	previous := a.previousWrong
	switch {
	case correct:
		a.state = ResolvedCorrect
		return Outcome{
			State:         a.state,
			Correct:       true,
			Resolved:      true,
			Points:        PointsPerCorrect,
			Message:       a.picker.Encouraging(),
			PreviousWrong: previous,
		}
	case a.state == Fresh:
		a.state = AwaitingSecondChance
		a.previousWrong = given
		return Outcome{
			State:         a.state,
			Message:       a.picker.TryAgain(),
			PreviousWrong: given,
		}
	default:
		a.state = ResolvedIncorrect
		return Outcome{
			State:         a.state,
			Resolved:      true,
			Message:       a.picker.TryAgain(),
			CorrectAnswer: a.question.Answer,
			PreviousWrong: previous,
		}
	}
}

// RevealText formats the correct answer shown after a second wrong answer.
func RevealText(answer string) string {
	return "The correct answer was: " + answer
}
