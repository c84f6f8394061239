package attempt

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"learnmaths/internal/question"
)

func testPicker() *Picker {
	return NewPicker(DefaultMessages(), rand.New(rand.NewSource(1)))
}

func TestCorrectFirstAttempt(t *testing.T) {
	a := New(question.Input("What is 2 + 3?", 5), testPicker())
	out, err := a.Submit(" 5 ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.State != ResolvedCorrect || !out.Correct || !out.Resolved || out.Points != PointsPerCorrect {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if !slices.Contains(DefaultMessages().Encouraging, out.Message) {
		t.Fatalf("expected encouragement, got %q", out.Message)
	}
}

func TestSecondChanceThenCorrect(t *testing.T) {
	a := New(question.Input("What is 7 + 8?", 15), testPicker())
	out, err := a.Submit("14")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.State != AwaitingSecondChance || out.Resolved || out.Points != 0 || out.PreviousWrong != "14" {
		t.Fatalf("unexpected first outcome %+v", out)
	}
	if !slices.Contains(DefaultMessages().TryAgain, out.Message) {
		t.Fatalf("expected try-again message, got %q", out.Message)
	}
	out, err = a.Submit("15")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.State != ResolvedCorrect || out.Points != PointsPerCorrect || out.PreviousWrong != "14" {
		t.Fatalf("unexpected second outcome %+v", out)
	}
}

func TestTwoWrongAnswersRevealAnswer(t *testing.T) {
	a := New(question.Text("What time is 3 o'clock in digital format?", "3:00"), testPicker())
	if _, err := a.Submit("3"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	out, err := a.Submit("three")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.State != ResolvedIncorrect || out.Correct || !out.Resolved || out.Points != 0 || out.CorrectAnswer != "3:00" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if _, err := a.Submit("3:00"); !errors.Is(err, ErrResolved) {
		t.Fatalf("expected ErrResolved, got %v", err)
	}
}

func TestBlankAnswerKeepsState(t *testing.T) {
	a := New(question.Input("What is 1 + 1?", 2), testPicker())
	if _, err := a.Submit("   "); !errors.Is(err, ErrBlankAnswer) {
		t.Fatalf("expected ErrBlankAnswer, got %v", err)
	}
	if a.State() != Fresh {
		t.Fatalf("expected fresh state, got %s", a.State())
	}
}

func TestMalformedInputIsWrong(t *testing.T) {
	a := New(question.Input("What is 6 + 6?", 12), testPicker())
	out, err := a.Submit("twelve")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct || out.State != AwaitingSecondChance {
		t.Fatalf("unexpected outcome %+v", out)
	}
	out, err = a.Submit("12 apples")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct {
		t.Fatalf("expected leading digits to match, got %+v", out)
	}
}

func TestTextAnswerIgnoresCase(t *testing.T) {
	a := New(question.Text("Which shape?", "Sphere"), testPicker())
	out, err := a.Submit("sPHERE")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestChoiceGetsTwoChances(t *testing.T) {
	q := question.Choice("Which has no flat faces?", "sphere", []string{"cube", "sphere", "cone"})
	a := New(q, testPicker())
	if _, err := a.Submit("sphere"); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
	if _, err := a.Choose(3); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	out, err := a.Choose(0)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if out.State != AwaitingSecondChance || out.PreviousWrong != "cube" {
		t.Fatalf("unexpected first outcome %+v", out)
	}
	out, err = a.Choose(1)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if out.State != ResolvedCorrect || out.Points != PointsPerCorrect {
		t.Fatalf("unexpected second outcome %+v", out)
	}
}

func TestInputQuestionRejectsChoose(t *testing.T) {
	a := New(question.Input("What is 2 + 2?", 4), nil)
	if _, err := a.Choose(0); !errors.Is(err, ErrWrongKind) {
		t.Fatalf("expected ErrWrongKind, got %v", err)
	}
}

func TestPickEmpty(t *testing.T) {
	if got := Pick(rand.New(rand.NewSource(1)), nil); got != "" {
		t.Fatalf("expected empty phrase, got %q", got)
	}
}

func TestRevealText(t *testing.T) {
	if got := RevealText("42"); got != "The correct answer was: 42" {
		t.Fatalf("unexpected reveal %q", got)
	}
}
