package question

import (
	"errors"
	"testing"
)

// TestValidateSetAcceptsWellFormedSet verifies a valid set passes.
func TestValidateSetAcceptsWellFormedSet(t *testing.T) {
	set := Set{
		Input("What is 1 + 1?", 2),
		Text("What time is 3 o'clock in digital format?", "3:00"),
		Choice("Which is round?", "sphere", []string{"cube", "sphere"}),
	}
	if err := ValidateSet(set, 3); err != nil {
		t.Fatalf("validate set: %v", err)
	}
}

// TestValidateSetReportsProblems verifies duplicates and malformed questions are reported.
func TestValidateSetReportsProblems(t *testing.T) {
	set := Set{
		Input("What is 1 + 1?", 2),
		Input("What is 1 + 1?", 2),
		{Text: "Broken", Kind: KindChoice, Answer: "x", Options: []string{"a"}},
	}
	err := ValidateSet(set, 10)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) < 4 {
		t.Fatalf("expected count, duplicate and choice issues, got %+v", validationErr.Issues)
	}
}
