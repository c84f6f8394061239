package question

import "testing"

// TestParseWholeNumber verifies leading-integer parsing of typed answers.
func TestParseWholeNumber(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "12", want: 12, ok: true},
		{input: "  7 ", want: 7, ok: true},
		{input: "-4", want: -4, ok: true},
		{input: "+9", want: 9, ok: true},
		{input: "12abc", want: 12, ok: true},
		{input: "3.75", want: 3, ok: true},
		{input: "abc", ok: false},
		{input: "", ok: false},
		{input: "-", ok: false},
		{input: "−5", ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseWholeNumber(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseWholeNumber(%q) ok=%v, want %v", tc.input, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseWholeNumber(%q)=%d, want %d", tc.input, got, tc.want)
		}
	}
}

// TestMatchesInput verifies numeric and text matching rules.
func TestMatchesInput(t *testing.T) {
	numeric := Input("What is 2 + 3?", 5)
	if !numeric.MatchesInput(" 5 ") {
		t.Fatalf("expected padded 5 to match")
	}
	if numeric.MatchesInput("five") {
		t.Fatalf("expected non-numeric input to be wrong")
	}
	if numeric.MatchesInput("6") {
		t.Fatalf("expected 6 to be wrong")
	}

	clock := Text("What time is 5 minutes past 3 in digital format?", "3:05")
	if !clock.MatchesInput("3:05") {
		t.Fatalf("expected exact time to match")
	}
	if clock.MatchesInput("03:05") {
		t.Fatalf("expected zero-padded hour to be wrong")
	}

	fruit := Text("Name a fruit", "Apples")
	if !fruit.MatchesInput("  APPLES ") {
		t.Fatalf("expected case-insensitive match")
	}

	choice := Choice("Pick", "sphere", []string{"cube", "sphere"})
	if choice.MatchesInput("sphere") {
		t.Fatalf("expected typed text never to answer a choice question")
	}
}

// TestMatchesOption verifies option selection by index.
func TestMatchesOption(t *testing.T) {
	q := Choice("Which of these has no flat faces?", "sphere", []string{"cube", "sphere", "cone"})
	if !q.MatchesOption(1) {
		t.Fatalf("expected index 1 to match")
	}
	for _, index := range []int{-1, 0, 2, 3} {
		if q.MatchesOption(index) {
			t.Fatalf("expected index %d not to match", index)
		}
	}
}

// TestChoiceCopiesOptions verifies generated options are not aliased.
func TestChoiceCopiesOptions(t *testing.T) {
	options := []string{"a", "b"}
	q := Choice("Pick", "a", options)
	options[0] = "z"
	if q.Options[0] != "a" {
		t.Fatalf("expected options to be copied, got %v", q.Options)
	}
}
