package question

import (
	"strconv"
	"strings"
)

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ParseWholeNumber reads an optional sign followed by the leading digits of
// the trimmed input, ignoring anything after them. It reports false when no
// digits lead the input, so "12 apples" is 12 and "twelve" is no number.
func ParseWholeNumber(input string) (int, bool) {
	trimmed := strings.TrimSpace(input)
	end := 0
	if end < len(trimmed) && (trimmed[end] == '-' || trimmed[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	value, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0, false
	}
	return value, true
}

// MatchesInput reports whether typed input answers an input or text question.
// Choice questions never match typed input.
func (q Question) MatchesInput(input string) bool {
	switch q.Kind {
	case KindInput:
		value, ok := ParseWholeNumber(input)
		return ok && value == q.Number
	case KindText:
		return NormalizeAnswerText(input) == NormalizeAnswerText(q.Answer)
	default:
		return false
	}
}

// MatchesOption reports whether the option at index answers a choice question.
func (q Question) MatchesOption(index int) bool {
	if q.Kind != KindChoice || index < 0 || index >= len(q.Options) {
		return false
	}
	return q.Options[index] == q.Answer
}
