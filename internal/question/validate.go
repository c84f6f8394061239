package question

import (
	"fmt"
	"strconv"
	"strings"
)

// Issue captures a validation problem in a question set or bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// ValidateSet checks that every question is well formed and that no two
// questions share a text. A positive want also checks the set length.
func ValidateSet(set Set, want int) error {
	collector := &issueCollector{}
	if want > 0 && len(set) != want {
		collector.add("questions", fmt.Sprintf("expected %d questions, got %d", want, len(set)))
	}
	seen := map[string]struct{}{}
	for i, q := range set {
		prefix := fmt.Sprintf("questions[%d]", i)
		checkQuestion(collector, prefix, q)
		if _, exists := seen[q.Text]; exists {
			collector.add(prefix+".question", fmt.Sprintf("duplicate text %q", q.Text))
		}
		seen[q.Text] = struct{}{}
	}
	return collector.result()
}

func checkQuestion(collector *issueCollector, prefix string, q Question) {
	if strings.TrimSpace(q.Text) == "" {
		collector.add(prefix+".question", "is required")
	}
	if !q.Kind.Valid() {
		collector.add(prefix+".kind", fmt.Sprintf("unknown kind %q", q.Kind))
		return
	}
	if strings.TrimSpace(q.Answer) == "" {
		collector.add(prefix+".answer", "is required")
	}
	switch q.Kind {
	case KindInput:
		if q.Answer != strconv.Itoa(q.Number) {
			collector.add(prefix+".answer", fmt.Sprintf("%q is not the whole number %d", q.Answer, q.Number))
		}
		if len(q.Options) > 0 {
			collector.add(prefix+".options", "only choice questions have options")
		}
	case KindText:
		if len(q.Options) > 0 {
			collector.add(prefix+".options", "only choice questions have options")
		}
	case KindChoice:
		if len(q.Options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		found := false
		for optionIndex, option := range q.Options {
			if strings.TrimSpace(option) == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
			if option == q.Answer {
				found = true
			}
		}
		if !found {
			collector.add(prefix+".answer", fmt.Sprintf("%q is not one of the options", q.Answer))
		}
	}
}

// NormalizeBank trims whitespace, resolves numeric answers and validates a bank.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	bank.Topic = Topic(strings.ToLower(strings.TrimSpace(string(bank.Topic))))
	if bank.Topic == "" {
		collector.add("topic", "is required")
	}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seen := map[string]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q.Text = strings.TrimSpace(q.Text)
		q.Answer = strings.TrimSpace(q.Answer)
		q.Kind = Kind(strings.ToLower(strings.TrimSpace(string(q.Kind))))
		if q.Kind == "" {
			q.Kind = KindText
			if len(q.Options) > 0 {
				q.Kind = KindChoice
			}
		}
		if len(q.Options) > 0 {
			q.Options = normalizeStringSlice(q.Options)
		}
		if q.Kind == KindInput {
			value, err := strconv.Atoi(q.Answer)
			if err != nil {
				collector.add(prefix+".answer", fmt.Sprintf("%q is not a whole number", q.Answer))
			} else {
				q.Number = value
				q.Answer = strconv.Itoa(value)
			}
		}
		checkQuestion(collector, prefix, q)
		if q.Text != "" {
			if _, exists := seen[q.Text]; exists {
				collector.add(prefix+".question", fmt.Sprintf("duplicate text %q", q.Text))
			}
			seen[q.Text] = struct{}{}
		}
		bank.Questions[i] = q
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
