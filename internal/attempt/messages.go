package attempt

import (
	"math/rand"

	"learnmaths/internal/generator"
)

// Messages holds the feedback phrases shown after an answer.
type Messages struct {
	Encouraging []string
	TryAgain    []string
}

// DefaultMessages returns the built-in feedback phrases.
func DefaultMessages() Messages {
	return Messages{
		Encouraging: []string{
			"Well done! You're amazing! 🌟",
			"Fantastic work! Keep it up! 🎉",
			"Brilliant! You're getting so smart! 🧠",
			"Excellent! You're a maths star! ⭐",
			"Great job! You're doing wonderfully! 👏",
			"Super! You're learning so fast! 🚀",
			"Awesome! Keep up the great work! 💪",
			"Incredible! You're a maths hero! 🦸",
		},
		TryAgain: []string{
			"That's okay! Try again! 💪",
			"No worries! Give it another go! 🌈",
			"Almost there! You can do it! 🎯",
			"Keep trying! You're learning! 📚",
			"Don't give up! Try once more! 🔥",
			"Good effort! Have another try! ⭐",
			"Nice try! Let's try again! 🌟",
			"You're doing great! Try again! 👍",
		},
	}
}

// Picker chooses feedback phrases.
type Picker struct {
	messages Messages
	rng      *rand.Rand
}

// NewPicker returns a Picker drawing uniformly from messages with rng.
// Empty lists fall back to the defaults and a nil rng to a freshly seeded one.
func NewPicker(messages Messages, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(generator.NewSeed()))
	}
	defaults := DefaultMessages()
	if len(messages.Encouraging) == 0 {
		messages.Encouraging = defaults.Encouraging
	}
	if len(messages.TryAgain) == 0 {
		messages.TryAgain = defaults.TryAgain
	}
	return &Picker{messages: messages, rng: rng}
}

// Encouraging returns a random encouragement.
func (p *Picker) Encouraging() string { return Pick(p.rng, p.messages.Encouraging) }

// TryAgain returns a random try-again phrase.
func (p *Picker) TryAgain() string { return Pick(p.rng, p.messages.TryAgain) }

// Pick selects one phrase uniformly at random. It returns "" for an empty list.
func Pick(rng *rand.Rand, phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[rng.Intn(len(phrases))]
}
