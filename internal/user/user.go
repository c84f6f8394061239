// Package user defines the persisted player record and credential checks.
package user

import (
	"errors"
	"maps"
	"strings"
	"unicode/utf8"

	"learnmaths/internal/question"
)

// CodeLength is the required length of a secret code.
const CodeLength = 4

var (
	ErrMissingCredentials = errors.New("Please enter both your name and secret number!")
	ErrInvalidCode        = errors.New("Your secret number must be exactly 4 digits!")
)

// StartingTopics receive a zero progress entry when a record is created.
var StartingTopics = []question.Topic{
	question.TopicAddition,
	question.TopicMultiplication,
	question.TopicFractions,
	question.TopicMeasurement,
	question.TopicShapes,
	question.TopicStatistics,
	question.TopicNumbers,
}

// Record is a player's persisted state.
type Record struct {
	Username   string                     `json:"username"`
	SecretCode string                     `json:"secret_code"`
	Points     int                        `json:"points"`
	Stars      int                        `json:"stars"`
	Progress   map[question.Topic]float64 `json:"progress"`
}

// NewRecord returns a fresh record with zero progress for the starting topics.
func NewRecord(username, code string) Record {
	progress := make(map[question.Topic]float64, len(StartingTopics))
	for _, topic := range StartingTopics {
		progress[topic] = 0
	}
	return Record{Username: username, SecretCode: code, Progress: progress}
}

// Key returns the store key for a record.
func (r Record) Key() string { return Key(r.Username, r.SecretCode) }

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	out.Progress = maps.Clone(r.Progress)
	if out.Progress == nil {
		out.Progress = map[question.Topic]float64{}
	}
	return out
}

// Key joins a username and secret code into a store key.
func Key(username, code string) string {
	return username + "_" + code
}

// NormalizeCredentials trims the username. The code is kept as typed.
func NormalizeCredentials(username, code string) (string, string) {
	return strings.TrimSpace(username), code
}

// ValidateCredentials checks the login form preconditions. Only the length of
// the code is checked, not that it is made of digits.
func ValidateCredentials(username, code string) error {
	if username == "" || code == "" {
		return ErrMissingCredentials
	}
	if utf8.RuneCountInString(code) != CodeLength {
		return ErrInvalidCode
	}
	return nil
}
