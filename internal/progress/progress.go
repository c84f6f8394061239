// Package progress folds session results into a player's record.
package progress

import (
	"fmt"
	"math"
	"strings"

	"learnmaths/internal/question"
	"learnmaths/internal/session"
	"learnmaths/internal/user"
)

// StarDenominator is the question count the star thresholds assume. It stays
// fixed even for sets of another size.
const StarDenominator = 10

// Summary describes what a session earned.
type Summary struct {
	CorrectCount   int
	TotalQuestions int
	PointsEarned   int
	StarsEarned    int
	Percentage     int
	Message        string
}

// Level returns the level to play for a progress value.
func Level(p float64) int {
	if p < 0 || math.IsNaN(p) {
		return 1
	}
	return int(math.Floor(p)) + 1
}

// LevelFor returns the level a record should play for topic.
func LevelFor(rec user.Record, topic question.Topic) int {
	return Level(rec.Progress[topic])
}

// Stars returns the stars earned for a number of correct answers.
func Stars(correct int) int {
	switch {
	case correct >= 8:
		return 3
	case correct >= 6:
		return 2
	case correct >= 4:
		return 1
	default:
		return 0
	}
}

// Apply returns a copy of rec updated with result, and a summary of the
// change. rec is not modified.
func Apply(rec user.Record, result session.Result) (user.Record, Summary) {
	out := rec.Clone()
	summary := Summarize(result)
	if result.TotalQuestions > 0 {
		out.Progress[result.Topic] += float64(result.CorrectCount) / float64(result.TotalQuestions)
	} else if _, ok := out.Progress[result.Topic]; !ok {
		out.Progress[result.Topic] = 0
	}
	out.Points += summary.PointsEarned
	out.Stars += summary.StarsEarned
	return out, summary
}

// Summarize computes the summary for a result without touching a record.
func Summarize(result session.Result) Summary {
	summary := Summary{
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		PointsEarned:   result.Score,
		StarsEarned:    Stars(result.CorrectCount),
	}
	if result.TotalQuestions > 0 {
		summary.Percentage = int(math.Round(float64(result.CorrectCount) / float64(result.TotalQuestions) * 100))
	}
	summary.Message = ResultMessage(summary.Percentage)
	return summary
}

// ResultMessage returns the closing message for a percentage score.
func ResultMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Outstanding work! You're a maths superstar! 🌟"
	case percentage >= 80:
		return "Excellent job! You really know your maths! 👏"
	case percentage >= 70:
		return "Great work! You're doing really well! 🎯"
	default:
		return "Good effort! Try this level again to improve your score! 🌈"
	}
}

// StarsText renders earned stars for display.
func StarsText(stars int) string {
	if stars <= 0 {
		return "Keep practicing to earn stars next time! 💪"
	}
	plural := ""
	if stars > 1 {
		plural = "s"
	}
	return fmt.Sprintf("You earned %d star%s! %s", stars, plural, strings.Repeat("⭐", stars))
}

// BarPercent returns how full a topic's dashboard bar is: ten points of
// progress fill it.
func BarPercent(p float64) int {
	if p <= 0 || math.IsNaN(p) {
		return 0
	}
	return int(math.Min(p*10, 100))
}
