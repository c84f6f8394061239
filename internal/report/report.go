// Package report renders a player's progress as a standalone HTML page.
package report

import (
	"time"

	"learnmaths/internal/game"
	"learnmaths/internal/history"
	"learnmaths/internal/progress"
	"learnmaths/internal/question"
	"learnmaths/internal/user"
)

// TopicRow is one line of the topic table.
type TopicRow struct {
	Title   string
	Level   int
	Percent int
}

// SessionRow is one finished session.
type SessionRow struct {
	Title      string
	Level      int
	Correct    int
	Total      int
	Points     int
	Stars      int
	FinishedAt time.Time
}

// Data is everything the page shows.
type Data struct {
	Username    string
	Points      int
	Stars       int
	Topics      []TopicRow
	Sessions    []SessionRow
	GeneratedAt time.Time
}

// Build assembles report data. title names the topics of history entries.
func Build(rec user.Record, topics []game.TopicStatus, entries []history.Entry, title func(question.Topic) string, now time.Time) Data {
	data := Data{
		Username:    rec.Username,
		Points:      rec.Points,
		Stars:       rec.Stars,
		GeneratedAt: now,
	}
	for _, status := range topics {
		data.Topics = append(data.Topics, TopicRow{
			Title:   status.Title,
			Level:   status.Level,
			Percent: progress.BarPercent(status.Progress),
		})
	}
	for _, entry := range entries {
		data.Sessions = append(data.Sessions, SessionRow{
			Title:      title(entry.Topic),
			Level:      entry.Level,
			Correct:    entry.Correct,
			Total:      entry.Total,
			Points:     entry.Points,
			Stars:      entry.Stars,
			FinishedAt: entry.FinishedAt,
		})
	}
	return data
}
