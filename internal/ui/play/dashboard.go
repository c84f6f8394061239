package play

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"learnmaths/internal/game"
	"learnmaths/internal/progress"
)

const barWidth = 20

func dashboardColumns() []table.Column {
	return []table.Column{
		{Title: "Topic", Width: 30},
		{Title: "Level", Width: 6},
		{Title: "Progress", Width: barWidth + 6},
	}
}

func dashboardRows(topics []game.TopicStatus) []table.Row {
	rows := make([]table.Row, 0, len(topics))
	for _, status := range topics {
		rows = append(rows, table.Row{
			status.Title,
			strconv.Itoa(status.Level),
			progressBar(status.Progress),
		})
	}
	return rows
}

// progressBar draws a fixed-width bar filled by progress.BarPercent.
func progressBar(p float64) string {
	percent := progress.BarPercent(p)
	filled := percent * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + " " + strconv.Itoa(percent) + "%"
}
