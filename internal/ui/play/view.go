package play

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"learnmaths/internal/attempt"
	"learnmaths/internal/progress"
	"learnmaths/internal/question"
)

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.viewLogin()
	case screenDashboard:
		body = m.viewDashboard()
	case screenLesson:
		body = m.viewLesson()
	case screenQuestion, screenSecondChance, screenFeedback, screenReveal:
		body = m.viewGame()
	case screenSummary:
		body = m.viewSummary()
	}
	parts := []string{body}
	if m.confirmQuit {
		parts = append(parts, boxed("Are you sure you want to quit this level? Your progress in this level will be lost.\n\ny: quit • n: keep playing", m.opts.NoColor, colorWarn))
	}
	if m.status != "" {
		color := colorGood
		if m.isError {
			color = colorError
		}
		parts = append(parts, stylize(m.status, m.opts.NoColor, color))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) viewLogin() string {
	lines := []string{
		bold("Maths Superheroes!", m.opts.NoColor, colorTitle),
		"",
		m.name.View(),
		m.code.View(),
		"",
		stylize("enter: log in • ctrl+r: I'm new here! • tab: switch field • esc: quit", m.opts.NoColor, colorMuted),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDashboard() string {
	header := bold("Hi "+m.record.Username+"!", m.opts.NoColor, colorTitle) +
		"  " + stylize("⭐ "+strconv.Itoa(m.record.Stars)+"  Points: "+strconv.Itoa(m.record.Points), m.opts.NoColor, colorStarred)
	help := stylize("↑/↓: choose topic • enter: start • o: log out • q: quit", m.opts.NoColor, colorMuted)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View(), "", help)
}

func (m Model) viewLesson() string {
	title := "Learn this topic!"
	var lines []string
	if lesson, ok := m.game.Lesson(m.topic); ok {
		title = lesson.Title
		lines = append(lines, lesson.Description)
		if lesson.VideoURL != "" {
			lines = append(lines, "", stylize("Video: "+lesson.VideoURL, m.opts.NoColor, colorSubtle))
		}
	}
	lines = append([]string{bold(title, m.opts.NoColor, colorAccent), ""}, lines...)
	lines = append(lines, "", stylize("enter: let's go! • esc: back", m.opts.NoColor, colorMuted))
	return boxed(strings.Join(lines, "\n"), m.opts.NoColor, colorAccent)
}

func (m Model) viewGame() string {
	if m.session == nil {
		return ""
	}
	ctx := m.session.Context()
	current, total := m.session.Position()
	header := bold(m.game.Title(ctx.Topic), m.opts.NoColor, colorTitle) + "  " +
		stylize("Level "+strconv.Itoa(ctx.Level)+" • Question "+strconv.Itoa(current)+" of "+strconv.Itoa(total)+" • Score "+strconv.Itoa(ctx.Score), m.opts.NoColor, colorMuted)

	switch m.screen {
	case screenFeedback:
		return lipgloss.JoinVertical(lipgloss.Left, header, "", boxed(m.outcome.Message, m.opts.NoColor, colorGood))
	case screenReveal:
		text := m.outcome.Message + "\n\n" + attempt.RevealText(m.outcome.CorrectAnswer)
		return lipgloss.JoinVertical(lipgloss.Left, header, "", boxed(text, m.opts.NoColor, colorWarn),
			stylize("enter: next question • esc: quit level", m.opts.NoColor, colorMuted))
	case screenSecondChance:
		text := m.outcome.Message + "\n\nYou have one more try!"
		return lipgloss.JoinVertical(lipgloss.Left, header, "", boxed(text, m.opts.NoColor, colorWarn),
			stylize("enter: try again • esc: quit level", m.opts.NoColor, colorMuted))
	}

	q, ok := m.currentQuestion()
	if !ok {
		return header
	}
	lines := []string{header, "", bold(q.Text, m.opts.NoColor, lipgloss.Color("255")), ""}
	if previous := m.session.Attempt().PreviousWrong(); previous != "" {
		lines = append(lines, stylize("Your first answer: "+previous, m.opts.NoColor, colorWarn), "")
	}
	if q.Kind == question.KindChoice {
		for i, option := range q.Options {
			label := strconv.Itoa(i+1) + ". " + option
			if i == m.choice {
				label = bold("▸ "+label, m.opts.NoColor, colorAccent)
			} else {
				label = "  " + label
			}
			lines = append(lines, label)
		}
		lines = append(lines, "", stylize("↑/↓ or 1-9: choose • enter: check • esc: quit level", m.opts.NoColor, colorMuted))
	} else {
		lines = append(lines, m.answer.View(), "", stylize("enter: check • esc: quit level", m.opts.NoColor, colorMuted))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewSummary() string {
	if m.saving {
		return stylize("Saving your progress...", m.opts.NoColor, colorMuted)
	}
	summary := m.finished.Summary
	lines := []string{
		bold("Level complete!", m.opts.NoColor, colorTitle),
		"",
		"Correct: " + strconv.Itoa(summary.CorrectCount) + " / " + strconv.Itoa(summary.TotalQuestions) + " (" + strconv.Itoa(summary.Percentage) + "%)",
		"Points earned: " + strconv.Itoa(summary.PointsEarned),
		stylize(progress.StarsText(summary.StarsEarned), m.opts.NoColor, colorStarred),
		"",
		summary.Message,
		"",
		stylize("enter: back to topics", m.opts.NoColor, colorMuted),
	}
	return boxed(strings.Join(lines, "\n"), m.opts.NoColor, colorGood)
}
