// Package play is the interactive terminal game built on Bubble Tea.
package play

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"learnmaths/internal/attempt"
	"learnmaths/internal/game"
	"learnmaths/internal/question"
	"learnmaths/internal/session"
	"learnmaths/internal/user"
)

// DefaultFeedbackDelay is how long a correct answer is celebrated before
// the next question appears.
const DefaultFeedbackDelay = 2 * time.Second

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenLesson
	screenQuestion
	screenSecondChance
	screenFeedback
	screenReveal
	screenSummary
)

// Options configures the game UI.
type Options struct {
	NoColor       bool
	FeedbackDelay time.Duration
	// Username and Code log in automatically when both are set.
	Username string
	Code     string
}

// Model is the Bubble Tea model for the whole game.
type Model struct {
	ctx     context.Context
	game    *game.Game
	opts    Options
	screen  screen
	width   int
	status  string
	isError bool

	name  textinput.Model
	code  textinput.Model
	focus int

	record user.Record
	topics []game.TopicStatus
	table  table.Model
	topic  question.Topic

	session *session.Controller
	// generation changes whenever a session starts or is abandoned, so a
	// pending advance from an older session is ignored.
	generation     int
	answer         textinput.Model
	choice         int
	outcome        attempt.Outcome
	confirmQuit    bool
	pendingAdvance bool

	finished game.Finished
	saving   bool
}

// NewModel returns a model showing the login screen.
func NewModel(ctx context.Context, g *game.Game, opts Options) Model {
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = DefaultFeedbackDelay
	}
	name := textinput.New()
	name.Placeholder = "Superhero name"
	name.Prompt = "Name: "
	name.Focus()

	code := textinput.New()
	code.Placeholder = "4-digit secret number"
	code.Prompt = "Secret number: "
	code.EchoMode = textinput.EchoPassword
	code.EchoCharacter = '•'

	answer := textinput.New()
	answer.Placeholder = "Type your answer"
	answer.Prompt = "> "

	t := table.New(
		table.WithColumns(dashboardColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	return Model{
		ctx:    ctx,
		game:   g,
		opts:   opts,
		screen: screenLogin,
		name:   name,
		code:   code,
		answer: answer,
		table:  t,
	}
}

// Init logs in automatically when credentials were supplied.
func (m Model) Init() tea.Cmd {
	if m.opts.Username != "" && m.opts.Code != "" {
		return m.loginCmd(m.opts.Username, m.opts.Code, false)
	}
	return textinput.Blink
}

type loginMsg struct {
	record     user.Record
	registered bool
	err        error
}

type finishedMsg struct {
	finished game.Finished
	err      error
}

// advanceMsg moves past a celebrated correct answer.
type advanceMsg struct {
	generation int
}

func (m Model) loginCmd(username, code string, register bool) tea.Cmd {
	ctx, g := m.ctx, m.game
	return func() tea.Msg {
		var (
			rec user.Record
			err error
		)
		if register {
			rec, err = g.Register(ctx, username, code)
		} else {
			rec, err = g.Login(ctx, username, code)
		}
		return loginMsg{record: rec, registered: register, err: err}
	}
}

func (m Model) finishCmd() tea.Cmd {
	ctx, g, rec, ctrl := m.ctx, m.game, m.record, m.session
	return func() tea.Msg {
		finished, err := g.Finish(ctx, rec, ctrl)
		return finishedMsg{finished: finished, err: err}
	}
}

func advanceAfter(delay time.Duration, generation int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return advanceMsg{generation: generation} })
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.isError = isError
}

func (m *Model) refreshTopics() {
	m.topics = m.game.Topics(m.record)
	m.table.SetRows(dashboardRows(m.topics))
	m.table.SetHeight(len(m.topics) + 2)
	if m.table.Cursor() >= len(m.topics) {
		m.table.SetCursor(0)
	}
}

func (m Model) selectedTopic() (game.TopicStatus, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.topics) {
		return game.TopicStatus{}, false
	}
	return m.topics[cursor], true
}

// Screen names the visible screen, for logs and tests.
func (m Model) Screen() string {
	switch m.screen {
	case screenLogin:
		return "login"
	case screenDashboard:
		return "dashboard"
	case screenLesson:
		return "lesson"
	case screenQuestion:
		return "question"
	case screenSecondChance:
		return "second-chance"
	case screenFeedback:
		return "feedback"
	case screenReveal:
		return "reveal"
	case screenSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Record returns the logged-in player's record.
func (m Model) Record() user.Record { return m.record }
