package play

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"learnmaths/internal/account"
	"learnmaths/internal/attempt"
	"learnmaths/internal/question"
	"learnmaths/internal/user"
)

// Update handles key presses and asynchronous results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.table.SetWidth(min(typed.Width, 80))
		m.table.SetHeight(max(min(typed.Height-8, len(m.topics)+1), 3))
		return m, nil
	case loginMsg:
		return m.handleLogin(typed)
	case finishedMsg:
		return m.handleFinished(typed)
	case advanceMsg:
		return m.handleAdvance(typed)
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			if m.session != nil {
				m.session.Quit()
			}
			return m, tea.Quit
		}
		if m.confirmQuit {
			return m.updateConfirmQuit(typed)
		}
		switch m.screen {
		case screenLogin:
			return m.updateLogin(typed)
		case screenDashboard:
			return m.updateDashboard(typed)
		case screenLesson:
			return m.updateLesson(typed)
		case screenQuestion:
			return m.updateQuestion(typed)
		case screenSecondChance:
			return m.updateSecondChance(typed)
		case screenFeedback:
			if typed.Type == tea.KeyEsc {
				m.confirmQuit = true
			}
			return m, nil
		case screenReveal:
			return m.updateReveal(typed)
		case screenSummary:
			if m.saving {
				return m, nil
			}
			if typed.Type == tea.KeyEnter || typed.Type == tea.KeyEsc {
				m.screen = screenDashboard
				m.refreshTopics()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		return m, m.toggleLoginFocus()
	case tea.KeyCtrlR:
		return m, m.loginCmd(m.name.Value(), m.code.Value(), true)
	case tea.KeyEnter:
		if m.focus == 0 {
			return m, m.toggleLoginFocus()
		}
		return m, m.loginCmd(m.name.Value(), m.code.Value(), false)
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.code, cmd = m.code.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleLoginFocus() tea.Cmd {
	if m.focus == 0 {
		m.focus = 1
		m.name.Blur()
		return m.code.Focus()
	}
	m.focus = 0
	m.code.Blur()
	return m.name.Focus()
}

func (m Model) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(loginErrorText(msg.err), true)
		return m, nil
	}
	m.record = msg.record
	m.screen = screenDashboard
	m.name.Reset()
	m.code.Reset()
	if msg.registered {
		m.setStatus(account.Welcome(msg.record.Username), false)
	} else {
		m.setStatus("", false)
	}
	m.refreshTopics()
	return m, nil
}

func loginErrorText(err error) string {
	for _, known := range []error{user.ErrMissingCredentials, user.ErrInvalidCode, account.ErrUnknownUser, account.ErrUserExists} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "Something went wrong: " + err.Error()
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "o", "esc":
		m.record = user.Record{}
		m.screen = screenLogin
		m.focus = 1
		m.setStatus("", false)
		return m, m.toggleLoginFocus()
	case "enter":
		status, ok := m.selectedTopic()
		if !ok {
			return m, nil
		}
		m.topic = status.Topic
		m.screen = screenLesson
		m.setStatus("", false)
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateLesson(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenDashboard
		return m, nil
	case tea.KeyEnter:
		return m.startSession()
	}
	return m, nil
}

func (m Model) startSession() (tea.Model, tea.Cmd) {
	ctrl, err := m.game.Start(m.record, m.topic)
	if err != nil {
		m.screen = screenDashboard
		m.setStatus("Could not start "+m.game.Title(m.topic)+": "+err.Error(), true)
		return m, nil
	}
	m.session = ctrl
	m.generation++
	m.setStatus("", false)
	return m, m.showQuestion()
}

func (m *Model) showQuestion() tea.Cmd {
	m.screen = screenQuestion
	m.choice = 0
	m.answer.Reset()
	return m.answer.Focus()
}

func (m Model) currentQuestion() (question.Question, bool) {
	if m.session == nil {
		return question.Question{}, false
	}
	q, err := m.session.Current()
	return q, err == nil
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.currentQuestion()
	if !ok {
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.confirmQuit = true
		return m, nil
	}
	if q.Kind == question.KindChoice {
		return m.updateChoice(q, msg)
	}
	if msg.Type == tea.KeyEnter {
		out, err := m.session.Submit(m.answer.Value())
		if errors.Is(err, attempt.ErrBlankAnswer) {
			m.setStatus("Please type your answer before checking!", true)
			return m, nil
		}
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		return m.handleOutcome(out)
	}
	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m Model) updateChoice(q question.Question, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp, tea.KeyLeft:
		if m.choice > 0 {
			m.choice--
		}
		return m, nil
	case tea.KeyDown, tea.KeyRight:
		if m.choice < len(q.Options)-1 {
			m.choice++
		}
		return m, nil
	case tea.KeyEnter:
		return m.choose(m.choice)
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
			index := int(msg.Runes[0] - '1')
			if index < len(q.Options) {
				m.choice = index
				return m.choose(index)
			}
		}
	}
	return m, nil
}

func (m Model) choose(index int) (tea.Model, tea.Cmd) {
	out, err := m.session.Choose(index)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	return m.handleOutcome(out)
}

func (m Model) handleOutcome(out attempt.Outcome) (tea.Model, tea.Cmd) {
	m.outcome = out
	m.setStatus("", false)
	switch out.State {
	case attempt.AwaitingSecondChance:
		m.screen = screenSecondChance
		m.answer.Blur()
		return m, nil
	case attempt.ResolvedCorrect:
		m.screen = screenFeedback
		m.answer.Blur()
		return m, advanceAfter(m.opts.FeedbackDelay, m.generation)
	default:
		m.screen = screenReveal
		m.answer.Blur()
		return m, nil
	}
}

func (m Model) updateSecondChance(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.confirmQuit = true
		return m, nil
	case tea.KeyEnter:
		return m, m.showQuestion()
	}
	return m, nil
}

func (m Model) updateReveal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.confirmQuit = true
		return m, nil
	case tea.KeyEnter:
		return m.next()
	}
	return m, nil
}

func (m Model) handleAdvance(msg advanceMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || m.screen != screenFeedback || m.session == nil {
		return m, nil
	}
	if m.confirmQuit {
		m.pendingAdvance = true
		return m, nil
	}
	return m.next()
}

// next shows the following question or finishes the session.
func (m Model) next() (tea.Model, tea.Cmd) {
	m.pendingAdvance = false
	if m.session.Done() {
		m.screen = screenSummary
		m.saving = true
		return m, m.finishCmd()
	}
	return m, m.showQuestion()
}

func (m Model) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.confirmQuit = false
		m.pendingAdvance = false
		if m.session != nil {
			m.session.Quit()
		}
		m.session = nil
		m.generation++
		m.screen = screenDashboard
		m.answer.Blur()
		m.refreshTopics()
		return m, nil
	case "n", "esc":
		m.confirmQuit = false
		if m.pendingAdvance {
			return m.next()
		}
		if m.screen == screenQuestion {
			return m, textinput.Blink
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleFinished(msg finishedMsg) (tea.Model, tea.Cmd) {
	m.session = nil
	m.saving = false
	if msg.err != nil {
		m.screen = screenDashboard
		m.setStatus("Could not save your progress: "+msg.err.Error(), true)
		m.refreshTopics()
		return m, nil
	}
	m.finished = msg.finished
	m.record = msg.finished.Record
	m.screen = screenSummary
	return m, nil
}
