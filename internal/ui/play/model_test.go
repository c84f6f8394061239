package play

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"learnmaths/internal/account"
	"learnmaths/internal/attempt"
	"learnmaths/internal/game"
	"learnmaths/internal/generator"
	"learnmaths/internal/question"
	"learnmaths/internal/session"
	"learnmaths/internal/store"
	"learnmaths/internal/testutil"
	"learnmaths/internal/user"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := store.OpenJSON(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	g := game.New(account.NewService(s), generator.New(generator.WithSeed(7)))
	return NewModel(testutil.Context(t, 5*time.Second), g, Options{NoColor: true, FeedbackDelay: time.Millisecond})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: key})
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// run executes a command that is expected to produce a single message.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	m, _ = update(t, m, cmd())
	return m
}

func registerAndStart(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m = typeText(t, m, "Alex")
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, "1234")
	m, cmd := press(t, m, tea.KeyCtrlR)
	m = run(t, m, cmd)
	if m.Screen() != "dashboard" {
		t.Fatalf("expected dashboard, got %s (%s)", m.Screen(), m.status)
	}
	m, _ = press(t, m, tea.KeyEnter)
	if m.Screen() != "lesson" {
		t.Fatalf("expected lesson, got %s", m.Screen())
	}
	m, _ = press(t, m, tea.KeyEnter)
	if m.Screen() != "question" {
		t.Fatalf("expected question, got %s (%s)", m.Screen(), m.status)
	}
	return m
}

func answerCurrent(t *testing.T, m Model, answer string) (Model, tea.Cmd) {
	t.Helper()
	m = typeText(t, m, answer)
	return press(t, m, tea.KeyEnter)
}

func currentAnswer(t *testing.T, m Model) string {
	t.Helper()
	q, ok := m.currentQuestion()
	if !ok {
		t.Fatalf("no current question")
	}
	return q.Answer
}

func TestLoginShowsValidationErrors(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := newTestModel(t)
		m = typeText(t, m, "Alex")
		m, _ = press(t, m, tea.KeyEnter)
		m = typeText(t, m, "12")
		m, cmd := press(t, m, tea.KeyEnter)
		m = run(t, m, cmd)
		if m.Screen() != "login" || m.status != user.ErrInvalidCode.Error() {
			t.Fatalf("unexpected state %s %q", m.Screen(), m.status)
		}
		m = typeText(t, m, "34")
		m, cmd = press(t, m, tea.KeyEnter)
		m = run(t, m, cmd)
		if m.status != account.ErrUnknownUser.Error() {
			t.Fatalf("expected unknown user, got %q", m.status)
		}
	})
}

func TestAutoLoginFromOptions(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := newTestModel(t)
		if _, err := m.game.Register(m.ctx, "Alex", "1234"); err != nil {
			t.Fatalf("register: %v", err)
		}
		m.opts.Username, m.opts.Code = "Alex", "1234"
		m = run(t, m, m.Init())
		if m.Screen() != "dashboard" || m.Record().Username != "Alex" {
			t.Fatalf("expected logged in dashboard, got %s", m.Screen())
		}
		if !strings.Contains(m.View(), "Hi Alex!") {
			t.Fatalf("expected greeting in view")
		}
	})
}

func TestCorrectAnswerAdvancesAfterDelay(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := registerAndStart(t)
		m, cmd := answerCurrent(t, m, currentAnswer(t, m))
		if m.Screen() != "feedback" || cmd == nil {
			t.Fatalf("expected feedback with pending advance, got %s", m.Screen())
		}
		if m.session.Context().Index != 1 {
			t.Fatalf("expected index 1, got %d", m.session.Context().Index)
		}
		m = run(t, m, cmd)
		if m.Screen() != "question" {
			t.Fatalf("expected next question, got %s", m.Screen())
		}
	})
}

func TestSecondChanceFlow(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := registerAndStart(t)
		answer := currentAnswer(t, m)
		m, _ = answerCurrent(t, m, "9999")
		if m.Screen() != "second-chance" {
			t.Fatalf("expected second chance, got %s", m.Screen())
		}
		m, _ = press(t, m, tea.KeyEnter)
		if m.Screen() != "question" || !strings.Contains(m.View(), "Your first answer: 9999") {
			t.Fatalf("expected question with previous answer, got %s", m.Screen())
		}
		m, _ = answerCurrent(t, m, answer)
		if m.Screen() != "feedback" || m.outcome.Points != attempt.PointsPerCorrect {
			t.Fatalf("expected feedback after correct second try, got %s", m.Screen())
		}
	})
}

func TestTwoWrongAnswersReveal(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := registerAndStart(t)
		answer := currentAnswer(t, m)
		m, _ = answerCurrent(t, m, "9999")
		m, _ = press(t, m, tea.KeyEnter)
		m, _ = answerCurrent(t, m, "9998")
		if m.Screen() != "reveal" {
			t.Fatalf("expected reveal, got %s", m.Screen())
		}
		if !strings.Contains(m.View(), attempt.RevealText(answer)) {
			t.Fatalf("expected correct answer in view")
		}
		m, _ = press(t, m, tea.KeyEnter)
		if m.Screen() != "question" || m.session.Context().Index != 1 || m.session.Score() != 0 {
			t.Fatalf("expected next question without points")
		}
	})
}

func TestBlankAnswerShowsPrompt(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := registerAndStart(t)
		m, _ = press(t, m, tea.KeyEnter)
		if m.Screen() != "question" || m.status != "Please type your answer before checking!" {
			t.Fatalf("unexpected state %s %q", m.Screen(), m.status)
		}
	})
}

func TestQuitVoidsPendingAdvance(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := registerAndStart(t)
		m, _ = answerCurrent(t, m, currentAnswer(t, m))
		stale := advanceMsg{generation: m.generation}
		m, _ = press(t, m, tea.KeyEsc)
		if !m.confirmQuit {
			t.Fatalf("expected quit confirmation")
		}
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
		if m.Screen() != "dashboard" || m.session != nil {
			t.Fatalf("expected dashboard after quit, got %s", m.Screen())
		}
		m, cmd := update(t, m, stale)
		if m.Screen() != "dashboard" || cmd != nil {
			t.Fatalf("stale advance should be ignored, got %s", m.Screen())
		}
		if m.Record().Points != 0 {
			t.Fatalf("quit session must not award points")
		}
	})
}

func TestAdvanceWaitsForQuitConfirmation(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := registerAndStart(t)
		m, _ = answerCurrent(t, m, currentAnswer(t, m))
		m, _ = press(t, m, tea.KeyEsc)
		m, _ = update(t, m, advanceMsg{generation: m.generation})
		if m.Screen() != "feedback" || !m.pendingAdvance {
			t.Fatalf("expected advance to wait, got %s", m.Screen())
		}
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
		if m.Screen() != "question" || m.confirmQuit {
			t.Fatalf("expected next question after cancelling quit, got %s", m.Screen())
		}
	})
}

func TestCompleteSessionShowsSummary(t *testing.T) {
	runWithTimeout(t, 3*time.Second, func() {
		m := registerAndStart(t)
		var cmd tea.Cmd
		for m.Screen() == "question" {
			q, _ := m.currentQuestion()
			if q.Kind == question.KindChoice {
				t.Fatalf("addition should not produce choice questions")
			}
			m, _ = answerCurrent(t, m, q.Answer)
			m, cmd = update(t, m, advanceMsg{generation: m.generation})
		}
		if m.Screen() != "summary" || !m.saving {
			t.Fatalf("expected saving summary, got %s", m.Screen())
		}
		m = run(t, m, cmd)
		if m.saving || m.finished.Summary.StarsEarned != 3 || m.Record().Points != 100 {
			t.Fatalf("unexpected summary %+v", m.finished.Summary)
		}
		if !strings.Contains(m.View(), "Outstanding work!") {
			t.Fatalf("expected result message in view:\n%s", m.View())
		}
		m, _ = press(t, m, tea.KeyEnter)
		if m.Screen() != "dashboard" || m.topics[0].Level != 2 {
			t.Fatalf("expected dashboard with addition level 2, got %s", m.Screen())
		}
	})
}

func TestChoiceQuestionSelection(t *testing.T) {
	runWithTimeout(t, 2*time.Second, func() {
		m := registerAndStart(t)
		set := question.Set{question.Choice("Which is round?", "sphere", []string{"cube", "sphere"})}
		for i := 1; i < 10; i++ {
			set = append(set, question.Input("Filler "+string(rune('a'+i)), i))
		}
		ctrl, err := session.Start("custom", 1, session.WithQuestions(set))
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		m.session = ctrl
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
		if m.Screen() != "second-chance" || m.outcome.PreviousWrong != "cube" {
			t.Fatalf("expected second chance after wrong choice, got %s", m.Screen())
		}
		m, _ = press(t, m, tea.KeyEnter)
		m, _ = press(t, m, tea.KeyDown)
		m, _ = press(t, m, tea.KeyEnter)
		if m.Screen() != "feedback" || !m.outcome.Correct {
			t.Fatalf("expected correct feedback, got %s", m.Screen())
		}
	})
}

func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
