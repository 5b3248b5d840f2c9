package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuiprep/internal/bank"
	"github.com/verte-zerg/tuiprep/internal/feedback"
	"github.com/verte-zerg/tuiprep/internal/model"
	"github.com/verte-zerg/tuiprep/internal/session"
)

func newTestModel(preset model.Category) *Model {
	b := bank.Default()
	return NewModel(b, session.New(b, nil), preset)
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestSelectByNumberStartsCategory(t *testing.T) {
	m := newTestModel("")
	if m.screen != screenSelect {
		t.Fatalf("expected select screen")
	}
	press(m, "2")
	if m.screen != screenQuestion {
		t.Fatalf("expected question screen")
	}
	if m.session.Category() != model.CategoryTechnical {
		t.Fatalf("expected Technical, got %s", m.session.Category())
	}
	if !strings.Contains(m.View(), "Q1: Explain a challenging technical problem you solved.") {
		t.Fatalf("view missing first question:\n%s", m.View())
	}
}

func TestSelectWithCursor(t *testing.T) {
	m := newTestModel("")
	press(m, "down", "down", "enter")
	if m.session.Category() != model.CategoryInterpersonal {
		t.Fatalf("expected Interpersonal, got %s", m.session.Category())
	}
}

func TestEmptyAnswerShowsNotice(t *testing.T) {
	m := newTestModel(model.CategoryHR)
	m.input.SetValue("   ")
	press(m, "enter")
	if m.notice != emptyAnswerNotice {
		t.Fatalf("expected empty answer notice, got %q", m.notice)
	}
	if len(m.session.Answers()) != 0 {
		t.Fatalf("expected no answers recorded")
	}
	if m.session.State() != session.StateAwaitingAnswer {
		t.Fatalf("expected awaiting answer, got %s", m.session.State())
	}
	if strings.Contains(m.View(), "CRITIQUE") {
		t.Fatalf("feedback should stay hidden:\n%s", m.View())
	}
}

func TestSubmitThenAdvance(t *testing.T) {
	m := newTestModel(model.CategoryHR)
	if !strings.Contains(m.View(), "Q1: Tell me about yourself and your background.") {
		t.Fatalf("view missing first question:\n%s", m.View())
	}
	m.input.SetValue("I am a software engineer with five years of experience building backend systems.")
	press(m, "enter")
	if m.session.Feedback() != feedback.Decent {
		t.Fatalf("expected decent feedback, got %q", m.session.Feedback())
	}
	if !strings.Contains(m.View(), "Decent structure and some detail.") {
		t.Fatalf("view missing feedback:\n%s", m.View())
	}

	press(m, "enter")
	if m.question.String() != "Q2: Why do you want to work for our company?" {
		t.Fatalf("unexpected question %q", m.question.String())
	}
	if m.input.Value() != "" {
		t.Fatalf("expected cleared input, got %q", m.input.Value())
	}
	if strings.Contains(m.View(), "CRITIQUE") {
		t.Fatalf("feedback should be hidden after advancing:\n%s", m.View())
	}
}

func TestCompletionAndRestart(t *testing.T) {
	m := newTestModel(model.CategoryInterpersonal)
	for i := 0; i < session.QuestionLimit; i++ {
		m.input.SetValue("answer")
		press(m, "enter", "n")
	}
	if m.screen != screenComplete {
		t.Fatalf("expected complete screen")
	}
	view := m.View()
	if !containsAll(view, []string{"Practice session complete!", "Collaboration & emotional intelligence", "Q5"}) {
		t.Fatalf("unexpected completion view:\n%s", view)
	}

	press(m, "r")
	if m.screen != screenSelect {
		t.Fatalf("expected select screen after restart")
	}
	press(m, "1")
	if m.session.Category() != model.CategoryHR || m.session.Index() != 0 || len(m.session.Answers()) != 0 {
		t.Fatalf("expected fresh HR session")
	}
}

func TestEscReturnsToSelect(t *testing.T) {
	m := newTestModel(model.CategoryHR)
	press(m, "esc")
	if m.screen != screenSelect {
		t.Fatalf("expected select screen")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel("")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewWithWindowSize(t *testing.T) {
	m := newTestModel(model.CategoryHR)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	if !strings.Contains(view, "Tell me about yourself") {
		t.Fatalf("sized view missing question:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Fatalf("expected view to fill 30 lines, got %d", lines)
	}
}
