package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/tuiprep/internal/bank"
	"github.com/verte-zerg/tuiprep/internal/feedback"
	"github.com/verte-zerg/tuiprep/internal/model"
)

func newTestSession() *Session {
	return New(bank.Default(), nil)
}

func TestStartShowsFirstQuestionForEveryCategory(t *testing.T) {
	b := bank.Default()
	s := New(b, nil)
	for _, cat := range b.Categories() {
		q, err := s.Start(cat)
		if err != nil {
			t.Fatalf("start %s: %v", cat, err)
		}
		want, _ := b.Questions(cat)
		if q.Index != 0 || q.Text != want[0] {
			t.Fatalf("unexpected first question for %s: %+v", cat, q)
		}
		if s.Index() != 0 || len(s.Answers()) != 0 || s.State() != StateAwaitingAnswer {
			t.Fatalf("session not reset for %s", cat)
		}
	}
}

func TestStartResetsPreviousRun(t *testing.T) {
	s := newTestSession()
	if _, err := s.Start(model.CategoryHR); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Submit("an answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	firstID := s.ID()

	if _, err := s.Start(model.CategoryTechnical); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Index() != 0 || len(s.Answers()) != 0 {
		t.Fatalf("expected reset state, got index %d answers %d", s.Index(), len(s.Answers()))
	}
	if s.Category() != model.CategoryTechnical {
		t.Fatalf("expected Technical, got %s", s.Category())
	}
	if s.ID() == firstID || s.ID() == "" {
		t.Fatalf("expected new session id, got %q", s.ID())
	}
}

func TestStartUnknownCategory(t *testing.T) {
	s := newTestSession()
	_, err := s.Start(model.Category("Sales"))
	if !errors.Is(err, bank.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if s.State() != StateIdle {
		t.Fatalf("expected idle state, got %s", s.State())
	}
}

func TestSubmitEmptyAnswerKeepsState(t *testing.T) {
	s := newTestSession()
	if _, err := s.Start(model.CategoryHR); err != nil {
		t.Fatalf("start: %v", err)
	}
	for _, text := range []string{"", "   ", "\n\t "} {
		if _, err := s.Submit(text); !errors.Is(err, ErrEmptyAnswer) {
			t.Fatalf("expected ErrEmptyAnswer for %q, got %v", text, err)
		}
	}
	if len(s.Answers()) != 0 {
		t.Fatalf("expected no answers, got %d", len(s.Answers()))
	}
	if s.State() != StateAwaitingAnswer || s.Feedback() != "" {
		t.Fatalf("expected hidden feedback, got state %s", s.State())
	}
}

func TestSubmitPicksTemplateByLength(t *testing.T) {
	s := newTestSession()
	if _, err := s.Start(model.CategoryInterpersonal); err != nil {
		t.Fatalf("start: %v", err)
	}
	fb, err := s.Submit("short")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if fb != feedback.TooShort {
		t.Fatalf("expected too-short feedback, got %q", fb)
	}
	fb, err = s.Submit(strings.Repeat("y", 40))
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if fb != feedback.Decent {
		t.Fatalf("expected decent feedback at 40 chars, got %q", fb)
	}
	answers := s.Answers()
	if len(answers) != 2 || answers[0].QuestionIndex != 0 || answers[1].QuestionIndex != 0 {
		t.Fatalf("unexpected answers: %+v", answers)
	}
}

func TestSubmitTrimsAnswer(t *testing.T) {
	s := newTestSession()
	if _, err := s.Start(model.CategoryHR); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := s.Submit("  padded  "); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := s.Answers()[0].Text; got != "padded" {
		t.Fatalf("expected trimmed answer, got %q", got)
	}
}

func TestCustomEvaluator(t *testing.T) {
	var seen string
	eval := feedback.EvaluatorFunc(func(answer string) string {
		seen = answer
		return "custom"
	})
	s := New(bank.Default(), eval)
	if _, err := s.Start(model.CategoryHR); err != nil {
		t.Fatalf("start: %v", err)
	}
	fb, err := s.Submit(" hello ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if fb != "custom" || seen != "hello" {
		t.Fatalf("unexpected evaluator result %q (saw %q)", fb, seen)
	}
}

func TestAdvanceCompletesAfterFiveQuestions(t *testing.T) {
	b := bank.Default()
	for _, cat := range b.Categories() {
		s := New(b, nil)
		if _, err := s.Start(cat); err != nil {
			t.Fatalf("start: %v", err)
		}
		for i := 1; i < QuestionLimit; i++ {
			q, err := s.Advance()
			if err != nil {
				t.Fatalf("advance %d: %v", i, err)
			}
			if q.Index != i {
				t.Fatalf("expected index %d, got %d", i, q.Index)
			}
		}
		if _, err := s.Advance(); !errors.Is(err, ErrSessionComplete) {
			t.Fatalf("expected ErrSessionComplete, got %v", err)
		}
		if s.State() != StateComplete {
			t.Fatalf("expected complete state, got %s", s.State())
		}
		if _, err := s.Submit("late answer"); !errors.Is(err, ErrSessionComplete) {
			t.Fatalf("expected ErrSessionComplete on submit, got %v", err)
		}
		if _, err := s.Current(); !errors.Is(err, ErrSessionComplete) {
			t.Fatalf("expected ErrSessionComplete on current, got %v", err)
		}
	}
}

func TestBoundIgnoresLongerCategories(t *testing.T) {
	b, err := bank.Parse([]byte("categories:\n  - name: HR\n    questions: [a, b, c, d, e, f, g]\n"))
	if err != nil {
		t.Fatalf("parse bank: %v", err)
	}
	s := New(b, nil)
	if _, err := s.Start(model.CategoryHR); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 1; i < QuestionLimit; i++ {
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if _, err := s.Advance(); !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("expected completion after %d questions, got %v", QuestionLimit, err)
	}
}

func TestNotStarted(t *testing.T) {
	s := newTestSession()
	if _, err := s.Submit("hi"); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if _, err := s.Advance(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if _, err := s.Current(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if s.ID() != "" {
		t.Fatalf("expected empty id before start")
	}
}

func TestHRScenario(t *testing.T) {
	s := newTestSession()
	q, err := s.Start(model.CategoryHR)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if q.String() != "Q1: Tell me about yourself and your background." {
		t.Fatalf("unexpected first question %q", q.String())
	}
	fb, err := s.Submit("I am a software engineer with five years of experience building backend systems.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if fb != feedback.Decent {
		t.Fatalf("expected decent feedback, got %q", fb)
	}
	if s.State() != StateShowingFeedback {
		t.Fatalf("expected showing feedback, got %s", s.State())
	}
	next, err := s.Advance()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if next.String() != "Q2: Why do you want to work for our company?" {
		t.Fatalf("unexpected second question %q", next.String())
	}
	if s.State() != StateAwaitingAnswer || s.Feedback() != "" {
		t.Fatalf("expected feedback hidden after advance")
	}
}
