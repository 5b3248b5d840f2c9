// Package session implements the interview practice state machine.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/tuiprep/internal/bank"
	"github.com/verte-zerg/tuiprep/internal/feedback"
	"github.com/verte-zerg/tuiprep/internal/model"
)

// QuestionLimit is the number of questions asked per session, regardless of category length.
const QuestionLimit = 5

var (
	// ErrEmptyAnswer is returned when a submitted answer is blank after trimming.
	ErrEmptyAnswer = errors.New("please type an answer")
	// ErrSessionComplete is returned once all questions have been asked.
	ErrSessionComplete = errors.New("practice session complete")
	// ErrNotStarted is returned before Start has been called.
	ErrNotStarted = errors.New("session not started")
)

// State is the position of a session in its lifecycle.
type State int

// Session states.
const (
	StateIdle State = iota
	StateAwaitingAnswer
	StateShowingFeedback
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateShowingFeedback:
		return "showing-feedback"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session walks one category of the bank, one question at a time.
type Session struct {
	bank      *bank.Bank
	evaluator feedback.Evaluator
	now       func() time.Time

	id       uuid.UUID
	category model.Category
	index    int
	answers  []model.Answer
	state    State
	feedback string
}

// New returns an idle session. A nil evaluator falls back to feedback.Local.
func New(b *bank.Bank, evaluator feedback.Evaluator) *Session {
	if evaluator == nil {
		evaluator = feedback.Local{}
	}
	return &Session{
		bank:      b,
		evaluator: evaluator,
		now:       time.Now,
	}
}

// Start resets the session onto a category and returns its first question.
func (s *Session) Start(cat model.Category) (model.Question, error) {
	first, err := s.bank.Question(cat, 0)
	if err != nil {
		return model.Question{}, err
	}
	s.id = uuid.New()
	s.category = cat
	s.index = 0
	s.answers = nil
	s.feedback = ""
	s.state = StateAwaitingAnswer
	return first, nil
}

// Current returns the question at the current index.
func (s *Session) Current() (model.Question, error) {
	if err := s.checkActive(); err != nil {
		return model.Question{}, err
	}
	return s.bank.Question(s.category, s.index)
}

// Submit records an answer to the current question and returns its feedback.
// Submitting again while feedback is shown records another attempt.
func (s *Session) Submit(text string) (string, error) {
	if err := s.checkActive(); err != nil {
		return "", err
	}
	answer := strings.TrimSpace(text)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	q, err := s.bank.Question(s.category, s.index)
	if err != nil {
		return "", err
	}
	fb := s.evaluator.Evaluate(answer)
	s.answers = append(s.answers, model.Answer{
		QuestionIndex: s.index,
		Question:      q.Text,
		Text:          answer,
		Feedback:      fb,
		SubmittedAt:   s.now(),
	})
	s.feedback = fb
	s.state = StateShowingFeedback
	return fb, nil
}

// Advance moves to the next question. After the last one it completes the
// session and returns ErrSessionComplete.
func (s *Session) Advance() (model.Question, error) {
	if err := s.checkActive(); err != nil {
		return model.Question{}, err
	}
	s.index++
	s.feedback = ""
	if s.index >= QuestionLimit {
		s.state = StateComplete
		return model.Question{}, ErrSessionComplete
	}
	s.state = StateAwaitingAnswer
	return s.bank.Question(s.category, s.index)
}

func (s *Session) checkActive() error {
	switch s.state {
	case StateIdle:
		return ErrNotStarted
	case StateComplete:
		return ErrSessionComplete
	default:
		return nil
	}
}

// ID identifies the current run; it changes on every Start.
func (s *Session) ID() string {
	if s.state == StateIdle {
		return ""
	}
	return s.id.String()
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Category returns the category chosen at Start.
func (s *Session) Category() model.Category {
	return s.category
}

// Index returns the 0-based current question index.
func (s *Session) Index() int {
	return s.index
}

// Feedback returns the feedback being shown, or "" when none is.
func (s *Session) Feedback() string {
	return s.feedback
}

// Answers returns a copy of the answers submitted so far.
func (s *Session) Answers() []model.Answer {
	return append([]model.Answer(nil), s.answers...)
}
