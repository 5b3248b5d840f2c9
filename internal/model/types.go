// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Category names a group of interview questions.
type Category string

// Known categories.
const (
	CategoryHR            Category = "HR"
	CategoryTechnical     Category = "Technical"
	CategoryInterpersonal Category = "Interpersonal"
)

// Config defines practice settings.
type Config struct {
	Category string
	BankPath string
	Plain    bool
}

// Question is a single question shown to the user.
type Question struct {
	Index int
	Text  string
}

// Number returns the 1-based question number.
func (q Question) Number() int {
	return q.Index + 1
}

// String renders the question as "Q{n}: {text}".
func (q Question) String() string {
	return fmt.Sprintf("Q%d: %s", q.Number(), q.Text)
}

// Answer captures one submitted answer and the feedback it received.
type Answer struct {
	QuestionIndex int
	Question      string
	Text          string
	Feedback      string
	SubmittedAt   time.Time
}
