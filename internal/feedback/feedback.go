// Package feedback turns an answer into coaching feedback.
package feedback

import (
	"strings"
	"unicode/utf8"
)

// MinDetailedLength is the trimmed character count at which an answer stops counting as short.
const MinDetailedLength = 40

// TooShort is returned for answers under MinDetailedLength characters.
const TooShort = `CRITIQUE:
- Answer is too short or lacks detail.
SUGGESTIONS:
- Use the STAR method.
- Add measurable results.
TIPS:
- Speak with confidence.`

// Decent is returned for answers of at least MinDetailedLength characters.
const Decent = `CRITIQUE:
- Decent structure and some detail.
SUGGESTIONS:
- Include outcomes and metrics.
- Show more depth or challenges.
TIPS:
- Time yourself to stay concise.`

// Evaluator produces feedback text for an answer.
type Evaluator interface {
	Evaluate(answer string) string
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(answer string) string

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(answer string) string {
	return f(answer)
}

// Local is the offline length heuristic.
type Local struct{}

// Evaluate implements Evaluator.
func (Local) Evaluate(answer string) string {
	if !IsDetailed(answer) {
		return TooShort
	}
	return Decent
}

// IsDetailed reports whether the trimmed answer reaches MinDetailedLength characters.
func IsDetailed(answer string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(answer)) >= MinDetailedLength
}
