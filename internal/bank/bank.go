// Package bank holds the interview question bank.
package bank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/tuiprep/internal/model"
)

// MinQuestions is the smallest question list a category may carry.
const MinQuestions = 5

// ErrUnknownCategory is returned for category names outside the bank.
var ErrUnknownCategory = errors.New("unknown category")

var categoryOrder = []model.Category{
	model.CategoryHR,
	model.CategoryTechnical,
	model.CategoryInterpersonal,
}

var builtin = map[model.Category][]string{
	model.CategoryTechnical: {
		"Explain a challenging technical problem you solved.",
		"Describe the architecture of a project you built.",
		"How do you approach debugging a complex issue?",
		"Which data structures would you use for X (explain why)?",
		"How do you ensure code quality and testing?",
	},
	model.CategoryHR: {
		"Tell me about yourself and your background.",
		"Why do you want to work for our company?",
		"What are your strengths and weaknesses?",
		"Tell us about a time you received constructive criticism.",
		"Where do you see yourself in 5 years?",
	},
	model.CategoryInterpersonal: {
		"Describe a conflict you had with a coworker and how you resolved it.",
		"Tell me about a time you led a team under pressure.",
		"Give an example of when you had to persuade someone to accept your idea.",
		"How do you handle feedback that you disagree with?",
		"Tell me about a time you helped a colleague improve.",
	},
}

var baseCriteria = []string{
	"Clear, structured STAR answers",
	"Relevant, specific, professional",
}

var extraCriteria = map[model.Category][]string{
	model.CategoryTechnical:     {"Technical depth & trade-offs", "Testing & architecture"},
	model.CategoryHR:            {"Motivation & cultural fit"},
	model.CategoryInterpersonal: {"Collaboration & emotional intelligence"},
}

// Bank maps categories to ordered question lists. It is never mutated after construction.
type Bank struct {
	questions map[model.Category][]string
}

// Default returns the built-in question bank.
func Default() *Bank {
	return newBank(builtin)
}

func newBank(src map[model.Category][]string) *Bank {
	questions := make(map[model.Category][]string, len(src))
	for cat, qs := range src {
		questions[cat] = append([]string(nil), qs...)
	}
	return &Bank{questions: questions}
}

// Categories returns the known categories in menu order.
func (b *Bank) Categories() []model.Category {
	return append([]model.Category(nil), categoryOrder...)
}

// Questions returns a copy of the question list for a category.
func (b *Bank) Questions(cat model.Category) ([]string, error) {
	qs, ok := b.questions[cat]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(cat))
	}
	return append([]string(nil), qs...), nil
}

// Question returns the question at idx for a category.
func (b *Bank) Question(cat model.Category, idx int) (model.Question, error) {
	qs, ok := b.questions[cat]
	if !ok {
		return model.Question{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(cat))
	}
	if idx < 0 || idx >= len(qs) {
		return model.Question{}, fmt.Errorf("question index %d out of range for %s (%d questions)", idx, cat, len(qs))
	}
	return model.Question{Index: idx, Text: qs[idx]}, nil
}

// Criteria returns the evaluation criteria for a category.
func Criteria(cat model.Category) []string {
	out := append([]string(nil), baseCriteria...)
	return append(out, extraCriteria[cat]...)
}

// ParseCategory accepts a menu number (1-3) or a category name in any case.
func ParseCategory(value string) (model.Category, error) {
	value = strings.TrimSpace(value)
	for i, cat := range categoryOrder {
		if value == fmt.Sprint(i+1) || strings.EqualFold(value, string(cat)) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownCategory, value, categoryList())
}

func categoryList() string {
	names := make([]string, len(categoryOrder))
	for i, cat := range categoryOrder {
		names[i] = string(cat)
	}
	return strings.Join(names, ", ")
}
