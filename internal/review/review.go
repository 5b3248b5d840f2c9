package review

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/tuiprep/internal/feedback"
	"github.com/verte-zerg/tuiprep/internal/model"
)

// Summary is everything needed to review a finished session.
type Summary struct {
	SessionID string
	Category  model.Category
	Criteria  []string
	Answers   []model.Answer
}

// Render returns the review as plain text.
func Render(s Summary) string {
	var b strings.Builder
	header := fmt.Sprintf("Category: %s", s.Category)
	if s.SessionID != "" {
		header += fmt.Sprintf("  (session %s)", s.SessionID)
	}
	b.WriteString(header)
	b.WriteString("\n\n--- Evaluation Criteria ---\n")
	for _, c := range s.Criteria {
		b.WriteString("- ")
		b.WriteString(c)
		b.WriteByte('\n')
	}

	b.WriteString("\n--- Answers ---\n")
	if len(s.Answers) == 0 {
		b.WriteString("No answers submitted.\n")
		return b.String()
	}
	for _, line := range FormatTable([]string{"Q", "Chars", "Length"}, answerRows(s.Answers), map[int]bool{1: true}) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n--- Feedback ---\n")
	for i, a := range s.Answers {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Q%d: %s\n", a.QuestionIndex+1, a.Question)
		fmt.Fprintf(&b, "A: %s\n", a.Text)
		b.WriteString(a.Feedback)
		b.WriteByte('\n')
	}
	return b.String()
}

func answerRows(answers []model.Answer) [][]string {
	rows := make([][]string, 0, len(answers))
	for _, a := range answers {
		verdict := "short"
		if feedback.IsDetailed(a.Text) {
			verdict = "ok"
		}
		rows = append(rows, []string{
			"Q" + strconv.Itoa(a.QuestionIndex+1),
			strconv.Itoa(utf8.RuneCountInString(a.Text)),
			verdict,
		})
	}
	return rows
}
