// Package console runs a practice session over plain line-based input and output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/tuiprep/internal/bank"
	"github.com/verte-zerg/tuiprep/internal/model"
	"github.com/verte-zerg/tuiprep/internal/review"
	"github.com/verte-zerg/tuiprep/internal/session"
)

// Runner drives one session from a reader to a writer.
type Runner struct {
	bank    *bank.Bank
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
}

// NewRunner builds a Runner reading answers from in and writing prompts to out.
func NewRunner(b *bank.Bank, s *session.Session, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		bank:    b,
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays a full session. An empty category prompts for one.
func (r *Runner) Run(cat model.Category) error {
	r.printf("Welcome to the interview practice session!\n")
	if cat == "" {
		chosen, err := r.chooseCategory()
		if err != nil {
			return err
		}
		cat = chosen
	}

	q, err := r.session.Start(cat)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	for {
		if err := r.answer(q); err != nil {
			return err
		}
		q, err = r.session.Advance()
		if errors.Is(err, session.ErrSessionComplete) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to advance: %w", err)
		}
	}

	r.printf("\nPractice session complete!\n\n")
	r.printf("%s", review.Render(review.Summary{
		SessionID: r.session.ID(),
		Category:  r.session.Category(),
		Criteria:  bank.Criteria(r.session.Category()),
		Answers:   r.session.Answers(),
	}))
	return nil
}

func (r *Runner) chooseCategory() (model.Category, error) {
	r.printf("Pick a category:\n")
	for i, cat := range r.bank.Categories() {
		r.printf("%d) %s\n", i+1, cat)
	}
	for {
		r.printf("Choice: ")
		line, err := r.readLine()
		if err != nil {
			return "", err
		}
		cat, err := bank.ParseCategory(line)
		if err == nil {
			return cat, nil
		}
		r.printf("Invalid. Try 1, 2, or 3.\n")
	}
}

func (r *Runner) answer(q model.Question) error {
	r.printf("\n%s\n", q)
	for {
		r.printf("Your answer: ")
		line, err := r.readLine()
		if err != nil {
			return err
		}
		fb, err := r.session.Submit(line)
		if errors.Is(err, session.ErrEmptyAnswer) {
			r.printf("Please type an answer.\n")
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to submit answer: %w", err)
		}
		r.printf("\n%s\n", fb)
		return nil
	}
}

func (r *Runner) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("input closed before the session finished: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *Runner) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		// Best-effort output.
		_ = err
	}
}
