package quiz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Question is a single quiz entry: a prompt, its answer options, and which
// option is correct. Answers keep their authored order.
type Question struct {
	ID       int64    `db:"id"`
	Text     string   `db:"text"`
	Answers  []string `db:"answers"`
	Correct  string   `db:"correct_answer"`
	Language string   `db:"language"`
}

// Validate checks the structural invariants of a question before it may be
// committed to a repository.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: empty question text", ErrValidation)
	}
	if strings.TrimSpace(q.Language) == "" {
		return fmt.Errorf("%w: empty language", ErrValidation)
	}
	if len(q.Answers) < 2 {
		return fmt.Errorf("%w: need at least 2 options, got %d", ErrValidation, len(q.Answers))
	}
	seen := make(map[string]struct{}, len(q.Answers))
	for _, a := range q.Answers {
		a = strings.TrimSpace(a)
		if a == "" {
			return fmt.Errorf("%w: empty option", ErrValidation)
		}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("%w: duplicate option %q", ErrValidation, a)
		}
		seen[a] = struct{}{}
	}
	if _, ok := seen[strings.TrimSpace(q.Correct)]; !ok {
		return fmt.Errorf("%w: correct answer %q is not an option", ErrValidation, q.Correct)
	}
	return nil
}

// Ticket pairs a question with the asking attempt. Answered flips once the
// outcome has been recorded so a repeated reply cannot double-write history.
type Ticket struct {
	ID       string
	Question *Question
	Answered bool
}

// NewTicket wraps a question into a fresh ticket with a unique id.
func NewTicket(q *Question) *Ticket {
	return &Ticket{ID: uuid.NewString(), Question: q}
}
