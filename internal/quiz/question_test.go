package quiz

import (
	"errors"
	"testing"
)

func TestQuestionValidate(t *testing.T) {
	valid := Question{
		Text:     "Capital of France?",
		Answers:  []string{"Paris", "Lyon"},
		Correct:  "Paris",
		Language: "English",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"empty text", func(q *Question) { q.Text = "  " }},
		{"empty language", func(q *Question) { q.Language = "" }},
		{"one option", func(q *Question) { q.Answers = []string{"Paris"} }},
		{"duplicate option", func(q *Question) { q.Answers = []string{"Paris", "Paris"} }},
		{"blank option", func(q *Question) { q.Answers = []string{"Paris", " "} }},
		{"correct not an option", func(q *Question) { q.Correct = "Berlin" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			q.Answers = append([]string(nil), valid.Answers...)
			tc.mutate(&q)
			err := q.Validate()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestNewTicket(t *testing.T) {
	q := &Question{Text: "x", Answers: []string{"a", "b"}, Correct: "a", Language: "English"}
	t1 := NewTicket(q)
	t2 := NewTicket(q)
	if t1.ID == "" || t1.ID == t2.ID {
		t.Fatalf("ticket ids not unique: %q vs %q", t1.ID, t2.ID)
	}
	if t1.Answered {
		t.Fatal("fresh ticket must not be answered")
	}
}
