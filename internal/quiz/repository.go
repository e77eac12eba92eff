package quiz

import "context"

// Stats summarizes a user's answer history within one language.
type Stats struct {
	Answered int
	Correct  int
	Wrong    int
}

// Repository stores questions and per-user answer history.
//
// NextTicket must never return a question the user has already answered in
// the given language; when none remain it returns ErrNoQuestions.
type Repository interface {
	// NextTicket picks a random unseen question for the user.
	NextTicket(ctx context.Context, uid int64, language string) (*Ticket, error)

	// Commit validates and persists a new question, assigning its ID.
	Commit(ctx context.Context, q *Question) error

	// RecordAnswer marks a question as answered by the user. Recording the
	// same (uid, question) pair twice is a no-op.
	RecordAnswer(ctx context.Context, uid int64, questionID int64, correct bool) error

	// ClearHistory forgets everything the user has answered, in every
	// language, making all questions eligible again.
	ClearHistory(ctx context.Context, uid int64) error

	// Stats reports the user's answer counts for one language.
	Stats(ctx context.Context, uid int64, language string) (Stats, error)

	// Count returns the number of stored questions across all languages.
	Count(ctx context.Context) (int, error)
}
