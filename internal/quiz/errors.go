package quiz

import "errors"

var (
	// ErrValidation reports a malformed question: too few options, duplicate
	// options, or a correct answer that is not one of the options.
	ErrValidation = errors.New("quiz: invalid question")

	// ErrNoQuestions signals that no unseen question remains for a user and
	// language. It marks game completion, not a failure.
	ErrNoQuestions = errors.New("quiz: no unseen questions")

	// ErrModeViolation reports an operation invoked while the session is in
	// an incompatible mode. The transport layer is responsible for checking
	// the mode before calling, so this is a programming error.
	ErrModeViolation = errors.New("quiz: operation not allowed in current mode")
)
