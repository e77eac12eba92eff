package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Mode is the interaction state of a single user session. Exactly one mode is
// active at a time; switching modes discards the previous mode's state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeGame
	ModeEditing
	ModeChangingLanguage
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeGame:
		return "game"
	case ModeEditing:
		return "editing"
	case ModeChangingLanguage:
		return "changing_language"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Config carries the tunables shared by every session.
type Config struct {
	// Languages is the set of selectable languages, in display order.
	Languages []string
	// DefaultLanguage is assigned to new sessions.
	DefaultLanguage string
	// RepeatOnWrong keeps re-asking the same question after a wrong reply
	// instead of recording the miss and moving on.
	RepeatOnWrong bool
	// DoneKeyword ends the option-collection phase of authoring.
	DoneKeyword string
	// MatchCaseSensitive disables case folding when comparing replies to
	// the correct answer.
	MatchCaseSensitive bool
}

// Session holds one user's quiz state: the chosen language, the current mode,
// and whichever ticket or draft that mode carries. All methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	uid  int64
	repo Repository
	cfg  Config

	language string
	mode     Mode
	ticket   *Ticket
	draft    *Draft
}

// NewSession creates an idle session with the configured default language.
func NewSession(uid int64, repo Repository, cfg Config) *Session {
	return &Session{
		uid:      uid,
		repo:     repo,
		cfg:      cfg,
		language: cfg.DefaultLanguage,
		mode:     ModeIdle,
	}
}

// Mode reports the current interaction mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Language reports the session's active language.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Ticket returns the question currently being asked, or nil outside a game.
func (s *Session) Ticket() *Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticket
}

// DraftOptions lists the options collected so far by an authoring dialog.
func (s *Session) DraftOptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil
	}
	return s.draft.Options()
}

// setMode switches the mode and drops state owned by the previous one.
// Callers must hold s.mu.
func (s *Session) setMode(m Mode) {
	s.mode = m
	s.ticket = nil
	s.draft = nil
}

// Start begins a game or advances to the next question, abandoning any draft
// or language selection in progress. A nil ticket with a
// nil error means every question has been answered; the session returns to
// idle so the caller can congratulate the user.
func (s *Session) Start(ctx context.Context) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.repo.NextTicket(ctx, s.uid, s.language)
	if err != nil {
		if errors.Is(err, ErrNoQuestions) {
			s.setMode(ModeIdle)
			return nil, nil
		}
		return nil, err
	}

	s.setMode(ModeGame)
	s.ticket = ticket
	return ticket, nil
}

// Finish checks the user's reply against the current question. The outcome
// of the first attempt is recorded exactly once, whatever it is; the question
// is consumed and never re-drawn for this user. With RepeatOnWrong set a
// wrong reply keeps the ticket live so the user can keep guessing, and the
// session advances only once they get it right.
func (s *Session) Finish(ctx context.Context, reply string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeGame || s.ticket == nil {
		return false, fmt.Errorf("%w: finish during %s", ErrModeViolation, s.mode)
	}

	t := s.ticket
	correct := s.matches(reply, t.Question.Correct)

	if !t.Answered {
		if err := s.repo.RecordAnswer(ctx, s.uid, t.Question.ID, correct); err != nil {
			return correct, err
		}
		t.Answered = true
	}

	if !correct && s.cfg.RepeatOnWrong {
		return false, nil
	}
	s.setMode(ModeIdle)
	return correct, nil
}

// BeginLanguageChange enters language selection, abandoning any game or
// draft in progress.
func (s *Session) BeginLanguageChange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setMode(ModeChangingLanguage)
}

// UpdateLanguage applies the user's language choice. An unrecognized reply
// returns false and stays in selection mode so the user can be re-prompted.
func (s *Session) UpdateLanguage(reply string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeChangingLanguage {
		return false, fmt.Errorf("%w: language change during %s", ErrModeViolation, s.mode)
	}

	reply = strings.TrimSpace(reply)
	for _, lang := range s.cfg.Languages {
		if strings.EqualFold(lang, reply) {
			s.language = lang
			s.setMode(ModeIdle)
			return true, nil
		}
	}
	return false, nil
}

// BeginEditing starts the authoring dialog in the session's language and
// returns the first prompt code.
func (s *Session) BeginEditing() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setMode(ModeEditing)
	s.draft = NewDraft(s.language)
	return MsgAskQuestion
}

// FillQuestion feeds one reply into the authoring dialog and returns the code
// of the next prompt. When the dialog completes, the question is committed
// and the session returns to idle.
func (s *Session) FillQuestion(ctx context.Context, reply string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeEditing || s.draft == nil {
		return "", fmt.Errorf("%w: authoring during %s", ErrModeViolation, s.mode)
	}

	done := strings.EqualFold(strings.TrimSpace(reply), s.cfg.DoneKeyword)
	code, q := s.draft.Step(reply, done)
	if q == nil {
		return code, nil
	}

	if err := s.repo.Commit(ctx, q); err != nil {
		return "", err
	}
	s.setMode(ModeIdle)
	return code, nil
}

// DeleteUserHistory wipes the user's answer history. The mode is left
// untouched; a live ticket stays valid.
func (s *Session) DeleteUserHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ClearHistory(ctx, s.uid)
}

// UserStats reports the user's answer counts in the active language.
func (s *Session) UserStats(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	uid, lang := s.uid, s.language
	s.mu.Unlock()
	return s.repo.Stats(ctx, uid, lang)
}

func (s *Session) matches(reply, correct string) bool {
	reply = strings.TrimSpace(reply)
	correct = strings.TrimSpace(correct)
	if s.cfg.MatchCaseSensitive {
		return reply == correct
	}
	return strings.EqualFold(reply, correct)
}
