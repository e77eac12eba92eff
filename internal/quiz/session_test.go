package quiz

import (
	"context"
	"errors"
	"testing"
)

func seedRepo(t *testing.T, questions ...Question) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository()
	for i := range questions {
		if err := repo.Commit(context.Background(), &questions[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func testConfig() Config {
	return Config{
		Languages:       []string{"English", "Russian"},
		DefaultLanguage: "English",
		DoneKeyword:     "done",
	}
}

func TestSessionGameFlow(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t,
		Question{Text: "2+2?", Answers: []string{"3", "4"}, Correct: "4", Language: "English"},
	)
	s := NewSession(7, repo, testConfig())

	ticket, err := s.Start(ctx)
	if err != nil || ticket == nil {
		t.Fatalf("start: ticket=%v err=%v", ticket, err)
	}
	if s.Mode() != ModeGame {
		t.Fatalf("mode = %v, want game", s.Mode())
	}

	correct, err := s.Finish(ctx, " 4 ")
	if err != nil || !correct {
		t.Fatalf("finish: correct=%v err=%v", correct, err)
	}
	if s.Mode() != ModeIdle {
		t.Fatalf("mode after answer = %v, want idle", s.Mode())
	}

	// The only question is now in history, so the game is over.
	ticket, err = s.Start(ctx)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if ticket != nil {
		t.Fatalf("expected game over, got ticket %+v", ticket)
	}
	if s.Mode() != ModeIdle {
		t.Fatalf("mode after game over = %v, want idle", s.Mode())
	}
}

func TestSessionMatchingCaseFold(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t,
		Question{Text: "Capital?", Answers: []string{"Paris", "Lyon"}, Correct: "Paris", Language: "English"},
	)

	s := NewSession(1, repo, testConfig())
	if _, err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	correct, err := s.Finish(ctx, "paris")
	if err != nil || !correct {
		t.Fatalf("case-insensitive match failed: correct=%v err=%v", correct, err)
	}

	cfg := testConfig()
	cfg.MatchCaseSensitive = true
	s = NewSession(2, repo, cfg)
	if _, err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	correct, err = s.Finish(ctx, "paris")
	if err != nil || correct {
		t.Fatalf("case-sensitive match accepted wrong case: correct=%v err=%v", correct, err)
	}
}

func TestSessionRepeatOnWrong(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t,
		Question{Text: "2+2?", Answers: []string{"3", "4"}, Correct: "4", Language: "English"},
	)
	cfg := testConfig()
	cfg.RepeatOnWrong = true
	s := NewSession(9, repo, cfg)

	ticket, err := s.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}

	correct, err := s.Finish(ctx, "3")
	if err != nil || correct {
		t.Fatalf("wrong reply: correct=%v err=%v", correct, err)
	}
	if got := s.Ticket(); got == nil || got.ID != ticket.ID {
		t.Fatal("ticket must survive a wrong reply when repeating")
	}

	// The first attempt is in the history exactly once.
	st, err := repo.Stats(ctx, 9, "English")
	if err != nil || st.Answered != 1 || st.Wrong != 1 {
		t.Fatalf("history after wrong reply: %+v err=%v", st, err)
	}

	// More wrong retries must not duplicate the entry.
	if _, err := s.Finish(ctx, "3"); err != nil {
		t.Fatal(err)
	}
	correct, err = s.Finish(ctx, "4")
	if err != nil || !correct {
		t.Fatalf("right reply: correct=%v err=%v", correct, err)
	}
	if s.Mode() != ModeIdle {
		t.Fatalf("mode after right reply = %v, want idle", s.Mode())
	}
	st, _ = repo.Stats(ctx, 9, "English")
	if st.Answered != 1 || st.Wrong != 1 {
		t.Fatalf("stats = %+v, want the single first-attempt entry", st)
	}

	// The consumed question is never re-drawn.
	if ticket, err := s.Start(ctx); err != nil || ticket != nil {
		t.Fatalf("start after consume: ticket=%v err=%v", ticket, err)
	}
}

func TestSessionWrongWithoutRepeatRecordsMiss(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t,
		Question{Text: "2+2?", Answers: []string{"3", "4"}, Correct: "4", Language: "English"},
	)
	s := NewSession(5, repo, testConfig())

	if _, err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	correct, err := s.Finish(ctx, "3")
	if err != nil || correct {
		t.Fatalf("finish: correct=%v err=%v", correct, err)
	}
	if s.Ticket() != nil {
		t.Fatal("ticket must be cleared after a recorded miss")
	}

	st, _ := repo.Stats(ctx, 5, "English")
	if st.Answered != 1 || st.Wrong != 1 {
		t.Fatalf("stats = %+v, want one wrong answer", st)
	}
}

func TestSessionModeExclusivity(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t,
		Question{Text: "2+2?", Answers: []string{"3", "4"}, Correct: "4", Language: "English"},
	)
	s := NewSession(3, repo, testConfig())

	if _, err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	s.BeginEditing()
	if s.Mode() != ModeEditing {
		t.Fatalf("mode = %v", s.Mode())
	}
	if s.Ticket() != nil {
		t.Fatal("entering editing must drop the game ticket")
	}

	// Answering is rejected while editing.
	if _, err := s.Finish(ctx, "4"); !errors.Is(err, ErrModeViolation) {
		t.Fatalf("finish in editing: %v", err)
	}

	// Starting a game overrides the draft.
	if _, err := s.Start(ctx); err != nil {
		t.Fatalf("start in editing: %v", err)
	}
	if s.Mode() != ModeGame {
		t.Fatalf("mode = %v, want game", s.Mode())
	}
	if _, err := s.FillQuestion(ctx, "text"); !errors.Is(err, ErrModeViolation) {
		t.Fatalf("authoring in game: %v", err)
	}

	s.BeginLanguageChange()
	if s.Mode() != ModeChangingLanguage {
		t.Fatalf("mode = %v", s.Mode())
	}
	if _, err := s.FillQuestion(ctx, "text"); !errors.Is(err, ErrModeViolation) {
		t.Fatalf("authoring in language change: %v", err)
	}
}

func TestSessionUpdateLanguage(t *testing.T) {
	repo := NewMemoryRepository()
	s := NewSession(4, repo, testConfig())

	s.BeginLanguageChange()
	ok, err := s.UpdateLanguage("Klingon")
	if err != nil || ok {
		t.Fatalf("unknown language: ok=%v err=%v", ok, err)
	}
	if s.Mode() != ModeChangingLanguage {
		t.Fatal("unknown language must keep selection mode for a re-prompt")
	}

	ok, err = s.UpdateLanguage("russian")
	if err != nil || !ok {
		t.Fatalf("known language: ok=%v err=%v", ok, err)
	}
	if s.Language() != "Russian" {
		t.Fatalf("language = %q, want canonical Russian", s.Language())
	}
	if s.Mode() != ModeIdle {
		t.Fatalf("mode = %v, want idle", s.Mode())
	}

	if _, err := s.UpdateLanguage("English"); !errors.Is(err, ErrModeViolation) {
		t.Fatalf("language change while idle: %v", err)
	}
}

func TestSessionAuthoringCommits(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	s := NewSession(6, repo, testConfig())

	if code := s.BeginEditing(); code != MsgAskQuestion {
		t.Fatalf("begin editing: code=%q", code)
	}

	steps := []struct{ reply, want string }{
		{"Capital of France?", MsgAskFirstOption},
		{"Paris", MsgAskMoreOptions},
		{"Lyon", MsgAskMoreOptions},
		{"done", MsgAskCorrect},
		{"Paris", MsgQuestionSaved},
	}
	for _, st := range steps {
		code, err := s.FillQuestion(ctx, st.reply)
		if err != nil {
			t.Fatalf("reply %q: %v", st.reply, err)
		}
		if code != st.want {
			t.Fatalf("reply %q: code=%q, want %q", st.reply, code, st.want)
		}
	}
	if s.Mode() != ModeIdle {
		t.Fatalf("mode after commit = %v, want idle", s.Mode())
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count = %d err=%v", n, err)
	}

	// The committed question is playable in the author's language.
	ticket, err := s.Start(ctx)
	if err != nil || ticket == nil {
		t.Fatalf("start after authoring: ticket=%v err=%v", ticket, err)
	}
	if ticket.Question.Text != "Capital of France?" {
		t.Fatalf("question = %q", ticket.Question.Text)
	}
}

func TestSessionClearHistoryMakesQuestionsEligible(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t,
		Question{Text: "2+2?", Answers: []string{"3", "4"}, Correct: "4", Language: "English"},
	)
	s := NewSession(8, repo, testConfig())

	if _, err := s.Start(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Finish(ctx, "4"); err != nil {
		t.Fatal(err)
	}
	if ticket, _ := s.Start(ctx); ticket != nil {
		t.Fatal("expected game over before clearing")
	}

	if err := s.DeleteUserHistory(ctx); err != nil {
		t.Fatal(err)
	}
	ticket, err := s.Start(ctx)
	if err != nil || ticket == nil {
		t.Fatalf("start after clear: ticket=%v err=%v", ticket, err)
	}
}
