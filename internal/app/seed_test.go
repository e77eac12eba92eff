package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/a402539/pquiz-bot/internal/quiz"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSeedPopulatesEmptyRepository(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewMemoryRepository()
	path := writeSeedFile(t, `[
		{"text": "2+2?", "answers": ["3", "4"], "correct": "4", "language": "English"},
		{"text": "Столица России?", "answers": ["Москва", "Тверь"], "correct": "Москва", "language": "Russian"}
	]`)

	if err := Seed(ctx, repo, path); err != nil {
		t.Fatal(err)
	}
	if n, _ := repo.Count(ctx); n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

func TestSeedSkipsPopulatedRepository(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewMemoryRepository()
	existing := quiz.Question{Text: "q", Answers: []string{"a", "b"}, Correct: "a", Language: "English"}
	if err := repo.Commit(ctx, &existing); err != nil {
		t.Fatal(err)
	}

	path := writeSeedFile(t, `[
		{"text": "2+2?", "answers": ["3", "4"], "correct": "4", "language": "English"}
	]`)
	if err := Seed(ctx, repo, path); err != nil {
		t.Fatal(err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("count = %d, want untouched 1", n)
	}
}

func TestSeedSkipsInvalidEntries(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewMemoryRepository()
	path := writeSeedFile(t, `[
		{"text": "broken", "answers": ["only"], "correct": "only", "language": "English"},
		{"text": "2+2?", "answers": ["3", "4"], "correct": "4", "language": "English"}
	]`)

	if err := Seed(ctx, repo, path); err != nil {
		t.Fatal(err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestSeedToleratesMissingFile(t *testing.T) {
	ctx := context.Background()
	repo := quiz.NewMemoryRepository()

	if err := Seed(ctx, repo, filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatal(err)
	}
	if err := Seed(ctx, repo, ""); err != nil {
		t.Fatal(err)
	}
}
