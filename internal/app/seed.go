package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/a402539/pquiz-bot/core/logger"
	"github.com/a402539/pquiz-bot/internal/quiz"
)

const seedComponent = "db.seed"

type seedQuestion struct {
	Text     string   `json:"text"`
	Answers  []string `json:"answers"`
	Correct  string   `json:"correct"`
	Language string   `json:"language"`
}

// Seed loads starter questions from a JSON file into an empty repository.
// A populated repository or a missing file leaves the data untouched.
func Seed(ctx context.Context, repo quiz.Repository, path string) error {
	if path == "" {
		return nil
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Debug(ctx, seedComponent, "skip",
			slog.Int("count", n),
		)
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn(ctx, seedComponent, "file.missing",
				slog.String("payload", path),
			)
			return nil
		}
		return fmt.Errorf("seed: read %s: %w", path, err)
	}

	var entries []seedQuestion
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("seed: parse %s: %w", path, err)
	}

	committed := 0
	for i, e := range entries {
		q := quiz.Question{
			Text:     e.Text,
			Answers:  e.Answers,
			Correct:  e.Correct,
			Language: e.Language,
		}
		if err := repo.Commit(ctx, &q); err != nil {
			if errors.Is(err, quiz.ErrValidation) {
				logger.Warn(ctx, seedComponent, "entry.invalid",
					slog.Int("count", i),
					slog.String("err", err.Error()),
				)
				continue
			}
			return fmt.Errorf("seed: commit entry %d: %w", i, err)
		}
		committed++
	}

	logger.Info(ctx, seedComponent, "complete",
		slog.Int("count", committed),
	)
	return nil
}
