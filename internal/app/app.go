// Package app assembles the bot: database, migrations, seed data, locales,
// sessions, and the Telegram transport.
package app

import (
	"context"
	"fmt"

	coreconfig "github.com/a402539/pquiz-bot/core/config"
	"github.com/a402539/pquiz-bot/core/database"
	"github.com/a402539/pquiz-bot/core/telegram"
	"github.com/a402539/pquiz-bot/internal/bot"
	"github.com/a402539/pquiz-bot/internal/locale"
	"github.com/a402539/pquiz-bot/internal/quiz"
)

// Run boots every subsystem and serves Telegram updates until ctx is done.
func Run(ctx context.Context, cfg *coreconfig.Config) error {
	if err := database.RunMigrations(cfg.Database); err != nil {
		return fmt.Errorf("app: migrations: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("app: database: %w", err)
	}
	defer db.Close()

	repo := quiz.NewPostgresRepository(db)
	if err := Seed(ctx, repo, cfg.Quiz.SeedPath); err != nil {
		return fmt.Errorf("app: seed: %w", err)
	}

	bundle, err := locale.Load(cfg.Quiz.LocalePath)
	if err != nil {
		return fmt.Errorf("app: locales: %w", err)
	}
	if err := bundle.Validate(cfg.Quiz.Languages, quiz.MessageCodes()); err != nil {
		return fmt.Errorf("app: locales: %w", err)
	}

	qcfg := quiz.Config{
		Languages:          cfg.Quiz.Languages,
		DefaultLanguage:    cfg.Quiz.DefaultLanguage,
		RepeatOnWrong:      cfg.Quiz.RepeatOnWrong,
		DoneKeyword:        cfg.Quiz.DoneKeyword,
		MatchCaseSensitive: cfg.Quiz.MatchCaseSensitive,
	}
	sessions := quiz.NewRegistry(repo, qcfg)

	registry := telegram.NewRegistry()
	bot.New(sessions, bundle, qcfg).Register(registry)

	return telegram.RunTelegram(ctx, telegram.RunOptions{
		Config:      cfg,
		Registry:    registry,
		Middlewares: telegram.DefaultMiddlewares(cfg, nil),
	})
}
