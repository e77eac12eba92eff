package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/a402539/pquiz-bot/core/config"
	"github.com/a402539/pquiz-bot/core/logger"
	"github.com/a402539/pquiz-bot/internal/app"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.L.LogAttrs(ctx, slog.LevelError, "fatal",
			slog.String("component", "app"),
			slog.String("event", "run"),
			slog.String("err", err.Error()),
		)
		os.Exit(1)
	}

	logger.L.LogAttrs(ctx, slog.LevelInfo, "shutdown",
		slog.String("component", "app"),
		slog.String("event", "shutdown"),
	)
}
