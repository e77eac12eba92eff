// Package bot binds quiz sessions to Telegram commands and free-text replies.
package bot

import (
	"context"
	"log/slog"

	"github.com/a402539/pquiz-bot/core/logger"
	"github.com/a402539/pquiz-bot/core/telegram"
	"github.com/a402539/pquiz-bot/core/telegram/commands"
	tghelpers "github.com/a402539/pquiz-bot/core/telegram/helpers"
	"github.com/a402539/pquiz-bot/core/telegram/keyboard"
	"github.com/a402539/pquiz-bot/internal/locale"
	"github.com/a402539/pquiz-bot/internal/quiz"

	tele "gopkg.in/telebot.v4"
)

const quizComponent = "service.quiz"

// Bot translates Telegram updates into quiz session operations and renders
// the replies in the session's language.
type Bot struct {
	sessions *quiz.Registry
	bundle   *locale.Bundle
	cfg      quiz.Config
}

// New builds the handler set on top of a session registry and locale bundle.
func New(sessions *quiz.Registry, bundle *locale.Bundle, cfg quiz.Config) *Bot {
	return &Bot{sessions: sessions, bundle: bundle, cfg: cfg}
}

// Register wires every command and the free-text fallback into the registry.
func (b *Bot) Register(reg *telegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     b.handleStart,
		Description: "Greeting and a short how-to",
		Aliases:     []string{"help"},
	})
	reg.RegisterCommand("/game", commands.Command{
		Handler:     b.handleGame,
		Description: "Start playing or get the next question",
		Aliases:     []string{"next"},
	})
	reg.RegisterCommand("/add", commands.Command{
		Handler:     b.handleAdd,
		Description: "Add your own question",
	})
	reg.RegisterCommand("/language", commands.Command{
		Handler:     b.handleLanguage,
		Description: "Switch the quiz language",
	})
	reg.RegisterCommand("/clear", commands.Command{
		Handler:     b.handleClear,
		Description: "Forget everything you have answered",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     b.handleStats,
		Description: "Your answer statistics",
	})
	reg.SetTextFallback(b.handleText)
}

func (b *Bot) session(c tele.Context) *quiz.Session {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	return b.sessions.GetOrCreate(sender.ID)
}

func (b *Bot) phrase(s *quiz.Session, code string) string {
	return b.bundle.Resolve(s.Language(), code)
}

func (b *Bot) handleStart(c tele.Context) error {
	_ = tghelpers.WithHandler(c, "start")
	s := b.session(c)
	if s == nil {
		return nil
	}
	return tghelpers.SendWithKeyboard(c, b.phrase(s, quiz.MsgWelcome), keyboard.RemoveKeyboard())
}

func (b *Bot) handleGame(c tele.Context) error {
	ctx := tghelpers.WithHandler(c, "game")
	s := b.session(c)
	if s == nil {
		return nil
	}
	return b.askNext(ctx, c, s)
}

// askNext draws the next question and sends it with an answer keyboard, or
// congratulates the user when none remain.
func (b *Bot) askNext(ctx context.Context, c tele.Context, s *quiz.Session) error {
	ticket, err := s.Start(ctx)
	if err != nil {
		logger.Error(ctx, quizComponent, "game.next",
			slog.String("lang", s.Language()),
			slog.String("err", err.Error()),
		)
		return err
	}
	if ticket == nil {
		logger.Info(ctx, quizComponent, "game.over",
			slog.String("lang", s.Language()),
		)
		return tghelpers.SendWithKeyboard(c, b.phrase(s, quiz.MsgCongrats), keyboard.RemoveKeyboard())
	}

	logger.Debug(ctx, quizComponent, "game.next",
		slog.String("lang", s.Language()),
		slog.Int64("question_id", ticket.Question.ID),
		slog.String("ticket_id", ticket.ID),
	)
	markup := keyboard.ReplyButtons(keyboard.ChunkLabels(ticket.Question.Answers, 2)...)
	return tghelpers.SendWithKeyboard(c, ticket.Question.Text, markup)
}

func (b *Bot) handleAdd(c tele.Context) error {
	ctx := tghelpers.WithHandler(c, "add")
	s := b.session(c)
	if s == nil {
		return nil
	}
	code := s.BeginEditing()
	logger.Debug(ctx, quizComponent, "edit.begin",
		slog.String("lang", s.Language()),
	)
	return tghelpers.SendWithKeyboard(c, b.phrase(s, code), keyboard.RemoveKeyboard())
}

func (b *Bot) handleLanguage(c tele.Context) error {
	_ = tghelpers.WithHandler(c, "language")
	s := b.session(c)
	if s == nil {
		return nil
	}
	s.BeginLanguageChange()
	return b.askLanguage(c, s)
}

func (b *Bot) askLanguage(c tele.Context, s *quiz.Session) error {
	markup := keyboard.ReplyButtons(keyboard.ChunkLabels(b.cfg.Languages, 2)...)
	return tghelpers.SendWithKeyboard(c, b.phrase(s, quiz.MsgAskLanguage), markup)
}

func (b *Bot) handleClear(c tele.Context) error {
	ctx := tghelpers.WithHandler(c, "clear")
	s := b.session(c)
	if s == nil {
		return nil
	}
	if err := s.DeleteUserHistory(ctx); err != nil {
		logger.Error(ctx, quizComponent, "history.clear",
			slog.String("err", err.Error()),
		)
		return err
	}
	logger.Info(ctx, quizComponent, "history.clear")
	return tghelpers.SendWithKeyboard(c, b.phrase(s, quiz.MsgCleared), keyboard.RemoveKeyboard())
}

func (b *Bot) handleStats(c tele.Context) error {
	ctx := tghelpers.WithHandler(c, "stats")
	s := b.session(c)
	if s == nil {
		return nil
	}
	st, err := s.UserStats(ctx)
	if err != nil {
		logger.Error(ctx, quizComponent, "stats",
			slog.String("err", err.Error()),
		)
		return err
	}
	text := b.bundle.Resolvef(s.Language(), quiz.MsgStats, st.Answered, st.Correct, st.Wrong)
	return tghelpers.SendText(c, text)
}

// handleText routes a free-text message by the session's mode: an answer
// during a game, a dialog step while authoring, a choice while switching
// language, and a gentle hint otherwise.
func (b *Bot) handleText(c tele.Context) error {
	ctx := tghelpers.WithHandler(c, "text")
	s := b.session(c)
	if s == nil {
		return nil
	}

	switch s.Mode() {
	case quiz.ModeGame:
		return b.onAnswer(ctx, c, s)
	case quiz.ModeEditing:
		return b.onDraftStep(ctx, c, s)
	case quiz.ModeChangingLanguage:
		return b.onLanguageChoice(ctx, c, s)
	default:
		return tghelpers.SendText(c, b.phrase(s, quiz.MsgWelcome))
	}
}

func (b *Bot) onAnswer(ctx context.Context, c tele.Context, s *quiz.Session) error {
	correct, err := s.Finish(ctx, c.Text())
	if err != nil {
		logger.Error(ctx, quizComponent, "game.answer",
			slog.String("err", err.Error()),
		)
		return err
	}
	logger.Debug(ctx, quizComponent, "game.answer",
		slog.Bool("correct", correct),
		slog.String("lang", s.Language()),
	)

	if correct {
		if err := tghelpers.SendText(c, b.phrase(s, quiz.MsgRight)); err != nil {
			return err
		}
		return b.askNext(ctx, c, s)
	}

	if err := tghelpers.SendText(c, b.phrase(s, quiz.MsgWrong)); err != nil {
		return err
	}
	if ticket := s.Ticket(); ticket != nil {
		// Same question again until the user gets it right.
		markup := keyboard.ReplyButtons(keyboard.ChunkLabels(ticket.Question.Answers, 2)...)
		return tghelpers.SendWithKeyboard(c, ticket.Question.Text, markup)
	}
	return b.askNext(ctx, c, s)
}

func (b *Bot) onDraftStep(ctx context.Context, c tele.Context, s *quiz.Session) error {
	code, err := s.FillQuestion(ctx, c.Text())
	if err != nil {
		logger.Error(ctx, quizComponent, "edit.step",
			slog.String("err", err.Error()),
		)
		return err
	}

	switch code {
	case quiz.MsgAskCorrect, quiz.MsgNotAnOption:
		markup := keyboard.ReplyButtons(keyboard.ChunkLabels(s.DraftOptions(), 2)...)
		return tghelpers.SendWithKeyboard(c, b.phrase(s, code), markup)
	case quiz.MsgQuestionSaved:
		logger.Info(ctx, quizComponent, "edit.committed",
			slog.String("lang", s.Language()),
		)
		return tghelpers.SendWithKeyboard(c, b.phrase(s, code), keyboard.RemoveKeyboard())
	default:
		return tghelpers.SendText(c, b.phrase(s, code))
	}
}

func (b *Bot) onLanguageChoice(ctx context.Context, c tele.Context, s *quiz.Session) error {
	ok, err := s.UpdateLanguage(c.Text())
	if err != nil {
		logger.Error(ctx, quizComponent, "language.change",
			slog.String("err", err.Error()),
		)
		return err
	}
	if !ok {
		return b.askLanguage(c, s)
	}
	logger.Info(ctx, quizComponent, "language.change",
		slog.String("lang", s.Language()),
	)
	return tghelpers.SendWithKeyboard(c, b.phrase(s, quiz.MsgLanguageChanged), keyboard.RemoveKeyboard())
}
