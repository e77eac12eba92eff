package bot

import (
	"testing"

	"github.com/a402539/pquiz-bot/core/telegram"
	"github.com/a402539/pquiz-bot/internal/quiz"
)

func TestRegisterWiresEveryCommand(t *testing.T) {
	cfg := quiz.Config{
		Languages:       []string{"English", "Russian"},
		DefaultLanguage: "English",
		DoneKeyword:     "done",
	}
	b := New(quiz.NewRegistry(quiz.NewMemoryRepository(), cfg), nil, cfg)

	reg := telegram.NewRegistry()
	b.Register(reg)

	for _, name := range []string{"/start", "/game", "/add", "/language", "/clear", "/stats"} {
		if _, _, ok := reg.LookupCommand(name); !ok {
			t.Fatalf("command %s not registered", name)
		}
	}

	// /next and /help route to their canonical commands.
	if key, _, ok := reg.LookupCommand("/next"); !ok || key != "/game" {
		t.Fatalf("alias /next resolved to %q, ok=%v", key, ok)
	}
	if key, _, ok := reg.LookupCommand("/help"); !ok || key != "/start" {
		t.Fatalf("alias /help resolved to %q, ok=%v", key, ok)
	}

	if reg.TextFallback() == nil {
		t.Fatal("text fallback not set")
	}

	if n := len(reg.ListCommands(true)); n != 6 {
		t.Fatalf("menu commands = %d, want 6", n)
	}
}
