package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
	if len(cfg.Quiz.Languages) != 2 || cfg.Quiz.Languages[0] != "English" {
		t.Fatalf("unexpected languages: %v", cfg.Quiz.Languages)
	}
	if cfg.Quiz.DefaultLanguage != "English" {
		t.Fatalf("default language = %q", cfg.Quiz.DefaultLanguage)
	}
	if cfg.Quiz.DoneKeyword != "done" {
		t.Fatalf("done keyword = %q", cfg.Quiz.DoneKeyword)
	}
	if cfg.Database.SSLMode != "disable" || cfg.Database.MaxConnections != 4 {
		t.Fatalf("database defaults not applied: %+v", cfg.Database)
	}
}

func TestNormalizeRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Telegram.Token = "" },
			wantSub: "token",
		},
		{
			name:    "bad run mode",
			mutate:  func(c *Config) { c.Telegram.RunMode = "carrier-pigeon" },
			wantSub: "run_mode",
		},
		{
			name: "webhook without url",
			mutate: func(c *Config) {
				c.Telegram.RunMode = RunModeWebhook
				c.Webhook.Listen = "0.0.0.0"
				c.Webhook.Port = 8443
			},
			wantSub: "webhook.url",
		},
		{
			name: "default language outside set",
			mutate: func(c *Config) {
				c.Quiz.Languages = []string{"English"}
				c.Quiz.DefaultLanguage = "Russian"
			},
			wantSub: "default_language",
		},
		{
			name: "duplicate language",
			mutate: func(c *Config) {
				c.Quiz.Languages = []string{"English", "english"}
			},
			wantSub: "duplicate",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := Normalize(cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestNormalizeCanonicalizesDefaultLanguage(t *testing.T) {
	cfg := validConfig()
	cfg.Quiz.Languages = []string{"English", "Russian"}
	cfg.Quiz.DefaultLanguage = "russian"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Quiz.DefaultLanguage != "Russian" {
		t.Fatalf("default language = %q, want canonical label", cfg.Quiz.DefaultLanguage)
	}
}
