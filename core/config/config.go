package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines the long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	DebugSample string `yaml:"debug_sample"`
	Dir         string `yaml:"dir"`
	File        string `yaml:"file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// RateLimitConfig holds settings for per-user rate limiting.
type RateLimitConfig struct {
	IntervalMS int `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
}

// QuizConfig carries the quiz game policy knobs.
type QuizConfig struct {
	// Languages lists the supported language labels; the labels double as
	// the valid replies while the bot asks for a language.
	Languages       []string `yaml:"languages" envconfig:"QUIZ_LANGUAGES"`
	DefaultLanguage string   `yaml:"default_language" envconfig:"QUIZ_DEFAULT_LANGUAGE"`
	// RepeatOnWrong keeps the same ticket live after a wrong answer.
	RepeatOnWrong bool `yaml:"repeat_on_wrong" envconfig:"QUIZ_REPEAT_ON_WRONG"`
	// DoneKeyword terminates the option-collection step of the authoring wizard.
	DoneKeyword string `yaml:"done_keyword" envconfig:"QUIZ_DONE_KEYWORD"`
	// MatchCaseSensitive switches answer matching to exact-case comparison.
	MatchCaseSensitive bool   `yaml:"match_case_sensitive" envconfig:"QUIZ_MATCH_CASE_SENSITIVE"`
	LocalePath         string `yaml:"locale_path" envconfig:"QUIZ_LOCALE_PATH"`
	SeedPath           string `yaml:"seed_path" envconfig:"QUIZ_SEED_PATH"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}

// Config aggregates the full application configuration.
type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Database  DatabaseConfig  `yaml:"database"`
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required fields and fills defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if err := normalizeQuiz(&cfg.Quiz); err != nil {
		return err
	}

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxConnections <= 0 {
		cfg.Database.MaxConnections = 4
	}
	return nil
}

func normalizeQuiz(q *QuizConfig) error {
	if len(q.Languages) == 0 {
		q.Languages = []string{"English", "Russian"}
	}
	cleaned := make([]string, 0, len(q.Languages))
	seen := make(map[string]struct{}, len(q.Languages))
	for _, lang := range q.Languages {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		key := strings.ToLower(lang)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate quiz language %q", lang)
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, lang)
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("quiz.languages must name at least one language")
	}
	q.Languages = cleaned

	if strings.TrimSpace(q.DefaultLanguage) == "" {
		q.DefaultLanguage = q.Languages[0]
	}
	found := false
	for _, lang := range q.Languages {
		if strings.EqualFold(lang, q.DefaultLanguage) {
			q.DefaultLanguage = lang
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("quiz.default_language %q is not in quiz.languages", q.DefaultLanguage)
	}

	if strings.TrimSpace(q.DoneKeyword) == "" {
		q.DoneKeyword = "done"
	}
	if strings.TrimSpace(q.LocalePath) == "" {
		q.LocalePath = "locales/messages.json"
	}
	return nil
}
