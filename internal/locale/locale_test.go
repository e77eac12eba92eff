package locale

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndResolve(t *testing.T) {
	path := writeBundle(t, `{
		"English": {"welcome": "Hi!", "stats": "Answered: %d"},
		"Russian": {"welcome": "Привет!", "stats": "Отвечено: %d"}
	}`)

	b, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := b.Resolve("Russian", "welcome"); got != "Привет!" {
		t.Fatalf("resolve = %q", got)
	}
	if got := b.Resolvef("English", "stats", 3); got != "Answered: 3" {
		t.Fatalf("resolvef = %q", got)
	}
	// A gap resolves to the code itself.
	if got := b.Resolve("English", "missing_code"); got != "missing_code" {
		t.Fatalf("fallback = %q", got)
	}
	if got := b.Resolve("Klingon", "welcome"); got != "welcome" {
		t.Fatalf("unknown language fallback = %q", got)
	}

	langs := b.Languages()
	if len(langs) != 2 || langs[0] != "English" || langs[1] != "Russian" {
		t.Fatalf("languages = %v", langs)
	}
}

func TestValidate(t *testing.T) {
	path := writeBundle(t, `{
		"English": {"welcome": "Hi!", "right": "Yes"},
		"Russian": {"welcome": "Привет!"}
	}`)
	b, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := b.Validate([]string{"English"}, []string{"welcome", "right"}); err != nil {
		t.Fatalf("complete language flagged: %v", err)
	}
	if err := b.Validate([]string{"Russian"}, []string{"welcome", "right"}); err == nil {
		t.Fatal("missing code not flagged")
	}
	if err := b.Validate([]string{"German"}, []string{"welcome"}); err == nil {
		t.Fatal("missing language not flagged")
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file not flagged")
	}
	if _, err := Load(writeBundle(t, `not json`)); err == nil {
		t.Fatal("malformed json not flagged")
	}
	if _, err := Load(writeBundle(t, `{}`)); err == nil {
		t.Fatal("empty bundle not flagged")
	}
}
