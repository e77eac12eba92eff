package keyboard

import "testing"

func TestChunkLabels(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e"}

	rows := ChunkLabels(labels, 2)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[2]) != 1 {
		t.Fatalf("unexpected row sizes: %v", rows)
	}

	rows = ChunkLabels(labels, 0)
	if len(rows) != len(labels) {
		t.Fatalf("one-per-row fallback produced %d rows", len(rows))
	}
}

func TestReplyButtonsShape(t *testing.T) {
	markup := ReplyButtons([]string{"3", "4"}, []string{"5"})
	if !markup.ResizeKeyboard || !markup.OneTimeKeyboard {
		t.Fatal("expected resized one-time keyboard")
	}
	if len(markup.ReplyKeyboard) != 2 {
		t.Fatalf("keyboard rows = %d, want 2", len(markup.ReplyKeyboard))
	}
	if markup.ReplyKeyboard[0][1].Text != "4" {
		t.Fatalf("unexpected button: %+v", markup.ReplyKeyboard[0][1])
	}
}
