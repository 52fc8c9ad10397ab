package telegram

import "testing"

func TestQuestionKeyboard(t *testing.T) {
	t.Parallel()

	options := []string{"Forest", "River", "City", "Home"}

	kb := questionKeyboard(options, false)
	if got := len(kb.InlineKeyboard); got != 4 {
		t.Fatalf("got %d rows, want 4", got)
	}
	for i, row := range kb.InlineKeyboard {
		if len(row) != 1 {
			t.Fatalf("row %d has %d buttons, want 1", i, len(row))
		}
		if row[0].Text != options[i] {
			t.Errorf("row %d text = %q, want %q", i, row[0].Text, options[i])
		}
	}
	if data := *kb.InlineKeyboard[2][0].CallbackData; data != "ans:2" {
		t.Errorf("callback data = %q, want \"ans:2\"", data)
	}
}

func TestQuestionKeyboardWithStartOver(t *testing.T) {
	t.Parallel()

	kb := questionKeyboard([]string{"a", "b", "c", "d"}, true)
	if got := len(kb.InlineKeyboard); got != 5 {
		t.Fatalf("got %d rows, want 5 (options plus start-over)", got)
	}
	last := kb.InlineKeyboard[4][0]
	if *last.CallbackData != "quiz:restart" {
		t.Errorf("start-over callback data = %q", *last.CallbackData)
	}
}
