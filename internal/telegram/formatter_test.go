package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatResult(t *testing.T) {
	got := FormatResult("BTC (id: 90): $65000.0\nA&B (id: 1): $<1>")
	want := "<b>📊 Result:</b>\nBTC (id: 90): $65000.0\nA&amp;B (id: 1): $&lt;1&gt;"
	if got != want {
		t.Errorf("FormatResult() = %q, want %q", got, want)
	}
}

func TestSplitMessage(t *testing.T) {
	t.Run("short message untouched", func(t *testing.T) {
		parts := SplitMessage("hello", 10)
		if len(parts) != 1 || parts[0] != "hello" {
			t.Errorf("SplitMessage() = %v", parts)
		}
	})

	t.Run("splits on newline", func(t *testing.T) {
		text := "line one\nline two\nline three"
		parts := SplitMessage(text, 12)

		if strings.Join(parts, "") != text {
			t.Errorf("SplitMessage() lost content: %v", parts)
		}
		for _, p := range parts {
			if len(p) > 12 {
				t.Errorf("part too long: %q", p)
			}
		}
		if parts[0] != "line one\n" {
			t.Errorf("first part = %q, want %q", parts[0], "line one\n")
		}
	})

	t.Run("no separators", func(t *testing.T) {
		parts := SplitMessage(strings.Repeat("a", 25), 10)
		if len(parts) != 3 || parts[2] != "aaaaa" {
			t.Errorf("SplitMessage() = %v", parts)
		}
	})
}

func TestSplitMessage_KeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("₿", 10) // по 3 байта
	parts := SplitMessage(text, 10)

	if strings.Join(parts, "") != text {
		t.Fatalf("SplitMessage() lost content: %q", parts)
	}
	for _, p := range parts {
		if !utf8.ValidString(p) {
			t.Errorf("part %q is not valid UTF-8", p)
		}
		if len(p) > 10 {
			t.Errorf("part too long: %q", p)
		}
	}
}

func TestSplitMessage_KeepsEntitiesWhole(t *testing.T) {
	text := "aaaaaaa&amp;bbbb"
	parts := SplitMessage(text, 10)

	if strings.Join(parts, "") != text {
		t.Fatalf("SplitMessage() lost content: %q", parts)
	}
	if parts[0] != "aaaaaaa" {
		t.Errorf("first part = %q, want %q", parts[0], "aaaaaaa")
	}
	for _, p := range parts {
		if strings.Count(p, "&") != strings.Count(p, ";") {
			t.Errorf("entity cut in part %q", p)
		}
	}
}
