package ui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTranscriptPreview(t *testing.T) {
	short := "  hello world  "
	if got := transcriptPreview(short); got != "hello world" {
		t.Errorf("transcriptPreview(%q) = %q, expected trimmed text", short, got)
	}

	long := strings.Repeat("a", TranscriptPreviewLen+10)
	got := transcriptPreview(long)
	if len([]rune(got)) != TranscriptPreviewLen+1 {
		t.Errorf("Expected %d runes including ellipsis, got %d", TranscriptPreviewLen+1, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected truncated preview to end with ellipsis, got %q", got)
	}
}

func TestTranscriptPreviewKeepsRunesIntact(t *testing.T) {
	// Multi-byte characters around the cut point must not be split
	long := strings.Repeat("привет ", 40)
	got := transcriptPreview(long)
	if !utf8.ValidString(got) {
		t.Errorf("Preview contains an invalid UTF-8 sequence: %q", got)
	}
	if runes := []rune(got); len(runes) != TranscriptPreviewLen+1 {
		t.Errorf("Expected %d runes including ellipsis, got %d", TranscriptPreviewLen+1, len(runes))
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, test := range tests {
		if got := formatFileSize(test.bytes); got != test.expected {
			t.Errorf("formatFileSize(%d) = %q, expected %q", test.bytes, got, test.expected)
		}
	}
}
