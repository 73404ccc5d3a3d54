package ui

import (
	"strings"
	"testing"

	"github.com/ryo246912/gh-pr-release/internal/models"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "pad short string",
			input:    "hello",
			width:    10,
			expected: "hello     ",
		},
		{
			name:     "no padding needed",
			input:    "hello",
			width:    5,
			expected: "hello",
		},
		{
			name:     "string longer than width",
			input:    "hello world",
			width:    5,
			expected: "hello world",
		},
		{
			name:     "empty string",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "unicode characters",
			input:    "こんにちは",
			width:    15,
			expected: "こんにちは     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadRight(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestFormatReleaseItem(t *testing.T) {
	pr := models.PullRequest{Number: 42, Title: "Add widgets", Author: "alice"}

	got := FormatReleaseItem(pr)

	if !strings.HasPrefix(got, "#42") {
		t.Errorf("FormatReleaseItem() = %q, want prefix #42", got)
	}
	if !strings.Contains(got, "Add widgets") || !strings.HasSuffix(got, "@alice") {
		t.Errorf("FormatReleaseItem() = %q, want title and trailing @alice", got)
	}
}

func TestFormatReleaseItemTruncatesLongTitle(t *testing.T) {
	pr := models.PullRequest{Number: 7, Title: strings.Repeat("a", 120), Author: "bob"}

	got := FormatReleaseItem(pr)

	if !strings.Contains(got, strings.Repeat("a", 72)+"...") {
		t.Errorf("FormatReleaseItem() = %q, want truncated title with ellipsis", got)
	}
}
