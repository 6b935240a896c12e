package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			maxLen:   20,
			expected: "",
		},
		{
			name:     "string shorter than maxLen",
			input:    "hello",
			maxLen:   20,
			expected: "hello",
		},
		{
			name:     "string equal to maxLen",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "string longer than maxLen",
			input:    "hello world",
			maxLen:   8,
			expected: "hello...",
		},
		{
			name:     "comment body bounded to twenty",
			input:    "This is a very long comment body",
			maxLen:   20,
			expected: "This is a very lo...",
		},
		{
			// 20 characters but 60 bytes; character counting leaves it whole.
			name:     "multibyte string within maxLen",
			input:    "日本語のとても長いコメント本文です、はい",
			maxLen:   20,
			expected: "日本語のとても長いコメント本文です、はい",
		},
		{
			name:     "multibyte string longer than maxLen",
			input:    "日本語のとても長いコメント本文です、はい、承知しました",
			maxLen:   20,
			expected: "日本語のとても長いコメント本文です...",
		},
		{
			name:     "maxLen equal to marker length",
			input:    "hello",
			maxLen:   3,
			expected: "...",
		},
		{
			name:     "maxLen smaller than marker length",
			input:    "hello",
			maxLen:   1,
			expected: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q",
					tt.input, tt.maxLen, result, tt.expected)
			}
			if n := utf8.RuneCountInString(result); n > tt.maxLen && tt.maxLen > 3 {
				t.Errorf("Truncate(%q, %d) returned %d chars", tt.input, tt.maxLen, n)
			}
			if !utf8.ValidString(result) {
				t.Errorf("Truncate(%q, %d) returned invalid UTF-8 %q", tt.input, tt.maxLen, result)
			}
		})
	}
}
