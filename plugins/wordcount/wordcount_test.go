package wordcount

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		text         string
		words, chars int
	}{
		{"", 0, 0},
		{"New Text", 2, 8},
		{"  spaced   out  ", 2, 16},
		{"café \U0001F1E9\U0001F1EA", 2, 6},
	}
	for _, tt := range tests {
		words, chars := Count(tt.text)
		if words != tt.words || chars != tt.chars {
			t.Errorf("Count(%q) = %d, %d, want %d, %d", tt.text, words, chars, tt.words, tt.chars)
		}
	}
}
