package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays", "Nutrition", 30, "Nutrition"},
		{"exact stays", "abcdef", 6, "abcdef"},
		{"long is cut", "Living organisms and cells", 10, "Living ..."},
		{"cut lands on a rune boundary", "the cell’s rôle in life", 12, "the cell’..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}
