package services

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateNote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short note unchanged", "crushed corner", "crushed corner"},
		{"exactly at limit", strings.Repeat("a", 45), strings.Repeat("a", 45)},
		{"long ascii note", strings.Repeat("a", 46), strings.Repeat("a", 42) + "..."},
		{"long multibyte note", strings.Repeat("箱", 50), strings.Repeat("箱", 42) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateNote(tt.in, 45)
			if got != tt.want {
				t.Errorf("truncateNote(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateNote produced invalid UTF-8: %q", got)
			}
		})
	}
}
