package buffer

import "testing"

func TestWrite_String(t *testing.T) {
	tb := New()
	tb.Write("a")
	tb.Write("b\n")
	if got := tb.String(); got != "ab\n" {
		t.Errorf("String() = %q, want %q", got, "ab\n")
	}
	if got := tb.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestTrailingNewlineCount(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  int
	}{
		{"empty", nil, 0},
		{"no newline", []string{"a"}, 0},
		{"one", []string{"a\n"}, 1},
		{"across parts", []string{"a\n", "\n"}, 2},
		{"interrupted", []string{"a\n", "b"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := New()
			for _, p := range tt.parts {
				tb.Write(p)
			}
			if got := tb.TrailingNewlineCount(); got != tt.want {
				t.Errorf("TrailingNewlineCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTrimTrailingNewline(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"empty", nil, ""},
		{"single newline", []string{"a\n"}, "a"},
		{"two newlines trims one", []string{"a\n\n"}, "a\n"},
		{"no newline untouched", []string{"a"}, "a"},
		{"skips empty parts", []string{"a\n", ""}, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := New()
			for _, p := range tt.parts {
				tb.Write(p)
			}
			tb.TrimTrailingNewline()
			if got := tb.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
