package printers

import (
	"reflect"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "greedy",
			text:  "This is a long line of text that needs to be wrapped.",
			width: 10,
			want:  []string{"This is a", "long line", "of text", "that needs", "to be", "wrapped."},
		},
		{
			name:  "fits",
			text:  "Short line.",
			width: 20,
			want:  []string{"Short line."},
		},
		{
			name:  "collapses whitespace",
			text:  "  spaced    out\ttext ",
			width: 20,
			want:  []string{"spaced out text"},
		},
		{
			name:  "hard break",
			text:  "abcdefghij klm",
			width: 4,
			want:  []string{"abcd", "efgh", "ij", "klm"},
		},
		{
			name:  "hard break remainder packs",
			text:  "abcdefg h",
			width: 5,
			want:  []string{"abcde", "fg h"},
		},
		{
			name:  "after short word",
			text:  "a bcdefgh",
			width: 3,
			want:  []string{"a", "bcd", "efg", "h"},
		},
		{
			name:  "wide runes",
			text:  "日本語日本",
			width: 4,
			want:  []string{"日本", "語日", "本"},
		},
		{
			name:  "blank",
			text:  "   ",
			width: 10,
			want:  nil,
		},
		{
			name:  "no width",
			text:  "one  two",
			width: 0,
			want:  []string{"one two"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
