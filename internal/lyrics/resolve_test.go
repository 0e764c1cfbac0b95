package lyrics

import (
	"testing"

	"github.com/marell/cadenza/api"
)

func TestActiveIndex(t *testing.T) {
	lines := []api.LyricLine{
		{Time: 0, Text: "a"},
		{Time: 3, Text: "b"},
		{Time: 6, Text: "c"},
	}

	tests := []struct {
		name     string
		position float64
		want     int
	}{
		{"before first", -1, -1},
		{"exactly first", 0, 0},
		{"inside first window", 2.9, 0},
		{"inside middle window", 4, 1},
		{"boundary is next line", 6, 2},
		{"last window open ended", 1000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveIndex(lines, tt.position); got != tt.want {
				t.Errorf("ActiveIndex(lines, %v) = %d, want %d", tt.position, got, tt.want)
			}
		})
	}
}

func TestActiveIndex_EmptyAndNil(t *testing.T) {
	if got := ActiveIndex(nil, 10); got != -1 {
		t.Errorf("ActiveIndex(nil, 10) = %d, want -1", got)
	}
	if got := ActiveIndex([]api.LyricLine{}, 10); got != -1 {
		t.Errorf("ActiveIndex(empty, 10) = %d, want -1", got)
	}
}

func TestActiveIndex_SingleLine(t *testing.T) {
	lines := []api.LyricLine{{Time: 5, Text: "only"}}

	if got := ActiveIndex(lines, 4.99); got != -1 {
		t.Errorf("before the only line: got %d, want -1", got)
	}
	if got := ActiveIndex(lines, 5); got != 0 {
		t.Errorf("at the only line: got %d, want 0", got)
	}
	if got := ActiveIndex(lines, 500); got != 0 {
		t.Errorf("long after the only line: got %d, want 0", got)
	}
}

func TestActiveIndex_Idempotent(t *testing.T) {
	lines := ParseLRC("[00:00.00]a\n[00:03.00]b\n[00:06.00]c")

	first := ActiveIndex(lines, 4)
	second := ActiveIndex(lines, 4)
	if first != second {
		t.Errorf("repeated resolution differs: %d vs %d", first, second)
	}
}

// First-match semantics on an unsorted sequence, as produced by the freeform
// parser. The window of the first line never closes against a smaller next
// time, so the open-ended last line absorbs everything past its own time.
// This pins current behavior rather than endorsing it.
func TestActiveIndex_UnsortedFirstMatch(t *testing.T) {
	lines := []api.LyricLine{
		{Time: 10, Text: "late"},
		{Time: 0, Text: "early"},
	}

	if got := ActiveIndex(lines, 5); got != 1 {
		t.Errorf("ActiveIndex(unsorted, 5) = %d, want 1", got)
	}
	if got := ActiveIndex(lines, 10); got != 1 {
		t.Errorf("ActiveIndex(unsorted, 10) = %d, want 1", got)
	}
}
