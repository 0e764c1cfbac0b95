package lyrics

import (
	"math"
	"testing"

	"github.com/marell/cadenza/api"
)

func TestParseFreeform_TimedLines(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantTime float64
		wantText string
	}{
		{"minute colon seconds", "1:23|hello", 83, "hello"},
		{"bare seconds", "90|hello", 90, "hello"},
		{"fractional seconds", "12.5|half", 12.5, "half"},
		{"colon with fraction", "0:03.25|early", 3.25, "early"},
		{"text trimmed", "5|  spaced out  ", 5, "spaced out"},
		{"time expression trimmed", "  10  |ten", 10, "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := ParseFreeform(tt.line)
			if len(lines) != 1 {
				t.Fatalf("ParseFreeform(%q) returned %d lines, want 1", tt.line, len(lines))
			}
			if lines[0].Time != tt.wantTime {
				t.Errorf("Time = %v, want %v", lines[0].Time, tt.wantTime)
			}
			if lines[0].Text != tt.wantText {
				t.Errorf("Text = %q, want %q", lines[0].Text, tt.wantText)
			}
		})
	}
}

func TestParseFreeform_UntimedFallback(t *testing.T) {
	content := "0:01|first\n10|second\njust text\nalso|too|many|pipes"

	lines := ParseFreeform(content)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	// Retained-position 2 gets 2*3 = 6 seconds
	if lines[2].Time != 6 || lines[2].Text != "just text" {
		t.Errorf("lines[2] = %v, want {6 just text}", lines[2])
	}
	// Multi-pipe lines keep the whole line as text
	if lines[3].Time != 9 || lines[3].Text != "also|too|many|pipes" {
		t.Errorf("lines[3] = %v, want {9 also|too|many|pipes}", lines[3])
	}
}

func TestParseFreeform_BlankLinesDroppedBeforeIndexing(t *testing.T) {
	// Blank lines must not count toward the fallback index
	content := "\n\nfirst\n   \nsecond\n"

	lines := ParseFreeform(content)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Time != 0 {
		t.Errorf("lines[0].Time = %v, want 0", lines[0].Time)
	}
	if lines[1].Time != 3 {
		t.Errorf("lines[1].Time = %v, want 3", lines[1].Time)
	}
}

func TestParseFreeform_UnparsableTimeDropped(t *testing.T) {
	lines := ParseFreeform("abc|text\n5|kept")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %v", len(lines), lines)
	}
	if lines[0].Text != "kept" {
		t.Errorf("Text = %q, want %q", lines[0].Text, "kept")
	}
}

// The freeform parser intentionally keeps input order even when times are
// out of order, unlike ParseLRC which sorts.
func TestParseFreeform_DoesNotSort(t *testing.T) {
	content := "30|late\n10|early\n20|middle"

	lines := ParseFreeform(content)
	want := []api.LyricLine{
		{Time: 30, Text: "late"},
		{Time: 10, Text: "early"},
		{Time: 20, Text: "middle"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %v, want %v", i, lines[i], want[i])
		}
	}
}

func TestParseFreeform_EmptyInput(t *testing.T) {
	for _, content := range []string{"", "\n", "  \n \n"} {
		lines := ParseFreeform(content)
		if lines == nil || len(lines) != 0 {
			t.Errorf("ParseFreeform(%q) = %v, want empty non-nil sequence", content, lines)
		}
	}
}

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		line api.LyricLine
		want string
	}{
		{api.LyricLine{Time: 0, Text: "zero"}, "0:00.00|zero"},
		{api.LyricLine{Time: 83, Text: "hello"}, "1:23.00|hello"},
		{api.LyricLine{Time: 3.25, Text: "early"}, "0:03.25|early"},
		{api.LyricLine{Time: 600, Text: "ten minutes"}, "10:00.00|ten minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatEntry(tt.line); got != tt.want {
				t.Errorf("FormatEntry(%v) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	original := []api.LyricLine{
		{Time: 0, Text: "first"},
		{Time: 12.34, Text: "second"},
		{Time: 83, Text: "third"},
		{Time: 125.5, Text: "fourth"},
	}

	parsed := ParseFreeform(Serialize(original))
	if len(parsed) != len(original) {
		t.Fatalf("round trip returned %d lines, want %d", len(parsed), len(original))
	}

	for i := range original {
		if math.Abs(parsed[i].Time-original[i].Time) > 0.005 {
			t.Errorf("lines[%d].Time = %v, want %v (within hundredths)", i, parsed[i].Time, original[i].Time)
		}
		if parsed[i].Text != original[i].Text {
			t.Errorf("lines[%d].Text = %q, want %q", i, parsed[i].Text, original[i].Text)
		}
	}
}
