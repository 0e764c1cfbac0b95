package lyrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/marell/cadenza/api"
)

// fallbackSpacing is the synthetic gap, in seconds, between untimed lines
const fallbackSpacing = 3

// ParseFreeform converts manually typed "time|text" lines into a lyric
// sequence. Blank lines are dropped before anything else, so the positional
// index used for the spacing fallback counts retained lines only.
//
// A line with exactly one pipe is a timed entry: the left side is a time
// expression ("m:ss", "m:ss.ff", or bare seconds), the right side the text.
// Every other shape keeps the whole trimmed line as text and gets a synthetic
// time of index*3 seconds. A timed entry whose time expression does not parse
// is dropped.
//
// Unlike ParseLRC, output keeps input order and is NOT re-sorted.
func ParseFreeform(content string) []api.LyricLine {
	retained := make([]string, 0)
	for _, raw := range strings.Split(content, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		retained = append(retained, raw)
	}

	lines := []api.LyricLine{}
	for i, raw := range retained {
		parts := strings.Split(raw, "|")
		if len(parts) == 2 {
			t, err := parseTimeExpr(parts[0])
			if err != nil {
				continue
			}
			lines = append(lines, api.LyricLine{
				Time: t,
				Text: strings.TrimSpace(parts[1]),
			})
			continue
		}

		lines = append(lines, api.LyricLine{
			Time: float64(i * fallbackSpacing),
			Text: strings.TrimSpace(raw),
		})
	}

	return lines
}

// parseTimeExpr parses "m:ss[.ff]" or a bare number of seconds
func parseTimeExpr(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)

	if strings.Contains(expr, ":") {
		parts := strings.SplitN(expr, ":", 2)
		minutes, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("parse minutes %q: %w", parts[0], err)
		}
		seconds, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("parse seconds %q: %w", parts[1], err)
		}
		return minutes*60 + seconds, nil
	}

	return strconv.ParseFloat(expr, 64)
}

// FormatEntry renders one lyric line in the edit-buffer form "m:ss.ff|text"
func FormatEntry(line api.LyricLine) string {
	return fmt.Sprintf("%d:%05.2f|%s", int(line.Time/60), math.Mod(line.Time, 60), line.Text)
}

// Serialize renders a lyric sequence into the edit-buffer form, one entry
// per line. Reparsing the result with ParseFreeform reproduces the same
// (time, text) pairs up to hundredths.
func Serialize(lines []api.LyricLine) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, FormatEntry(line))
	}
	return strings.Join(out, "\n")
}
