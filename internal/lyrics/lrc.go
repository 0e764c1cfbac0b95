package lyrics

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/marell/cadenza/api"
)

// lrcLine matches one tagged lyric line: [mm:ss.xx]text with fixed
// two-digit fields. Anything else on the line is skipped.
var lrcLine = regexp.MustCompile(`^\[(\d{2}):(\d{2})\.(\d{2})\](.*)$`)

// ParseLRC converts the content of a .lrc file into an ordered lyric
// sequence. Lines that do not match the tagged format are skipped, so
// metadata tags like [ar:...] fall through silently. The result is sorted
// ascending by time with a stable sort; empty input yields an empty (non-nil)
// sequence.
//
// Field values are taken as plain integers without range checks: a second
// field of "75" parses to 75 seconds.
func ParseLRC(content string) []api.LyricLine {
	lines := []api.LyricLine{}

	for _, raw := range strings.Split(content, "\n") {
		m := lrcLine.FindStringSubmatch(strings.TrimRight(raw, "\r"))
		if m == nil {
			continue
		}

		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		hundredths, _ := strconv.Atoi(m[3])

		lines = append(lines, api.LyricLine{
			Time: float64(minutes)*60 + float64(seconds) + float64(hundredths)/100,
			Text: strings.TrimSpace(m[4]),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Time < lines[j].Time
	})

	return lines
}

// IsLRCFile reports whether the path names a .lrc lyrics file
func IsLRCFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".lrc")
}
