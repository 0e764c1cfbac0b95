package lyrics

import "github.com/marell/cadenza/api"

// ActiveIndex returns the index of the lyric line whose time window contains
// position, or -1 when none is active. The active line is the first i with
// position >= lines[i].Time that is either the last line or has
// position < lines[i+1].Time; the last line's window is open-ended.
//
// The first-match scan assumes lines are sorted ascending by time. Freeform
// sequences are kept in input order, so an out-of-order sequence can resolve
// to an earlier line than a sorted one would.
func ActiveIndex(lines []api.LyricLine, position float64) int {
	for i := range lines {
		if position >= lines[i].Time && (i == len(lines)-1 || position < lines[i+1].Time) {
			return i
		}
	}
	return -1
}
