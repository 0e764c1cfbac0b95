package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marell/cadenza/api"
)

// LyricPane renders a lyric sequence with the active line highlighted and
// kept near the vertical center of the pane
type LyricPane struct {
	Width  int
	Height int
	Lines  []api.LyricLine
	Active int // -1 when no line is active
	Offset int

	ActiveStyle lipgloss.Style
	NormalStyle lipgloss.Style
	DimStyle    lipgloss.Style
}

// NewLyricPane creates a new lyric pane
func NewLyricPane(width, height int) LyricPane {
	return LyricPane{
		Width:  width,
		Height: height,
		Active: -1,
		ActiveStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		NormalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		DimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetLines replaces the displayed sequence and resets scroll state
func (p *LyricPane) SetLines(lines []api.LyricLine) {
	p.Lines = lines
	p.Active = -1
	p.Offset = 0
}

// SetActive moves the highlight. A change scrolls the pane so the active
// line sits in the middle; a transition to -1 leaves the scroll alone.
func (p *LyricPane) SetActive(index int) {
	if index == p.Active {
		return
	}
	p.Active = index
	if index >= 0 {
		p.centerOn(index)
	}
}

// centerOn scrolls so line i sits in the vertical middle, clamped to the
// sequence bounds
func (p *LyricPane) centerOn(i int) {
	visible := p.visibleHeight()
	offset := i - visible/2
	if offset > len(p.Lines)-visible {
		offset = len(p.Lines) - visible
	}
	if offset < 0 {
		offset = 0
	}
	p.Offset = offset
}

func (p *LyricPane) visibleHeight() int {
	if p.Height < 1 {
		return 1
	}
	return p.Height
}

// View renders the pane
func (p LyricPane) View() string {
	var sb strings.Builder

	if len(p.Lines) == 0 {
		sb.WriteString(p.DimStyle.Render("(no synced lines)"))
		return sb.String()
	}

	visible := p.visibleHeight()
	end := p.Offset + visible
	if end > len(p.Lines) {
		end = len(p.Lines)
	}

	for i := p.Offset; i < end; i++ {
		text := p.Lines[i].Text
		if text == "" {
			text = "♪"
		}
		if len(text) > p.Width-4 {
			text = text[:p.Width-7] + "..."
		}

		if i == p.Active {
			sb.WriteString(p.ActiveStyle.Render("▶ " + text))
		} else {
			sb.WriteString(p.NormalStyle.Render("  " + text))
		}
		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
