package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marell/cadenza/api"
)

// SongList represents a scrollable list of songs
type SongList struct {
	Items         []*api.Song
	Selected      int
	Height        int
	Width         int
	Offset        int
	Title         string
	ShowNumbers   bool
	SelectedStyle lipgloss.Style
	NormalStyle   lipgloss.Style
	LyricsStyle   lipgloss.Style
	TitleStyle    lipgloss.Style
}

// NewSongList creates a new song list
func NewSongList(height, width int) SongList {
	return SongList{
		Items:    make([]*api.Song, 0),
		Selected: 0,
		Height:   height,
		Width:    width,
		Offset:   0,
		SelectedStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Padding(0, 1),
		NormalStyle: lipgloss.NewStyle().
			Padding(0, 1),
		LyricsStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1),
		ShowNumbers: true,
	}
}

// SetItems sets the list items
func (l *SongList) SetItems(items []*api.Song) {
	l.Items = items
	if l.Selected >= len(items) {
		l.Selected = 0
		l.Offset = 0
	}
}

// Update handles messages for the song list
func (l SongList) Update(msg tea.Msg) (SongList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home":
			l.Selected = 0
			l.Offset = 0
		case "end":
			if len(l.Items) > 0 {
				l.Selected = len(l.Items) - 1
				l.ensureVisible()
			}
		case "pgup":
			l.PageUp()
		case "pgdown":
			l.PageDown()
		}
	}
	return l, nil
}

// MoveUp moves selection up
func (l *SongList) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
		l.ensureVisible()
	}
}

// MoveDown moves selection down
func (l *SongList) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
		l.ensureVisible()
	}
}

// PageUp moves selection up by a page
func (l *SongList) PageUp() {
	l.Selected -= l.Height - 2
	if l.Selected < 0 {
		l.Selected = 0
	}
	l.ensureVisible()
}

// PageDown moves selection down by a page
func (l *SongList) PageDown() {
	l.Selected += l.Height - 2
	if l.Selected >= len(l.Items) {
		l.Selected = len(l.Items) - 1
	}
	l.ensureVisible()
}

// ensureVisible ensures the selected item is visible
func (l *SongList) ensureVisible() {
	visibleHeight := l.Height - 2 // Account for title and border
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	if l.Selected < l.Offset {
		l.Offset = l.Selected
	} else if l.Selected >= l.Offset+visibleHeight {
		l.Offset = l.Selected - visibleHeight + 1
	}
}

// SelectedItem returns the currently selected song
func (l *SongList) SelectedItem() *api.Song {
	if l.Selected >= 0 && l.Selected < len(l.Items) {
		return l.Items[l.Selected]
	}
	return nil
}

// View renders the song list
func (l SongList) View() string {
	var sb strings.Builder

	if l.Title != "" {
		sb.WriteString(l.TitleStyle.Render(l.Title))
		sb.WriteString("\n")
	}

	if len(l.Items) == 0 {
		sb.WriteString(l.NormalStyle.Render("No songs"))
		return sb.String()
	}

	visibleHeight := l.Height - 2
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	end := l.Offset + visibleHeight
	if end > len(l.Items) {
		end = len(l.Items)
	}

	for i := l.Offset; i < end; i++ {
		song := l.Items[i]

		var line string
		if l.ShowNumbers {
			line = fmt.Sprintf("%3d. %s - %s", i+1, truncate(song.Artist, 20), truncate(song.Title, 30))
		} else {
			line = fmt.Sprintf("%s - %s", truncate(song.Artist, 20), truncate(song.Title, 35))
		}

		// Mark songs that carry synced lyrics
		if song.Lyrics != nil {
			line += " " + l.LyricsStyle.Render("♪")
		}

		if len(line) > l.Width-2 {
			line = line[:l.Width-5] + "..."
		}

		if i == l.Selected {
			sb.WriteString(l.SelectedStyle.Render(line))
		} else {
			sb.WriteString(l.NormalStyle.Render(line))
		}

		if i < end-1 {
			sb.WriteString("\n")
		}
	}

	// Scrollbar indicator
	if len(l.Items) > visibleHeight {
		sb.WriteString("\n")
		sb.WriteString(l.NormalStyle.Render(fmt.Sprintf("  [%d/%d]", l.Selected+1, len(l.Items))))
	}

	return sb.String()
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
