package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marell/cadenza/api"
	"github.com/marell/cadenza/internal/lyrics"
	"github.com/marell/cadenza/internal/ui/components"
)

// LyricsMode is the state of the lyrics view
type LyricsMode int

const (
	// LyricsEmpty means the song has no lyrics and nothing is being edited
	LyricsEmpty LyricsMode = iota
	// LyricsViewing shows lyrics read-only with the active line highlighted
	LyricsViewing
	// LyricsEditing has the text-entry buffer open
	LyricsEditing
)

// LyricsSavedMsg carries a freshly parsed edit buffer to the coordinator
type LyricsSavedMsg struct {
	Lines []api.LyricLine
}

// LyricsFileChosenMsg is sent when a lyrics file is picked in the browser.
// SongID is the selection at the moment of choosing, so a stale read can be
// discarded after the selection moves on.
type LyricsFileChosenMsg struct {
	SongID string
	Path   string
}

// LyricsView owns the lyrics pane, the edit buffer and the .lrc browser
type LyricsView struct {
	Width  int
	Height int

	Mode      LyricsMode
	SongID    string
	SongTitle string
	Lines     []api.LyricLine
	Active    int

	Pane        components.LyricPane
	Editor      components.TextEditor
	FileBrowser components.FileBrowser
	Browsing    bool

	prevMode LyricsMode

	BorderStyle lipgloss.Style
	TitleStyle  lipgloss.Style
	EmptyStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
}

// NewLyricsView creates a new lyrics view
func NewLyricsView(width, height int) LyricsView {
	return LyricsView{
		Width:  width,
		Height: height,
		Mode:   LyricsEmpty,
		Active: -1,
		Pane:   components.NewLyricPane(width-8, height-8),
		Editor: components.NewTextEditor(width-4, height-4),
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1),
		EmptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		HelpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetSong points the view at a new song. An in-progress edit buffer is
// discarded, since it belonged to the previous selection.
func (v *LyricsView) SetSong(id, title string, lines []api.LyricLine) {
	v.SongID = id
	v.SongTitle = title
	v.Lines = lines
	v.Active = -1
	v.Browsing = false
	v.Pane.SetLines(lines)

	if lines == nil {
		v.Mode = LyricsEmpty
	} else {
		v.Mode = LyricsViewing
	}
}

// SetPosition recomputes the active line from the playback position. The
// pane scrolls the active line into the center when the index changes; a
// change to "none" leaves the scroll where it is.
func (v *LyricsView) SetPosition(position float64) {
	if v.Mode != LyricsViewing {
		return
	}
	idx := lyrics.ActiveIndex(v.Lines, position)
	if idx != v.Active {
		v.Active = idx
		v.Pane.SetActive(idx)
	}
}

// Update handles messages
func (v LyricsView) Update(msg tea.Msg) (LyricsView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.Browsing {
		switch keyMsg.String() {
		case "esc":
			v.Browsing = false
			return v, nil
		case "enter":
			path := v.FileBrowser.EnterSelected()
			if path != "" {
				v.Browsing = false
				songID := v.SongID
				return v, func() tea.Msg {
					return LyricsFileChosenMsg{SongID: songID, Path: path}
				}
			}
			return v, nil
		default:
			v.FileBrowser, _ = v.FileBrowser.Update(keyMsg)
			return v, nil
		}
	}

	switch v.Mode {
	case LyricsEditing:
		switch keyMsg.String() {
		case "ctrl+s":
			return v.save()
		case "esc":
			// Buffer discarded, back to whatever preceded editing
			v.Mode = v.prevMode
			return v, nil
		default:
			v.Editor, _ = v.Editor.Update(keyMsg)
			return v, nil
		}

	default: // LyricsEmpty, LyricsViewing
		switch keyMsg.String() {
		case "e":
			v.startEditing()
			return v, nil
		case "o":
			v.Browsing = true
			v.FileBrowser = components.NewFileBrowser("", v.Width, v.Height, []string{".lrc"})
			v.FileBrowser.FileIcon = "📝 "
			return v, nil
		}
	}

	return v, nil
}

// startEditing opens the buffer, pre-populated from current lyrics when
// viewing
func (v *LyricsView) startEditing() {
	v.prevMode = v.Mode
	v.Editor.Clear()
	if v.Mode == LyricsViewing && len(v.Lines) > 0 {
		v.Editor.SetValue(lyrics.Serialize(v.Lines))
	}
	v.Mode = LyricsEditing
}

// save parses the buffer and replaces the lyric sequence. An empty parse
// result drops the view back to the empty state.
func (v *LyricsView) save() (LyricsView, tea.Cmd) {
	parsed := lyrics.ParseFreeform(v.Editor.Value())
	v.Lines = parsed
	v.Pane.SetLines(parsed)
	v.Active = -1

	if len(parsed) == 0 {
		v.Mode = LyricsEmpty
	} else {
		v.Mode = LyricsViewing
	}

	return *v, func() tea.Msg {
		return LyricsSavedMsg{Lines: parsed}
	}
}

// View renders the lyrics view
func (v LyricsView) View() string {
	if v.Browsing {
		return v.FileBrowser.View()
	}

	var sb strings.Builder

	title := "🎤 Lyrics"
	if v.SongTitle != "" {
		title += " — " + v.SongTitle
	}
	sb.WriteString(v.TitleStyle.Render(title))
	sb.WriteString("\n")

	switch v.Mode {
	case LyricsEditing:
		sb.WriteString(v.Editor.View())
		sb.WriteString("\n")
		sb.WriteString(v.HelpStyle.Render("[Ctrl+S] Save  [Esc] Cancel"))

	case LyricsViewing:
		sb.WriteString(v.Pane.View())
		sb.WriteString("\n\n")
		sb.WriteString(v.HelpStyle.Render("[e] Edit  [o] Load .lrc"))

	default:
		if v.SongID == "" {
			sb.WriteString(v.EmptyStyle.Render("No song selected"))
		} else {
			sb.WriteString(v.EmptyStyle.Render("No lyrics for this song yet"))
			sb.WriteString("\n\n")
			sb.WriteString(v.HelpStyle.Render("[e] Add lyrics  [o] Load .lrc"))
		}
	}

	return v.BorderStyle.Width(v.Width - 4).Render(sb.String())
}
