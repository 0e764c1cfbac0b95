package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marell/cadenza/api"
	"github.com/marell/cadenza/internal/ui/components"
)

// PlayerView displays the current playback state and transport help
type PlayerView struct {
	Width       int
	Height      int
	State       *api.PlaybackState
	ActiveLyric string
	ProgressBar components.ProgressBar

	// Styles
	TitleStyle    lipgloss.Style
	ArtistStyle   lipgloss.Style
	AlbumStyle    lipgloss.Style
	StatusStyle   lipgloss.Style
	LyricStyle    lipgloss.Style
	ControlsStyle lipgloss.Style
	BorderStyle   lipgloss.Style
}

// NewPlayerView creates a new player view
func NewPlayerView(width, height int) PlayerView {
	return PlayerView{
		Width:       width,
		Height:      height,
		ProgressBar: components.NewProgressBar(width - 4),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1),
		ArtistStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		AlbumStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true),
		StatusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
		LyricStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Italic(true),
		ControlsStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1),
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
	}
}

// SetState updates the playback state
func (v *PlayerView) SetState(state *api.PlaybackState) {
	v.State = state
	if state != nil && state.CurrentSong != nil {
		v.ProgressBar.SetProgress(state.Position, state.CurrentSong.Duration)
	}
}

// SetActiveLyric updates the one-line lyric shown under the progress bar
func (v *PlayerView) SetActiveLyric(text string) {
	v.ActiveLyric = text
}

// Update handles messages
func (v PlayerView) Update(msg tea.Msg) (PlayerView, tea.Cmd) {
	return v, nil
}

// View renders the player view
func (v PlayerView) View() string {
	var sb strings.Builder

	if v.State == nil || v.State.CurrentSong == nil {
		sb.WriteString(v.TitleStyle.Render("♪ No song playing"))
		sb.WriteString("\n\n")
		sb.WriteString(v.ControlsStyle.Render("Press Enter on a song to play"))
	} else {
		song := v.State.CurrentSong

		var statusIcon string
		switch v.State.Status {
		case api.StatusPlaying:
			statusIcon = "▶"
		case api.StatusPaused:
			statusIcon = "⏸"
		default:
			statusIcon = "⏹"
		}

		sb.WriteString(v.StatusStyle.Render(statusIcon + " "))
		sb.WriteString(v.TitleStyle.Render(song.Title))
		sb.WriteString("\n")
		sb.WriteString(v.ArtistStyle.Render(song.Artist))
		if song.Album != "" {
			sb.WriteString("\n")
			sb.WriteString(v.AlbumStyle.Render(song.Album))
		}
		sb.WriteString("\n\n")

		sb.WriteString(v.ProgressBar.View())
		sb.WriteString("\n\n")

		if v.ActiveLyric != "" {
			sb.WriteString(v.LyricStyle.Render("♪ " + v.ActiveLyric))
			sb.WriteString("\n\n")
		}

		volumeBar := renderVolumeBar(v.State.Volume)
		sb.WriteString(fmt.Sprintf("Volume: %s %d%%", volumeBar, int(v.State.Volume*100)))
		if v.State.Muted {
			sb.WriteString("  🔇 muted")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n\n")
	sb.WriteString(v.ControlsStyle.Render(
		"[Space] Play/Pause  [s] Stop  [n] Next  [p] Prev  [←/→] Seek  [+/-] Volume  [m] Mute  [q] Quit",
	))

	return v.BorderStyle.Width(v.Width - 4).Render(sb.String())
}

// renderVolumeBar renders a volume bar
func renderVolumeBar(volume float64) string {
	filled := int(volume * 10)
	empty := 10 - filled

	filledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	return filledStyle.Render(strings.Repeat("●", filled)) + emptyStyle.Render(strings.Repeat("○", empty))
}
