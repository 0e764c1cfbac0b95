package ui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/marell/cadenza/api"
	"github.com/marell/cadenza/internal/lyrics"
	"github.com/marell/cadenza/internal/player"
	"github.com/marell/cadenza/internal/ui/views"
	playerrors "github.com/marell/cadenza/pkg/errors"
	"github.com/marell/cadenza/pkg/events"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewPlayer ViewType = iota
	ViewLibrary
	ViewLyrics
)

// Model is the main bubbletea model
type Model struct {
	// Dimensions
	width  int
	height int

	// Current view
	activeView ViewType

	// Views
	playerView  views.PlayerView
	libraryView views.LibraryView
	lyricsView  views.LyricsView

	// Components
	coordinator *player.Coordinator
	bus         *events.Bus
	sub         <-chan api.PlayerEvent

	// State
	ctx    context.Context
	cancel context.CancelFunc
	notice string
	log    *logrus.Entry

	// Styles
	tabStyle       lipgloss.Style
	activeTabStyle lipgloss.Style
	noticeStyle    lipgloss.Style
}

// TickMsg is sent periodically to refresh the transport display
type TickMsg time.Time

// EventMsg wraps a player event from the bus
type EventMsg struct {
	Event api.PlayerEvent
}

// LyricsLoadedMsg is the result of an asynchronous .lrc file read. SongID is
// the selection the read was started for.
type LyricsLoadedMsg struct {
	SongID string
	Path   string
	Lines  []api.LyricLine
	Err    error
}

// noticeExpiredMsg clears the transient status line
type noticeExpiredMsg struct{}

// NewModel creates a new application model
func NewModel(coordinator *player.Coordinator, bus *events.Bus, log *logrus.Logger) Model {
	ctx, cancel := context.WithCancel(context.Background())
	if log == nil {
		log = logrus.StandardLogger()
	}

	m := Model{
		width:       80,
		height:      24,
		activeView:  ViewLibrary,
		coordinator: coordinator,
		bus:         bus,
		sub:         bus.SubscribeAll(),
		ctx:         ctx,
		cancel:      cancel,
		log:         log.WithField("component", "ui"),
		tabStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("240")),
		activeTabStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Background(lipgloss.Color("236")),
		noticeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
	}

	m.playerView = views.NewPlayerView(m.width, m.height/3)
	m.libraryView = views.NewLibraryView(m.width, m.height-10)
	m.lyricsView = views.NewLyricsView(m.width, m.height-10)

	m.libraryView.SetSongs(coordinator.Songs())
	if song := coordinator.Current(); song != nil {
		m.lyricsView.SetSong(song.ID, song.Title, song.Lyrics)
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.listenForEvents(),
	)
}

// tickCmd returns a command that ticks every 500ms
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// listenForEvents returns a command that waits for the next bus event
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case event, ok := <-m.sub:
			if !ok {
				return nil
			}
			return EventMsg{Event: event}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// loadLyricsFile reads and parses a .lrc file off the update loop. The
// result is tagged with the song it was requested for.
func loadLyricsFile(songID, path string) tea.Cmd {
	return func() tea.Msg {
		if !lyrics.IsLRCFile(path) {
			return LyricsLoadedMsg{SongID: songID, Path: path, Err: playerrors.ErrNotLyricsFile}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return LyricsLoadedMsg{SongID: songID, Path: path, Err: err}
		}
		return LyricsLoadedMsg{SongID: songID, Path: path, Lines: lyrics.ParseLRC(string(data))}
	}
}

// showNotice sets the transient status line and schedules its expiry
func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

// refreshPlayback pushes the current playback snapshot into the views. The
// lyric sequence and position are read as one pair.
func (m *Model) refreshPlayback() {
	state := m.coordinator.State()
	m.playerView.SetState(state)

	lines, pos := m.coordinator.LyricsAndPosition()
	m.lyricsView.SetPosition(pos)

	if idx := lyrics.ActiveIndex(lines, pos); idx >= 0 {
		m.playerView.SetActiveLyric(lines[idx].Text)
	} else {
		m.playerView.SetActiveLyric("")
	}
}

// syncCurrentSong points the lyrics view at the coordinator's selection
func (m *Model) syncCurrentSong() {
	if song := m.coordinator.Current(); song != nil {
		m.lyricsView.SetSong(song.ID, song.Title, song.Lyrics)
	} else {
		m.lyricsView.SetSong("", "", nil)
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewSizes()

	case TickMsg:
		m.refreshPlayback()
		cmds = append(cmds, tickCmd())

	case EventMsg:
		switch msg.Event.Type {
		case api.EventSongStarted:
			m.syncCurrentSong()
			m.refreshPlayback()
		case api.EventPositionUpdate, api.EventStateChange, api.EventSongEnded:
			m.refreshPlayback()
		case api.EventError:
			if err, ok := msg.Event.Payload.(error); ok {
				cmds = append(cmds, m.showNotice("Playback error: "+err.Error()))
			}
		}
		cmds = append(cmds, m.listenForEvents())

	case views.FileAddedMsg:
		if _, err := m.coordinator.AddFile(msg.Path); err != nil {
			cmds = append(cmds, m.showNotice("Could not add file: "+err.Error()))
		} else {
			m.libraryView.SetSongs(m.coordinator.Songs())
			if m.coordinator.Len() == 1 {
				m.syncCurrentSong()
			}
		}

	case views.LyricsFileChosenMsg:
		cmds = append(cmds, loadLyricsFile(msg.SongID, msg.Path))

	case views.LyricsSavedMsg:
		if err := m.coordinator.SetLyrics(msg.Lines); err != nil {
			cmds = append(cmds, m.showNotice("Could not save lyrics: "+err.Error()))
		}

	case LyricsLoadedMsg:
		current := m.coordinator.Current()
		if current == nil || current.ID != msg.SongID {
			// The selection moved on while the file was being read
			m.log.WithField("path", msg.Path).Debug("discarding stale lyrics load")
			break
		}
		if msg.Err != nil {
			cmds = append(cmds, m.showNotice("Could not load lyrics: "+msg.Err.Error()))
			break
		}
		if err := m.coordinator.SetLyrics(msg.Lines); err != nil {
			cmds = append(cmds, m.showNotice("Could not apply lyrics: "+err.Error()))
			break
		}
		m.syncCurrentSong()
		if len(msg.Lines) == 0 {
			cmds = append(cmds, m.showNotice("No synced lines found in "+msg.Path))
		}

	case noticeExpiredMsg:
		m.notice = ""

	case tea.KeyMsg:
		return m.handleKey(msg, cmds)
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes key presses between global bindings and the active view
func (m Model) handleKey(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	// Text-entry modes swallow everything except ctrl+c
	captured := (m.activeView == ViewLibrary && (m.libraryView.Searching || m.libraryView.Browsing)) ||
		(m.activeView == ViewLyrics && (m.lyricsView.Mode == views.LyricsEditing || m.lyricsView.Browsing))
	if captured {
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch m.activeView {
		case ViewLibrary:
			m.libraryView, cmd = m.libraryView.Update(msg)
		case ViewLyrics:
			m.lyricsView, cmd = m.lyricsView.Update(msg)
		}
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "1":
		m.activeView = ViewPlayer
	case "2":
		m.activeView = ViewLibrary
	case "3":
		m.activeView = ViewLyrics

	case "tab":
		m.activeView = (m.activeView + 1) % 3

	case " ":
		if err := m.coordinator.Toggle(); err != nil {
			cmds = append(cmds, m.showNotice(err.Error()))
		}

	case "s":
		m.coordinator.Stop()

	case "n":
		if err := m.coordinator.PlayNext(); err == nil {
			m.syncCurrentSong()
		}

	case "p":
		if err := m.coordinator.PlayPrevious(); err == nil {
			m.syncCurrentSong()
		}

	case "left":
		m.coordinator.Seek(-5 * time.Second)

	case "right":
		m.coordinator.Seek(5 * time.Second)

	case "+", "=":
		m.coordinator.SetVolume(m.coordinator.State().Volume + 0.1)

	case "-":
		m.coordinator.SetVolume(m.coordinator.State().Volume - 0.1)

	case "m":
		m.coordinator.ToggleMute()

	case "enter":
		if m.activeView == ViewLibrary {
			if song := m.libraryView.SelectedSong(); song != nil {
				for i, s := range m.coordinator.Songs() {
					if s.ID == song.ID {
						if err := m.coordinator.Select(i); err == nil {
							m.syncCurrentSong()
						}
						break
					}
				}
			}
		}

	default:
		var cmd tea.Cmd
		switch m.activeView {
		case ViewLibrary:
			m.libraryView, cmd = m.libraryView.Update(msg)
		case ViewLyrics:
			m.lyricsView, cmd = m.lyricsView.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// updateViewSizes updates view dimensions
func (m *Model) updateViewSizes() {
	m.playerView.Width = m.width
	m.playerView.Height = 10
	m.libraryView.Width = m.width
	m.libraryView.Height = m.height - 12
	m.lyricsView.Width = m.width
	m.lyricsView.Height = m.height - 12
}

// View renders the UI
func (m Model) View() string {
	var sb string

	sb += m.renderTabs()
	sb += "\n"

	switch m.activeView {
	case ViewPlayer:
		sb += m.playerView.View()
	case ViewLibrary:
		sb += m.playerView.View()
		sb += "\n"
		sb += m.libraryView.View()
	case ViewLyrics:
		sb += m.playerView.View()
		sb += "\n"
		sb += m.lyricsView.View()
	}

	if m.notice != "" {
		sb += "\n" + m.noticeStyle.Render(m.notice)
	}

	return sb
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	tabs := []string{"[1] Player", "[2] Library", "[3] Lyrics"}

	var rendered []string
	for i, tab := range tabs {
		if ViewType(i) == m.activeView {
			rendered = append(rendered, m.activeTabStyle.Render(tab))
		} else {
			rendered = append(rendered, m.tabStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Run starts the bubbletea program
func Run(coordinator *player.Coordinator, bus *events.Bus, log *logrus.Logger) error {
	model := NewModel(coordinator, bus, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
