package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marell/cadenza/api"
	"github.com/marell/cadenza/internal/ui/components"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestLyricsView() LyricsView {
	return NewLyricsView(80, 24)
}

func TestSetSong_ModeFollowsLyricsPresence(t *testing.T) {
	v := newTestLyricsView()

	v.SetSong("a", "First", nil)
	if v.Mode != LyricsEmpty {
		t.Errorf("Mode = %v, want LyricsEmpty for nil lyrics", v.Mode)
	}

	v.SetSong("b", "Second", []api.LyricLine{{Time: 0, Text: "hi"}})
	if v.Mode != LyricsViewing {
		t.Errorf("Mode = %v, want LyricsViewing", v.Mode)
	}

	// An empty non-nil sequence still counts as lyrics present
	v.SetSong("c", "Third", []api.LyricLine{})
	if v.Mode != LyricsViewing {
		t.Errorf("Mode = %v, want LyricsViewing for empty non-nil lyrics", v.Mode)
	}
}

func TestEmptyToEditingAndCancel(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", nil)

	v, _ = v.Update(key("e"))
	if v.Mode != LyricsEditing {
		t.Fatalf("Mode = %v, want LyricsEditing", v.Mode)
	}

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if v.Mode != LyricsEmpty {
		t.Errorf("cancel should return to LyricsEmpty, got %v", v.Mode)
	}
}

func TestViewingToEditing_BufferPrePopulated(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", []api.LyricLine{
		{Time: 83, Text: "hello"},
		{Time: 90, Text: "world"},
	})

	v, _ = v.Update(key("e"))
	if v.Mode != LyricsEditing {
		t.Fatalf("Mode = %v, want LyricsEditing", v.Mode)
	}

	want := "1:23.00|hello\n1:30.00|world"
	if got := v.Editor.Value(); got != want {
		t.Errorf("editor buffer = %q, want %q", got, want)
	}

	// Cancel returns to viewing with lyrics untouched
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if v.Mode != LyricsViewing {
		t.Errorf("cancel should return to LyricsViewing, got %v", v.Mode)
	}
	if len(v.Lines) != 2 {
		t.Errorf("cancel must not mutate lyrics, got %v", v.Lines)
	}
}

func TestSave_ParsesBufferAndEmitsMsg(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", nil)
	v, _ = v.Update(key("e"))

	v.Editor.SetValue("0:01|first\n10|second")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if v.Mode != LyricsViewing {
		t.Errorf("Mode = %v, want LyricsViewing after save", v.Mode)
	}
	if cmd == nil {
		t.Fatal("save should emit a command")
	}

	msg, ok := cmd().(LyricsSavedMsg)
	if !ok {
		t.Fatalf("save emitted %T, want LyricsSavedMsg", cmd())
	}
	if len(msg.Lines) != 2 || msg.Lines[0].Time != 1 || msg.Lines[1].Text != "second" {
		t.Errorf("saved lines = %v", msg.Lines)
	}
}

func TestSave_EmptyBufferDropsToEmpty(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", nil)
	v, _ = v.Update(key("e"))

	v.Editor.SetValue("")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if v.Mode != LyricsEmpty {
		t.Errorf("Mode = %v, want LyricsEmpty after empty save", v.Mode)
	}
	msg := cmd().(LyricsSavedMsg)
	if msg.Lines == nil || len(msg.Lines) != 0 {
		t.Errorf("saved lines = %v, want empty non-nil sequence", msg.Lines)
	}
}

func TestSetPosition_ResolvesActiveLine(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", []api.LyricLine{
		{Time: 0, Text: "a"},
		{Time: 3, Text: "b"},
		{Time: 6, Text: "c"},
	})

	v.SetPosition(4)
	if v.Active != 1 {
		t.Errorf("Active = %d, want 1", v.Active)
	}

	v.SetPosition(-1)
	if v.Active != -1 {
		t.Errorf("Active = %d, want -1 before first line", v.Active)
	}

	v.SetPosition(1000)
	if v.Active != 2 {
		t.Errorf("Active = %d, want 2 (open-ended last window)", v.Active)
	}
}

func TestSetPosition_IgnoredWhileEditing(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", []api.LyricLine{{Time: 0, Text: "a"}})
	v, _ = v.Update(key("e"))

	v.SetPosition(5)
	if v.Active != -1 {
		t.Errorf("Active = %d, editing mode should not resolve", v.Active)
	}
}

func TestSongChangeDiscardsEditBuffer(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", nil)
	v, _ = v.Update(key("e"))
	v.Editor.SetValue("0:01|doomed")

	v.SetSong("b", "Second", []api.LyricLine{{Time: 0, Text: "kept"}})
	if v.Mode != LyricsViewing {
		t.Errorf("Mode = %v, want LyricsViewing for the new song", v.Mode)
	}
	if len(v.Lines) != 1 || v.Lines[0].Text != "kept" {
		t.Errorf("Lines = %v, want the new song's lyrics", v.Lines)
	}
}

func TestFileChosenCarriesSongToken(t *testing.T) {
	v := newTestLyricsView()
	v.SetSong("a", "First", nil)

	v, _ = v.Update(key("o"))
	if !v.Browsing {
		t.Fatal("expected browsing mode after 'o'")
	}

	// Simulate a file pick by injecting an entry and pressing enter
	v.FileBrowser.Entries = []components.FileEntry{
		{Name: "song.lrc", Path: "/music/song.lrc", IsDir: false},
	}
	v.FileBrowser.Selected = 0

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if v.Browsing {
		t.Error("browser should close after picking a file")
	}
	if cmd == nil {
		t.Fatal("picking a file should emit a command")
	}

	msg, ok := cmd().(LyricsFileChosenMsg)
	if !ok {
		t.Fatalf("got %T, want LyricsFileChosenMsg", cmd())
	}
	if msg.SongID != "a" {
		t.Errorf("SongID = %q, want the selection at pick time", msg.SongID)
	}
	if msg.Path != "/music/song.lrc" {
		t.Errorf("Path = %q, want /music/song.lrc", msg.Path)
	}
}
