package player

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/marell/cadenza/api"
	"github.com/marell/cadenza/internal/library"
	playerrors "github.com/marell/cadenza/pkg/errors"
	"github.com/marell/cadenza/pkg/events"
)

// Coordinator owns the song collection and the playback cursor. All song and
// lyrics mutation funnels through it; the UI reads snapshots and never holds
// references it mutates itself.
type Coordinator struct {
	mu      sync.RWMutex
	songs   []*api.Song
	index   int // -1 when the collection is empty
	engine  api.Player
	bus     *events.Bus
	scanner *library.Scanner
	log     *logrus.Entry
}

// NewCoordinator creates a coordinator around an audio engine and event bus
func NewCoordinator(engine api.Player, bus *events.Bus, log *logrus.Logger) *Coordinator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Coordinator{
		songs:   make([]*api.Song, 0),
		index:   -1,
		engine:  engine,
		bus:     bus,
		scanner: library.NewScanner(4),
		log:     log.WithField("component", "coordinator"),
	}
}

// Forward pumps engine events onto the bus until the context is done.
// A finished song auto-advances to the next one in the collection.
func (c *Coordinator) Forward(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-c.engine.Events():
				if !ok {
					return
				}
				if event.Type == api.EventSongEnded {
					if next := c.Next(); next != nil {
						c.engine.Play(next)
					}
				}
				c.bus.Publish(event)
			}
		}
	}()
}

// AddSong appends a song to the collection. The first song added becomes
// the current selection.
func (c *Coordinator) AddSong(song *api.Song) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.songs = append(c.songs, song)
	if c.index < 0 {
		c.index = 0
	}
}

// AddFile reads an audio file (with tag metadata and .lrc sidecar, when
// present) and appends it to the collection
func (c *Coordinator) AddFile(path string) (*api.Song, error) {
	song, err := c.scanner.ScanFile(path)
	if err != nil {
		return nil, err
	}
	c.AddSong(song)
	c.log.WithFields(logrus.Fields{"song": song.ID, "path": path}).Info("song added")
	return song, nil
}

// Songs returns a copy of the collection slice
func (c *Coordinator) Songs() []*api.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*api.Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// Len returns the number of songs
func (c *Coordinator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.songs)
}

// Index returns the current cursor position, -1 when empty
func (c *Coordinator) Index() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Current returns the currently selected song, nil when empty
func (c *Coordinator) Current() *api.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentLocked()
}

func (c *Coordinator) currentLocked() *api.Song {
	if c.index < 0 || c.index >= len(c.songs) {
		return nil
	}
	return c.songs[c.index]
}

// Select moves the cursor and starts the selected song from the beginning
func (c *Coordinator) Select(index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.songs) {
		c.mu.Unlock()
		return playerrors.ErrSongNotFound
	}
	c.index = index
	song := c.songs[index]
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{"index": index, "song": song.ID}).Debug("selection changed")
	return c.engine.Play(song)
}

// Next advances the cursor, wrapping at the end, and returns the new
// current song without starting playback
func (c *Coordinator) Next() *api.Song {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.songs) == 0 {
		return nil
	}
	c.index = (c.index + 1) % len(c.songs)
	return c.songs[c.index]
}

// Previous moves the cursor back, wrapping at the start, and returns the
// new current song without starting playback
func (c *Coordinator) Previous() *api.Song {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.songs) == 0 {
		return nil
	}
	c.index--
	if c.index < 0 {
		c.index = len(c.songs) - 1
	}
	return c.songs[c.index]
}

// PlayNext advances and starts playback of the new selection
func (c *Coordinator) PlayNext() error {
	song := c.Next()
	if song == nil {
		return playerrors.ErrEmptyCollection
	}
	return c.engine.Play(song)
}

// PlayPrevious steps back and starts playback of the new selection
func (c *Coordinator) PlayPrevious() error {
	song := c.Previous()
	if song == nil {
		return playerrors.ErrEmptyCollection
	}
	return c.engine.Play(song)
}

// Toggle plays or pauses depending on the engine status. With a stopped
// engine and a non-empty collection it starts the current selection.
func (c *Coordinator) Toggle() error {
	switch c.engine.GetState().Status {
	case api.StatusPlaying:
		return c.engine.Pause()
	case api.StatusPaused:
		return c.engine.Resume()
	default:
		if song := c.Current(); song != nil {
			return c.engine.Play(song)
		}
		return playerrors.ErrEmptyCollection
	}
}

// Stop stops playback
func (c *Coordinator) Stop() error {
	return c.engine.Stop()
}

// Seek moves playback by delta relative to the current position
func (c *Coordinator) Seek(delta time.Duration) error {
	pos := c.engine.GetState().Position + delta
	if pos < 0 {
		pos = 0
	}
	return c.engine.Seek(pos)
}

// SetVolume sets the engine volume
func (c *Coordinator) SetVolume(level float64) error {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	return c.engine.SetVolume(level)
}

// ToggleMute flips the engine mute flag
func (c *Coordinator) ToggleMute() error {
	return c.engine.ToggleMute()
}

// State returns the engine state snapshot
func (c *Coordinator) State() *api.PlaybackState {
	return c.engine.GetState()
}

// Position returns the current playback position in seconds
func (c *Coordinator) Position() float64 {
	return c.engine.GetState().Position.Seconds()
}

// CurrentLyrics returns the lyric sequence of the current song; nil when
// there is no song or the song has no lyrics
func (c *Coordinator) CurrentLyrics() []api.LyricLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	song := c.currentLocked()
	if song == nil {
		return nil
	}
	return song.Lyrics
}

// LyricsAndPosition returns the current lyric sequence together with the
// playback position, read as one consistent pair so a resolver never sees a
// fresh sequence against a stale time or vice versa
func (c *Coordinator) LyricsAndPosition() ([]api.LyricLine, float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos := c.engine.GetState().Position.Seconds()
	song := c.currentLocked()
	if song == nil {
		return nil, pos
	}
	return song.Lyrics, pos
}

// SetLyrics replaces the lyric sequence of whichever song is selected at
// call time. The whole sequence is swapped atomically; there is no partial
// mutation.
func (c *Coordinator) SetLyrics(lines []api.LyricLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	song := c.currentLocked()
	if song == nil {
		return playerrors.ErrSongNotFound
	}
	song.Lyrics = lines
	c.log.WithFields(logrus.Fields{"song": song.ID, "lines": len(lines)}).Info("lyrics replaced")
	return nil
}
