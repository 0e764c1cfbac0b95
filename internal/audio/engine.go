package audio

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/marell/cadenza/api"
	playerrors "github.com/marell/cadenza/pkg/errors"
)

// Ensure Engine implements the Player interface at compile time
var _ api.Player = (*Engine)(nil)

// Engine manages audio playback in a separate goroutine. Position updates
// are emitted at the engine's sampling granularity as the stream advances,
// not polled by the UI.
type Engine struct {
	state      *api.PlaybackState
	commands   chan api.AudioCommand
	events     chan api.PlayerEvent
	mu         sync.RWMutex
	streamer   beep.StreamSeekCloser
	ctrl       *beep.Ctrl
	volume     *effects.Volume
	format     beep.Format
	sampleRate beep.SampleRate
	log        *logrus.Entry
}

// NewEngine creates a new audio engine instance
func NewEngine(log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		state: &api.PlaybackState{
			Status: api.StatusStopped,
			Volume: 0.5,
		},
		commands: make(chan api.AudioCommand, 10),
		events:   make(chan api.PlayerEvent, 20),
		log:      log.WithField("component", "audio"),
	}
}

// Start begins the audio engine goroutines
func (e *Engine) Start(ctx context.Context) {
	go e.run(ctx)
	go e.trackPosition(ctx)
}

// Events returns the events channel for subscribing to engine events
func (e *Engine) Events() <-chan api.PlayerEvent {
	return e.events
}

// run is the main command processing loop
func (e *Engine) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			e.cleanup()
			return

		case cmd := <-e.commands:
			switch cmd.Type {
			case api.CmdPlay:
				song := cmd.Payload.(*api.Song)
				if err := e.playSong(song); err != nil {
					e.log.WithField("song", song.ID).WithError(err).Error("play failed")
					e.events <- api.PlayerEvent{Type: api.EventError, Payload: err}
				}

			case api.CmdPause:
				e.mu.Lock()
				if e.ctrl != nil {
					e.ctrl.Paused = true
					e.state.Status = api.StatusPaused
				}
				e.mu.Unlock()
				e.events <- api.PlayerEvent{Type: api.EventStateChange, Payload: e.GetState()}

			case api.CmdResume:
				e.mu.Lock()
				if e.ctrl != nil {
					e.ctrl.Paused = false
					e.state.Status = api.StatusPlaying
				}
				e.mu.Unlock()
				e.events <- api.PlayerEvent{Type: api.EventStateChange, Payload: e.GetState()}

			case api.CmdStop:
				e.stopPlayback()
				e.events <- api.PlayerEvent{Type: api.EventStateChange, Payload: e.GetState()}

			case api.CmdVolume:
				level := cmd.Payload.(float64)
				e.mu.Lock()
				if e.volume != nil {
					// Map 0-1 range onto the -1..1 exponential scale
					e.volume.Volume = level*2 - 1
				}
				e.state.Volume = level
				e.mu.Unlock()
				e.events <- api.PlayerEvent{Type: api.EventStateChange, Payload: e.GetState()}

			case api.CmdMute:
				e.mu.Lock()
				e.state.Muted = !e.state.Muted
				if e.volume != nil {
					e.volume.Silent = e.state.Muted
				}
				e.mu.Unlock()
				e.events <- api.PlayerEvent{Type: api.EventStateChange, Payload: e.GetState()}

			case api.CmdSeek:
				pos := cmd.Payload.(time.Duration)
				e.seekTo(pos)
				e.events <- api.PlayerEvent{Type: api.EventPositionUpdate, Payload: pos}
			}
		}
	}
}

// trackPosition emits the stream position while playback advances
func (e *Engine) trackPosition(ctx context.Context) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.mu.RLock()
			if e.state.Status == api.StatusPlaying && e.streamer != nil {
				pos := e.streamer.Position()
				e.state.Position = e.sampleRate.D(pos)
				e.events <- api.PlayerEvent{
					Type:    api.EventPositionUpdate,
					Payload: e.state.Position,
				}
			}
			e.mu.RUnlock()
		}
	}
}

// playSong loads and starts playing a song
func (e *Engine) playSong(song *api.Song) error {
	e.stopPlayback()

	file, err := os.Open(song.FilePath)
	if err != nil {
		return playerrors.NewPlayerError("open", song.ID, err)
	}

	streamer, format, err := DecodeAudio(file, song.FilePath)
	if err != nil {
		file.Close()
		return playerrors.NewPlayerError("decode", song.ID, err)
	}

	e.mu.Lock()
	e.streamer = streamer
	e.format = format
	e.sampleRate = format.SampleRate
	e.ctrl = &beep.Ctrl{Streamer: streamer, Paused: false}
	e.volume = &effects.Volume{
		Streamer: e.ctrl,
		Base:     2,
		Volume:   e.state.Volume*2 - 1,
		Silent:   e.state.Muted,
	}
	e.state.CurrentSong = song
	e.state.Status = api.StatusPlaying
	e.state.Position = 0
	e.mu.Unlock()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return playerrors.NewPlayerError("speaker_init", song.ID, err)
	}

	speaker.Play(beep.Seq(e.volume, beep.Callback(func() {
		e.events <- api.PlayerEvent{Type: api.EventSongEnded, Payload: song}
	})))

	e.log.WithFields(logrus.Fields{"song": song.ID, "title": song.Title}).Info("playback started")
	e.events <- api.PlayerEvent{Type: api.EventSongStarted, Payload: song}
	return nil
}

// stopPlayback stops the current playback
func (e *Engine) stopPlayback() {
	e.mu.Lock()
	defer e.mu.Unlock()

	speaker.Clear()
	if e.streamer != nil {
		e.streamer.Close()
		e.streamer = nil
	}
	e.ctrl = nil
	e.volume = nil
	e.state.Status = api.StatusStopped
	e.state.Position = 0
}

// seekTo seeks to a specific position
func (e *Engine) seekTo(pos time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer != nil {
		newPos := e.sampleRate.N(pos)
		if newPos < 0 {
			newPos = 0
		}
		if err := e.streamer.Seek(newPos); err == nil {
			e.state.Position = pos
		}
	}
}

// cleanup releases resources
func (e *Engine) cleanup() {
	e.stopPlayback()
	close(e.events)
}

// Play starts playing the specified song
func (e *Engine) Play(song *api.Song) error {
	if song == nil {
		return playerrors.ErrSongNotFound
	}
	e.commands <- api.AudioCommand{Type: api.CmdPlay, Payload: song}
	return nil
}

// Pause pauses playback
func (e *Engine) Pause() error {
	e.commands <- api.AudioCommand{Type: api.CmdPause}
	return nil
}

// Resume resumes playback
func (e *Engine) Resume() error {
	e.commands <- api.AudioCommand{Type: api.CmdResume}
	return nil
}

// Stop stops playback
func (e *Engine) Stop() error {
	e.commands <- api.AudioCommand{Type: api.CmdStop}
	return nil
}

// Seek seeks to the specified position
func (e *Engine) Seek(position time.Duration) error {
	e.commands <- api.AudioCommand{Type: api.CmdSeek, Payload: position}
	return nil
}

// SetVolume sets the volume level (0.0 to 1.0)
func (e *Engine) SetVolume(level float64) error {
	if level < 0 || level > 1 {
		return playerrors.ErrInvalidVolume
	}
	e.commands <- api.AudioCommand{Type: api.CmdVolume, Payload: level}
	return nil
}

// ToggleMute flips the muted flag without touching the volume level
func (e *Engine) ToggleMute() error {
	e.commands <- api.AudioCommand{Type: api.CmdMute}
	return nil
}

// GetState returns a copy of the current playback state
func (e *Engine) GetState() *api.PlaybackState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state := *e.state
	if e.state.CurrentSong != nil {
		song := *e.state.CurrentSong
		state.CurrentSong = &song
	}
	return &state
}
