package api

import "time"

// LyricLine is a single synchronized lyric entry. Time is seconds from the
// start of the song.
type LyricLine struct {
	Time float64 `json:"time"`
	Text string  `json:"text"`
}

// Song is one entry in the player's collection. Lyrics is nil when the song
// has no lyrics at all; a non-nil empty slice means "lyrics present, zero
// entries" and the two render differently.
type Song struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Artist   string        `json:"artist"`
	Album    string        `json:"album"`
	Duration time.Duration `json:"duration"`
	FilePath string        `json:"file_path"`
	Lyrics   []LyricLine   `json:"lyrics,omitempty"`
	AddedAt  time.Time     `json:"added_at"`
}

// Status is the engine's playback status
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// PlaybackState is a snapshot of the engine state
type PlaybackState struct {
	CurrentSong *Song
	Status      Status
	Position    time.Duration
	Volume      float64
	Muted       bool
}

// CommandType identifies an audio engine command
type CommandType int

const (
	CmdPlay CommandType = iota
	CmdPause
	CmdResume
	CmdStop
	CmdSeek
	CmdVolume
	CmdMute
)

// AudioCommand is a message sent to the audio engine goroutine
type AudioCommand struct {
	Type    CommandType
	Payload any
}

// EventType identifies a player event
type EventType int

const (
	EventSongStarted EventType = iota
	EventSongEnded
	EventPositionUpdate
	EventStateChange
	EventError
)

// PlayerEvent is emitted by the engine and fanned out to the UI
type PlayerEvent struct {
	Type    EventType
	Payload any
}

// Player is the playback capability the coordinator drives
type Player interface {
	Play(song *Song) error
	Pause() error
	Resume() error
	Stop() error
	Seek(position time.Duration) error
	SetVolume(level float64) error
	ToggleMute() error
	GetState() *PlaybackState
	Events() <-chan PlayerEvent
}
