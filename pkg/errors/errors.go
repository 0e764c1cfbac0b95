package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrSongNotFound    = errors.New("song not found")
	ErrInvalidFormat   = errors.New("unsupported audio format")
	ErrNotLyricsFile   = errors.New("not a .lrc lyrics file")
	ErrPlaybackFailed  = errors.New("playback failed")
	ErrEmptyCollection = errors.New("song collection is empty")
	ErrInvalidVolume   = errors.New("volume must be between 0.0 and 1.0")
)

// PlayerError wraps errors with additional context
type PlayerError struct {
	Op   string // Operation that failed
	Song string // Song ID if applicable
	Err  error  // Underlying error
}

func (e *PlayerError) Error() string {
	if e.Song != "" {
		return fmt.Sprintf("%s failed for song %s: %v", e.Op, e.Song, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PlayerError) Unwrap() error {
	return e.Err
}

// NewPlayerError creates a new PlayerError
func NewPlayerError(op, song string, err error) *PlayerError {
	return &PlayerError{Op: op, Song: song, Err: err}
}

// ScanError represents an error during music directory scanning
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error at %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
