package library

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/marell/cadenza/api"
	"github.com/marell/cadenza/internal/lyrics"
)

// SidecarPath returns the .lrc path that would sit next to an audio file
func SidecarPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".lrc"
}

// LoadSidecar parses the .lrc file next to an audio file, if one exists.
// A missing sidecar returns nil with no error; a present but contentless
// sidecar returns an empty non-nil sequence.
func LoadSidecar(audioPath string) ([]api.LyricLine, error) {
	data, err := os.ReadFile(SidecarPath(audioPath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lyrics.ParseLRC(string(data)), nil
}
