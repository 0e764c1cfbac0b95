package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/marell/cadenza/api"
)

// MetadataReader builds Song records from audio files
type MetadataReader struct{}

// NewMetadataReader creates a new metadata reader
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// Read builds a Song from an audio file. Embedded tags win when present;
// otherwise the record falls back to the intake defaults: title from the
// filename without extension and "Unknown Artist".
func (r *MetadataReader) Read(filePath string) (*api.Song, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	song := &api.Song{
		ID:       generateSongID(),
		Title:    titleFromFilename(filePath),
		Artist:   "Unknown Artist",
		FilePath: filePath,
		AddedAt:  time.Now(),
	}

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		// Untagged files keep the filename-derived record
		return song, nil
	}

	if metadata.Title() != "" {
		song.Title = metadata.Title()
	}
	if metadata.Artist() != "" {
		song.Artist = metadata.Artist()
	}
	song.Album = metadata.Album()

	return song, nil
}

// titleFromFilename strips the directory and extension from a path
func titleFromFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// generateSongID creates a timestamp-derived song ID
func generateSongID() string {
	return fmt.Sprintf("song-%d", time.Now().UnixNano())
}
