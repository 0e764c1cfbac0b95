package library

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/marell/cadenza/api"
	playerrors "github.com/marell/cadenza/pkg/errors"
)

// Scanner walks music directories concurrently using a worker pool
type Scanner struct {
	workers    int
	formats    []string
	metaReader *MetadataReader
}

// NewScanner creates a new file scanner
func NewScanner(workers int) *Scanner {
	if workers <= 0 {
		workers = 4 // Default worker count
	}
	return &Scanner{
		workers:    workers,
		formats:    []string{".mp3", ".wav", ".flac"},
		metaReader: NewMetadataReader(),
	}
}

// SupportedFormats returns list of supported audio formats
func (s *Scanner) SupportedFormats() []string {
	return s.formats
}

// isSupported checks if a file format is supported
func (s *Scanner) isSupported(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, format := range s.formats {
		if ext == format {
			return true
		}
	}
	return false
}

// Scan walks directories concurrently and returns channels for songs and
// errors. Each discovered song also picks up a .lrc sidecar when one sits
// next to the audio file.
func (s *Scanner) Scan(ctx context.Context, paths []string) (<-chan *api.Song, <-chan error) {
	songs := make(chan *api.Song, 100)
	errors := make(chan error, 10)
	files := make(chan string, 100)

	var wg sync.WaitGroup

	// File discovery goroutine
	go func() {
		defer close(files)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			default:
			}

			err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					select {
					case errors <- &playerrors.ScanError{Path: p, Err: err}:
					default:
					}
					return nil
				}

				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				if !d.IsDir() && s.isSupported(p) {
					select {
					case files <- p:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
				return nil
			})

			if err != nil && err != context.Canceled {
				select {
				case errors <- &playerrors.ScanError{Path: path, Err: err}:
				default:
				}
			}
		}
	}()

	// Worker pool
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for filePath := range files {
				select {
				case <-ctx.Done():
					return
				default:
				}

				song, err := s.ScanFile(filePath)
				if err != nil {
					select {
					case errors <- &playerrors.ScanError{Path: filePath, Err: err}:
					default:
					}
					continue
				}

				select {
				case songs <- song:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(songs)
		close(errors)
	}()

	return songs, errors
}

// ScanFile reads a single audio file into a Song, attaching a sidecar lyric
// sequence when present
func (s *Scanner) ScanFile(filePath string) (*api.Song, error) {
	if !s.isSupported(filePath) {
		return nil, playerrors.ErrInvalidFormat
	}

	song, err := s.metaReader.Read(filePath)
	if err != nil {
		return nil, err
	}

	// Sidecar failures are not fatal; the song simply has no lyrics yet
	if lines, err := LoadSidecar(filePath); err == nil && lines != nil {
		song.Lyrics = lines
	}

	return song, nil
}
