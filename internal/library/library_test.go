package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/My Song.mp3", "My Song"},
		{"track.flac", "track"},
		{"/deep/dir/no_ext", "no_ext"},
		{"dotted.name.wav", "dotted.name"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := titleFromFilename(tt.path); got != tt.want {
				t.Errorf("titleFromFilename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		audio string
		want  string
	}{
		{"/music/song.mp3", "/music/song.lrc"},
		{"/music/song.dotted.flac", "/music/song.dotted.lrc"},
	}

	for _, tt := range tests {
		if got := SidecarPath(tt.audio); got != tt.want {
			t.Errorf("SidecarPath(%q) = %q, want %q", tt.audio, got, tt.want)
		}
	}
}

func TestLoadSidecar(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")

	// No sidecar: nil, no error
	lines, err := LoadSidecar(audio)
	if err != nil {
		t.Fatalf("LoadSidecar without sidecar: %v", err)
	}
	if lines != nil {
		t.Errorf("expected nil lyrics for missing sidecar, got %v", lines)
	}

	content := "[00:01.00]hello\n[00:02.00]world\n"
	if err := os.WriteFile(filepath.Join(dir, "song.lrc"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err = LoadSidecar(audio)
	if err != nil {
		t.Fatalf("LoadSidecar: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Text != "hello" || lines[0].Time != 1 {
		t.Errorf("lines[0] = %v, want {1 hello}", lines[0])
	}
}

func TestLoadSidecar_NoMatchesIsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(filepath.Join(dir, "song.lrc"), []byte("no tags here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := LoadSidecar(audio)
	if err != nil {
		t.Fatalf("LoadSidecar: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Errorf("got %v, want empty non-nil sequence", lines)
	}
}

func TestScanFile_RejectsUnsupportedFormat(t *testing.T) {
	s := NewScanner(1)
	if _, err := s.ScanFile("/music/readme.txt"); err == nil {
		t.Error("ScanFile on .txt should return an error")
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	s := NewScanner(2)
	songs, errs := s.Scan(context.Background(), []string{t.TempDir()})

	count := 0
	for range songs {
		count++
	}
	for range errs {
	}
	if count != 0 {
		t.Errorf("scan of empty directory found %d songs", count)
	}
}
