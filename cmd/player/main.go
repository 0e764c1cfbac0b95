package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marell/cadenza/internal/audio"
	"github.com/marell/cadenza/internal/config"
	"github.com/marell/cadenza/internal/library"
	"github.com/marell/cadenza/internal/player"
	"github.com/marell/cadenza/internal/ui"
	"github.com/marell/cadenza/pkg/events"
)

var (
	configPath string
	musicDirs  []string
	volume     float64
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "cadenza",
	Short: "A terminal music player with synced lyrics",
	Long: `Cadenza is a terminal music player. It plays local audio files,
shows time-synced lyrics from .lrc files and lets you edit lyrics inline.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.Flags().StringSliceVarP(&musicDirs, "dir", "d", nil, "music directories to scan (overrides config)")
	rootCmd.Flags().Float64VarP(&volume, "volume", "v", -1, "initial volume 0..1 (overrides config)")
	rootCmd.Flags().StringVar(&logFile, "log", "", "log file path (overrides config)")
}

func run(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		configPath = config.GetConfigPath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if len(musicDirs) > 0 {
		cfg.MusicDirectories = musicDirs
	}
	if volume >= 0 && volume <= 1 {
		cfg.DefaultVolume = volume
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	log, closeLog, err := setupLogger(cfg)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := audio.NewEngine(log)
	engine.Start(ctx)
	engine.SetVolume(cfg.DefaultVolume)

	bus := events.NewBus()
	defer bus.Close()

	coordinator := player.NewCoordinator(engine, bus, log)
	coordinator.Forward(ctx)

	if len(cfg.MusicDirectories) > 0 {
		loadLibrary(ctx, coordinator, cfg.MusicDirectories, log)
	}

	log.WithField("songs", coordinator.Len()).Info("starting UI")
	return ui.Run(coordinator, bus, log)
}

// setupLogger sends logrus output to the configured log file. The TUI owns
// stdout, so logging to the terminal is not an option.
func setupLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)
	if os.Getenv("CADENZA_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	}

	path := cfg.LogFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.DataDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)

	return log, func() { f.Close() }, nil
}

// loadLibrary scans the configured directories and adds every decodable song
// to the collection before the UI starts
func loadLibrary(ctx context.Context, coordinator *player.Coordinator, dirs []string, log *logrus.Logger) {
	scanner := library.NewScanner(4)
	songs, errs := scanner.Scan(ctx, dirs)

	done := make(chan struct{})
	go func() {
		for err := range errs {
			log.WithError(err).Warn("scan error")
		}
		close(done)
	}()

	for song := range songs {
		coordinator.AddSong(song)
	}
	<-done
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
