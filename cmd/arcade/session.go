package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/audio"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// session owns the resources shared by every screen of one arcade process.
type session struct {
	host    tui.Host
	logFile *os.File
}

// openSession sets up logging, storage and audio from the global flags.
// A missing database or audio device degrades the arcade instead of
// stopping it.
func openSession(withAudio bool) (*session, error) {
	s := &session{}

	logger, logFile, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return nil, err
	}
	s.logFile = logFile
	s.host.Logger = logger

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable, nothing will be saved", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		s.host.Store = store
	}

	switch {
	case !withAudio:
		s.host.Audio = &audio.Nop{}
	case flagMute:
		nop := &audio.Nop{}
		nop.SetMuted(true)
		s.host.Audio = nop
	default:
		player := audio.NewBeepPlayer(logger)
		if store != nil {
			player.SetMuted(store.Muted())
		}
		s.host.Audio = player
	}

	return s, nil
}

// Close releases the session's resources.
func (s *session) Close() {
	if s.host.Audio != nil {
		s.host.Audio.Close()
	}
	if s.host.Store != nil {
		if err := s.host.Store.Close(); err != nil {
			s.host.Logger.Warn("cannot close scores database", "error", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// newLogger builds the root logger. It writes to path so the alt-screen
// TUI stays clean; an empty path logs to stderr.
func newLogger(level, path string) (*log.Logger, *os.File, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var (
		w    io.Writer = os.Stderr
		file *os.File
	)
	if path != "" {
		path, err = expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		file, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = file
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "arcade",
		Level:           lvl,
	})
	return logger, file, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
