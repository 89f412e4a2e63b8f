// Package logging sets up the JSONL file logger every audpipe invocation
// writes to.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Runtime is an open logging destination.
type Runtime struct {
	Logger *slog.Logger
	Path   string
	file   *os.File
}

// Close releases the log file. Safe on a zero Runtime.
func (r Runtime) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// New opens the append-only JSONL log below the user's state directory.
// wireDump lowers the handler to debug level, which is where the channel
// logs full command and response text.
func New(wireDump bool) (Runtime, error) {
	path, err := resolveLogPath()
	if err != nil {
		return Runtime{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return Runtime{}, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Runtime{}, fmt.Errorf("open log file: %w", err)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if wireDump {
		opts.Level = slog.LevelDebug
	}
	return Runtime{
		Logger: slog.New(slog.NewJSONHandler(file, opts)),
		Path:   path,
		file:   file,
	}, nil
}

// resolveLogPath prefers XDG_STATE_HOME and falls back to ~/.local/state.
func resolveLogPath() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "audpipe", "log.jsonl"), nil
}
