// ABOUTME: File-backed slog logger for the TUI
// ABOUTME: Keeps diagnostics out of the alternate screen while the app is running

package debuglog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the log file created inside the config directory
const FileName = "debug.log"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init opens the log file in configDir. An empty configDir disables logging.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if configDir == "" {
		return nil
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(configDir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close closes the log file and disables logging
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a message with key/value attributes
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Error logs an error with the operation it came from
func Error(op string, err error) {
	if err == nil {
		return
	}
	current().Error("TUI operation failed", "op", op, "error", err)
}
