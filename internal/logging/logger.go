// Package logging builds the process logger and hands out one named zap
// logger per subsystem.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system.
type Category string

const (
	CategoryBoot      Category = "boot"      // startup, shutdown, wiring
	CategorySession   Category = "session"   // reply and voice timers
	CategoryStore     Category = "store"     // conversation list edits
	CategoryUI        Category = "ui"        // screen transitions, modals
	CategoryConfig    Category = "config"    // load and hot reload
	CategoryClipboard Category = "clipboard" // copy actions
)

// Options selects level and destination.
type Options struct {
	// Level is debug, info, warn or error.
	Level string
	// Verbose forces debug regardless of Level.
	Verbose bool
	// File, when set, receives the log instead of stderr.
	File string
}

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
)

// DefaultFile is where the interactive client logs when no file is
// configured.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "glasschat.log")
}

// New builds a production zap logger for opts.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize installs logger as the root that Get derives from.
func Initialize(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()
	root = logger
	loggers = make(map[Category]*zap.Logger)
}

// Get returns the named logger for category. Before Initialize it is a
// no-op logger.
func Get(category Category) *zap.Logger {
	mu.RLock()
	l, ok := loggers[category]
	mu.RUnlock()
	if ok {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l = root.Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes the root logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
