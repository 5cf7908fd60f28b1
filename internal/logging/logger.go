package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel defines the logging verbosity.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ActionType represents the type of desktop action being logged.
type ActionType string

const (
	ActionWindowOpen     ActionType = "WINDOW-OPEN"
	ActionWindowClose    ActionType = "WINDOW-CLOSE"
	ActionWindowActivate ActionType = "WINDOW-ACTIVATE"
	ActionWindowMove     ActionType = "WINDOW-MOVE"
	ActionViewport       ActionType = "VIEWPORT"
	ActionDialogOpen     ActionType = "DIALOG-OPEN"
	ActionDialogClose    ActionType = "DIALOG-CLOSE"
	ActionNavigate       ActionType = "NAVIGATE"
	ActionIPC            ActionType = "IPC"
	ActionConfigReload   ActionType = "CONFIG-RELOAD"
	ActionAssetFallback  ActionType = "ASSET-FALLBACK"
)

// actionLevel returns the log level for an action type.
func actionLevel(action ActionType) LogLevel {
	switch action {
	case ActionWindowMove, ActionViewport, ActionNavigate, ActionIPC:
		return LevelDebug
	case ActionAssetFallback:
		return LevelWarn
	default:
		return LevelInfo
	}
}

// LogConfig holds configuration for the action logger.
type LogConfig struct {
	Enabled   bool
	Level     LogLevel
	FilePath  string
	MaxSizeMB int
	MaxFiles  int
}

// Logger handles desktop action logging with file rotation.
type Logger struct {
	mu          sync.Mutex
	file        *os.File
	config      LogConfig
	currentSize int64
	now         func() time.Time
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LogConfig) (*Logger, error) {
	if !cfg.Enabled {
		return &Logger{config: cfg, now: time.Now}, nil
	}

	dir := filepath.Dir(cfg.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.FilePath, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &Logger{
		file:        f,
		config:      cfg,
		currentSize: stat.Size(),
		now:         time.Now,
	}, nil
}

// Log records a desktop action. subject is the window id, dialog kind or path
// the action applies to and may be empty.
func (l *Logger) Log(action ActionType, subject string, details map[string]interface{}) {
	if l == nil || !l.config.Enabled {
		return
	}
	if actionLevel(action) < l.config.Level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	maxBytes := int64(l.config.MaxSizeMB) * 1024 * 1024
	if maxBytes > 0 && l.currentSize >= maxBytes {
		if err := l.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
		if l.file == nil {
			return
		}
	}

	entry := formatEntry(l.now(), action, subject, details)
	n, err := l.file.WriteString(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
		return
	}
	l.currentSize += int64(n)
}

// Write lets the logger back the standard library log package while the TUI
// owns the terminal.
func (l *Logger) Write(p []byte) (int, error) {
	if l == nil || l.file == nil {
		return len(p), nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return len(p), nil
	}
	n, err := l.file.Write(p)
	l.currentSize += int64(n)
	return n, err
}

func formatEntry(ts time.Time, action ActionType, subject string, details map[string]interface{}) string {
	var sb strings.Builder
	sb.WriteString(ts.Format("2006-01-02 15:04:05"))
	sb.WriteString(" [")
	sb.WriteString(string(action))
	sb.WriteString("]")

	if subject != "" {
		sb.WriteString(" subject=")
		sb.WriteString(subject)
	}

	if len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch val := details[k].(type) {
			case string:
				sb.WriteString(fmt.Sprintf(" %s=%q", k, val))
			default:
				sb.WriteString(fmt.Sprintf(" %s=%v", k, val))
			}
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// Close closes the logger and releases resources.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// rotate shifts desktop.log -> desktop.log.1 -> desktop.log.2 and drops the
// file past MaxFiles.
func (l *Logger) rotate() error {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	basePath := l.config.FilePath
	for i := l.config.MaxFiles; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", basePath, i)
		if i == l.config.MaxFiles {
			os.Remove(oldPath)
			continue
		}
		os.Rename(oldPath, fmt.Sprintf("%s.%d", basePath, i+1))
	}

	if err := os.Rename(basePath, basePath+".1"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	f, err := os.OpenFile(basePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new log file: %w", err)
	}

	l.file = f
	l.currentSize = 0
	return nil
}

// ParseLogLevel converts a string to LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
