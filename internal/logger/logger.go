// Package logger provides the leveled file logger used across segctl.
// Output is discarded unless a log file is configured, since stdout and
// stderr belong to the terminal UI.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger is a simple leveled logger
type Logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
}

// Default is the default logger instance
var Default = New()

// New creates a logger configured from SEGCTL_LOG_LEVEL and SEGCTL_LOG_FILE.
func New() *Logger {
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(io.Discard, "", log.LstdFlags),
	}
	// Environment problems are not fatal: the logger stays on its defaults.
	_ = l.Configure(os.Getenv("SEGCTL_LOG_LEVEL"), os.Getenv("SEGCTL_LOG_FILE"))
	return l
}

// Configure sets the level and, when path is non-empty, switches output to
// that file (appending). An empty level leaves the current level alone.
func (l *Logger) Configure(level, path string) error {
	if level != "" {
		lv, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(lv)
	}
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.logger.SetOutput(f)
	return nil
}

// Close closes the logger and any open file handles
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger.SetOutput(io.Discard)
	return err
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current log level
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(LevelDebug, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(LevelInfo, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(LevelWarn, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(LevelError, format, v...)
}

func (l *Logger) log(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

// Package-level functions that use the default logger

// Debug logs to the default logger at debug level.
func Debug(format string, v ...interface{}) { Default.Debug(format, v...) }

// Info logs to the default logger at info level.
func Info(format string, v ...interface{}) { Default.Info(format, v...) }

// Warn logs to the default logger at warn level.
func Warn(format string, v ...interface{}) { Default.Warn(format, v...) }

// Error logs to the default logger at error level.
func Error(format string, v ...interface{}) { Default.Error(format, v...) }

// Configure configures the default logger.
func Configure(level, path string) error {
	return Default.Configure(level, path)
}

// Close closes the default logger
func Close() error {
	return Default.Close()
}
