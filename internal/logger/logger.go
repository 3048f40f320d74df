package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	if s, ok := levelStyles[l]; ok {
		return s.label
	}
	return "UNKNOWN"
}

// style is how a level renders on the console
type style struct {
	label  string
	prefix string
	color  *color.Color
}

var levelStyles = map[Level]style{
	LevelDebug: {label: "DEBUG", prefix: "[DEBUG] ", color: color.New(color.FgHiBlack)},
	LevelInfo:  {label: "INFO"},
	LevelWarn:  {label: "WARN", prefix: "⚠️  ", color: color.New(color.FgYellow)},
	LevelError: {label: "ERROR", prefix: "❌ ", color: color.New(color.FgRed, color.Bold)},
}

var successStyle = style{label: "INFO", prefix: "✅ ", color: color.New(color.FgGreen)}

// Logger writes every entry to an append-mode file and entries at or above
// its threshold to the console. DEBUG reaches the console only when verbose.
type Logger struct {
	mu        sync.Mutex
	console   *log.Logger
	file      *log.Logger
	handle    *os.File
	threshold Level
}

var (
	current *Logger
	guard   sync.RWMutex
)

// New opens (or creates) the log file at path and returns a Logger over it
func New(console io.Writer, path string, verbose bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	handle, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	threshold := LevelInfo
	if verbose {
		threshold = LevelDebug
	}

	return &Logger{
		console:   log.New(console, "", 0),
		file:      log.New(handle, "", log.LstdFlags),
		handle:    handle,
		threshold: threshold,
	}, nil
}

// Init replaces the package-level logger, closing the previous one
func Init(console io.Writer, path string, verbose bool) error {
	l, err := New(console, path, verbose)
	if err != nil {
		return err
	}

	guard.Lock()
	prev := current
	current = l
	guard.Unlock()

	if prev != nil {
		prev.Close()
	}
	return nil
}

// Close closes the package-level log file
func Close() {
	if l := active(); l != nil {
		l.Close()
	}
}

func active() *Logger {
	guard.RLock()
	defer guard.RUnlock()
	return current
}

// Close releases the log file. Later entries go to the console only.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle != nil {
		l.handle.Close()
		l.handle = nil
		l.file.SetOutput(io.Discard)
	}
}

// Path returns the log file path, or "" once closed
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == nil {
		return ""
	}
	return l.handle.Name()
}

// Verbose reports whether DEBUG entries reach the console
func (l *Logger) Verbose() bool {
	return l.threshold == LevelDebug
}

// Logf records one entry at the given level
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	l.emit(level, levelStyles[level], fmt.Sprintf(format, args...))
}

// Successf records an INFO entry shown with a green check
func (l *Logger) Successf(format string, args ...interface{}) {
	l.emit(LevelInfo, successStyle, fmt.Sprintf(format, args...))
}

func (l *Logger) emit(level Level, s style, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.file.Printf("[%s] %s", s.label, message)
	if level < l.threshold {
		return
	}

	line := s.prefix + message
	if s.color != nil {
		line = s.color.Sprint(line)
	}
	l.console.Print(line)
}

// fallback prints to stdout before Init, e.g. while configuration loads
func fallback(level Level, format string, args ...interface{}) {
	if level == LevelDebug {
		return
	}
	fmt.Printf(levelStyles[level].prefix+format+"\n", args...)
}

func logf(level Level, format string, args ...interface{}) {
	if l := active(); l != nil {
		l.Logf(level, format, args...)
		return
	}
	fallback(level, format, args...)
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) { logf(LevelDebug, format, args...) }

// Info logs an info message
func Info(format string, args ...interface{}) { logf(LevelInfo, format, args...) }

// Warn logs a warning
func Warn(format string, args ...interface{}) { logf(LevelWarn, format, args...) }

// Error logs an error
func Error(format string, args ...interface{}) { logf(LevelError, format, args...) }

// Success logs a completion message with a green check
func Success(format string, args ...interface{}) {
	if l := active(); l != nil {
		l.Successf(format, args...)
		return
	}
	fmt.Printf(successStyle.prefix+format+"\n", args...)
}

// LogParseError records the details of a failed parse in the log file and
// leaves a one-line DEBUG entry for the console.
func LogParseError(path string, err error, context string) {
	l := active()
	if l == nil {
		return
	}

	l.mu.Lock()
	l.file.Printf("[PARSE_ERROR] File: %s, Context: %s, Error: %v", path, context, err)
	l.mu.Unlock()

	l.Logf(LevelDebug, "Parse error in %s: %v", path, err)
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if l := active(); l != nil {
		return l.Path()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if l := active(); l != nil {
		return l.Verbose()
	}
	return false
}
