// Package logging provides leveled, component-prefixed logging on top of the standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level represents different logging verbosity levels
type Level int32

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps LOG_LEVEL names to levels. Unknown names fall back to info.
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

var level atomic.Int32

func init() {
	level.Store(int32(ParseLevel(os.Getenv("LOG_LEVEL"))))
}

// SetLevel changes the level for every logger
func SetLevel(l Level) {
	level.Store(int32(l))
}

// GetLevel returns the current log level
func GetLevel() Level {
	return Level(level.Load())
}

// Logger writes messages tagged with a component name, e.g. "[DataReader]"
type Logger struct {
	component string
	out       *log.Logger
}

// New creates a logger for component writing to the standard logger
func New(component string) *Logger {
	return &Logger{component: component, out: log.Default()}
}

// NewWithWriter creates a logger for component writing to w
func NewWithWriter(component string, w io.Writer) *Logger {
	return &Logger{component: component, out: log.New(w, "", 0)}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) logf(at Level, format string, args ...interface{}) {
	if GetLevel() < at {
		return
	}
	l.out.Printf("[%s] [%s] %s", at, l.component, fmt.Sprintf(format, args...))
}
