// Package logger provides leveled logging for the surfbot run.
// Log lines go to stderr so that the report on stdout stays clean for whoever
// invoked the run (cron mail, a CI job, a shell redirect).
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents a logging level
type Level int

const (
	// DebugLevel logs pipeline internals such as per-dataset counts.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs recoverable trouble: rate limiting, notification failures.
	WarnLevel
	// ErrorLevel logs failures that abort the run.
	ErrorLevel
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a config string to a Level. Unknown strings fall back to
// InfoLevel and report false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	}
	return InfoLevel, false
}

// Logger provides leveled logging
type Logger struct {
	level  Level
	prefix string
	logger *log.Logger
}

var defaultLogger *Logger

// Init initializes the default logger with the specified level and format.
// The "text" format adds the calling file and line to each entry.
func Init(level string, format string) {
	l, _ := ParseLevel(level)

	flags := log.LstdFlags | log.Lmicroseconds
	if strings.ToLower(format) == "text" {
		flags |= log.Lshortfile
	}

	defaultLogger = &Logger{
		level:  l,
		logger: log.New(os.Stderr, "", flags),
	}
}

// SetOutput redirects the default logger. Tests use it to capture entries.
func SetOutput(w io.Writer) {
	if defaultLogger == nil {
		Init("info", "json")
	}
	defaultLogger.logger.SetOutput(w)
}

// SetRunID tags every subsequent entry with the given run identifier.
func SetRunID(id string) {
	if defaultLogger == nil {
		Init("info", "json")
	}
	if id == "" {
		defaultLogger.prefix = ""
		return
	}
	defaultLogger.prefix = "run=" + id + " "
}

func output(l Level, format string, args ...interface{}) {
	if defaultLogger == nil || defaultLogger.level > l {
		return
	}
	msg := fmt.Sprintf("[%s] %s"+format, append([]interface{}{l, defaultLogger.prefix}, args...)...)
	_ = defaultLogger.logger.Output(3, msg)
}

// Debug logs a message at DebugLevel
func Debug(format string, args ...interface{}) {
	output(DebugLevel, format, args...)
}

// Info logs a message at InfoLevel
func Info(format string, args ...interface{}) {
	output(InfoLevel, format, args...)
}

// Warn logs a message at WarnLevel
func Warn(format string, args ...interface{}) {
	output(WarnLevel, format, args...)
}

// Error logs a message at ErrorLevel
func Error(format string, args ...interface{}) {
	output(ErrorLevel, format, args...)
}

// Fatal logs a message regardless of level and exits with status 1.
func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf("[FATAL] "+format, args...)
	if defaultLogger != nil {
		_ = defaultLogger.logger.Output(2, defaultLogger.prefix+msg)
	} else {
		log.Print(msg)
	}
	os.Exit(1)
}
