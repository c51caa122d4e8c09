// Package logger provides leveled console logging for rgrep.
//
// Messages are written as single lines prefixed with an [HH:MM:SS] timestamp
// and the level name. Writes are serialized, so the logger can share a
// destination with concurrent scanners.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs messages to a writer with timestamps and thread safety.
// Messages below the configured level are dropped.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:   writer,
		logLevel: normalizeLogLevel(logLevel),
		now:      time.Now,
	}
}

// WithColor enables or disables colored level names.
func (cl *ConsoleLogger) WithColor(enabled bool) *ConsoleLogger {
	cl.colorOutput = enabled
	return cl
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}

	return "info"
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(format string, args ...any) {
	cl.logWithLevel("TRACE", format, args...)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(format string, args ...any) {
	cl.logWithLevel("DEBUG", format, args...)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(format string, args ...any) {
	cl.logWithLevel("INFO", format, args...)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(format string, args ...any) {
	cl.logWithLevel("WARN", format, args...)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(format string, args ...any) {
	cl.logWithLevel("ERROR", format, args...)
}

// logWithLevel formats and writes a message if filtering allows it.
// The whole line goes out in a single Write.
func (cl *ConsoleLogger) logWithLevel(level string, format string, args ...any) {
	if cl == nil || cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	message := fmt.Sprintf(format, args...)
	ts := cl.now().Format("15:04:05")

	if cl.colorOutput {
		level = colorLevel(level)
	}

	_, _ = io.WriteString(cl.writer, fmt.Sprintf("[%s] [%s] %s\n", ts, level, message))
}

// colorLevel wraps a level name in its ANSI color.
func colorLevel(level string) string {
	var c *color.Color

	switch level {
	case "TRACE":
		c = color.New(color.FgHiBlack)
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "INFO":
		c = color.New(color.FgBlue)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		return level
	}

	c.EnableColor()
	return c.Sprint(level)
}
