package internal

import (
	"fmt"
	"log"
	"os"
)

// LogLevel controls how chatty stderr logging is. Messages at or below the
// current level are printed.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var levelTags = map[LogLevel]string{
	LogLevelError: "[ERROR]",
	LogLevelWarn:  "[WARN]",
	LogLevelInfo:  "[INFO]",
	LogLevelDebug: "[DEBUG]",
}

var (
	logLevel = LogLevelInfo
	logger   = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLogLevel sets the global log level.
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// SetVerbose switches between the default level and debug.
func SetVerbose(verbose bool) {
	if verbose {
		SetLogLevel(LogLevelDebug)
		return
	}
	SetLogLevel(LogLevelInfo)
}

func logAt(level LogLevel, format string, args ...interface{}) {
	if level > logLevel {
		return
	}
	logger.Printf("%s %s", levelTags[level], fmt.Sprintf(format, args...))
}

// LogError logs an error message.
func LogError(format string, args ...interface{}) {
	logAt(LogLevelError, format, args...)
}

// LogWarn logs a warning message.
func LogWarn(format string, args ...interface{}) {
	logAt(LogLevelWarn, format, args...)
}

// LogInfo logs an info message.
func LogInfo(format string, args ...interface{}) {
	logAt(LogLevelInfo, format, args...)
}

// LogDebug logs a debug message.
func LogDebug(format string, args ...interface{}) {
	logAt(LogLevelDebug, format, args...)
}
