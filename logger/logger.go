// Package logger provides leveled, prefixed logging for the game.
package logger

import (
	"fmt"
	"io"
	"log"
)

// Color constants for log prefixes
const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

// Logger writes Info/Warn/Error lines, and Debug lines when enabled.
type Logger struct {
	name        string
	color       string
	debug       bool
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// New creates a logger whose lines start with "[NAME] [LEVEL]". An empty
// color disables coloring, which is what files want.
func New(name, color string, w io.Writer, debug bool) *Logger {
	prefix := func(level string) string {
		if color == "" {
			return fmt.Sprintf("[%s] [%s] ", name, level)
		}
		return fmt.Sprintf("%s[%s]%s [%s] ", color, name, ColorReset, level)
	}
	flags := log.Ldate | log.Ltime | log.Lmsgprefix
	return &Logger{
		name:        name,
		color:       color,
		debug:       debug,
		infoLogger:  log.New(w, prefix("INFO"), flags),
		warnLogger:  log.New(w, prefix("WARN"), flags),
		errorLogger: log.New(w, prefix("ERROR"), flags),
		debugLogger: log.New(w, prefix("DEBUG"), flags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New("", "", io.Discard, false)
}

// Named derives a logger for a sub-module sharing the same output.
func (l *Logger) Named(name, color string) *Logger {
	return New(name, color, l.infoLogger.Writer(), l.debug)
}

func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

// Debug logs only when the logger was built with debug enabled.
func (l *Logger) Debug(format string, args ...any) {
	if l.debug {
		l.debugLogger.Printf(format, args...)
	}
}
