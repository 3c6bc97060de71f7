// Package console writes leveled diagnostic lines for the CLI.
//
// Output goes to an io.Writer (stderr in practice) so it never mixes with the
// picked path on stdout. Level names are colored when the writer is a
// terminal and NO_COLOR is unset.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelDebug int = iota
	levelInfo
	levelWarn
	levelError
	levelOff
)

// Logger writes leveled messages. A nil *Logger discards everything.
type Logger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
}

// New creates a Logger writing messages at or above level to w.
// Valid levels: debug, info, warn, error, off (case-insensitive).
// Unknown levels fall back to info.
func New(w io.Writer, level string) *Logger {
	return &Logger{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
	}
}

// isTerminal reports whether w is a file attached to a terminal that should
// receive colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	case "off":
		return levelOff
	default:
		return levelInfo
	}
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(levelDebug, "DEBUG", color.FgHiBlack, format, args...)
}

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(levelInfo, "INFO", color.FgBlue, format, args...)
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(levelWarn, "WARN", color.FgYellow, format, args...)
}

// Errorf logs an error.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(levelError, "ERROR", color.FgRed, format, args...)
}

func (l *Logger) logf(level int, name string, attr color.Attribute, format string, args ...any) {
	if l == nil || l.writer == nil || level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	label := name
	if l.colorOutput {
		label = color.New(attr).Sprint(name)
	}
	fmt.Fprintf(l.writer, "[%s] %s\n", label, fmt.Sprintf(format, args...))
}
