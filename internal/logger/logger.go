// Package logger prints pipeline diagnostics for the kanji CLI.
// Everything except Report is silent unless --verbose is set; output
// goes to stderr so it never mixes with SVG or JSON on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level tags a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr

	// now is replaced in tests.
	now = time.Now
)

// SetVerbose turns diagnostics on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether diagnostics are on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects all log lines. The default is os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(always bool, level Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !always && !verbose {
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) { logf(false, LevelDebug, format, args...) }

func Info(format string, args ...any) { logf(false, LevelInfo, format, args...) }

func Warn(format string, args ...any) { logf(false, LevelWarn, format, args...) }

// Report prints a warning even when verbose is off.
// Skipped source entries go through here.
func Report(format string, args ...any) { logf(true, LevelWarn, format, args...) }

// Section prints a stage header.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Stage prints a stage header and returns a func that logs how long the
// stage took. Use as: defer logger.Stage("Source Loading")().
func Stage(name string) func() {
	Section(name)
	start := now()
	return func() {
		Debug("%s took %s", name, now().Sub(start).Round(time.Millisecond))
	}
}
