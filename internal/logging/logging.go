package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Sink receives observational lines: every raw inbound line, every
// outbound line, and whatever listeners choose to report.
type Sink interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Logger writes timestamped lines to stderr or to a configured file.
// Debug output is suppressed unless the debug flag is set.
type Logger struct {
	out   *log.Logger
	debug bool
	file  *os.File
}

// New creates a logger. A non-empty path redirects output to that
// file; failure to open it is fatal at setup.
func New(debug bool, path string) (*Logger, error) {
	l := &Logger{debug: debug}
	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log destination: %w", err)
		}
		l.file = f
		w = f
	}
	l.out = log.New(w, "", log.LstdFlags)
	return l, nil
}

// Debug logs a line only when debug logging is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.out.Printf("DEBUG "+format, args...)
	}
}

// Info logs an operational line.
func (l *Logger) Info(format string, args ...interface{}) {
	l.out.Printf(format, args...)
}

// Error logs an error line.
func (l *Logger) Error(format string, args ...interface{}) {
	l.out.Printf("ERROR "+format, args...)
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
