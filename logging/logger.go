package logging

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is a minimal printf-style interface for diagnostics that are not
// part of a test report.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturedLine is one line of report output with the time it was written.
type CapturedLine struct {
	Time time.Time
	Text string
}

// CaptureWriter is an io.Writer that records report output line by line
// instead of displaying it, so a runner can replay the report later (for
// instance, only when the run failed).
type CaptureWriter struct {
	lines   []CapturedLine
	partial string
}

// Write splits input on newlines; an unterminated trailing fragment is held
// until a later write completes it.
func (w *CaptureWriter) Write(p []byte) (int, error) {
	w.partial += string(p)
	for {
		i := strings.IndexByte(w.partial, '\n')
		if i < 0 {
			break
		}
		w.lines = append(w.lines, CapturedLine{Time: time.Now(), Text: w.partial[:i]})
		w.partial = w.partial[i+1:]
	}
	return len(p), nil
}

// Lines returns a copy of the captured lines so far, not including any
// trailing fragment that has not yet been terminated by a newline.
func (w *CaptureWriter) Lines() []CapturedLine {
	return append([]CapturedLine(nil), w.lines...)
}

// Dump writes every captured line to dest with the given prefix.
func (w *CaptureWriter) Dump(dest io.Writer, prefix string) {
	for _, l := range w.lines {
		fmt.Fprintf(dest, "%s[%s] %s\n", prefix, l.Time.Format(timestampFormat), l.Text)
	}
}
