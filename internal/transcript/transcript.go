// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript carries the status messages of a run. Each message is
// written to every attached writer as one line: indentation, severity tag,
// text. The same lines go to the console and to the run's log file.
package transcript

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Severity classifies a status message.
type Severity int

const (
	Info Severity = iota
	Success
	Error
)

// Tag returns the line prefix for the severity.
func (s Severity) Tag() string {
	switch s {
	case Success:
		return "[SUCCESS] "
	case Error:
		return "[ERROR] "
	default:
		return ""
	}
}

// String returns a lowercase name for the severity.
func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Event is one status message.
type Event struct {
	Severity Severity
	Message  string
	// Indent is the number of leading spaces.
	Indent int
}

// Line formats the event as it appears in the transcript, newline included.
func (e Event) Line() string {
	return strings.Repeat(" ", max(e.Indent, 0)) + e.Severity.Tag() + e.Message + "\n"
}

// Sink receives status events.
type Sink interface {
	Emit(Event)
}

// Writer is a Sink that writes each event line to its writers in
// attachment order. A failing writer does not stop delivery to the others.
type Writer struct {
	mu      sync.Mutex
	writers []io.Writer
	err     error
}

// New returns a Writer with the given initial writers.
func New(ws ...io.Writer) *Writer {
	return &Writer{writers: ws}
}

// Attach adds w; it receives events emitted from now on.
func (t *Writer) Attach(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writers = append(t.writers, w)
}

// Emit writes the event line to every writer.
func (t *Writer) Emit(e Event) {
	line := e.Line()
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, w := range t.writers {
		if _, err := io.WriteString(w, line); err != nil && t.err == nil {
			t.err = fmt.Errorf("writing transcript: %w", err)
		}
	}
}

// Err returns the first write error, if any.
func (t *Writer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Infof emits an informational message.
func Infof(s Sink, format string, args ...any) {
	s.Emit(Event{Severity: Info, Message: fmt.Sprintf(format, args...)})
}

// Successf emits a success message.
func Successf(s Sink, format string, args ...any) {
	s.Emit(Event{Severity: Success, Message: fmt.Sprintf(format, args...)})
}

// Errorf emits an error message.
func Errorf(s Sink, format string, args ...any) {
	s.Emit(Event{Severity: Error, Message: fmt.Sprintf(format, args...)})
}

// Recorder is a Sink that keeps events in memory.
type Recorder struct {
	Events []Event
}

// Emit appends e.
func (r *Recorder) Emit(e Event) { r.Events = append(r.Events, e) }

// Lines returns the formatted lines of the recorded events.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Events))
	for i, e := range r.Events {
		lines[i] = e.Line()
	}
	return lines
}
