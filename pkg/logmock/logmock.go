// Package logmock provides a recording logger stand-in. Calls at any
// severity are captured in memory and produce no output. The recorder
// doubles as a zerolog sink so tests can capture real logger traffic.
package logmock

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// Entry is one recorded log call.
type Entry struct {
	Level   string
	Message string
	Err     string
}

// Recorder accepts log calls at five severity levels plus an exception
// variant, recording each without producing output.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Debug records a debug-level message.
func (r *Recorder) Debug(msg string) { r.append(Entry{Level: "debug", Message: msg}) }

// Info records an info-level message.
func (r *Recorder) Info(msg string) { r.append(Entry{Level: "info", Message: msg}) }

// Warning records a warning-level message.
func (r *Recorder) Warning(msg string) { r.append(Entry{Level: "warning", Message: msg}) }

// Error records an error-level message.
func (r *Recorder) Error(msg string) { r.append(Entry{Level: "error", Message: msg}) }

// Critical records a critical-level message.
func (r *Recorder) Critical(msg string) { r.append(Entry{Level: "critical", Message: msg}) }

// Exception records an error-level message carrying an error value.
func (r *Recorder) Exception(err error, msg string) {
	entry := Entry{Level: "error", Message: msg}
	if err != nil {
		entry.Err = err.Error()
	}
	r.append(entry)
}

func (r *Recorder) append(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns a copy of the recorded calls in order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// CountAt returns how many entries were recorded at level.
func (r *Recorder) CountAt(level string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Contains reports whether any recorded message contains substr.
func (r *Recorder) Contains(substr string) bool {
	for _, e := range r.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Reset discards all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Write implements io.Writer so the recorder can sink zerolog output.
// Events are decoded from zerolog's JSON wire form; undecodable input is
// recorded verbatim rather than dropped.
func (r *Recorder) Write(p []byte) (int, error) {
	var event struct {
		Level   string `json:"level"`
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(p, &event); err != nil {
		r.append(Entry{Level: "unknown", Message: strings.TrimSpace(string(p))})
		return len(p), nil
	}
	r.append(Entry{Level: event.Level, Message: event.Message, Err: event.Err})
	return len(p), nil
}

// Capture configures log capture at the most verbose level and returns a
// logger writing into the recorder. The previous global level is restored
// when the test completes.
func Capture(t *testing.T) (zerolog.Logger, *Recorder) {
	t.Helper()

	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	recorder := NewRecorder()
	logger := zerolog.New(recorder).Level(zerolog.TraceLevel)
	return logger, recorder
}
