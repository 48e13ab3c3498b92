// Package logging writes the run transcript: every prompt and answer of a
// kickoff, secret-redacted, to a rotated file under the logs directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/betteros/goal-crew/internal/crew"
	"github.com/betteros/goal-crew/internal/llm"
)

// FileName is the transcript file inside the logs directory
const FileName = "goal-crew.log"

// Transcript is a line-oriented run log. The zero value and a nil
// *Transcript discard everything.
type Transcript struct {
	mu     sync.Mutex
	w      io.WriteCloser
	now    func() time.Time
	tokens func(string) int
}

// Open creates the logs directory (owner only) and a rotated transcript
// file inside it
func Open(dir string) (*Transcript, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	return New(&lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		LocalTime:  true,
	}), nil
}

// New writes the transcript to w
func New(w io.WriteCloser) *Transcript {
	return &Transcript{w: w, now: time.Now, tokens: llm.CountTokens}
}

// Writer returns the redacting writer behind the transcript, for routing
// other loggers (gin) into the same file
func (t *Transcript) Writer() io.Writer {
	return writerFunc(func(p []byte) (int, error) {
		t.write(string(p))
		return len(p), nil
	})
}

// Logf writes one entry for a run
func (t *Transcript) Logf(runID, format string, args ...interface{}) {
	if t == nil || t.w == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	t.write(fmt.Sprintf("[%s] [%s] %s\n", t.now().Format(time.RFC3339), runID, msg))
}

// Observe records a crew event. Prompts and outputs are written in full.
func (t *Transcript) Observe(e crew.Event) {
	if t == nil || t.w == nil {
		return
	}
	switch e.Kind {
	case crew.EventTaskStarted:
		t.Logf(e.RunID, "%s %d/%d %s (%s) started", e.Command, e.Index, e.Total, e.Task, e.Agent)
		t.Logf(e.RunID, "=== System ===\n%s", e.System)
		t.Logf(e.RunID, "=== Prompt (~%d tokens) ===\n%s", t.tokens(e.Prompt), e.Prompt)
	case crew.EventTaskFinished:
		t.Logf(e.RunID, "=== Output (~%d tokens) ===\n%s", t.tokens(e.Output), e.Output)
		t.Logf(e.RunID, "%s %d/%d %s finished in %s", e.Command, e.Index, e.Total, e.Task, e.Duration.Round(time.Millisecond))
	case crew.EventTaskFailed:
		t.Logf(e.RunID, "%s %d/%d %s failed after %s: %v", e.Command, e.Index, e.Total, e.Task, e.Duration.Round(time.Millisecond), e.Err)
	}
}

// Close closes the underlying file
func (t *Transcript) Close() error {
	if t == nil || t.w == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Close()
}

func (t *Transcript) write(s string) {
	if t == nil || t.w == nil {
		return
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = io.WriteString(t.w, Redact(s))
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
