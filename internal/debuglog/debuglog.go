// Package debuglog keeps a per-player trace of one fishing attempt and appends it to a
// daily file when the attempt ends. Writing never fails the attempt: errors are logged
// as warnings and the trace is dropped.
package debuglog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/logger"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// Sink receives trace lines for a player's current attempt
type Sink interface {
	Logf(playerID, format string, args ...any)
}

// Discard is a Sink that drops every line
var Discard Sink = discard{}

type discard struct{}

func (discard) Logf(string, string, ...any) {}

// Queue accepts flush jobs without blocking
type Queue interface {
	TryEnqueue(job worker.Job) bool
}

type session struct {
	playerName string
	started    time.Time
	lines      []string
}

// Logger buffers trace lines per player
type Logger struct {
	dir   string
	queue Queue
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a Logger writing into dir. A nil queue writes inline on End.
func New(dir string, queue Queue) *Logger {
	return &Logger{
		dir:      dir,
		queue:    queue,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Begin opens a fresh buffer for the player, discarding any unfinished one
func (l *Logger) Begin(playerID, playerName string) {
	now := l.now()
	s := &session{playerName: playerName, started: now}
	s.lines = append(s.lines, fmt.Sprintf("==== %s FISHING START %s (%s) ====", now.Format(TimeFormat), playerName, playerID))

	l.mu.Lock()
	l.sessions[playerID] = s
	l.mu.Unlock()
}

// Logf appends a line to the player's buffer, opening one when absent
func (l *Logger) Logf(playerID, format string, args ...any) {
	line := fmt.Sprintf("[%s] %s", l.now().Format(LineTimeFormat), fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sessions[playerID]
	if !ok {
		s = &session{started: l.now()}
		l.sessions[playerID] = s
	}
	s.lines = append(s.lines, line)
}

// Pending returns a copy of the buffered lines for a player
func (l *Logger) Pending(playerID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sessions[playerID]
	if !ok {
		return nil
	}
	return append([]string(nil), s.lines...)
}

// End closes the player's buffer and hands it to the flush queue
func (l *Logger) End(ctx context.Context, playerID string) {
	l.mu.Lock()
	s, ok := l.sessions[playerID]
	delete(l.sessions, playerID)
	l.mu.Unlock()
	if !ok {
		return
	}

	end := l.now()
	s.lines = append(s.lines, fmt.Sprintf("==== %s FISHING END %s (%dms) ====",
		end.Format(TimeFormat), s.playerName, end.Sub(s.started).Milliseconds()))

	job := &flushJob{
		path:  filepath.Join(l.dir, s.started.Format(FileDateFormat)+FileExtension),
		lines: s.lines,
	}

	if l.queue == nil {
		_ = job.Process(ctx)
		return
	}
	if !l.queue.TryEnqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgQueueFull, LogFieldPlayerID, playerID, LogFieldLines, len(s.lines))
	}
}

// flushJob appends one attempt's trace to the daily file
type flushJob struct {
	path  string
	lines []string
}

// Process never returns an error; write failures are downgraded to warnings
func (j *flushJob) Process(ctx context.Context) error {
	if err := appendLines(j.path, j.lines); err != nil {
		logger.FromContext(ctx).Warn(LogMsgWriteFailed, LogFieldPath, j.path, "error", err)
	}
	return nil
}

func appendLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create debug log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("failed to write debug log: %w", err)
	}
	return nil
}
