package trace

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// maxTraceFiles is how many trace files the sink retains; older ones are
// removed on init.
const maxTraceFiles = 10

// writeBudget bounds how long an entry may wait for the writer goroutine
// before it is dropped.
const writeBudget = 200 * time.Millisecond

// Sink writes trace entries as line-delimited JSON to
// <workspace>/log/observability/trace-<start>.jsonl. Writes are best-effort:
// I/O errors are swallowed and over-budget writes drop the entry.
type Sink struct {
	path    string
	ch      chan Entry
	done    chan struct{}
	once    sync.Once
	dropped atomic.Int64
}

// NewSink opens a sink under dir, pruning old trace files first.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating trace dir: %w", err)
	}
	pruneOldTraces(dir)

	path := filepath.Join(dir, fmt.Sprintf("trace-%d.jsonl", time.Now().UnixMilli()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}

	s := &Sink{
		path: path,
		ch:   make(chan Entry, 1024),
		done: make(chan struct{}),
	}
	go s.run(f)
	return s, nil
}

// Write enqueues an entry. If the writer cannot accept it within the write
// budget the entry is dropped and the drop counter incremented.
func (s *Sink) Write(e Entry) {
	select {
	case s.ch <- e:
	default:
		// Queue full: wait out the budget, then drop.
		timer := time.NewTimer(writeBudget)
		defer timer.Stop()
		select {
		case s.ch <- e:
		case <-timer.C:
			s.dropped.Add(1)
		}
	}
}

// Dropped returns how many entries were discarded for exceeding the budget.
func (s *Sink) Dropped() int64 {
	return s.dropped.Load()
}

// Path returns the trace file path.
func (s *Sink) Path() string {
	return s.path
}

// Close stops the writer and closes the file. Safe to call more than once.
func (s *Sink) Close() error {
	s.once.Do(func() { close(s.ch) })
	<-s.done
	return nil
}

func (s *Sink) run(f *os.File) {
	defer close(s.done)
	defer func() {
		if err := f.Close(); err != nil {
			slog.Debug("Failed to close trace file", "path", s.path, "error", err)
		}
	}()

	enc := json.NewEncoder(f)
	for e := range s.ch {
		if err := enc.Encode(e); err != nil {
			// Observability is best-effort.
			slog.Debug("Trace sink write failed", "error", err)
		}
	}
}

// pruneOldTraces keeps the maxTraceFiles-1 most recent trace files so the new
// file brings the total to maxTraceFiles.
func pruneOldTraces(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "trace-*.jsonl"))
	if err != nil || len(matches) < maxTraceFiles {
		return
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-(maxTraceFiles-1)] {
		if err := os.Remove(old); err != nil {
			slog.Debug("Failed to prune trace file", "path", old, "error", err)
		}
	}
}
