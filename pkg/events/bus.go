// Package events provides per-task event fanout with bounded subscriber
// queues and sequence-numbered catch-up. Buffers are deliberately in-memory;
// the causal graph is the durable record.
package events

import (
	"log/slog"
	"sync"
	"time"
)

// Event types published by the task supervisor.
const (
	EventTypeTaskStatus        = "task.status"
	EventTypeThought           = "task.thought"
	EventTypeToolCall          = "task.tool_call"
	EventTypeToolResult        = "task.tool_result"
	EventTypeAwaitingApproval  = "task.awaiting_approval"
	EventTypePermissionDecided = "task.permission_decided"
	EventTypeOutput            = "task.output"
	EventTypeFinish            = "task.finish"
	EventTypePromptScan        = "task.prompt_scan"
	EventTypeSlowConsumer      = "stream.slow_consumer"
)

// DefaultSubscriberDepth is the per-subscriber buffer size.
const DefaultSubscriberDepth = 256

// historyDepth bounds per-task catch-up history.
const historyDepth = 1024

// Event is one sequenced task event. Seq is strictly monotonically
// increasing per task, starting at 1.
type Event struct {
	Seq       int64          `json:"seq"`
	TaskID    string         `json:"task_id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type subscriber struct {
	ch chan Event
	// limit is the usable buffer depth; one extra slot stays reserved for
	// the slow_consumer marker.
	limit int
}

type taskStream struct {
	seq     int64
	history []Event
	subs    map[int]*subscriber
	closed  bool
}

// Bus fans task events out to subscribers. Publishing never blocks; a
// subscriber that cannot keep up is dropped with a final slow_consumer
// event.
type Bus struct {
	mu      sync.Mutex
	streams map[string]*taskStream
	nextSub int
	depth   int
	logger  *slog.Logger
}

// NewBus creates a Bus with the given per-subscriber buffer depth.
func NewBus(depth int) *Bus {
	if depth <= 0 {
		depth = DefaultSubscriberDepth
	}
	return &Bus{
		streams: make(map[string]*taskStream),
		depth:   depth,
		logger:  slog.Default().With("component", "events"),
	}
}

func (b *Bus) stream(taskID string) *taskStream {
	s := b.streams[taskID]
	if s == nil {
		s = &taskStream{subs: make(map[int]*subscriber)}
		b.streams[taskID] = s
	}
	return s
}

// Publish appends an event to the task's stream and fans it out. It returns
// the assigned sequence number, or 0 if the stream already ended.
func (b *Bus) Publish(taskID, eventType string, payload map[string]any) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.stream(taskID)
	if s.closed {
		return 0
	}

	s.seq++
	event := Event{
		Seq:       s.seq,
		TaskID:    taskID,
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	s.history = append(s.history, event)
	if len(s.history) > historyDepth {
		s.history = s.history[len(s.history)-historyDepth:]
	}

	for id, sub := range s.subs {
		b.deliver(taskID, s, id, sub, event)
	}
	return event.Seq
}

// deliver sends without blocking; a full buffer drops the subscriber. Caller
// holds b.mu.
func (b *Bus) deliver(taskID string, s *taskStream, id int, sub *subscriber, event Event) {
	if len(sub.ch) < sub.limit {
		sub.ch <- event
		return
	}
	delete(s.subs, id)
	b.logger.Warn("Dropping slow event subscriber",
		"task_id", taskID, "subscriber", id, "seq", event.Seq)
	// The reserved slot tells the subscriber why its stream ended.
	sub.ch <- Event{TaskID: taskID, Type: EventTypeSlowConsumer, Timestamp: time.Now()}
	close(sub.ch)
}

// Subscribe returns a channel of events for one task starting after
// sinceSeq (0 = only new events, replay from history otherwise). The channel
// closes when the stream ends, the subscriber falls behind, or cancel is
// called.
func (b *Bus) Subscribe(taskID string, sinceSeq int64) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.stream(taskID)

	var replay []Event
	if sinceSeq > 0 {
		for _, e := range s.history {
			if e.Seq > sinceSeq {
				replay = append(replay, e)
			}
		}
	}

	// Replay must fit alongside live events without blocking Publish, plus
	// one reserved slot for the slow_consumer marker.
	limit := b.depth + len(replay)
	ch := make(chan Event, limit+1)
	for _, e := range replay {
		ch <- e
	}

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	b.nextSub++
	id := b.nextSub
	sub := &subscriber{ch: ch, limit: limit}
	s.subs[id] = sub

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if cur, ok := s.subs[id]; ok && cur == sub {
			delete(s.subs, id)
			close(sub.ch)
		}
	}
	return ch, cancel
}

// EndStream marks a task's stream finished and closes all subscriber
// channels after any buffered events drain.
func (b *Bus) EndStream(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.streams[taskID]
	if s == nil || s.closed {
		return
	}
	s.closed = true
	for id, sub := range s.subs {
		delete(s.subs, id)
		close(sub.ch)
	}
}

// Drop discards a task's stream state entirely (after task deletion).
func (b *Bus) Drop(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.streams[taskID]; ok {
		for id, sub := range s.subs {
			delete(s.subs, id)
			close(sub.ch)
		}
		delete(b.streams, taskID)
	}
}
