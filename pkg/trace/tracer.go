// Package trace implements per-task observability: trace/span context
// propagation across goroutines, a line-delimited JSON sink, and end-of-run
// report generation.
package trace

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/codecoder-dev/codecoder/pkg/ident"
)

// Entry event types.
const (
	EventFunctionStart = "function_start"
	EventFunctionEnd   = "function_end"
	EventBranch        = "branch"
	EventLoop          = "loop"
	EventAPICallStart  = "api_call_start"
	EventAPICallEnd    = "api_call_end"
	EventError         = "error"
	EventPoint         = "point"
)

// Entry is one record in the trace buffer and the JSONL sink.
type Entry struct {
	Timestamp    int64          `json:"timestamp"`
	TraceID      string         `json:"trace_id"`
	SpanID       string         `json:"span_id"`
	ParentSpanID string         `json:"parent_span_id,omitempty"`
	EventType    string         `json:"event_type"`
	Service      string         `json:"service"`
	Level        string         `json:"level"`
	FunctionName string         `json:"function_name,omitempty"`
	Payload      map[string]any `json:"payload,omitempty"`
	DurationMS   *float64       `json:"duration_ms,omitempty"`
	StackTrace   string         `json:"stack_trace,omitempty"`
	depth        int
}

// spanContext is the per-span state carried through context.Context.
type spanContext struct {
	traceID      string
	spanID       string
	parentSpanID string
	service      string
	startedAt    time.Time
	depth        int
	buf          *traceBuffer
}

// traceBuffer accumulates entries for one trace; shared by all of its spans.
type traceBuffer struct {
	mu      sync.Mutex
	entries []Entry
}

func (b *traceBuffer) append(e Entry) {
	b.mu.Lock()
	b.entries = append(b.entries, e)
	b.mu.Unlock()
}

func (b *traceBuffer) snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

type ctxKey struct{}

// fromContext returns the active span context, if any.
func fromContext(ctx context.Context) (*spanContext, bool) {
	sc, ok := ctx.Value(ctxKey{}).(*spanContext)
	return sc, ok
}

// Tracer owns the sink and mints trace/span IDs. Construct one in main and
// share it process-wide.
type Tracer struct {
	cfg   Config
	sink  *Sink
	clock *ident.Clock
	gen   *ident.Generator
	level Level

	mu      sync.Mutex
	reports []*Report
}

// New creates a Tracer. sink may be nil (buffer-only tracing, used in tests).
func New(cfg Config, clock *ident.Clock, sink *Sink) *Tracer {
	return &Tracer{
		cfg:   cfg,
		sink:  sink,
		clock: clock,
		gen:   ident.NewGenerator(clock),
		level: ParseLevel(cfg.Level),
	}
}

// TraceID returns the trace ID active in ctx, or "".
func TraceID(ctx context.Context) string {
	if sc, ok := fromContext(ctx); ok {
		return sc.traceID
	}
	return ""
}

// SpanID returns the span ID active in ctx, or "".
func SpanID(ctx context.Context) string {
	if sc, ok := fromContext(ctx); ok {
		return sc.spanID
	}
	return ""
}

// RunWithContext establishes a fresh trace context (new trace_id, root span)
// named after service and runs fn inside it. When fn returns, a report is
// computed from the trace buffer and retained for Reports().
func (t *Tracer) RunWithContext(ctx context.Context, service string, fn func(context.Context) error) error {
	if !t.cfg.Enabled {
		return fn(ctx)
	}

	sc := &spanContext{
		traceID:   t.gen.New(ident.PrefixTrace),
		spanID:    t.gen.New(ident.PrefixSpan),
		service:   service,
		startedAt: t.clock.Now(),
		buf:       &traceBuffer{},
	}
	ctx = context.WithValue(ctx, ctxKey{}, sc)

	err := fn(ctx)

	report := buildReport(sc.traceID, service, sc.startedAt, t.clock.Since(sc.startedAt), sc.buf.snapshot())
	t.mu.Lock()
	t.reports = append(t.reports, report)
	t.mu.Unlock()
	return err
}

// RunInChildSpan inherits the caller's trace_id, mints a fresh span_id with
// parent_span_id set to the caller's span, and runs fn inside it. Outside an
// active trace it degrades to calling fn directly.
func (t *Tracer) RunInChildSpan(ctx context.Context, fn func(context.Context) error) error {
	parent, ok := fromContext(ctx)
	if !ok || !t.cfg.Enabled {
		return fn(ctx)
	}
	child := &spanContext{
		traceID:      parent.traceID,
		spanID:       t.gen.New(ident.PrefixSpan),
		parentSpanID: parent.spanID,
		service:      parent.service,
		startedAt:    t.clock.Now(),
		depth:        parent.depth + 1,
		buf:          parent.buf,
	}
	return fn(context.WithValue(ctx, ctxKey{}, child))
}

// LogOptions carries the optional fields of a log entry.
type LogOptions struct {
	FunctionName string
	DurationMS   *float64
	Stack        string
}

// Log appends an entry to the current trace buffer and forwards it to the
// sink. Outside an active trace, or when filtered by level/sampling, it is a
// no-op. Log never fails; sink errors are swallowed.
func (t *Tracer) Log(ctx context.Context, eventType string, payload map[string]any, level Level, opts LogOptions) {
	if !t.cfg.Enabled {
		return
	}
	sc, ok := fromContext(ctx)
	if !ok {
		return
	}
	if level < t.level {
		return
	}
	if t.cfg.Sampling < 1.0 && rand.Float64() >= t.cfg.Sampling {
		return
	}

	entry := Entry{
		Timestamp:    t.clock.NowMillis(),
		TraceID:      sc.traceID,
		SpanID:       sc.spanID,
		ParentSpanID: sc.parentSpanID,
		EventType:    eventType,
		Service:      sc.service,
		Level:        level.String(),
		FunctionName: opts.FunctionName,
		Payload:      payload,
		DurationMS:   opts.DurationMS,
		StackTrace:   opts.Stack,
		depth:        sc.depth,
	}
	sc.buf.append(entry)
	if t.sink != nil {
		t.sink.Write(entry)
	}
}

// Reports returns the reports generated so far, oldest first.
func (t *Tracer) Reports() []*Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Report, len(t.reports))
	copy(out, t.reports)
	return out
}

// Close flushes and closes the sink, if any.
func (t *Tracer) Close() error {
	if t.sink != nil {
		return t.sink.Close()
	}
	return nil
}
