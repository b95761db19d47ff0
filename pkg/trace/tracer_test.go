package trace

import (
	"context"
	"testing"

	"github.com/codecoder-dev/codecoder/pkg/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracer(t *testing.T, cfg Config) *Tracer {
	t.Helper()
	return New(cfg, ident.NewClock(), nil)
}

func TestRunWithContextPropagation(t *testing.T) {
	tracer := newTestTracer(t, DefaultConfig())

	var rootTrace, rootSpan string
	var childTrace, childSpan, childParent string

	err := tracer.RunWithContext(context.Background(), "test", func(ctx context.Context) error {
		rootTrace = TraceID(ctx)
		rootSpan = SpanID(ctx)
		tracer.Log(ctx, EventPoint, map[string]any{"k": "v"}, LevelInfo, LogOptions{})

		return tracer.RunInChildSpan(ctx, func(ctx context.Context) error {
			childTrace = TraceID(ctx)
			childSpan = SpanID(ctx)
			sc, _ := fromContext(ctx)
			childParent = sc.parentSpanID
			tracer.Log(ctx, EventPoint, nil, LevelInfo, LogOptions{})
			return nil
		})
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rootTrace)
	assert.Equal(t, rootTrace, childTrace, "child span must inherit trace_id")
	assert.NotEqual(t, rootSpan, childSpan, "child span must get a fresh span_id")
	assert.Equal(t, rootSpan, childParent, "child parent_span_id must be the caller's span")

	reports := tracer.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, 2, reports[0].TotalEntries)
	for _, row := range reports[0].Timeline {
		assert.NotZero(t, row.Timestamp)
	}
}

func TestLogSameTraceID(t *testing.T) {
	tracer := newTestTracer(t, DefaultConfig())

	err := tracer.RunWithContext(context.Background(), "svc", func(ctx context.Context) error {
		for i := 0; i < 5; i++ {
			tracer.Log(ctx, EventPoint, nil, LevelInfo, LogOptions{})
		}
		sc, ok := fromContext(ctx)
		require.True(t, ok)
		for _, e := range sc.buf.snapshot() {
			assert.Equal(t, sc.traceID, e.TraceID)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestLevelFiltering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "warn"
	tracer := newTestTracer(t, cfg)

	err := tracer.RunWithContext(context.Background(), "svc", func(ctx context.Context) error {
		tracer.Log(ctx, EventPoint, nil, LevelDebug, LogOptions{})
		tracer.Log(ctx, EventPoint, nil, LevelInfo, LogOptions{})
		tracer.Log(ctx, EventError, map[string]any{"message": "boom"}, LevelError, LogOptions{})
		return nil
	})
	require.NoError(t, err)

	reports := tracer.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].TotalEntries)
	assert.Equal(t, 1, reports[0].Errors)
}

func TestDisabledTracerRunsFn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	tracer := newTestTracer(t, cfg)

	ran := false
	err := tracer.RunWithContext(context.Background(), "svc", func(ctx context.Context) error {
		ran = true
		assert.Empty(t, TraceID(ctx))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Empty(t, tracer.Reports())
}

func TestReportAPIPairing(t *testing.T) {
	tracer := newTestTracer(t, DefaultConfig())

	dur := 12.5
	err := tracer.RunWithContext(context.Background(), "svc", func(ctx context.Context) error {
		tracer.Log(ctx, EventAPICallStart, nil, LevelInfo, LogOptions{FunctionName: "github.fetch"})
		tracer.Log(ctx, EventAPICallStart, nil, LevelInfo, LogOptions{FunctionName: "google.fetch"})
		tracer.Log(ctx, EventAPICallEnd, nil, LevelInfo, LogOptions{FunctionName: "google.fetch", DurationMS: &dur})
		tracer.Log(ctx, EventAPICallEnd, nil, LevelInfo, LogOptions{FunctionName: "github.fetch"})
		return nil
	})
	require.NoError(t, err)

	report := tracer.Reports()[0]
	assert.Equal(t, 2, report.APICalls)
	require.Len(t, report.APICallPairs, 2)
	assert.Equal(t, "google.fetch", report.APICallPairs[0].FunctionName)
	assert.Equal(t, "github.fetch", report.APICallPairs[1].FunctionName)
	require.NotNil(t, report.APICallPairs[0].DurationMS)
	assert.Equal(t, 12.5, *report.APICallPairs[0].DurationMS)

	text := report.RenderText()
	assert.Contains(t, text, "api calls:")
	assert.Contains(t, text, "google.fetch")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CCODE_OBSERVABILITY_ENABLED", "false")
	t.Setenv("CCODE_OBSERVABILITY_LEVEL", "error")
	t.Setenv("CCODE_OBSERVABILITY_TRACE_SAMPLING", "0.25")

	cfg := DefaultConfig().ApplyEnv()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, 0.25, cfg.Sampling)
}
