package trace

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkWritesJSONL(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	require.NoError(t, err)

	sink.Write(Entry{Timestamp: 1, TraceID: "tr_a", SpanID: "sp_a", EventType: EventPoint, Service: "svc", Level: "info"})
	sink.Write(Entry{Timestamp: 2, TraceID: "tr_a", SpanID: "sp_b", EventType: EventError, Service: "svc", Level: "error"})
	require.NoError(t, sink.Close())

	f, err := os.Open(sink.Path())
	require.NoError(t, err)
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.Len(t, entries, 2)
	assert.Equal(t, "tr_a", entries[0].TraceID)
	assert.Equal(t, EventError, entries[1].EventType)
}

func TestSinkPrunesOldTraces(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 15; i++ {
		path := filepath.Join(dir, "trace-"+string(rune('a'+i))+".jsonl")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	}

	sink, err := NewSink(dir)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "trace-*.jsonl"))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(matches), maxTraceFiles)
}
