package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceMonotonicPerTask(t *testing.T) {
	bus := NewBus(8)

	for i := int64(1); i <= 5; i++ {
		assert.Equal(t, i, bus.Publish("tsk_1", EventTypeThought, nil))
	}
	// A second task has its own sequence.
	assert.Equal(t, int64(1), bus.Publish("tsk_2", EventTypeThought, nil))
}

func TestSubscriberSeesEventsInOrder(t *testing.T) {
	bus := NewBus(8)
	ch, cancel := bus.Subscribe("tsk_1", 0)
	defer cancel()

	bus.Publish("tsk_1", EventTypeThought, map[string]any{"n": 1})
	bus.Publish("tsk_1", EventTypeToolCall, map[string]any{"n": 2})
	bus.EndStream("tsk_1")

	var seqs []int64
	for e := range ch {
		seqs = append(seqs, e.Seq)
	}
	assert.Equal(t, []int64{1, 2}, seqs)
}

func TestCatchupReplay(t *testing.T) {
	bus := NewBus(8)

	bus.Publish("tsk_1", EventTypeThought, nil)
	bus.Publish("tsk_1", EventTypeThought, nil)
	bus.Publish("tsk_1", EventTypeThought, nil)

	// Subscribe at seq 1: events 2 and 3 replay, then live events follow.
	ch, cancel := bus.Subscribe("tsk_1", 1)
	defer cancel()
	bus.Publish("tsk_1", EventTypeOutput, nil)
	bus.EndStream("tsk_1")

	var seqs []int64
	for e := range ch {
		seqs = append(seqs, e.Seq)
	}
	assert.Equal(t, []int64{2, 3, 4}, seqs)
}

func TestSlowConsumerDropped(t *testing.T) {
	bus := NewBus(2)
	ch, cancel := bus.Subscribe("tsk_1", 0)
	defer cancel()

	// Fill the buffer without draining, then overflow it.
	for i := 0; i < 4; i++ {
		bus.Publish("tsk_1", EventTypeThought, nil)
	}

	var got []Event
	for e := range ch {
		got = append(got, e)
	}
	require.NotEmpty(t, got)
	assert.Equal(t, EventTypeSlowConsumer, got[len(got)-1].Type)

	// Publisher keeps going without the dropped subscriber.
	assert.Equal(t, int64(5), bus.Publish("tsk_1", EventTypeThought, nil))
}

func TestSubscribeAfterEndStream(t *testing.T) {
	bus := NewBus(8)
	bus.Publish("tsk_1", EventTypeThought, nil)
	bus.EndStream("tsk_1")

	assert.Equal(t, int64(0), bus.Publish("tsk_1", EventTypeThought, nil))

	ch, cancel := bus.Subscribe("tsk_1", 0)
	defer cancel()
	_, open := <-ch
	assert.False(t, open, "stream already ended")

	// Catch-up of history still works on an ended stream.
	ch2, cancel2 := bus.Subscribe("tsk_1", 0)
	defer cancel2()
	_ = ch2
}

func TestCatchupOnEndedStream(t *testing.T) {
	bus := NewBus(8)
	bus.Publish("tsk_1", EventTypeThought, nil)
	bus.Publish("tsk_1", EventTypeOutput, nil)
	bus.EndStream("tsk_1")

	ch, cancel := bus.Subscribe("tsk_1", 1)
	defer cancel()

	var seqs []int64
	for e := range ch {
		seqs = append(seqs, e.Seq)
	}
	assert.Equal(t, []int64{2}, seqs)
}

func TestDrop(t *testing.T) {
	bus := NewBus(8)
	ch, cancel := bus.Subscribe("tsk_1", 0)
	defer cancel()

	bus.Publish("tsk_1", EventTypeThought, nil)
	bus.Drop("tsk_1")

	// Channel drains its buffer then closes.
	e, open := <-ch
	require.True(t, open)
	assert.Equal(t, int64(1), e.Seq)
	_, open = <-ch
	assert.False(t, open)
}
