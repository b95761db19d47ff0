package ident

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockMonotonic(t *testing.T) {
	clock := NewClock()
	prev := clock.NowMillis()
	for i := 0; i < 1000; i++ {
		now := clock.NowMillis()
		assert.Greater(t, now, prev, "clock went backwards at iteration %d", i)
		prev = now
	}
}

func TestGeneratorFormat(t *testing.T) {
	gen := NewGenerator(NewClock())

	id := gen.New(PrefixTask)
	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "tsk", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], randChars)
}

func TestGeneratorUnique(t *testing.T) {
	gen := NewGenerator(NewClock())

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := gen.New(PrefixDecision)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGeneratorSortable(t *testing.T) {
	gen := NewGenerator(NewClock())

	first := gen.New(PrefixSpan)
	time.Sleep(2 * time.Millisecond)
	second := gen.New(PrefixSpan)

	ids := []string{second, first}
	sort.Strings(ids)
	assert.Equal(t, []string{first, second}, ids)
}
