// Package ident provides the process-wide monotonic clock and k-sortable
// identifier generation used by every other subsystem.
package ident

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ID prefixes, one per identifier kind.
const (
	PrefixTrace      = "tr"
	PrefixSpan       = "sp"
	PrefixTask       = "tsk"
	PrefixDecision   = "dec"
	PrefixAction     = "act"
	PrefixOutcome    = "out"
	PrefixEdge       = "edg"
	PrefixCredential = "crd"
	PrefixPermission = "perm"
	PrefixSession    = "ses"
)

// randBits is the randomness carried by each generated ID: two uint64 reads
// truncated to 80 bits when rendered in base36.
const randChars = 16

// Clock is a wall-clock-seeded, forward-only time source. Within one process
// lifetime NowMillis never goes backwards even if the wall clock does.
type Clock struct {
	mu   sync.Mutex
	last int64
}

// NewClock creates a Clock seeded from the wall clock.
func NewClock() *Clock {
	return &Clock{}
}

// NowMillis returns the current time in Unix milliseconds, monotonically
// non-decreasing within the process.
func (c *Clock) NowMillis() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= c.last {
		now = c.last + 1
	}
	c.last = now
	return now
}

// Now returns the current wall-clock time.
func (c *Clock) Now() time.Time {
	return time.UnixMilli(c.NowMillis())
}

// Since measures elapsed time using the runtime's steady source, suitable for
// span durations.
func (c *Clock) Since(start time.Time) time.Duration {
	return time.Since(start)
}

// Generator mints k-sortable identifiers of the form
// <prefix>_<time36>_<rand36>. IDs generated in the same process sort by
// creation time for a given prefix.
type Generator struct {
	clock *Clock
}

// NewGenerator creates a Generator backed by the given clock.
func NewGenerator(clock *Clock) *Generator {
	return &Generator{clock: clock}
}

// New mints an ID with the given kind prefix.
func (g *Generator) New(prefix string) string {
	ts := strconv.FormatInt(g.clock.NowMillis(), 36)

	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to the
		// clock so ID generation cannot block callers.
		binary.BigEndian.PutUint64(buf[:8], uint64(time.Now().UnixNano()))
	}
	hi := binary.BigEndian.Uint64(buf[:8])
	lo := binary.BigEndian.Uint64(buf[8:])

	var sb strings.Builder
	sb.Grow(len(prefix) + 1 + len(ts) + 1 + randChars)
	sb.WriteString(prefix)
	sb.WriteByte('_')
	sb.WriteString(ts)
	sb.WriteByte('_')
	writeBase36(&sb, hi, 8)
	writeBase36(&sb, lo, 8)
	return sb.String()
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// writeBase36 writes exactly width base36 characters of v.
func writeBase36(sb *strings.Builder, v uint64, width int) {
	var tmp [13]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = base36[v%36]
		v /= 36
	}
	sb.Write(tmp[:width])
}
