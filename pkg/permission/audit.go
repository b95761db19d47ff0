package permission

import (
	"sync"
	"time"
)

// maxAuditEntries bounds the in-memory audit ring; older entries are evicted
// FIFO. The ring is deliberately not persisted.
const maxAuditEntries = 1000

// Audit decision tags.
const (
	AuditApproved        = "approved"
	AuditRejected        = "rejected"
	AuditTimeoutApproved = "timeout_approved"
)

// AuditEntry is one recorded permission decision.
type AuditEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	PermissionID string    `json:"permission_id"`
	Tool         string    `json:"tool"`
	Pattern      string    `json:"pattern,omitempty"`
	Risk         RiskLevel `json:"risk"`
	Decision     string    `json:"decision"`
	Reason       string    `json:"reason"`
}

// auditLog is a bounded FIFO ring guarded by a single mutex.
type auditLog struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (a *auditLog) record(entry AuditEntry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	if len(a.entries) > maxAuditEntries {
		a.entries = a.entries[len(a.entries)-maxAuditEntries:]
	}
}

// snapshot returns a copy of the current entries, oldest first.
func (a *auditLog) snapshot() []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]AuditEntry, len(a.entries))
	copy(out, a.entries)
	return out
}
