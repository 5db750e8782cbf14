package store

import (
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// Manager wraps a KV backend with typed domain accessors. A single
// mutex serializes every read-modify-write cycle, so concurrent
// increments cannot lose updates even though the backend only supports
// whole-value writes.
type Manager struct {
	mu  sync.Mutex
	kv  KV
	now func() time.Time
}

// NewManager creates a manager over a KV backend.
func NewManager(kv KV) *Manager {
	return &Manager{kv: kv, now: time.Now}
}

// Close closes the underlying backend.
func (m *Manager) Close() error {
	return m.kv.Close()
}

// today returns the current local calendar date.
func (m *Manager) today() string {
	return m.now().Format(dateLayout)
}
