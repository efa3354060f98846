package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	AccountCacheHits      uint64
	AccountCacheMisses    uint64
	LookupDurationCount   uint64
	LookupDurationTotalNs int64
	AccountsCreated       uint64
	AccountsUpdated       uint64
	AccountsDeleted       uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	accountCacheHits      uint64
	accountCacheMisses    uint64
	lookupDurationCount   uint64
	lookupDurationTotalNs int64
	accountsCreated       uint64
	accountsUpdated       uint64
	accountsDeleted       uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		AccountCacheHits:      atomic.LoadUint64(&m.accountCacheHits),
		AccountCacheMisses:    atomic.LoadUint64(&m.accountCacheMisses),
		LookupDurationCount:   atomic.LoadUint64(&m.lookupDurationCount),
		LookupDurationTotalNs: atomic.LoadInt64(&m.lookupDurationTotalNs),
		AccountsCreated:       atomic.LoadUint64(&m.accountsCreated),
		AccountsUpdated:       atomic.LoadUint64(&m.accountsUpdated),
		AccountsDeleted:       atomic.LoadUint64(&m.accountsDeleted),
	}
}

// IncAccountCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncAccountCacheHit() {
	atomic.AddUint64(&m.accountCacheHits, 1)
}

// IncAccountCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncAccountCacheMiss() {
	atomic.AddUint64(&m.accountCacheMisses, 1)
}

// ObserveLookupDuration records an account lookup duration.
func (m *InMemoryRecorder) ObserveLookupDuration(duration time.Duration) {
	atomic.AddUint64(&m.lookupDurationCount, 1)
	atomic.AddInt64(&m.lookupDurationTotalNs, duration.Nanoseconds())
}

// IncAccountCreated increments the account created counter.
func (m *InMemoryRecorder) IncAccountCreated() {
	atomic.AddUint64(&m.accountsCreated, 1)
}

// IncAccountUpdated increments the account updated counter.
func (m *InMemoryRecorder) IncAccountUpdated() {
	atomic.AddUint64(&m.accountsUpdated, 1)
}

// IncAccountDeleted increments the account deleted counter.
func (m *InMemoryRecorder) IncAccountDeleted() {
	atomic.AddUint64(&m.accountsDeleted, 1)
}
