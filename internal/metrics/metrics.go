// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account lookup metrics
	IncAccountCacheHit()
	IncAccountCacheMiss()
	ObserveLookupDuration(duration time.Duration)

	// Account management metrics
	IncAccountCreated()
	IncAccountUpdated()
	IncAccountDeleted()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
