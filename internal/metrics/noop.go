package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncAccountCacheHit is a no-op.
func (n *NoopRecorder) IncAccountCacheHit() {}

// IncAccountCacheMiss is a no-op.
func (n *NoopRecorder) IncAccountCacheMiss() {}

// ObserveLookupDuration is a no-op.
func (n *NoopRecorder) ObserveLookupDuration(duration time.Duration) {}

// IncAccountCreated is a no-op.
func (n *NoopRecorder) IncAccountCreated() {}

// IncAccountUpdated is a no-op.
func (n *NoopRecorder) IncAccountUpdated() {}

// IncAccountDeleted is a no-op.
func (n *NoopRecorder) IncAccountDeleted() {}
