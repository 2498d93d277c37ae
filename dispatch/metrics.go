package dispatch

import "sync/atomic"

// Metrics counts what a handler did with its keys. All counters are
// atomic; Snapshot reads them without stopping the handler.
type Metrics struct {
	keys         atomic.Uint64
	matches      atomic.Uint64
	rejected     atomic.Uint64
	passthrough  atomic.Uint64
	timeouts     atomic.Uint64
	cancels      atomic.Uint64
	hookConsumed atomic.Uint64
}

// NewMetrics creates a zeroed metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	// Keys is the total number of keys handled.
	Keys uint64

	// Matches is the number of completed chords.
	Matches uint64

	// Rejected is the number of keys that killed a chord attempt.
	Rejected uint64

	// Passthrough is the number of keys never routed into the matcher.
	Passthrough uint64

	// Timeouts is the number of chords abandoned by the idle timeout.
	Timeouts uint64

	// Cancels is the number of explicit cancellations.
	Cancels uint64

	// HookConsumed is the number of keys swallowed by pre-hooks.
	HookConsumed uint64
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Keys:         m.keys.Load(),
		Matches:      m.matches.Load(),
		Rejected:     m.rejected.Load(),
		Passthrough:  m.passthrough.Load(),
		Timeouts:     m.timeouts.Load(),
		Cancels:      m.cancels.Load(),
		HookConsumed: m.hookConsumed.Load(),
	}
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.keys.Store(0)
	m.matches.Store(0)
	m.rejected.Store(0)
	m.passthrough.Store(0)
	m.timeouts.Store(0)
	m.cancels.Store(0)
	m.hookConsumed.Store(0)
}
