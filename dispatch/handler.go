package dispatch

import (
	"sync"
	"time"

	"github.com/dshills/keychord/chord"
	"github.com/dshills/keychord/key"
)

// Decision reports what the handler did with a key.
type Decision uint8

const (
	// Passthrough means the key was not routed into the matcher; the
	// host should handle it normally.
	Passthrough Decision = iota

	// Armed means the key was the leader; chord keys follow.
	Armed

	// Pending means the key extended a possible chord.
	Pending

	// Matched means the key completed a chord and its action ran.
	Matched

	// Rejected means the key was routed into the matcher but matched
	// nothing. The host may replay it through default handling.
	Rejected

	// Consumed means a hook swallowed the key before matching.
	Consumed
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case Passthrough:
		return "passthrough"
	case Armed:
		return "armed"
	case Pending:
		return "pending"
	case Matched:
		return "matched"
	case Rejected:
		return "rejected"
	case Consumed:
		return "consumed"
	default:
		return "unknown"
	}
}

// Config configures a Handler.
type Config struct {
	// Leader is the activation key. While set, keys pass through until
	// the leader is pressed; the keys after it form the chord. The zero
	// Sym disables gating and routes every key into the matcher.
	Leader key.Sym

	// ChordTimeout abandons a half-entered chord after this much idle
	// time. Zero disables the timeout.
	ChordTimeout time.Duration
}

// Option configures a Handler at construction.
type Option func(*Config)

// WithLeader sets the activation key.
func WithLeader(sym key.Sym) Option {
	return func(c *Config) {
		c.Leader = sym
	}
}

// WithChordTimeout sets the idle timeout for pending chords.
func WithChordTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.ChordTimeout = d
	}
}

// Handler routes host key events into a chord matcher.
type Handler struct {
	mu sync.Mutex

	config  Config
	matcher *chord.Matcher
	hooks   []Hook
	metrics *Metrics

	// armed is true while keys are being routed into the matcher. A
	// leaderless handler is permanently armed.
	armed bool

	timer  *time.Timer
	closed bool
}

// NewHandler creates a handler over the given table.
func NewHandler(table *chord.Table, opts ...Option) *Handler {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Handler{
		config:  cfg,
		matcher: table.NewMatcher(),
		metrics: NewMetrics(),
		armed:   cfg.Leader.IsZero(),
	}
}

// HandleKey processes one key event from the host. The returned binding
// is non-nil only for Matched; its action has already run, synchronously,
// before HandleKey returns. Actions run while the handler lock is held
// and must not call back into the handler.
func (h *Handler) HandleKey(sym key.Sym) (Decision, *chord.Binding) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return Passthrough, nil
	}

	h.metrics.keys.Add(1)

	for _, hook := range h.hooks {
		if hook.PreKey(sym, h.matcher.Pending()) {
			h.metrics.hookConsumed.Add(1)
			return Consumed, nil
		}
	}

	if !h.armed {
		if sym != h.config.Leader {
			h.metrics.passthrough.Add(1)
			return Passthrough, nil
		}
		h.armed = true
		h.resetTimer()
		h.postKey(sym, chord.Outcome{State: chord.Pending})
		return Armed, nil
	}

	out := h.matcher.Feed(sym)
	h.postKey(sym, out)

	switch out.State {
	case chord.Pending:
		h.resetTimer()
		return Pending, nil
	case chord.Matched:
		h.settle()
		h.metrics.matches.Add(1)
		return Matched, out.Binding
	default:
		h.settle()
		h.metrics.rejected.Add(1)
		return Rejected, nil
	}
}

// Cancel discards any pending chord and disarms the handler. No action
// is invoked.
func (h *Handler) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	if h.matcher.InProgress() || (h.armed && !h.config.Leader.IsZero()) {
		h.metrics.cancels.Add(1)
	}
	h.matcher.Cancel()
	h.settle()
}

// Pending returns the keys of the chord currently in flight.
func (h *Handler) Pending() chord.Chord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.matcher.Pending()
}

// InChord returns true while the handler is collecting chord keys.
func (h *Handler) InChord() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.armed && !h.config.Leader.IsZero() || h.matcher.InProgress()
}

// AddHook registers a hook. Hooks run in registration order.
func (h *Handler) AddHook(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// RemoveHook unregisters a previously added hook.
func (h *Handler) RemoveHook(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, hk := range h.hooks {
		if hk == hook {
			h.hooks = append(h.hooks[:i], h.hooks[i+1:]...)
			return
		}
	}
}

// Metrics returns a snapshot of the handler's counters.
func (h *Handler) Metrics() Snapshot {
	return h.metrics.Snapshot()
}

// Close stops the timeout timer and makes further keys pass through.
func (h *Handler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.stopTimer()
}

// settle returns the handler to its resting state after a terminal
// outcome. Caller holds the lock.
func (h *Handler) settle() {
	h.armed = h.config.Leader.IsZero()
	h.stopTimer()
}

// postKey runs the observation hooks. Caller holds the lock.
func (h *Handler) postKey(sym key.Sym, out chord.Outcome) {
	for _, hook := range h.hooks {
		hook.PostKey(sym, out)
	}
}

// resetTimer restarts the idle timeout. Caller holds the lock.
func (h *Handler) resetTimer() {
	h.stopTimer()
	if h.config.ChordTimeout > 0 {
		h.timer = time.AfterFunc(h.config.ChordTimeout, h.timeout)
	}
}

// stopTimer stops the idle timeout. Caller holds the lock.
func (h *Handler) stopTimer() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

// timeout runs on the timer goroutine when a pending chord went idle.
func (h *Handler) timeout() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	if h.matcher.InProgress() || (h.armed && !h.config.Leader.IsZero()) {
		h.matcher.Cancel()
		h.settle()
		h.metrics.timeouts.Add(1)
	}
}
