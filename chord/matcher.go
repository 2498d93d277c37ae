package chord

import (
	"fmt"

	"github.com/dshills/keychord/key"
)

// State classifies the result of feeding one key into a matcher.
type State uint8

const (
	// NoMatch means the keys received can no longer complete any chord.
	// The matcher has reset.
	NoMatch State = iota

	// Pending means the keys received so far are a prefix of at least
	// one chord and the matcher is waiting for more.
	Pending

	// Matched means a chord completed. Its action has already run and
	// the matcher has reset.
	Matched
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NoMatch:
		return "no-match"
	case Pending:
		return "pending"
	case Matched:
		return "matched"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Outcome is the per-key result of Feed.
type Outcome struct {
	// State says whether the attempt died, continues, or completed.
	State State

	// Binding is the completed binding when State is Matched, nil
	// otherwise.
	Binding *Binding
}

// Matcher tracks progress through the chords of one Table as key presses
// arrive. It owns the match state exclusively: the state resets after
// every terminal outcome (match, mismatch, cancel), leaving the matcher
// indistinguishable from a fresh one.
//
// A matcher is meant to be driven by a single event-dispatch goroutine
// and is not safe for concurrent use. Independent matchers over the same
// table do not share state.
type Matcher struct {
	table   *Table
	cur     *node
	pending Chord
}

// Feed consumes the next key press and reports the outcome.
//
// The key either walks deeper into the chord tree (Pending), completes a
// binding (Matched, with the action invoked synchronously before Feed
// returns), or falls off the tree (NoMatch). Matched and NoMatch both
// reset the matcher.
func (m *Matcher) Feed(sym key.Sym) Outcome {
	child, ok := m.cur.children[sym]
	if !ok {
		m.reset()
		return Outcome{State: NoMatch}
	}

	m.cur = child
	m.pending = append(m.pending, sym)

	// A completed chord fires immediately, even when a longer chord
	// shares this prefix (shortest-wins under AllowShadowing).
	if b := child.binding; b != nil {
		m.reset()
		b.Do()
		return Outcome{State: Matched, Binding: b}
	}
	return Outcome{State: Pending}
}

// Cancel unconditionally discards any in-progress chord. No action is
// invoked. Use it when the host detects an interruption such as focus
// loss or an idle timeout.
func (m *Matcher) Cancel() {
	m.reset()
}

// Pending returns a copy of the keys received since the last terminal
// outcome. Empty when the matcher is at rest.
func (m *Matcher) Pending() Chord {
	return m.pending.Clone()
}

// InProgress returns true while a partially-entered chord is pending.
func (m *Matcher) InProgress() bool {
	return len(m.pending) > 0
}

// Table returns the table this matcher was built from.
func (m *Matcher) Table() *Table {
	return m.table
}

func (m *Matcher) reset() {
	m.cur = m.table.root
	m.pending = m.pending[:0]
}
