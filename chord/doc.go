// Package chord implements key-chord matching: mapping ordered sequences
// of key presses to actions.
//
// A Chord is a non-empty sequence of key symbols ("g g", "C-x C-s"). A
// Table is an immutable set of chord-to-action bindings, validated at
// construction. A Matcher consumes key presses one at a time and reports,
// per press, whether the input so far is dead (NoMatch), still in flight
// (Pending), or has completed a binding (Matched) - in which case the
// bound action has already been invoked.
//
// # Matching
//
// The matcher tracks the keys received since the last terminal outcome.
// Each fed key either extends a possible chord, completes exactly one
// binding, or kills the attempt; both completion and failure reset the
// matcher so the next key starts a fresh attempt. A completed binding
// fires immediately, even when a longer chord shares the prefix (tables
// reject that configuration unless AllowShadowing is set).
//
// # Usage
//
//	table, err := chord.NewTable([]chord.Binding{
//	    {Chord: chord.MustParseChord("i k"), Do: openTerminal},
//	    {Chord: chord.MustParseChord("i w"), Do: openBrowser},
//	})
//	if err != nil {
//	    // duplicate or conflicting chords
//	}
//
//	m := table.NewMatcher()
//	for sym := range presses {
//	    switch out := m.Feed(sym); out.State {
//	    case chord.Matched:
//	        // out.Binding.Do already ran
//	    case chord.NoMatch:
//	        // fall back to default key handling
//	    }
//	}
//
// A Matcher is owned by a single event-dispatch goroutine and is not safe
// for concurrent use; the Table it was built from is immutable and may be
// shared.
package chord
