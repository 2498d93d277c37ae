// Package dispatch connects a chord matcher to a host event loop.
//
// The Handler sits between the host's key events and a chord.Matcher. It
// optionally gates matching behind a leader key (keys pass through
// untouched until the leader arrives), abandons half-entered chords after
// a configurable idle timeout, lets hooks observe or veto keys, and
// counts what happened for diagnostics.
//
//	handler := dispatch.NewHandler(table,
//	    dispatch.WithLeader(key.MustParse("<C-t>")),
//	    dispatch.WithChordTimeout(time.Second),
//	)
//	defer handler.Close()
//
//	for sym := range events {
//	    switch d, _ := handler.HandleKey(sym); d {
//	    case dispatch.Passthrough, dispatch.Rejected:
//	        // route the key to default handling
//	    }
//	}
//
// The handler serializes access internally: the host event loop and the
// timeout timer may touch it concurrently. The matcher underneath stays
// single-owner.
package dispatch
