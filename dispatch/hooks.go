package dispatch

import (
	"github.com/dshills/keychord/chord"
	"github.com/dshills/keychord/key"
)

// Hook observes or intercepts keys flowing through a Handler.
type Hook interface {
	// PreKey runs before the key reaches the matcher. Returning true
	// consumes the key: matching is skipped and the handler reports
	// Consumed. pending holds the chord keys collected so far.
	PreKey(sym key.Sym, pending chord.Chord) bool

	// PostKey runs after the key was processed, with the matcher's
	// outcome. For the leader key the outcome is Pending.
	PostKey(sym key.Sym, out chord.Outcome)
}

// FuncHook adapts plain functions to the Hook interface. Nil fields are
// skipped.
type FuncHook struct {
	Pre  func(sym key.Sym, pending chord.Chord) bool
	Post func(sym key.Sym, out chord.Outcome)
}

// PreKey implements Hook.
func (f *FuncHook) PreKey(sym key.Sym, pending chord.Chord) bool {
	if f.Pre == nil {
		return false
	}
	return f.Pre(sym, pending)
}

// PostKey implements Hook.
func (f *FuncHook) PostKey(sym key.Sym, out chord.Outcome) {
	if f.Post == nil {
		return
	}
	f.Post(sym, out)
}
