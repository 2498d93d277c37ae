// Package term translates tcell terminal events into key symbols, keeping
// the public packages free of any terminal dependency.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/key"
)

// specialKeys maps tcell's named keys to key codes. Keys that double as
// control characters (Tab, Enter, Backspace) are resolved here before
// the generic Ctrl-letter range is consulted.
var specialKeys = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.CodeEscape,
	tcell.KeyEnter:      key.CodeEnter,
	tcell.KeyTab:        key.CodeTab,
	tcell.KeyBackspace:  key.CodeBackspace,
	tcell.KeyBackspace2: key.CodeBackspace,
	tcell.KeyDelete:     key.CodeDelete,
	tcell.KeyInsert:     key.CodeInsert,
	tcell.KeyHome:       key.CodeHome,
	tcell.KeyEnd:        key.CodeEnd,
	tcell.KeyPgUp:       key.CodePageUp,
	tcell.KeyPgDn:       key.CodePageDown,
	tcell.KeyUp:         key.CodeUp,
	tcell.KeyDown:       key.CodeDown,
	tcell.KeyLeft:       key.CodeLeft,
	tcell.KeyRight:      key.CodeRight,
	tcell.KeyF1:         key.CodeF1,
	tcell.KeyF2:         key.CodeF2,
	tcell.KeyF3:         key.CodeF3,
	tcell.KeyF4:         key.CodeF4,
	tcell.KeyF5:         key.CodeF5,
	tcell.KeyF6:         key.CodeF6,
	tcell.KeyF7:         key.CodeF7,
	tcell.KeyF8:         key.CodeF8,
	tcell.KeyF9:         key.CodeF9,
	tcell.KeyF10:        key.CodeF10,
	tcell.KeyF11:        key.CodeF11,
	tcell.KeyF12:        key.CodeF12,
}

// Translate converts a tcell key event to a Sym. The second return is
// false for keys the chord model does not represent.
func Translate(ev *tcell.EventKey) (key.Sym, bool) {
	mods := translateMods(ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		// key.Char folds uppercase into Shift, so a terminal that
		// reports 'T' and one that reports Shift+'t' produce the same
		// sym.
		return key.Char(ev.Rune()).With(mods), true
	}

	if code, ok := specialKeys[k]; ok {
		return key.Special(code).With(mods), true
	}

	if k == tcell.KeyCtrlSpace {
		return key.Char(' ').With(mods | key.ModCtrl), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.Char(r).With(mods | key.ModCtrl), true
	}

	return key.Sym{}, false
}

// translateMods converts a tcell modifier mask. tcell's Meta maps to
// Super.
func translateMods(m tcell.ModMask) key.Mod {
	var mods key.Mod
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}
	return mods
}
