package key

import "strings"

// Mod is a bitmask of held modifier keys.
type Mod uint8

const (
	// ModNone indicates no modifiers.
	ModNone Mod = 0

	// ModShift indicates the Shift key.
	ModShift Mod = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Mod1 in X11 terms).
	ModAlt

	// ModSuper indicates the Super key (Mod4 in X11 terms; Cmd on macOS,
	// Win on Windows).
	ModSuper
)

// Has returns true if m contains mod.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Mod) With(mod Mod) Mod {
	return m | mod
}

// Without returns m with mod removed.
func (m Mod) Without(mod Mod) Mod {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Mod) IsEmpty() bool {
	return m == ModNone
}

// String returns a readable representation like "Ctrl+Shift".
func (m Mod) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}

// Short returns the compact Vim-style representation like "C-S".
func (m Mod) Short() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if m.Has(ModShift) {
		parts = append(parts, "S")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "M")
	}
	return strings.Join(parts, "-")
}

// modNames maps modifier spec names (lowercase) to Mod values. The mod1/
// mod4 aliases follow the X11 naming used by window manager configs.
var modNames = map[string]Mod{
	"shift":   ModShift,
	"s":       ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"opt":     ModAlt,
	"option":  ModAlt,
	"mod1":    ModAlt,
	"super":   ModSuper,
	"meta":    ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
	"mod4":    ModSuper,
	"m":       ModSuper,
	"d":       ModSuper, // Vim's notation for the command key
}

// ModFromName returns the modifier for a name, case-insensitively.
// Returns ModNone for unrecognized names.
func ModFromName(name string) Mod {
	if m, ok := modNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}
