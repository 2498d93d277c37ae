package key

import (
	"fmt"
	"strings"
)

// Code identifies a base key. Character keys use CodeRune with the
// character stored in Sym.Rune; everything else is a named special key.
type Code uint8

const (
	// CodeNone represents no key.
	CodeNone Code = iota

	// Editing and navigation keys
	CodeEscape
	CodeEnter
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	// Arrow keys
	CodeUp
	CodeDown
	CodeLeft
	CodeRight

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	// CodeRune marks a character key. The character itself lives in
	// Sym.Rune.
	CodeRune
)

// codeNames holds the canonical display name for each special key.
var codeNames = map[Code]string{
	CodeNone:      "None",
	CodeEscape:    "Esc",
	CodeEnter:     "Enter",
	CodeTab:       "Tab",
	CodeBackspace: "BS",
	CodeDelete:    "Del",
	CodeInsert:    "Ins",
	CodeHome:      "Home",
	CodeEnd:       "End",
	CodePageUp:    "PgUp",
	CodePageDown:  "PgDn",
	CodeUp:        "Up",
	CodeDown:      "Down",
	CodeLeft:      "Left",
	CodeRight:     "Right",
	CodeF1:        "F1",
	CodeF2:        "F2",
	CodeF3:        "F3",
	CodeF4:        "F4",
	CodeF5:        "F5",
	CodeF6:        "F6",
	CodeF7:        "F7",
	CodeF8:        "F8",
	CodeF9:        "F9",
	CodeF10:       "F10",
	CodeF11:       "F11",
	CodeF12:       "F12",
	CodeRune:      "Rune",
}

// codeAliases maps spec names (lowercase) to codes, including the common
// Vim aliases.
var codeAliases = map[string]Code{
	"esc":       CodeEscape,
	"escape":    CodeEscape,
	"enter":     CodeEnter,
	"return":    CodeEnter,
	"cr":        CodeEnter,
	"tab":       CodeTab,
	"bs":        CodeBackspace,
	"backspace": CodeBackspace,
	"del":       CodeDelete,
	"delete":    CodeDelete,
	"ins":       CodeInsert,
	"insert":    CodeInsert,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pgup":      CodePageUp,
	"pageup":    CodePageUp,
	"pgdn":      CodePageDown,
	"pagedown":  CodePageDown,
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"f1":        CodeF1,
	"f2":        CodeF2,
	"f3":        CodeF3,
	"f4":        CodeF4,
	"f5":        CodeF5,
	"f6":        CodeF6,
	"f7":        CodeF7,
	"f8":        CodeF8,
	"f9":        CodeF9,
	"f10":       CodeF10,
	"f11":       CodeF11,
	"f12":       CodeF12,
}

// String returns the canonical display name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", c)
}

// IsSpecial returns true for named non-character keys.
func (c Code) IsSpecial() bool {
	return c != CodeNone && c != CodeRune
}

// IsFunction returns true for the function keys F1-F12.
func (c Code) IsFunction() bool {
	return c >= CodeF1 && c <= CodeF12
}

// IsArrow returns true for the arrow keys.
func (c Code) IsArrow() bool {
	return c >= CodeUp && c <= CodeRight
}

// CodeFromName returns the code for a key name, case-insensitively.
// Returns CodeNone for unrecognized names.
func CodeFromName(name string) Code {
	if c, ok := codeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CodeNone
}
