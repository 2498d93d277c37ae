package key

import (
	"strings"
	"unicode"
)

// Sym is one discrete key press: a base key plus a modifier mask.
// It is a comparable value type; equality is plain ==.
type Sym struct {
	// Code identifies the base key. CodeRune for character keys.
	Code Code

	// Rune is the character for CodeRune syms, always lowercase for
	// letters (Shift lives in Mods).
	Rune rune

	// Mods is the modifier mask held during the press.
	Mods Mod
}

// Char returns the sym for a character key. Uppercase letters are
// normalized to lowercase plus ModShift so that 'T' and Shift+'t'
// compare equal.
func Char(r rune) Sym {
	var mods Mod
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mods = ModShift
	}
	return Sym{Code: CodeRune, Rune: r, Mods: mods}
}

// Special returns the sym for a named non-character key.
func Special(c Code) Sym {
	return Sym{Code: c}
}

// With returns a copy of the sym with mod added to its mask.
func (s Sym) With(mod Mod) Sym {
	s.Mods = s.Mods.With(mod)
	return s
}

// IsRune returns true for character syms.
func (s Sym) IsRune() bool {
	return s.Code == CodeRune && s.Rune != 0
}

// IsZero returns true for the zero Sym, which represents no key.
func (s Sym) IsZero() bool {
	return s == Sym{}
}

// baseName returns the display name of the base key without modifiers.
func (s Sym) baseName() string {
	if s.Code == CodeRune {
		if s.Rune == ' ' {
			return "Space"
		}
		return string(s.Rune)
	}
	return s.Code.String()
}

// String returns the canonical Vim-style name, e.g. "a", "C-s", "S-t",
// "M-Enter".
func (s Sym) String() string {
	if short := s.Mods.Short(); short != "" {
		return short + "-" + s.baseName()
	}
	return s.baseName()
}

// Spec returns a form that Parse accepts. Plain characters are returned
// bare; everything else is wrapped in angle brackets: "<C-s>", "<Esc>".
func (s Sym) Spec() string {
	if s.IsRune() && s.Mods.IsEmpty() && s.Rune != ' ' && s.Rune != '<' {
		return string(s.Rune)
	}
	return "<" + s.String() + ">"
}

// Join renders a slice of syms space-separated, e.g. "C-x C-s".
func Join(syms []Sym) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
