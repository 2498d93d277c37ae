package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key spec")
	ErrInvalidSpec = errors.New("invalid key spec")
)

// Parse parses a key spec string into a Sym.
//
// Supported formats:
//   - Single character: "a", "T", "@"
//   - Key names: "Enter", "Esc", "Space", "F5"
//   - Readable modifiers: "Ctrl+S", "Alt+F4", "Mod4+Enter"
//   - Vim style: "C-s", "<C-s>", "<M-Esc>", "<CR>"
func Parse(spec string) (Sym, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Sym{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseHyphenated(spec[1 : len(spec)-1])
	}
	if strings.Contains(spec, "+") {
		return parsePlus(spec)
	}
	// Bare "C-s" style, but not a lone "-" or a name like "F1".
	if strings.Contains(spec, "-") && len(spec) > 1 && CodeFromName(spec) == CodeNone {
		return parseHyphenated(spec)
	}
	return parseBare(spec)
}

// MustParse parses a key spec and panics on error. For known-valid specs
// in initialization code.
func MustParse(spec string) Sym {
	s, err := Parse(spec)
	if err != nil {
		panic("key: invalid spec " + spec + ": " + err.Error())
	}
	return s
}

// parseHyphenated handles "C-s", "M-S-Enter" and the inner part of
// angle-bracket notation.
func parseHyphenated(inner string) (Sym, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Sym{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	base := parts[len(parts)-1]
	var mods Mod
	for _, p := range parts[:len(parts)-1] {
		mod := ModFromName(p)
		if mod == ModNone {
			return Sym{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseBase(base, mods)
}

// parsePlus handles "Ctrl+Shift+P" style specs.
func parsePlus(spec string) (Sym, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Sym{}, ErrInvalidSpec
	}

	base := parts[len(parts)-1]
	var mods Mod
	for _, p := range parts[:len(parts)-1] {
		mod := ModFromName(p)
		if mod == ModNone {
			return Sym{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseBase(base, mods)
}

// parseBare handles a spec with no modifier separators: a single
// character or a key name.
func parseBare(spec string) (Sym, error) {
	return parseBase(spec, ModNone)
}

// parseBase resolves the base key part with an already-parsed modifier
// mask.
func parseBase(base string, mods Mod) (Sym, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return Sym{}, ErrInvalidSpec
	}

	if code := CodeFromName(base); code != CodeNone {
		return Sym{Code: code, Mods: mods}, nil
	}

	// Named character aliases that would collide with the key spec syntax.
	switch strings.ToLower(base) {
	case "space":
		return Sym{Code: CodeRune, Rune: ' ', Mods: mods}, nil
	case "lt":
		return Sym{Code: CodeRune, Rune: '<', Mods: mods}, nil
	case "gt":
		return Sym{Code: CodeRune, Rune: '>', Mods: mods}, nil
	case "bar":
		return Sym{Code: CodeRune, Rune: '|', Mods: mods}, nil
	case "minus":
		return Sym{Code: CodeRune, Rune: '-', Mods: mods}, nil
	}

	runes := []rune(base)
	if len(runes) != 1 {
		return Sym{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, base)
	}
	return Char(runes[0]).With(mods), nil
}
