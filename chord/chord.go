package chord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/keychord/key"
)

// Chord is an ordered sequence of key symbols that together denote one
// bound action. A chord in a Table is never empty.
type Chord []key.Sym

// ParseChord parses a chord spec into a Chord. Keys may be separated by
// spaces ("g g", "C-x C-s") or written as a continuous Vim-style run
// ("gg", "<C-x><C-s>").
func ParseChord(s string) (Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyChord
	}

	if strings.Contains(s, " ") {
		parts := strings.Fields(s)
		c := make(Chord, 0, len(parts))
		for _, part := range parts {
			sym, err := key.Parse(part)
			if err != nil {
				return nil, fmt.Errorf("chord %q: %w", s, err)
			}
			c = append(c, sym)
		}
		return c, nil
	}

	// Continuous run: bare characters with embedded <...> specs.
	var c Chord
	for i := 0; i < len(s); {
		if s[i] == '<' {
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				// No closing bracket, treat as a literal <.
				c = append(c, key.Char('<'))
				i++
				continue
			}
			sym, err := key.Parse(s[i : i+end+1])
			if err != nil {
				return nil, fmt.Errorf("chord %q: %w", s, err)
			}
			c = append(c, sym)
			i += end + 1
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("chord %q: %w", s, key.ErrInvalidSpec)
		}
		c = append(c, key.Char(r))
		i += size
	}
	return c, nil
}

// MustParseChord parses a chord spec and panics on error. For known-valid
// specs in initialization code.
func MustParseChord(s string) Chord {
	c, err := ParseChord(s)
	if err != nil {
		panic("chord: invalid spec " + s + ": " + err.Error())
	}
	return c
}

// String returns the space-separated canonical form, e.g. "g g", "C-x C-s".
func (c Chord) String() string {
	return key.Join(c)
}

// Equal returns true if both chords contain the same syms in order.
func (c Chord) Equal(other Chord) bool {
	if len(c) != len(other) {
		return false
	}
	for i, s := range c {
		if s != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if c begins with prefix.
func (c Chord) HasPrefix(prefix Chord) bool {
	if len(prefix) > len(c) {
		return false
	}
	for i, s := range prefix {
		if s != c[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the chord.
func (c Chord) Clone() Chord {
	if c == nil {
		return nil
	}
	out := make(Chord, len(c))
	copy(out, c)
	return out
}
