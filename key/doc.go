// Package key defines the key symbol model used by the chord matcher.
//
// A Sym is one discrete key press: a base key (either a character rune or
// a special key code) combined with a modifier mask. Syms are plain
// comparable values; two Syms are equal exactly when their code, rune and
// modifiers are equal, so they can be compared with == and used as map
// keys.
//
// Key specs can be written in three notations, all accepted by Parse:
//
//	"a"        - Single character
//	"C-s"      - Ctrl+S (Vim notation)
//	"<C-s>"    - Ctrl+S (angle bracket notation)
//	"Ctrl+S"   - Ctrl+S (readable notation)
//	"<M-Esc>"  - Super+Escape
//
// Character syms are stored in lowercase with Shift folded into the
// modifier mask, so "T", "<S-t>" and "Shift+T" all parse to the same
// value.
package key
