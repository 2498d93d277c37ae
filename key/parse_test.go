package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Sym
	}{
		{"a", Char('a')},
		{"T", Char('t').With(ModShift)},
		{"@", Char('@')},
		{"Esc", Special(CodeEscape)},
		{"enter", Special(CodeEnter)},
		{"F5", Special(CodeF5)},
		{"Space", Char(' ')},
		{"C-s", Char('s').With(ModCtrl)},
		{"<C-s>", Char('s').With(ModCtrl)},
		{"<S-t>", Char('t').With(ModShift)},
		{"<C-S-p>", Char('p').With(ModCtrl | ModShift)},
		{"<M-Esc>", Special(CodeEscape).With(ModSuper)},
		{"<CR>", Special(CodeEnter)},
		{"<lt>", Char('<')},
		{"Ctrl+S", Char('s').With(ModCtrl)},
		{"Mod4+Enter", Special(CodeEnter).With(ModSuper)},
		{"Alt+F4", Special(CodeF4).With(ModAlt)},
		{"Shift+T", Char('t').With(ModShift)},
		{"-", Char('-')},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want error
	}{
		{"empty", "", ErrEmptySpec},
		{"blank", "   ", ErrEmptySpec},
		{"unknown name", "bogus", ErrInvalidSpec},
		{"unknown modifier", "X-s", ErrInvalidSpec},
		{"empty brackets", "<>", ErrInvalidSpec},
		{"multi rune", "gg", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestParseEqualNotations(t *testing.T) {
	// The same press written three ways must compare equal.
	specs := []string{"C-s", "<C-s>", "Ctrl+S"}

	first := MustParse(specs[0])
	for _, spec := range specs[1:] {
		if got := MustParse(spec); got != first {
			t.Errorf("MustParse(%q) = %#v, want %#v", spec, got, first)
		}
	}
}

func TestSpecRoundTrip(t *testing.T) {
	syms := []Sym{
		Char('a'),
		Char('t').With(ModShift),
		Char(' '),
		Char('<'),
		Special(CodeEscape),
		Special(CodeEnter).With(ModCtrl),
		Special(CodeF12).With(ModSuper | ModShift),
	}

	for _, s := range syms {
		got, err := Parse(s.Spec())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", s.Spec(), err)
		}
		if got != s {
			t.Errorf("Parse(%q) = %#v, want %#v", s.Spec(), got, s)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("not a key")
}
