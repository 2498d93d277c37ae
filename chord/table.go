package chord

import (
	"errors"
	"fmt"

	"github.com/dshills/keychord/key"
)

// Table construction errors. NewTable wraps them with the offending
// chord; test with errors.Is.
var (
	ErrEmptyChord     = errors.New("empty chord")
	ErrNilAction      = errors.New("binding has no action")
	ErrDuplicateChord = errors.New("duplicate chord")
	ErrShadowedChord  = errors.New("chord is a prefix of another chord")
)

// TableOption configures table construction.
type TableOption func(*tableConfig)

type tableConfig struct {
	allowShadowing bool
}

// AllowShadowing permits one chord to be a strict prefix of another.
// The shorter chord fires as soon as it completes, so the longer chord
// becomes unreachable (shortest-wins). Without this option such a
// configuration is rejected with ErrShadowedChord.
func AllowShadowing() TableOption {
	return func(c *tableConfig) {
		c.allowShadowing = true
	}
}

// node is one level of the chord prefix tree. A node holds a binding when
// a chord ends there; children continue longer chords through it.
type node struct {
	children map[key.Sym]*node
	binding  *Binding
}

func newNode() *node {
	return &node{children: make(map[key.Sym]*node)}
}

// Table is an immutable set of chord bindings. Built once by NewTable and
// never mutated, it may be shared by any number of matchers.
type Table struct {
	bindings []Binding
	root     *node
}

// NewTable validates the bindings and builds the lookup tree.
//
// Every binding must have a non-empty chord and a non-nil action. Two
// bindings with the same chord are rejected with ErrDuplicateChord. A
// chord that is a strict prefix of another is rejected with
// ErrShadowedChord unless AllowShadowing is given.
func NewTable(bindings []Binding, opts ...TableOption) (*Table, error) {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		bindings: make([]Binding, len(bindings)),
		root:     newNode(),
	}
	copy(t.bindings, bindings)

	for i := range t.bindings {
		b := &t.bindings[i]
		if len(b.Chord) == 0 {
			return nil, fmt.Errorf("binding %d: %w", i, ErrEmptyChord)
		}
		if b.Do == nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Chord, ErrNilAction)
		}
		if err := t.insert(b, cfg.allowShadowing); err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Chord, err)
		}
	}
	return t, nil
}

// insert adds one binding to the tree, detecting conflicts on the way
// down.
func (t *Table) insert(b *Binding, allowShadowing bool) error {
	n := t.root
	for i, sym := range b.Chord {
		child, ok := n.children[sym]
		if !ok {
			child = newNode()
			n.children[sym] = child
		}
		n = child

		// A bound interior node means this chord extends an existing
		// binding; the final node is judged after the loop.
		interior := i < len(b.Chord)-1
		if interior && n.binding != nil && !allowShadowing {
			return fmt.Errorf("%w: shadowed by %s", ErrShadowedChord, n.binding.Chord)
		}
	}

	if n.binding != nil {
		return ErrDuplicateChord
	}
	if len(n.children) > 0 && !allowShadowing {
		return fmt.Errorf("%w: shadows a longer chord", ErrShadowedChord)
	}
	n.binding = b
	return nil
}

// Len returns the number of bindings in the table.
func (t *Table) Len() int {
	return len(t.bindings)
}

// Bindings returns a copy of the table's bindings.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Lookup returns the binding for an exact chord, or nil.
func (t *Table) Lookup(c Chord) *Binding {
	n := t.walk(c)
	if n == nil {
		return nil
	}
	return n.binding
}

// HasPrefix returns true if any binding's chord starts with c.
func (t *Table) HasPrefix(c Chord) bool {
	n := t.walk(c)
	return n != nil && (n.binding != nil || len(n.children) > 0)
}

// walk follows c through the tree, returning nil if it leaves the tree.
func (t *Table) walk(c Chord) *node {
	n := t.root
	for _, sym := range c {
		child, ok := n.children[sym]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// NewMatcher returns a fresh matcher over this table.
func (t *Table) NewMatcher() *Matcher {
	return &Matcher{table: t, cur: t.root}
}
