package chord

// Action is the callback invoked when a chord completes. It takes no
// arguments and returns nothing; anything the action needs is captured by
// the closure.
type Action func()

// Binding pairs one chord with one action.
type Binding struct {
	// Chord is the key sequence that triggers this binding.
	Chord Chord

	// Do is invoked, exactly once, when the chord completes.
	Do Action

	// Name is an optional identifier, used by config files and status
	// displays. Matching ignores it.
	Name string

	// Description documents the binding for display purposes.
	Description string
}

// Bind builds a binding from a chord spec. It panics on an invalid spec;
// use NewTable's validation for untrusted input.
func Bind(spec string, action Action) Binding {
	return Binding{Chord: MustParseChord(spec), Do: action}
}

// WithName returns a copy of the binding with the given name.
func (b Binding) WithName(name string) Binding {
	b.Name = name
	return b
}

// WithDescription returns a copy of the binding with the given
// description.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Label returns the best display label for the binding: the name if set,
// otherwise the chord spelling.
func (b Binding) Label() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Chord.String()
}
