package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/keychord/chord"
	"github.com/dshills/keychord/dispatch"
	"github.com/dshills/keychord/key"
)

// Bindings file errors.
var (
	ErrInvalidJSON   = errors.New("bindings file is not valid JSON")
	ErrMissingKeys   = errors.New("binding has no keys")
	ErrMissingAction = errors.New("binding has no action")
	ErrUnknownAction = errors.New("unknown action")
)

// Resolver turns an action name from a bindings file into a callable.
type Resolver func(name string) (chord.Action, error)

// BindingSpec is one entry of a bindings file.
type BindingSpec struct {
	Keys        string
	Action      string
	Description string
}

// ChordFile is the parsed content of a bindings file.
type ChordFile struct {
	// Leader is the spec of the activation key, empty for none.
	Leader string

	// Timeout abandons pending chords after this idle time. Zero
	// disables the timeout.
	Timeout time.Duration

	// Bindings are the chord-to-action entries in file order.
	Bindings []BindingSpec
}

// ParseChordFile parses bindings-file JSON.
func ParseChordFile(data []byte) (*ChordFile, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	cf := &ChordFile{
		Leader:  gjson.GetBytes(data, "leader").String(),
		Timeout: time.Duration(gjson.GetBytes(data, "timeout_ms").Int()) * time.Millisecond,
	}

	var parseErr error
	gjson.GetBytes(data, "bindings").ForEach(func(i, entry gjson.Result) bool {
		spec := BindingSpec{
			Keys:        entry.Get("keys").String(),
			Action:      entry.Get("action").String(),
			Description: entry.Get("description").String(),
		}
		if spec.Keys == "" {
			parseErr = fmt.Errorf("binding %d: %w", int(i.Int()), ErrMissingKeys)
			return false
		}
		if spec.Action == "" {
			parseErr = fmt.Errorf("binding %d (%s): %w", int(i.Int()), spec.Keys, ErrMissingAction)
			return false
		}
		cf.Bindings = append(cf.Bindings, spec)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if cf.Leader != "" {
		if _, err := key.Parse(cf.Leader); err != nil {
			return nil, fmt.Errorf("leader: %w", err)
		}
	}
	return cf, nil
}

// LoadChordFile reads and parses a bindings file.
func LoadChordFile(path string) (*ChordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings file: %w", err)
	}
	cf, err := ParseChordFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cf, nil
}

// Encode renders the file back to JSON.
func (f *ChordFile) Encode() ([]byte, error) {
	out := []byte("{}")
	var err error

	if f.Leader != "" {
		if out, err = sjson.SetBytes(out, "leader", f.Leader); err != nil {
			return nil, err
		}
	}
	if f.Timeout > 0 {
		if out, err = sjson.SetBytes(out, "timeout_ms", f.Timeout.Milliseconds()); err != nil {
			return nil, err
		}
	}
	for _, b := range f.Bindings {
		entry := map[string]any{
			"keys":   b.Keys,
			"action": b.Action,
		}
		if b.Description != "" {
			entry["description"] = b.Description
		}
		if out, err = sjson.SetBytes(out, "bindings.-1", entry); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Save writes the file to disk as JSON.
func (f *ChordFile) Save(path string) error {
	data, err := f.Encode()
	if err != nil {
		return fmt.Errorf("encoding bindings file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing bindings file: %w", err)
	}
	return nil
}

// Table resolves every action name and builds the chord table. Table
// options such as chord.AllowShadowing pass through to chord.NewTable.
func (f *ChordFile) Table(resolve Resolver, opts ...chord.TableOption) (*chord.Table, error) {
	bindings := make([]chord.Binding, 0, len(f.Bindings))
	for _, spec := range f.Bindings {
		c, err := chord.ParseChord(spec.Keys)
		if err != nil {
			return nil, err
		}
		action, err := resolve(spec.Action)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", spec.Keys, err)
		}
		bindings = append(bindings, chord.Binding{
			Chord:       c,
			Do:          action,
			Name:        spec.Action,
			Description: spec.Description,
		})
	}
	return chord.NewTable(bindings, opts...)
}

// HandlerOptions converts the file's leader and timeout settings into
// dispatch options.
func (f *ChordFile) HandlerOptions() ([]dispatch.Option, error) {
	var opts []dispatch.Option
	if f.Leader != "" {
		leader, err := key.Parse(f.Leader)
		if err != nil {
			return nil, fmt.Errorf("leader: %w", err)
		}
		opts = append(opts, dispatch.WithLeader(leader))
	}
	if f.Timeout > 0 {
		opts = append(opts, dispatch.WithChordTimeout(f.Timeout))
	}
	return opts, nil
}
