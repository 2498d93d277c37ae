package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/keychord/chord"
)

func TestBindCollectsBindings(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	err := e.LoadString(`
		kicks = 0
		keychord.bind("i k", function() kicks = kicks + 1 end, "terminal")
		keychord.bind("<C-x><C-s>", function() end)
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	bindings := e.Bindings()
	if len(bindings) != 2 {
		t.Fatalf("len(Bindings) = %d, want 2", len(bindings))
	}
	if !bindings[0].Chord.Equal(chord.MustParseChord("i k")) {
		t.Errorf("chord = %v, want i k", bindings[0].Chord)
	}
	if bindings[0].Description != "terminal" {
		t.Errorf("description = %q, want %q", bindings[0].Description, "terminal")
	}
	if !bindings[1].Chord.Equal(chord.MustParseChord("C-x C-s")) {
		t.Errorf("chord = %v, want C-x C-s", bindings[1].Chord)
	}
}

func TestBoundActionRuns(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	err := e.LoadString(`
		count = 0
		keychord.bind("g g", function() count = count + 1 end)
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	do := e.Bindings()[0].Do
	do()
	do()

	// Read the counter back out of the interpreter.
	if err := e.LoadString(`assert(count == 2, "count is " .. count)`); err != nil {
		t.Errorf("action should have run twice: %v", err)
	}
}

func TestBindRejectsBadChord(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	err := e.LoadString(`keychord.bind("<bogus>", function() end)`)
	if err == nil {
		t.Fatal("bind with an invalid chord spec should fail the script")
	}
	if len(e.Bindings()) != 0 {
		t.Error("failed bind should not be collected")
	}
}

func TestNamedActions(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	err := e.LoadString(`
		opened = false
		keychord.action("browser", function() opened = true end)
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	action, err := e.Resolve("browser")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	action()

	if err := e.LoadString(`assert(opened)`); err != nil {
		t.Errorf("named action should have run: %v", err)
	}

	if _, err := e.Resolve("nosuch"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Resolve(nosuch) error = %v, want %v", err, ErrUnknownAction)
	}
}

func TestActionRuntimeErrorReported(t *testing.T) {
	var gotLabel string
	var gotErr error
	e := NewEngine(WithErrorHandler(func(label string, err error) {
		gotLabel = label
		gotErr = err
	}))
	defer e.Close()

	err := e.LoadString(`keychord.bind("x x", function() error("boom") end)`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	e.Bindings()[0].Do()

	if gotErr == nil || !strings.Contains(gotErr.Error(), "boom") {
		t.Errorf("error handler got %v, want the lua error", gotErr)
	}
	if gotLabel != "x x" {
		t.Errorf("error label = %q, want %q", gotLabel, "x x")
	}
}

func TestSandboxBlocksCodeLoading(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	for _, call := range []string{
		`dofile("/etc/passwd")`,
		`loadfile("x")`,
		`load("return 1")`,
	} {
		if err := e.LoadString(call); err == nil {
			t.Errorf("%s should fail in the sandbox", call)
		}
	}
}

func TestSafeLibrariesAvailable(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	err := e.LoadString(`
		assert(string.upper("ik") == "IK")
		assert(math.max(1, 2) == 2)
		assert(#({"a", "b"}) == 2)
	`)
	if err != nil {
		t.Errorf("safe libraries should be open: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.lua")
	script := `keychord.bind("j j", function() end)`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewEngine()
	defer e.Close()

	if err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(e.Bindings()) != 1 {
		t.Errorf("len(Bindings) = %d, want 1", len(e.Bindings()))
	}
}

func TestClosedEngine(t *testing.T) {
	var gotErr error
	e := NewEngine(WithErrorHandler(func(_ string, err error) {
		gotErr = err
	}))

	if err := e.LoadString(`keychord.bind("a", function() end)`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	do := e.Bindings()[0].Do

	e.Close()

	if err := e.LoadString(`x = 1`); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("LoadString after Close = %v, want %v", err, ErrEngineClosed)
	}

	do()
	if !errors.Is(gotErr, ErrEngineClosed) {
		t.Errorf("action after Close reported %v, want %v", gotErr, ErrEngineClosed)
	}
}
