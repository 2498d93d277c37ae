package dispatch

import (
	"testing"
	"time"

	"github.com/dshills/keychord/chord"
	"github.com/dshills/keychord/key"
)

func testTable(t *testing.T, fired map[string]int) *chord.Table {
	t.Helper()

	bind := func(spec string) chord.Binding {
		name := chord.MustParseChord(spec).String()
		return chord.Binding{
			Chord: chord.MustParseChord(spec),
			Name:  name,
			Do:    func() { fired[name]++ },
		}
	}

	table, err := chord.NewTable([]chord.Binding{
		bind("i k"),
		bind("i w"),
		bind("j j"),
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

func TestLeaderlessHandlerRoutesEverything(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired))
	defer h.Close()

	if d, _ := h.HandleKey(key.Char('i')); d != Pending {
		t.Fatalf("HandleKey(i) = %v, want pending", d)
	}
	d, b := h.HandleKey(key.Char('k'))
	if d != Matched {
		t.Fatalf("HandleKey(k) = %v, want matched", d)
	}
	if b == nil || b.Name != "i k" {
		t.Errorf("binding = %v, want i k", b)
	}
	if fired["i k"] != 1 {
		t.Errorf("action fired %d times, want 1", fired["i k"])
	}
}

func TestLeaderGating(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired), WithLeader(key.MustParse("<C-t>")))
	defer h.Close()

	// Keys before the leader pass through untouched.
	if d, _ := h.HandleKey(key.Char('i')); d != Passthrough {
		t.Fatalf("HandleKey(i) before leader = %v, want passthrough", d)
	}
	if fired["i k"] != 0 {
		t.Error("no action should fire before the leader")
	}

	// The leader arms the handler.
	if d, _ := h.HandleKey(key.MustParse("<C-t>")); d != Armed {
		t.Fatalf("HandleKey(leader) = %v, want armed", d)
	}
	if !h.InChord() {
		t.Error("handler should report InChord after the leader")
	}

	// Chord keys now route into the matcher.
	h.HandleKey(key.Char('i'))
	if d, _ := h.HandleKey(key.Char('k')); d != Matched {
		t.Fatalf("HandleKey(k) = %v, want matched", d)
	}
	if fired["i k"] != 1 {
		t.Errorf("action fired %d times, want 1", fired["i k"])
	}

	// After the match the gate closes again.
	if d, _ := h.HandleKey(key.Char('j')); d != Passthrough {
		t.Errorf("HandleKey(j) after match = %v, want passthrough", d)
	}
}

func TestRejectedDisarms(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired), WithLeader(key.MustParse("<C-t>")))
	defer h.Close()

	h.HandleKey(key.MustParse("<C-t>"))
	if d, _ := h.HandleKey(key.Char('x')); d != Rejected {
		t.Fatalf("HandleKey(x) = %v, want rejected", d)
	}
	if h.InChord() {
		t.Error("rejected key should disarm the handler")
	}
	if d, _ := h.HandleKey(key.Char('i')); d != Passthrough {
		t.Errorf("key after rejection = %v, want passthrough", d)
	}
}

func TestCancelClearsPending(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired))
	defer h.Close()

	h.HandleKey(key.Char('i'))
	if got := h.Pending(); !got.Equal(chord.MustParseChord("i")) {
		t.Fatalf("Pending() = %v, want i", got)
	}

	h.Cancel()
	if len(h.Pending()) != 0 {
		t.Error("Cancel should clear the pending chord")
	}

	// A fresh chord still works.
	h.HandleKey(key.Char('i'))
	if d, _ := h.HandleKey(key.Char('w')); d != Matched {
		t.Errorf("chord after cancel = %v, want matched", d)
	}
	if fired["i w"] != 1 {
		t.Errorf("action fired %d times, want 1", fired["i w"])
	}
}

func TestChordTimeout(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired), WithChordTimeout(20*time.Millisecond))
	defer h.Close()

	h.HandleKey(key.Char('i'))

	deadline := time.Now().Add(time.Second)
	for len(h.Pending()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("pending chord not abandoned by timeout")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := h.Metrics().Timeouts; got != 1 {
		t.Errorf("Timeouts = %d, want 1", got)
	}
	if fired["i k"] != 0 || fired["i w"] != 0 {
		t.Error("timeout must not invoke any action")
	}

	// The matcher starts fresh after the timeout.
	h.HandleKey(key.Char('i'))
	if d, _ := h.HandleKey(key.Char('k')); d != Matched {
		t.Errorf("chord after timeout = %v, want matched", d)
	}
}

func TestTimeoutResetOnEachKey(t *testing.T) {
	fired := make(map[string]int)
	table, err := chord.NewTable([]chord.Binding{
		{Chord: chord.MustParseChord("a b c"), Do: func() { fired["a b c"]++ }},
	})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	h := NewHandler(table, WithChordTimeout(60*time.Millisecond))
	defer h.Close()

	// Each key arrives inside the window; the chord must survive even
	// though the total exceeds one timeout span.
	h.HandleKey(key.Char('a'))
	time.Sleep(30 * time.Millisecond)
	h.HandleKey(key.Char('b'))
	time.Sleep(30 * time.Millisecond)
	if d, _ := h.HandleKey(key.Char('c')); d != Matched {
		t.Fatalf("HandleKey(c) = %v, want matched", d)
	}
	if fired["a b c"] != 1 {
		t.Errorf("action fired %d times, want 1", fired["a b c"])
	}
}

func TestHooks(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired))
	defer h.Close()

	var observed []chord.State
	blockZ := &FuncHook{
		Pre: func(sym key.Sym, _ chord.Chord) bool {
			return sym == key.Char('z')
		},
		Post: func(_ key.Sym, out chord.Outcome) {
			observed = append(observed, out.State)
		},
	}
	h.AddHook(blockZ)

	if d, _ := h.HandleKey(key.Char('z')); d != Consumed {
		t.Fatalf("HandleKey(z) = %v, want consumed", d)
	}

	h.HandleKey(key.Char('i'))
	h.HandleKey(key.Char('k'))

	want := []chord.State{chord.Pending, chord.Matched}
	if len(observed) != len(want) {
		t.Fatalf("observed %d outcomes, want %d", len(observed), len(want))
	}
	for i, s := range want {
		if observed[i] != s {
			t.Errorf("observed[%d] = %v, want %v", i, observed[i], s)
		}
	}

	h.RemoveHook(blockZ)
	if d, _ := h.HandleKey(key.Char('z')); d == Consumed {
		t.Error("removed hook should no longer consume keys")
	}
}

func TestMetricsCounters(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired), WithLeader(key.MustParse("<C-t>")))
	defer h.Close()

	h.HandleKey(key.Char('q'))            // passthrough
	h.HandleKey(key.MustParse("<C-t>"))   // armed
	h.HandleKey(key.Char('i'))            // pending
	h.HandleKey(key.Char('k'))            // matched
	h.HandleKey(key.MustParse("<C-t>"))   // armed
	h.HandleKey(key.Char('x'))            // rejected
	h.HandleKey(key.MustParse("<C-t>"))   // armed
	h.HandleKey(key.Char('i'))            // pending
	h.Cancel()

	got := h.Metrics()
	if got.Keys != 8 {
		t.Errorf("Keys = %d, want 8", got.Keys)
	}
	if got.Matches != 1 {
		t.Errorf("Matches = %d, want 1", got.Matches)
	}
	if got.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", got.Rejected)
	}
	if got.Passthrough != 1 {
		t.Errorf("Passthrough = %d, want 1", got.Passthrough)
	}
	if got.Cancels != 1 {
		t.Errorf("Cancels = %d, want 1", got.Cancels)
	}
}

func TestCloseStopsHandling(t *testing.T) {
	fired := make(map[string]int)
	h := NewHandler(testTable(t, fired))

	h.Close()
	if d, _ := h.HandleKey(key.Char('i')); d != Passthrough {
		t.Errorf("HandleKey after Close = %v, want passthrough", d)
	}
	// Closing twice is harmless.
	h.Close()
}
