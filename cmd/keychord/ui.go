package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/chord"
	"github.com/dshills/keychord/dispatch"
	"github.com/dshills/keychord/internal/term"
	"github.com/dshills/keychord/key"
)

const historyLimit = 64

// ui is the interactive terminal frontend. It feeds translated key
// events to the dispatch handler and paints what the matcher is doing.
type ui struct {
	screen  tcell.Screen
	handler *dispatch.Handler
	table   *chord.Table

	mu      sync.Mutex
	status  string
	pending chord.Chord
	history []string
}

func newUI(handler *dispatch.Handler, table *chord.Table) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)

	u := &ui{
		screen:  screen,
		handler: handler,
		table:   table,
		status:  "ready",
	}
	handler.AddHook(&dispatch.FuncHook{Post: u.observe})
	return u, nil
}

func (u *ui) close() {
	u.screen.Fini()
}

// quit wakes the event loop from another goroutine.
func (u *ui) quit() {
	u.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (u *ui) run() {
	u.draw()
	for {
		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			u.screen.Sync()
			u.draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape && !wantsEscape(u.handler, u.table) {
				if !u.handler.InChord() {
					return
				}
				u.handler.Cancel()
				u.mu.Lock()
				u.pending = u.pending[:0]
				u.status = "cancelled"
				u.mu.Unlock()
				u.draw()
				continue
			}
			sym, ok := term.Translate(ev)
			if !ok {
				continue
			}
			u.handler.HandleKey(sym)
			u.draw()
		}
	}
}

// wantsEscape reports whether Escape belongs to the matcher right now,
// either starting a bound chord or extending the pending one. Only when
// it does not is Escape free to mean quit or cancel.
func wantsEscape(handler *dispatch.Handler, table *chord.Table) bool {
	esc := key.Special(key.CodeEscape)
	if handler.InChord() {
		return table.HasPrefix(append(handler.Pending(), esc))
	}
	return table.HasPrefix(chord.Chord{esc})
}

// observe runs as a post-key hook and records the outcome of each key.
// The handler lock is held here, so pending keys are tracked locally
// rather than read back from the handler.
func (u *ui) observe(sym key.Sym, out chord.Outcome) {
	u.mu.Lock()
	defer u.mu.Unlock()

	switch out.State {
	case chord.Pending:
		u.pending = append(u.pending, sym)
		u.status = fmt.Sprintf("pending: %s", u.pending.String())
	case chord.Matched:
		u.pending = u.pending[:0]
		u.status = "ready"
		u.record(fmt.Sprintf("matched  %-12s %s", out.Binding.Chord.String(), out.Binding.Label()))
	case chord.NoMatch:
		u.pending = u.pending[:0]
		u.status = "ready"
		u.record(fmt.Sprintf("no match %s", sym.String()))
	}
}

func (u *ui) record(line string) {
	u.history = append(u.history, line)
	if len(u.history) > historyLimit {
		u.history = u.history[len(u.history)-historyLimit:]
	}
}

func (u *ui) draw() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.screen.Clear()
	width, height := u.screen.Size()

	header := tcell.StyleDefault.Bold(true)
	u.drawText(0, 0, header, "keychord demo  (Esc to quit)")

	row := 2
	for _, b := range u.table.Bindings() {
		if row >= height-len(u.history)-3 {
			break
		}
		u.drawText(2, row, tcell.StyleDefault, fmt.Sprintf("%-14s %s", b.Chord.String(), b.Label()))
		row++
	}

	// Most recent outcomes just above the status line.
	row = height - 2
	for i := len(u.history) - 1; i >= 0 && row > 1; i-- {
		u.drawText(0, row, tcell.StyleDefault.Dim(true), u.history[i])
		row--
	}

	status := tcell.StyleDefault.Reverse(true)
	line := u.status
	for len(line) < width {
		line += " "
	}
	u.drawText(0, height-1, status, line)

	u.screen.Show()
}

func (u *ui) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
