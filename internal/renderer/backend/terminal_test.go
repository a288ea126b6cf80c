package backend

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dragscroll/internal/input/mouse"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(40, 10)
	return term, screen
}

// pollType polls until an event of type want arrives.
func pollType(t *testing.T, term *Terminal, want EventType) Event {
	t.Helper()
	ch := make(chan Event, 1)
	go func() {
		for {
			ev := term.PollEvent()
			if ev.Type == want || ev.Type == EventNone {
				ch <- ev
				return
			}
		}
	}()

	select {
	case ev := <-ch:
		if ev.Type != want {
			t.Fatalf("expected event type %d, got %+v", want, ev)
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for event type %d", want)
		return Event{}
	}
}

func TestTerminalCells(t *testing.T) {
	term, _ := newSimTerminal(t)

	w, h := term.Size()
	if w != 40 || h != 10 {
		t.Errorf("expected size (40, 10), got (%d, %d)", w, h)
	}

	cell := NewCell('#', DefaultStyle().With(AttrBold))
	term.SetCell(3, 4, cell)
	if got := term.GetCell(3, 4); got.Rune != '#' || !got.Style.Attributes.Has(AttrBold) {
		t.Errorf("GetCell = %+v", got)
	}

	term.Fill(RectFromSize(0, 0, 2, 2), NewCell('.', DefaultStyle()))
	if got := term.GetCell(1, 1); got.Rune != '.' {
		t.Errorf("fill did not reach (1, 1): %+v", got)
	}
	term.Show()
}

func TestTerminalMouseGesture(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectMouse(5, 2, tcell.Button1, tcell.ModNone)
	ev := pollType(t, term, EventMouse)
	if !ev.Mouse.IsPrimaryPress() || ev.Mouse.Position != (mouse.Position{X: 5, Y: 2}) {
		t.Errorf("expected primary press at (5, 2), got %+v", ev.Mouse)
	}

	screen.InjectMouse(9, 2, tcell.Button1, tcell.ModNone)
	ev = pollType(t, term, EventMouse)
	if ev.Mouse.Action != mouse.ActionDrag || ev.Mouse.Position.X != 9 {
		t.Errorf("expected drag to x=9, got %+v", ev.Mouse)
	}

	screen.InjectMouse(9, 2, tcell.ButtonNone, tcell.ModNone)
	ev = pollType(t, term, EventMouse)
	if ev.Mouse.Action != mouse.ActionRelease || ev.Mouse.Button != mouse.ButtonLeft {
		t.Errorf("expected left release, got %+v", ev.Mouse)
	}
}

func TestTerminalKeysAndInterrupt(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ev := pollType(t, term, EventKey)
	if ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("expected rune q, got %+v", ev)
	}

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	ev = pollType(t, term, EventKey)
	if ev.Key != KeyCtrlC {
		t.Errorf("expected ctrl+c, got %+v", ev)
	}

	term.Interrupt(42)
	ev = pollType(t, term, EventInterrupt)
	if ev.Data != 42 {
		t.Errorf("expected interrupt payload 42, got %+v", ev.Data)
	}
}
