package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dragscroll/internal/input/mouse"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// Only read and written by PollEvent.
	tracker mouseTracker
}

// NewTerminal creates a new terminal backend on the process's terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal backend on an existing screen,
// such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	// Motion reporting is needed to follow drags.
	t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return Cell{Rune: mainc, Style: convertTcellStyle(style)}
}

func (t *Terminal) Fill(rect Rect, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// PollEvent blocks for the next event. tcell events with no counterpart
// (focus, paste, wheel) are skipped. Returns EventNone once the screen is
// finalized.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		if out, ok := t.convertEvent(ev); ok {
			return out
		}
	}
}

func (t *Terminal) Interrupt(data any) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(data)) // best-effort; event queue may be full
}

// convertEvent converts tcell events to our Event type. The second result
// is false for events the host has no use for.
func (t *Terminal) convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}, true

	case *tcell.EventMouse:
		x, y := e.Position()
		m, ok := t.tracker.next(mouse.Position{X: x, Y: y}, e.Buttons(), convertMod(e.Modifiers()), e.When())
		if !ok {
			return Event{}, false
		}
		return Event{Type: EventMouse, Mouse: m}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}, true

	default:
		return Event{}, false
	}
}

// mouseTracker turns tcell's button-state reports into edge events. tcell
// reports which buttons are held on every mouse event; a press or release
// is a change in that set.
type mouseTracker struct {
	held mouse.ButtonMask
	pos  mouse.Position
}

// next converts one report. Wheel-only reports return false.
func (m *mouseTracker) next(pos mouse.Position, buttons tcell.ButtonMask, mods mouse.Modifier, when time.Time) (mouse.Event, bool) {
	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 &&
		buttons&(tcell.Button1|tcell.Button2|tcell.Button3) == 0 {
		return mouse.Event{}, false
	}

	now := convertButtons(buttons)
	prev := m.held
	moved := !pos.Equal(m.pos)
	m.held = now
	m.pos = pos

	ev := mouse.Event{
		Position:  pos,
		Buttons:   now,
		Modifiers: mods,
		Timestamp: when,
	}

	pressed := now &^ prev
	released := prev &^ now
	switch {
	case pressed != 0:
		ev.Action = mouse.ActionPress
		ev.Button = buttonOf(pressed)
	case released != 0:
		ev.Action = mouse.ActionRelease
		ev.Button = buttonOf(released)
	case now != 0:
		ev.Action = mouse.ActionDrag
		if !moved {
			return mouse.Event{}, false
		}
	default:
		ev.Action = mouse.ActionMove
		if !moved {
			return mouse.Event{}, false
		}
	}
	return ev, true
}

func convertButtons(b tcell.ButtonMask) mouse.ButtonMask {
	var out mouse.ButtonMask
	if b&tcell.Button1 != 0 {
		out |= mouse.MaskPrimary
	}
	if b&tcell.Button2 != 0 {
		out |= mouse.MaskSecondary
	}
	if b&tcell.Button3 != 0 {
		out |= mouse.MaskAuxiliary
	}
	return out
}

// buttonOf picks the lowest button in a mask of changed buttons.
func buttonOf(m mouse.ButtonMask) mouse.Button {
	switch {
	case m.Has(mouse.MaskPrimary):
		return mouse.ButtonLeft
	case m.Has(mouse.MaskSecondary):
		return mouse.ButtonRight
	case m.Has(mouse.MaskAuxiliary):
		return mouse.ButtonMiddle
	default:
		return mouse.ButtonNone
	}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyCtrlL:
		return KeyCtrlL
	default:
		return KeyNone
	}
}

// convertMod converts tcell modifier mask to mouse.Modifier.
func convertMod(m tcell.ModMask) mouse.Modifier {
	var result mouse.Modifier
	if m&tcell.ModShift != 0 {
		result |= mouse.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= mouse.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= mouse.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= mouse.ModMeta
	}
	return result
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.Default {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.Default {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attributes.Has(AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attributes.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	return style
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) Style {
	fg, bg, attrs := ts.Decompose()

	s := Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}
	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= AttrDim
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= AttrReverse
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= AttrUnderline
	}
	return s
}

// convertTcellColor converts tcell.Color to our Color.
func convertTcellColor(tc tcell.Color) Color {
	if tc == tcell.ColorDefault {
		return ColorDefault
	}
	r, g, b := tc.RGB()
	return ColorFromRGB(uint8(r), uint8(g), uint8(b))
}
