package mouse

import (
	"testing"

	"github.com/dshills/dragscroll/internal/geom"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonBack, "back"},
		{ButtonForward, "forward"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestButtonMask(t *testing.T) {
	tests := []struct {
		button Button
		mask   ButtonMask
	}{
		{ButtonNone, 0},
		{ButtonLeft, MaskPrimary},
		{ButtonRight, MaskSecondary},
		{ButtonMiddle, MaskAuxiliary},
		{ButtonBack, MaskBack},
		{ButtonForward, MaskForward},
	}

	for _, tt := range tests {
		if got := tt.button.Mask(); got != tt.mask {
			t.Errorf("%s.Mask() = %d, want %d", tt.button, got, tt.mask)
		}
	}

	held := MaskPrimary | MaskSecondary
	if !held.Has(MaskSecondary) {
		t.Error("mask should contain secondary")
	}
	if held.Has(MaskAuxiliary) {
		t.Error("mask should not contain auxiliary")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionPress, "press"},
		{ActionRelease, "release"},
		{ActionMove, "move"},
		{ActionDrag, "drag"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("Action.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionIsMotion(t *testing.T) {
	if !ActionMove.IsMotion() || !ActionDrag.IsMotion() {
		t.Error("move and drag are motion")
	}
	if ActionPress.IsMotion() || ActionRelease.IsMotion() {
		t.Error("press and release are not motion")
	}
}

func TestPosition(t *testing.T) {
	p1 := Position{X: 10, Y: 20}
	p2 := Position{X: 10, Y: 20}
	p3 := Position{X: 15, Y: 20}

	if !p1.Equal(p2) {
		t.Error("Equal positions not detected as equal")
	}
	if p1.Equal(p3) {
		t.Error("Different positions detected as equal")
	}
	if got := p1.Sub(p3); got != (Position{X: -5, Y: 0}) {
		t.Errorf("Sub = %+v, want {-5 0}", got)
	}
	if got := p3.Vec(); got != (geom.Vec{X: 15, Y: 20}) {
		t.Errorf("Vec = %+v", got)
	}
}

func TestIsPrimaryPress(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"primary press", Press(1, 1), true},
		{"right press", Event{Action: ActionPress, Button: ButtonRight, Buttons: MaskSecondary}, false},
		{"left while right held", Event{Action: ActionPress, Button: ButtonLeft, Buttons: MaskPrimary | MaskSecondary}, false},
		{"release", Release(1, 1), false},
		{"drag", Drag(1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsPrimaryPress(); got != tt.want {
				t.Errorf("IsPrimaryPress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifierHas(t *testing.T) {
	m := ModShift | ModCtrl
	if !m.Has(ModShift) || !m.Has(ModCtrl) {
		t.Error("expected shift and ctrl")
	}
	if m.Has(ModAlt) || ModNone.Has(ModShift) {
		t.Error("unexpected modifier")
	}
}
