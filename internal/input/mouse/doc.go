// Package mouse provides the pointer event model delivered to the drag
// controller.
//
// The host translates raw terminal (or window) input into Event values. A
// press carries the pressed Button and the full Buttons mask held at that
// moment, mirroring the browser's `buttons` field:
//
//	event := mouse.Event{
//	    Position:  mouse.Position{X: 40, Y: 12},
//	    Button:    mouse.ButtonLeft,
//	    Buttons:   mouse.MaskPrimary,
//	    Action:    mouse.ActionPress,
//	    Timestamp: time.Now(),
//	}
//
// # Primary Button
//
// Drag gestures only start from a press where the primary button is the
// sole button held. IsPrimaryPress reports exactly that, so a left press
// while the right button is already down is not a gesture.
//
// # Actions
//
//   - ActionPress: a button went down
//   - ActionRelease: a button went up
//   - ActionMove: pointer motion with no button held
//   - ActionDrag: pointer motion with a button held
package mouse
