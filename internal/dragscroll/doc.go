// Package dragscroll implements drag-to-scroll with release momentum for a
// scrollable surface.
//
// A gesture runs Idle → PointerDown → Dragging and, on release, either back
// to Idle (a click) or into Decaying. While dragging, every pointer move
// pans the surface by the move delta and records the delta as velocity. A
// release whose total displacement exceeds the safe displacement on some
// axis is a confirmed drag: the next click on each child of the surface is
// swallowed, and momentum starts on every axis that is not resting on a
// scroll boundary. Momentum multiplies velocity by the decay rate once per
// 60 Hz frame and stops on an axis once its speed falls below epsilon.
//
// Without the rubber band option only the axis that moved most on the last
// move decays. With it, each axis that moved decays on its own.
//
// Basic usage:
//
//	ref := surface.NewRef(box)
//	ctrl, err := dragscroll.New(ref, hub, loop, dragscroll.WithRubberBand(true))
//	if err != nil {
//	    return err
//	}
//	defer ctrl.Close()
//
//	// On presses over the surface:
//	ctrl.OnPointerDown(ev)
//
// The controller subscribes itself to pointer motion, pointer release and
// resize on the hub, so the host only forwards presses directly.
package dragscroll
