package panzoom

import (
	"math"
	"slices"
)

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticWheel
	syntheticTouch
)

// syntheticEvent represents a single injected input event. Coordinates are
// surface-local and go through the same dispatch path as real input.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	deltaY  float64
	touch   EventKind
	touches []Vec2
}

// InjectPress queues a primary button press at the given surface
// coordinates. The event is consumed on the next Update.
func (s *EbitenSurface) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: true,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *EbitenSurface) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: true,
	})
}

// InjectRelease queues a primary button release at the given coordinates.
func (s *EbitenSurface) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: false,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two ticks.
func (s *EbitenSurface) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and
// release at (toX, toY). The total sequence consumes `frames` ticks.
// Minimum frames is 2 (press + release).
func (s *EbitenSurface) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event at (x, y). A negative deltaY zooms in.
func (s *EbitenSurface) InjectWheel(x, y, deltaY float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticWheel, x: x, y: y, deltaY: deltaY,
	})
}

// InjectTouchStart queues a touch start with the given contacts on the
// surface.
func (s *EbitenSurface) InjectTouchStart(touches ...Vec2) {
	s.injectTouch(EventTouchStart, touches)
}

// InjectTouchMove queues a touch move with the contacts' new positions.
func (s *EbitenSurface) InjectTouchMove(touches ...Vec2) {
	s.injectTouch(EventTouchMove, touches)
}

// InjectTouchEnd queues a touch end. remaining lists the contacts still
// down after the lift.
func (s *EbitenSurface) InjectTouchEnd(remaining ...Vec2) {
	s.injectTouch(EventTouchEnd, remaining)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy):
// contacts start fromDist apart, spread linearly to toDist over frames-2
// moves, then lift. Consumes `frames` ticks; minimum 2.
func (s *EbitenSurface) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	pair := func(d float64) []Vec2 {
		h := math.Abs(d) / 2
		return []Vec2{{X: cx - h, Y: cy}, {X: cx + h, Y: cy}}
	}
	s.InjectTouchStart(pair(fromDist)...)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectTouchMove(pair(fromDist + (toDist-fromDist)*t)...)
	}
	s.InjectTouchEnd()
}

func (s *EbitenSurface) injectTouch(kind EventKind, touches []Vec2) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticTouch, touch: kind, touches: slices.Clone(touches),
	})
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (real input should be skipped).
func (s *EbitenSurface) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue[len(s.injectQueue)-1] = syntheticEvent{}
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		s.injectHeld = evt.pressed
		s.processPointer(evt.x, evt.y, evt.pressed)
	case syntheticWheel:
		if s.insideLocal(evt.x, evt.y) {
			s.dispatch(TargetSurface, &Event{Kind: EventWheel, X: evt.x, Y: evt.y, DeltaY: evt.deltaY})
		}
	case syntheticTouch:
		s.dispatch(TargetSurface, &Event{Kind: evt.touch, Touches: evt.touches})
	}
	return true
}
