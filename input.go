package panzoom

import "github.com/hajimehoshi/ebiten/v2"

const maxContacts = 10

// inputSource is the slice of Ebitengine's input API the surface polls.
// Tests substitute a scripted source.
type inputSource interface {
	CursorPosition() (int, int)
	PrimaryPressed() bool
	Wheel() (float64, float64)
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenInput) PrimaryPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
func (ebitenInput) Wheel() (float64, float64) { return ebiten.Wheel() }
func (ebitenInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}
func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

// contact is a touch point that started inside the surface.
type contact struct {
	id   ebiten.TouchID
	x, y float64 // surface-local
}

// toLocal converts screen coordinates to surface-local coordinates.
func (s *EbitenSurface) toLocal(sx, sy float64) (float64, float64) {
	return sx - s.bounds.X, sy - s.bounds.Y
}

// insideLocal reports whether a surface-local point lies on the surface.
func (s *EbitenSurface) insideLocal(x, y float64) bool {
	return x >= 0 && x <= s.bounds.Width && y >= 0 && y <= s.bounds.Height
}

// --- Mouse ---

// processMouse handles the primary mouse button and cursor.
func (s *EbitenSurface) processMouse() {
	mx, my := s.input.CursorPosition()
	x, y := s.toLocal(float64(mx), float64(my))
	s.processPointer(x, y, s.input.PrimaryPressed())
}

// processPointer runs the pointer state machine for one tick. Motion is
// delivered before the button change so a release lands on the final
// position. Presses only count when they start on the surface; releases and
// motion are global.
func (s *EbitenSurface) processPointer(x, y float64, pressed bool) {
	if s.mouseSeen && (x != s.lastX || y != s.lastY) {
		s.dispatch(TargetGlobal, &Event{Kind: EventMouseMove, X: x, Y: y, Button: MouseButtonLeft})
	}
	s.mouseSeen = true
	s.lastX = x
	s.lastY = y

	if pressed && !s.mouseDown {
		s.mouseDown = true
		if s.insideLocal(x, y) {
			s.dispatch(TargetSurface, &Event{Kind: EventMouseDown, X: x, Y: y, Button: MouseButtonLeft})
		}
	} else if !pressed && s.mouseDown {
		s.mouseDown = false
		s.dispatch(TargetGlobal, &Event{Kind: EventMouseUp, X: x, Y: y, Button: MouseButtonLeft})
	}
}

// --- Wheel ---

// processWheel forwards vertical wheel motion while the cursor is over the
// surface. Ebitengine reports scrolling away from the user as positive; the
// event uses the opposite sign.
func (s *EbitenSurface) processWheel() {
	_, dy := s.input.Wheel()
	if dy == 0 {
		return
	}
	mx, my := s.input.CursorPosition()
	x, y := s.toLocal(float64(mx), float64(my))
	if !s.insideLocal(x, y) {
		return
	}
	s.dispatch(TargetSurface, &Event{Kind: EventWheel, X: x, Y: y, DeltaY: -dy})
}

// --- Touch ---

// processTouches diffs the active touch IDs against the tracked contacts and
// dispatches at most one end, one move, and one start event per tick, in that
// order. Contacts that begin outside the surface are ignored until lifted.
func (s *EbitenSurface) processTouches() {
	ids := s.input.AppendTouchIDs(s.touchIDs[:0])
	s.touchIDs = ids

	// Lifted contacts.
	kept := s.contacts[:0]
	for _, c := range s.contacts {
		if containsTouchID(ids, c.id) {
			kept = append(kept, c)
		}
	}
	ended := len(kept) != len(s.contacts)
	clear(s.contacts[len(kept):])
	s.contacts = kept
	if ended {
		s.dispatchTouch(EventTouchEnd)
	}

	ignored := s.ignored[:0]
	for _, id := range s.ignored {
		if containsTouchID(ids, id) {
			ignored = append(ignored, id)
		}
	}
	s.ignored = ignored

	// Moved contacts.
	var moved bool
	for i := range s.contacts {
		c := &s.contacts[i]
		tx, ty := s.input.TouchPosition(c.id)
		x, y := s.toLocal(float64(tx), float64(ty))
		if x != c.x || y != c.y {
			c.x, c.y = x, y
			moved = true
		}
	}
	if moved {
		s.dispatchTouch(EventTouchMove)
	}

	// New contacts.
	var started bool
	for _, id := range ids {
		if s.trackedTouch(id) || containsTouchID(s.ignored, id) {
			continue
		}
		tx, ty := s.input.TouchPosition(id)
		x, y := s.toLocal(float64(tx), float64(ty))
		if !s.insideLocal(x, y) || len(s.contacts) >= maxContacts {
			s.ignored = append(s.ignored, id)
			continue
		}
		s.contacts = append(s.contacts, contact{id: id, x: x, y: y})
		started = true
	}
	if started {
		s.dispatchTouch(EventTouchStart)
	}
}

func (s *EbitenSurface) dispatchTouch(kind EventKind) {
	s.touchBuf = s.touchBuf[:0]
	for _, c := range s.contacts {
		s.touchBuf = append(s.touchBuf, Vec2{X: c.x, Y: c.y})
	}
	s.dispatch(TargetSurface, &Event{Kind: kind, Touches: s.touchBuf})
}

func (s *EbitenSurface) trackedTouch(id ebiten.TouchID) bool {
	for _, c := range s.contacts {
		if c.id == id {
			return true
		}
	}
	return false
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
