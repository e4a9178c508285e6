package panzoom

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput is a scripted inputSource.
type fakeInput struct {
	cx, cy  int
	pressed bool
	wheelY  float64
	touches []fakeTouch
}

type fakeTouch struct {
	id   ebiten.TouchID
	x, y int
}

func (f *fakeInput) CursorPosition() (int, int) { return f.cx, f.cy }
func (f *fakeInput) PrimaryPressed() bool       { return f.pressed }
func (f *fakeInput) Wheel() (float64, float64)  { return 0, f.wheelY }

func (f *fakeInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	for _, t := range f.touches {
		ids = append(ids, t.id)
	}
	return ids
}

func (f *fakeInput) TouchPosition(id ebiten.TouchID) (int, int) {
	for _, t := range f.touches {
		if t.id == id {
			return t.x, t.y
		}
	}
	return 0, 0
}

func (f *fakeInput) touch(id ebiten.TouchID, x, y int) {
	for i := range f.touches {
		if f.touches[i].id == id {
			f.touches[i].x, f.touches[i].y = x, y
			return
		}
	}
	f.touches = append(f.touches, fakeTouch{id: id, x: x, y: y})
}

func (f *fakeInput) lift(id ebiten.TouchID) {
	for i := range f.touches {
		if f.touches[i].id == id {
			f.touches = append(f.touches[:i], f.touches[i+1:]...)
			return
		}
	}
}

func newTestSurface(bounds Rect) (*EbitenSurface, *fakeInput) {
	s := NewEbitenSurface(bounds)
	in := &fakeInput{}
	s.input = in
	return s, in
}

// eventLog records every event kind delivered to a target.
type eventLog struct {
	events []Event
}

func (l *eventLog) listenAll(s Surface, target Target) {
	for k := EventKind(0); k < numEventKinds; k++ {
		s.Listen(target, k, func(ev *Event) {
			cp := *ev
			cp.Touches = append([]Vec2(nil), ev.Touches...)
			l.events = append(l.events, cp)
		})
	}
}

func (l *eventLog) kinds() []EventKind {
	out := make([]EventKind, len(l.events))
	for i, e := range l.events {
		out[i] = e.Kind
	}
	return out
}

func (l *eventLog) reset() { l.events = l.events[:0] }

func sameKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Mouse ---

func TestMouseDownInsideSurface(t *testing.T) {
	s, in := newTestSurface(Rect{X: 100, Y: 50, Width: 200, Height: 100})
	var surface, global eventLog
	surface.listenAll(s, TargetSurface)
	global.listenAll(s, TargetGlobal)

	in.cx, in.cy = 150, 80
	s.Update()
	in.pressed = true
	s.Update()

	if len(surface.events) != 1 || surface.events[0].Kind != EventMouseDown {
		t.Fatalf("surface events = %v, want [mousedown]", surface.kinds())
	}
	ev := surface.events[0]
	if ev.X != 50 || ev.Y != 30 || ev.Button != MouseButtonLeft {
		t.Errorf("mousedown = (%v,%v) button %v, want local (50,30) left", ev.X, ev.Y, ev.Button)
	}
	if len(global.events) != 0 {
		t.Errorf("global events = %v, want none", global.kinds())
	}
}

func TestMouseDownOutsideSurface(t *testing.T) {
	s, in := newTestSurface(Rect{X: 100, Y: 50, Width: 200, Height: 100})
	var surface, global eventLog
	surface.listenAll(s, TargetSurface)
	global.listenAll(s, TargetGlobal)

	in.cx, in.cy = 10, 10
	in.pressed = true
	s.Update()
	in.pressed = false
	s.Update()

	if len(surface.events) != 0 {
		t.Errorf("surface events = %v, want none", surface.kinds())
	}
	if !sameKinds(global.kinds(), []EventKind{EventMouseUp}) {
		t.Errorf("global events = %v, want [mouseup]", global.kinds())
	}
}

func TestMouseMoveIsGlobal(t *testing.T) {
	s, in := newTestSurface(Rect{Width: 100, Height: 100})
	var global eventLog
	global.listenAll(s, TargetGlobal)

	in.cx, in.cy = 10, 10
	s.Update() // first sighting, no move
	s.Update() // unchanged, no move
	in.cx, in.cy = 500, -40
	s.Update()

	if !sameKinds(global.kinds(), []EventKind{EventMouseMove}) {
		t.Fatalf("global events = %v, want [mousemove]", global.kinds())
	}
	if e := global.events[0]; e.X != 500 || e.Y != -40 {
		t.Errorf("move = (%v,%v), want (500,-40)", e.X, e.Y)
	}
}

func TestMouseReleaseLandsAfterMove(t *testing.T) {
	s, in := newTestSurface(Rect{Width: 100, Height: 100})
	var global eventLog
	global.listenAll(s, TargetGlobal)

	in.cx, in.cy = 10, 10
	in.pressed = true
	s.Update()
	in.cx, in.cy = 20, 20
	in.pressed = false
	s.Update()

	if !sameKinds(global.kinds(), []EventKind{EventMouseMove, EventMouseUp}) {
		t.Fatalf("global events = %v, want [mousemove mouseup]", global.kinds())
	}
}

func TestMouseDragPansController(t *testing.T) {
	s, in := newTestSurface(Rect{X: 100, Y: 100, Width: 400, Height: 300})
	rec := &recorder{}
	c, err := New(s, Config{OnTransform: rec.record})
	if err != nil {
		t.Fatal(err)
	}

	in.cx, in.cy = 150, 150
	in.pressed = true
	s.Update()
	in.cx, in.cy = 180, 170
	s.Update()
	// Dragging off the surface keeps panning.
	in.cx, in.cy = 0, 170
	s.Update()
	in.pressed = false
	s.Update()

	assertTransform(t, c.Transform(), 1, -150, 20)
	if c.Mode() != ModeIdle {
		t.Errorf("Mode = %v, want idle", c.Mode())
	}
	if s.DefaultPrevented() {
		t.Error("mouse input should not prevent default")
	}
}

// --- Wheel ---

func TestWheelInsideSurface(t *testing.T) {
	s, in := newTestSurface(Rect{X: 10, Y: 10, Width: 200, Height: 200})
	c, err := New(s, Config{OnTransform: func(TransformContext) {}})
	if err != nil {
		t.Fatal(err)
	}

	// Ebitengine reports scrolling away from the user as positive.
	in.cx, in.cy = 110, 110
	in.wheelY = 1
	s.Update()

	assertTransform(t, c.Transform(), 1.2, -20, -20)
	if !s.DefaultPrevented() {
		t.Error("wheel over the surface should prevent default")
	}

	in.wheelY = 0
	s.Update()
	if s.DefaultPrevented() {
		t.Error("DefaultPrevented should reset each Update")
	}
}

func TestWheelOutsideSurfaceIgnored(t *testing.T) {
	s, in := newTestSurface(Rect{Width: 200, Height: 200})
	var log eventLog
	log.listenAll(s, TargetSurface)

	in.cx, in.cy = 300, 100
	in.wheelY = -1
	s.Update()

	if len(log.events) != 0 {
		t.Errorf("events = %v, want none", log.kinds())
	}
}

func TestWheelDeltaSign(t *testing.T) {
	s, in := newTestSurface(Rect{Width: 200, Height: 200})
	var log eventLog
	log.listenAll(s, TargetSurface)

	in.cx, in.cy = 50, 50
	in.wheelY = -2.5
	s.Update()

	if len(log.events) != 1 || log.events[0].DeltaY != 2.5 {
		t.Errorf("events = %+v, want one wheel with DeltaY 2.5", log.events)
	}
}

// --- Touch ---

func TestTouchLifecycle(t *testing.T) {
	s, in := newTestSurface(Rect{X: 100, Y: 100, Width: 400, Height: 400})
	var log eventLog
	log.listenAll(s, TargetSurface)

	in.touch(1, 150, 160)
	s.Update()
	if !sameKinds(log.kinds(), []EventKind{EventTouchStart}) {
		t.Fatalf("events = %v, want [touchstart]", log.kinds())
	}
	if got := log.events[0].Touches; len(got) != 1 || got[0] != (Vec2{50, 60}) {
		t.Errorf("touches = %v, want [{50 60}]", got)
	}
	log.reset()

	in.touch(2, 250, 160)
	s.Update()
	if !sameKinds(log.kinds(), []EventKind{EventTouchStart}) {
		t.Fatalf("events = %v, want [touchstart]", log.kinds())
	}
	if got := log.events[0].Touches; len(got) != 2 || got[1] != (Vec2{150, 60}) {
		t.Errorf("touches = %v", got)
	}
	log.reset()

	s.Update()
	if len(log.events) != 0 {
		t.Errorf("stationary contacts produced %v", log.kinds())
	}

	in.touch(2, 300, 160)
	s.Update()
	if !sameKinds(log.kinds(), []EventKind{EventTouchMove}) {
		t.Fatalf("events = %v, want [touchmove]", log.kinds())
	}
	log.reset()

	in.lift(1)
	s.Update()
	if !sameKinds(log.kinds(), []EventKind{EventTouchEnd}) {
		t.Fatalf("events = %v, want [touchend]", log.kinds())
	}
	if got := log.events[0].Touches; len(got) != 1 || got[0] != (Vec2{200, 60}) {
		t.Errorf("remaining = %v, want [{200 60}]", got)
	}
	log.reset()

	in.lift(2)
	s.Update()
	if !sameKinds(log.kinds(), []EventKind{EventTouchEnd}) || len(log.events[0].Touches) != 0 {
		t.Errorf("events = %+v, want touchend with no contacts", log.events)
	}
}

func TestTouchStartingOutsideIgnored(t *testing.T) {
	s, in := newTestSurface(Rect{Width: 100, Height: 100})
	var log eventLog
	log.listenAll(s, TargetSurface)

	in.touch(7, 200, 50)
	s.Update()
	in.touch(7, 50, 50) // slides onto the surface
	s.Update()
	if len(log.events) != 0 {
		t.Fatalf("events = %v, want none", log.kinds())
	}

	in.lift(7)
	s.Update()
	in.touch(7, 50, 50) // same ID reused for a fresh contact
	s.Update()
	if !sameKinds(log.kinds(), []EventKind{EventTouchStart}) {
		t.Errorf("events = %v, want [touchstart]", log.kinds())
	}
}

func TestTouchPinchZoomsController(t *testing.T) {
	s, in := newTestSurface(Rect{Width: 400, Height: 400})
	c, err := New(s, Config{OnTransform: func(TransformContext) {}})
	if err != nil {
		t.Fatal(err)
	}

	in.touch(1, 100, 150)
	in.touch(2, 200, 150)
	s.Update()
	if c.Mode() != ModePinching {
		t.Fatalf("Mode = %v, want pinching", c.Mode())
	}
	if !s.DefaultPrevented() {
		t.Error("touch should prevent default")
	}

	in.touch(1, 50, 150)
	in.touch(2, 250, 150)
	s.Update()
	assertTransform(t, c.Transform(), 2, -150, -150)

	in.lift(1)
	s.Update()
	if c.Mode() != ModePanning {
		t.Fatalf("after lift: Mode = %v, want panning", c.Mode())
	}
	in.touch(2, 260, 170)
	s.Update()
	assertTransform(t, c.Transform(), 2, -140, -130)

	in.lift(2)
	s.Update()
	if c.Mode() != ModeIdle {
		t.Errorf("Mode = %v, want idle", c.Mode())
	}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		bounds Rect
		w, h   int
	}{
		{Rect{Width: 640, Height: 480}, 640, 480},
		{Rect{X: 10, Y: 10, Width: 0, Height: 0}, 1, 1},
		{Rect{Width: -5, Height: 20.7}, 1, 20},
	}
	for _, tt := range tests {
		r := canvasSize(tt.bounds)
		if r.Dx() != tt.w || r.Dy() != tt.h {
			t.Errorf("canvasSize(%+v) = %dx%d, want %dx%d", tt.bounds, r.Dx(), r.Dy(), tt.w, tt.h)
		}
	}
}

func TestSetBounds(t *testing.T) {
	s, _ := newTestSurface(Rect{Width: 100, Height: 100})
	s.SetBounds(Rect{X: 5, Y: 6, Width: 50, Height: 60})
	if got := s.Bounds(); got != (Rect{X: 5, Y: 6, Width: 50, Height: 60}) {
		t.Errorf("Bounds = %+v", got)
	}
}
