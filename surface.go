package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// Surface is the host a Controller attaches to: something that delivers
// positioned pointer, touch, and wheel events and owns a drawing context.
type Surface interface {
	// Listen registers fn for events of kind delivered to target. The
	// returned Subscription removes the registration.
	Listen(target Target, kind EventKind, fn func(*Event)) Subscription
	// Canvas returns the image the transform callback draws into.
	Canvas() *ebiten.Image
}

// Subscription is a registration returned by Surface.Listen.
type Subscription interface {
	// Remove unregisters the listener. Calling it more than once is safe.
	Remove()
}

// Event is a positioned input event in surface-local coordinates.
type Event struct {
	Kind EventKind
	// X and Y are the pointer position for mouse and wheel events.
	X, Y float64
	// Button is the button that changed state (EventMouseDown, EventMouseUp).
	Button MouseButton
	// Touches lists the contacts still on the surface, in the order they
	// started. For EventTouchEnd the lifted contacts are already gone.
	// The slice is only valid while the event is being dispatched.
	Touches []Vec2
	// DeltaY is the vertical scroll amount. Negative scrolls away from the
	// user (zoom in), positive towards the user (zoom out).
	DeltaY float64

	prevented bool
}

// PreventDefault asks the host to skip its own handling of this event
// (page scrolling, host-level zoom and so on).
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// --- Listener registry ---

type listener struct {
	id uint32
	fn func(*Event)
}

// Dispatcher is an in-process Surface: it keeps listeners per target and
// kind and delivers events handed to Dispatch. Hosts with their own event
// loop can embed it and translate native events into Dispatch calls.
type Dispatcher struct {
	listeners [numTargets][numEventKinds][]listener
	nextID    uint32
	canvas    *ebiten.Image
}

// NewDispatcher creates a Dispatcher whose Canvas returns canvas.
// canvas may be nil for hosts that draw elsewhere.
func NewDispatcher(canvas *ebiten.Image) *Dispatcher {
	return &Dispatcher{canvas: canvas}
}

// ListenerHandle allows removing a listener registered on a Dispatcher.
type ListenerHandle struct {
	id     uint32
	d      *Dispatcher
	target Target
	kind   EventKind
}

// Remove unregisters this listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h ListenerHandle) Remove() {
	if h.d == nil {
		return
	}
	s := h.d.listeners[h.target][h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.d.listeners[h.target][h.kind] = s[:len(s)-1]
			return
		}
	}
}

// Listen registers fn for events of kind delivered to target.
func (d *Dispatcher) Listen(target Target, kind EventKind, fn func(*Event)) Subscription {
	if target >= numTargets || kind >= numEventKinds || fn == nil {
		return ListenerHandle{}
	}
	d.nextID++
	id := d.nextID
	d.listeners[target][kind] = append(d.listeners[target][kind], listener{id: id, fn: fn})
	return ListenerHandle{id: id, d: d, target: target, kind: kind}
}

// ListenerCount returns how many listeners are registered for target and kind.
func (d *Dispatcher) ListenerCount(target Target, kind EventKind) int {
	if target >= numTargets || kind >= numEventKinds {
		return 0
	}
	return len(d.listeners[target][kind])
}

// Dispatch delivers ev to every listener registered for target and ev.Kind,
// in registration order. Listeners may remove themselves (or others) while
// the event is being delivered; the set of listeners called is fixed when
// Dispatch starts. Returns whether any listener prevented the default action.
func (d *Dispatcher) Dispatch(target Target, ev *Event) bool {
	if target >= numTargets || ev.Kind >= numEventKinds {
		return false
	}
	var stack [8]listener
	ls := append(stack[:0], d.listeners[target][ev.Kind]...)
	for _, l := range ls {
		l.fn(ev)
	}
	return ev.prevented
}

// Canvas returns the drawing context passed to NewDispatcher.
func (d *Dispatcher) Canvas() *ebiten.Image {
	return d.canvas
}
