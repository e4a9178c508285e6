package panzoom

// Vec2 is a 2D point or vector in surface-local pixels.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Mode is the controller's current interaction mode.
type Mode uint8

const (
	ModeIdle     Mode = iota // no gesture in progress
	ModePanning              // single pointer drag
	ModePinching             // two-contact pinch
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanning:
		return "panning"
	case ModePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// Gesture identifies what caused a transform change.
type Gesture uint8

const (
	GestureApply Gesture = iota // initial paint from Apply
	GesturePan                  // single pointer pan
	GesturePinch                // two-contact pinch
	GestureWheel                // wheel zoom
)

func (g Gesture) String() string {
	switch g {
	case GestureApply:
		return "apply"
	case GesturePan:
		return "pan"
	case GesturePinch:
		return "pinch"
	case GestureWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// EventKind identifies a kind of input event delivered by a Surface.
type EventKind uint8

const (
	EventMouseDown   EventKind = iota // a mouse button was pressed
	EventMouseUp                      // a mouse button was released
	EventMouseMove                    // the cursor moved
	EventTouchStart                   // one or more contacts began
	EventTouchMove                    // one or more contacts moved
	EventTouchEnd                     // one or more contacts lifted
	EventTouchCancel                  // the host aborted the touch sequence
	EventWheel                        // vertical scroll

	numEventKinds
)

func (k EventKind) String() string {
	switch k {
	case EventMouseDown:
		return "mousedown"
	case EventMouseUp:
		return "mouseup"
	case EventMouseMove:
		return "mousemove"
	case EventTouchStart:
		return "touchstart"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	case EventTouchCancel:
		return "touchcancel"
	case EventWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// Target is the scope a listener is attached to.
type Target uint8

const (
	// TargetSurface receives events that originate inside the surface.
	TargetSurface Target = iota
	// TargetGlobal receives events wherever they happen, so a drag can
	// continue after the pointer leaves the surface.
	TargetGlobal

	numTargets
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
