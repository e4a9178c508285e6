package panzoom

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSurface is a Surface backed by Ebitengine input. It owns an offscreen
// canvas covering Bounds on the screen; transform callbacks draw into the
// canvas and Draw composites it onto the screen.
//
// Call Update from your game's Update and Draw from its Draw:
//
//	func (g *Game) Update() error        { g.surface.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.surface.Draw(s) }
type EbitenSurface struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	// Defaults to "screenshots".
	ScreenshotDir string

	bounds Rect
	canvas *ebiten.Image
	events Dispatcher
	input  inputSource

	// Mouse state
	mouseDown bool
	mouseSeen bool
	lastX     float64
	lastY     float64

	// Touch state
	contacts []contact
	ignored  []ebiten.TouchID
	touchIDs []ebiten.TouchID
	touchBuf []Vec2

	prevented bool

	injectQueue     []syntheticEvent
	injectHeld      bool // a synthetic press is down; real pointer input waits
	runner          *GestureRunner
	screenshotQueue []string
}

// NewEbitenSurface creates a surface covering bounds in screen pixels.
func NewEbitenSurface(bounds Rect) *EbitenSurface {
	return &EbitenSurface{
		ScreenshotDir: "screenshots",
		bounds:        bounds,
		input:         ebitenInput{},
	}
}

// Bounds returns the screen rectangle the surface covers.
func (s *EbitenSurface) Bounds() Rect {
	return s.bounds
}

// SetBounds moves or resizes the surface. The canvas is reallocated on the
// next Canvas call if the size changed.
func (s *EbitenSurface) SetBounds(bounds Rect) {
	if s.canvas != nil && (canvasSize(bounds) != canvasSize(s.bounds)) {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.bounds = bounds
}

// Listen implements Surface.
func (s *EbitenSurface) Listen(target Target, kind EventKind, fn func(*Event)) Subscription {
	return s.events.Listen(target, kind, fn)
}

// Canvas implements Surface. The image is allocated on first use.
func (s *EbitenSurface) Canvas() *ebiten.Image {
	if s.canvas == nil {
		s.canvas = ebiten.NewImageWithOptions(canvasSize(s.bounds), nil)
	}
	return s.canvas
}

// DefaultPrevented reports whether any listener suppressed the default
// action of an event during the last Update. Hosts use it to skip their own
// scroll or zoom handling for that tick.
func (s *EbitenSurface) DefaultPrevented() bool {
	return s.prevented
}

// Update polls input and dispatches events to listeners. A queued synthetic
// event, if any, replaces real input for this tick. While a synthetic press
// is held, the real mouse is not polled until the matching release.
func (s *EbitenSurface) Update() {
	s.prevented = false
	if s.runner != nil {
		s.runner.step(s)
	}
	if s.processInjectedInput() {
		return
	}
	if !s.injectHeld {
		s.processMouse()
	}
	s.processTouches()
	s.processWheel()
}

// Draw composites the canvas onto screen at Bounds and writes any queued
// screenshots. Screenshots queued before anything was drawn are discarded.
func (s *EbitenSurface) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		s.dropScreenshots()
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.bounds.X, s.bounds.Y)
	screen.DrawImage(s.canvas, op)
	s.flushScreenshots(s.canvas)
}

// dispatch delivers ev and records whether its default was prevented.
func (s *EbitenSurface) dispatch(target Target, ev *Event) {
	if s.events.Dispatch(target, ev) {
		s.prevented = true
	}
}

// canvasSize returns the pixel rectangle of a canvas covering bounds.
// The canvas is never smaller than 1x1.
func canvasSize(bounds Rect) image.Rectangle {
	w := max(int(bounds.Width), 1)
	h := max(int(bounds.Height), 1)
	return image.Rect(0, 0, w, h)
}
