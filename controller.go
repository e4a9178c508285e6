package panzoom

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultMinScale      = 0.05 // smallest allowed scale
	DefaultMaxScale      = 20.0 // largest allowed scale
	DefaultZoomInFactor  = 1.2  // scale multiplier per zoom-in wheel step
	DefaultZoomOutFactor = 0.8  // scale multiplier per zoom-out wheel step
)

// Errors returned by New and Apply, wrapped with context. Test with errors.Is.
var (
	// ErrNilSurface is returned when no Surface is given.
	ErrNilSurface = errors.New("nil surface")
	// ErrNilCallback is returned when Config.OnTransform is nil.
	ErrNilCallback = errors.New("nil transform callback")
	// ErrInvalidBounds is returned when MinScale is not positive or MaxScale
	// is not a finite value above it.
	ErrInvalidBounds = errors.New("invalid scale bounds")
	// ErrInvalidZoomFactor is returned when ZoomInFactor is not above 1 or
	// ZoomOutFactor is not between 0 and 1.
	ErrInvalidZoomFactor = errors.New("invalid zoom factor")
)

// TransformContext is passed to the transform callback on every change.
type TransformContext struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
	// Gesture is what caused this change.
	Gesture Gesture
	// Surface is the surface the controller is attached to.
	Surface Surface
}

// Transform returns the scale and translation as a Transform value.
func (c TransformContext) Transform() Transform {
	return Transform{Scale: c.Scale, TranslateX: c.TranslateX, TranslateY: c.TranslateY}
}

// Canvas returns the surface's drawing context, or nil if there is none.
func (c TransformContext) Canvas() *ebiten.Image {
	if c.Surface == nil {
		return nil
	}
	return c.Surface.Canvas()
}

// TransformEvent mirrors a transform callback for a TransformStore.
type TransformEvent struct {
	Gesture    Gesture
	Mode       Mode
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// TransformStore is the interface for optional ECS integration.
// When set in Config, every transform change is forwarded to it after the
// callback has run.
type TransformStore interface {
	EmitTransform(event TransformEvent)
}

// Config holds the options for New and Apply. Zero values select defaults.
type Config struct {
	// OnTransform is called with the new transform after every change.
	// Required.
	OnTransform func(TransformContext)

	// MinScale and MaxScale bound the zoom factor. Defaults 0.05 and 20.
	MinScale float64
	MaxScale float64

	// ZoomInFactor multiplies the scale on a zoom-in wheel step (default
	// 1.2); ZoomOutFactor on a zoom-out step (default 0.8).
	ZoomInFactor  float64
	ZoomOutFactor float64

	// Store, if set, receives a TransformEvent for every callback.
	Store TransformStore

	// Debug prints mode transitions to stderr.
	Debug bool
}

func (cfg Config) withDefaults() Config {
	if cfg.MinScale == 0 {
		cfg.MinScale = DefaultMinScale
	}
	if cfg.MaxScale == 0 {
		cfg.MaxScale = DefaultMaxScale
	}
	if cfg.ZoomInFactor == 0 {
		cfg.ZoomInFactor = DefaultZoomInFactor
	}
	if cfg.ZoomOutFactor == 0 {
		cfg.ZoomOutFactor = DefaultZoomOutFactor
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.OnTransform == nil {
		return ErrNilCallback
	}
	if !(cfg.MinScale > 0) || !(cfg.MaxScale > cfg.MinScale) || math.IsInf(cfg.MaxScale, 0) {
		return fmt.Errorf("%w: min %v, max %v", ErrInvalidBounds, cfg.MinScale, cfg.MaxScale)
	}
	if !(cfg.ZoomInFactor > 1) || math.IsInf(cfg.ZoomInFactor, 0) {
		return fmt.Errorf("%w: zoom in %v", ErrInvalidZoomFactor, cfg.ZoomInFactor)
	}
	if !(cfg.ZoomOutFactor > 0 && cfg.ZoomOutFactor < 1) {
		return fmt.Errorf("%w: zoom out %v", ErrInvalidZoomFactor, cfg.ZoomOutFactor)
	}
	return nil
}

// --- Gesture anchors ---

type panAnchor struct {
	x, y float64
}

type pinchAnchor struct {
	distance   float64
	start      Transform
	midX, midY float64
}

// Controller turns pan, pinch, and wheel input on a Surface into a view
// Transform and reports every change to the transform callback.
//
// All methods must be called from the goroutine that delivers input events.
type Controller struct {
	surface     Surface
	onTransform func(TransformContext)
	store       TransformStore

	minScale      float64
	maxScale      float64
	zoomInFactor  float64
	zoomOutFactor float64

	transform Transform
	mode      Mode
	pan       panAnchor
	pinch     pinchAnchor

	subs     []Subscription
	released bool
	debug    bool
}

// New creates a Controller attached to surface and subscribes to its input
// events. The callback is not invoked; use Apply for an initial paint.
func New(surface Surface, cfg Config) (*Controller, error) {
	if surface == nil {
		return nil, fmt.Errorf("panzoom: new controller: %w", ErrNilSurface)
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("panzoom: new controller: %w", err)
	}
	c := &Controller{
		surface:       surface,
		onTransform:   cfg.OnTransform,
		store:         cfg.Store,
		minScale:      cfg.MinScale,
		maxScale:      cfg.MaxScale,
		zoomInFactor:  cfg.ZoomInFactor,
		zoomOutFactor: cfg.ZoomOutFactor,
		transform:     Identity(),
		mode:          ModeIdle,
		debug:         cfg.Debug,
	}
	c.registerListeners()
	return c, nil
}

// Apply creates a Controller like New and immediately invokes the callback
// once with the initial transform.
func Apply(surface Surface, cfg Config) (*Controller, error) {
	c, err := New(surface, cfg)
	if err != nil {
		return nil, err
	}
	c.notify(GestureApply)
	return c, nil
}

// Transform returns the current view transform.
func (c *Controller) Transform() Transform {
	return c.transform
}

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// MinScale returns the lower scale bound.
func (c *Controller) MinScale() float64 {
	return c.minScale
}

// MaxScale returns the upper scale bound.
func (c *Controller) MaxScale() float64 {
	return c.maxScale
}

// Released reports whether Release has been called.
func (c *Controller) Released() bool {
	return c.released
}

// SetDebugMode enables or disables transition logging on stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Release removes every subscription made at construction. Afterwards the
// controller ignores all input. Calling Release again does nothing.
func (c *Controller) Release() {
	if c.released {
		return
	}
	c.released = true
	for _, s := range c.subs {
		s.Remove()
	}
	c.subs = nil
	c.debugf("released in mode %s", c.mode)
}

// --- Pan ---

// BeginPan starts a pan at (x, y). An active pinch is ended first.
func (c *Controller) BeginPan(x, y float64) {
	if c.released {
		return
	}
	if c.mode == ModePinching {
		c.EndPinch()
	}
	c.setMode(ModePanning)
	c.pan = panAnchor{x: x, y: y}
}

// ContinuePan moves the view by the pointer's motion since the last pan
// event. Ignored unless panning.
func (c *Controller) ContinuePan(x, y float64) {
	if c.released || c.mode != ModePanning {
		return
	}
	c.transform.TranslateX += x - c.pan.x
	c.transform.TranslateY += y - c.pan.y
	c.pan = panAnchor{x: x, y: y}
	c.notify(GesturePan)
}

// EndPan finishes a pan. Ignored unless panning.
func (c *Controller) EndPan() {
	if c.released || c.mode != ModePanning {
		return
	}
	c.setMode(ModeIdle)
}

// --- Pinch ---

// BeginPinch starts a pinch between contacts p1 and p2. An active pan is
// ended first; an active pinch is restarted from the current transform.
func (c *Controller) BeginPinch(p1, p2 Vec2) {
	if c.released {
		return
	}
	if c.mode == ModePanning {
		c.EndPan()
	}
	c.setMode(ModePinching)
	midX, midY := midpoint(p1, p2)
	c.pinch = pinchAnchor{
		distance: distance(p1, p2),
		start:    c.transform,
		midX:     midX,
		midY:     midY,
	}
}

// ContinuePinch rescales the view by the ratio of the current contact
// distance to the distance at BeginPinch, keeping the initial midpoint
// anchored and following the midpoint's drift. Ignored unless pinching.
// When the scale is clamped, the translation follows the clamped scale.
func (c *Controller) ContinuePinch(p1, p2 Vec2) {
	if c.released || c.mode != ModePinching {
		return
	}
	// Contacts that started on the same spot have no usable ratio.
	factor := 1.0
	if c.pinch.distance > 0 {
		factor = distance(p1, p2) / c.pinch.distance
	}
	midX, midY := midpoint(p1, p2)

	prev := c.transform.Scale
	c.transform.Scale = c.clampScale(c.pinch.start.Scale * factor)
	if c.transform.Scale != prev {
		// Scale by what the clamp let through so the midpoint stays put.
		a := c.pinch
		ratio := c.transform.Scale / a.start.Scale
		c.transform.TranslateX = (a.start.TranslateX-a.midX)*ratio + a.midX + (midX - a.midX)
		c.transform.TranslateY = (a.start.TranslateY-a.midY)*ratio + a.midY + (midY - a.midY)
	}
	c.notify(GesturePinch)
}

// EndPinch finishes a pinch. Ignored unless pinching.
func (c *Controller) EndPinch() {
	if c.released || c.mode != ModePinching {
		return
	}
	c.setMode(ModeIdle)
}

// --- Wheel ---

// WheelZoom zooms one step around (x, y), keeping that point fixed on the
// surface. A negative deltaY zooms in, a positive one zooms out, zero leaves
// the scale alone. The callback fires on every call. The mode is unchanged.
func (c *Controller) WheelZoom(x, y, deltaY float64) {
	if c.released {
		return
	}
	factor := 1.0
	switch {
	case deltaY < 0:
		factor = c.zoomInFactor
	case deltaY > 0:
		factor = c.zoomOutFactor
	}

	prev := c.transform.Scale
	c.transform.Scale = c.clampScale(prev * factor)
	if c.transform.Scale != prev {
		ratio := c.transform.Scale / prev
		c.transform.TranslateX = (c.transform.TranslateX-x)*ratio + x
		c.transform.TranslateY = (c.transform.TranslateY-y)*ratio + y
	}
	c.notify(GestureWheel)
}

// --- Internals ---

func (c *Controller) clampScale(s float64) float64 {
	if s > c.maxScale {
		return c.maxScale
	}
	if s < c.minScale {
		return c.minScale
	}
	return s
}

func (c *Controller) setMode(m Mode) {
	if c.mode != m {
		c.debugf("mode %s -> %s", c.mode, m)
	}
	c.mode = m
}

// notify invokes the transform callback and forwards the change to the store.
func (c *Controller) notify(g Gesture) {
	t := c.transform
	c.onTransform(TransformContext{
		Scale:      t.Scale,
		TranslateX: t.TranslateX,
		TranslateY: t.TranslateY,
		Gesture:    g,
		Surface:    c.surface,
	})
	if c.store != nil {
		c.store.EmitTransform(TransformEvent{
			Gesture:    g,
			Mode:       c.mode,
			Scale:      t.Scale,
			TranslateX: t.TranslateX,
			TranslateY: t.TranslateY,
		})
	}
}

func distance(p1, p2 Vec2) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

func midpoint(p1, p2 Vec2) (float64, float64) {
	return p1.X + (p2.X-p1.X)/2, p1.Y + (p2.Y-p1.Y)/2
}
