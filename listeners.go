package panzoom

// registerListeners subscribes the controller to every input event it
// consumes. Mouse up and move are registered globally so a pan keeps
// tracking the pointer after it leaves the surface.
func (c *Controller) registerListeners() {
	c.listen(TargetSurface, EventMouseDown, c.onMouseDown)
	c.listen(TargetGlobal, EventMouseUp, c.onMouseUp)
	c.listen(TargetGlobal, EventMouseMove, c.onMouseMove)

	c.listen(TargetSurface, EventTouchStart, c.onTouchStart)
	c.listen(TargetSurface, EventTouchEnd, c.onTouchEnd)
	c.listen(TargetSurface, EventTouchCancel, c.onTouchEnd)
	c.listen(TargetSurface, EventTouchMove, c.onTouchMove)

	c.listen(TargetSurface, EventWheel, c.onWheel)
}

func (c *Controller) listen(target Target, kind EventKind, fn func(*Event)) {
	c.subs = append(c.subs, c.surface.Listen(target, kind, fn))
}

func (c *Controller) onMouseDown(ev *Event) {
	if ev.Button != MouseButtonLeft {
		return
	}
	c.BeginPan(ev.X, ev.Y)
}

func (c *Controller) onMouseUp(ev *Event) {
	if ev.Button != MouseButtonLeft {
		return
	}
	c.EndPan()
}

func (c *Controller) onMouseMove(ev *Event) {
	if c.mode == ModePanning {
		c.ContinuePan(ev.X, ev.Y)
	}
}

func (c *Controller) onTouchStart(ev *Event) {
	ev.PreventDefault()
	switch len(ev.Touches) {
	case 2:
		c.BeginPinch(ev.Touches[0], ev.Touches[1])
	case 1:
		c.BeginPan(ev.Touches[0].X, ev.Touches[0].Y)
	}
}

func (c *Controller) onTouchMove(ev *Event) {
	ev.PreventDefault()
	switch c.mode {
	case ModePanning:
		if len(ev.Touches) >= 1 {
			c.ContinuePan(ev.Touches[0].X, ev.Touches[0].Y)
		}
	case ModePinching:
		if len(ev.Touches) >= 2 {
			c.ContinuePinch(ev.Touches[0], ev.Touches[1])
		}
	}
}

// onTouchEnd ends the active gesture. Lifting one finger of a pinch hands
// the gesture over to a pan on the remaining contact.
func (c *Controller) onTouchEnd(ev *Event) {
	ev.PreventDefault()
	switch c.mode {
	case ModePanning:
		c.EndPan()
	case ModePinching:
		c.EndPinch()
		if ev.Kind == EventTouchEnd && len(ev.Touches) == 1 {
			c.BeginPan(ev.Touches[0].X, ev.Touches[0].Y)
		}
	}
}

func (c *Controller) onWheel(ev *Event) {
	ev.PreventDefault()
	c.WheelZoom(ev.X, ev.Y, ev.DeltaY)
}
