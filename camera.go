package panzoom

import "math"

// Camera-style conversions for hosts whose renderer is driven by a camera
// that centers a world position in its viewport (position + zoom) rather
// than by a raw scale/translate pair.

// CameraCenter returns the world position shown at the center of viewport
// and the zoom that reproduce t on a center-based camera. viewport is in the
// same surface coordinates the transform maps into.
func (t Transform) CameraCenter(viewport Rect) (x, y, zoom float64) {
	cx := viewport.X + viewport.Width/2
	cy := viewport.Y + viewport.Height/2
	x, y = t.ScreenToModel(cx, cy)
	return x, y, t.Scale
}

// FromCamera builds the transform that a center-based camera at world (x, y)
// with the given zoom produces inside viewport.
func FromCamera(x, y, zoom float64, viewport Rect) Transform {
	cx := viewport.X + viewport.Width/2
	cy := viewport.Y + viewport.Height/2
	return Transform{
		Scale:      zoom,
		TranslateX: cx - x*zoom,
		TranslateY: cy - y*zoom,
	}
}

// VisibleBounds returns the model-space rectangle visible through viewport.
func (t Transform) VisibleBounds(viewport Rect) Rect {
	inv := invertAffine(t.Matrix())

	vx := viewport.X
	vy := viewport.Y
	vr := vx + viewport.Width
	vb := vy + viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vb)

	minX := math.Min(x0, x1)
	minY := math.Min(y0, y1)
	maxX := math.Max(x0, x1)
	maxY := math.Max(y0, y1)

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
