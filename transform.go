package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is a uniform scale followed by a translation. A model-space point
// (x, y) lands on the surface at (x*Scale + TranslateX, y*Scale + TranslateY).
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity returns the transform a Controller starts with.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Matrix returns the transform as an affine matrix [a, b, c, d, tx, ty].
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.Scale, 0, 0, t.Scale, t.TranslateX, t.TranslateY}
}

// ModelToScreen maps a model-space point to surface coordinates.
func (t Transform) ModelToScreen(x, y float64) (sx, sy float64) {
	return transformPoint(t.Matrix(), x, y)
}

// ScreenToModel maps a surface point back to model space. A zero Scale maps
// every point through the identity.
func (t Transform) ScreenToModel(sx, sy float64) (x, y float64) {
	return transformPoint(invertAffine(t.Matrix()), sx, sy)
}

// Concat returns t applied after m, i.e. the matrix that first maps through
// m (for example a node's local placement) and then through the view.
func (t Transform) Concat(m [6]float64) [6]float64 {
	return multiplyAffine(t.Matrix(), m)
}

// GeoM returns the transform as an ebiten.GeoM, ready to be used in
// DrawImageOptions.
func (t Transform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(t.Scale, t.Scale)
	g.Translate(t.TranslateX, t.TranslateY)
	return g
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
