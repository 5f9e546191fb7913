package plot

import "honnef.co/go/curve"

// Viewport maps between pixel space and unit space
type Viewport struct {
	Origin curve.Point // Pixel position of the unit origin (0,0)
	Scale  float64     // Pixels per unit, always within [MinScale, MaxScale]

	DefaultOrigin curve.Point
	DefaultScale  float64
	MinScale      float64
	MaxScale      float64
}

// NewViewport creates a viewport centered in a window of the given size
func NewViewport(size curve.Size, defaultScale, minScale, maxScale float64) Viewport {
	center := curve.Pt(size.Width/2, size.Height/2)
	return Viewport{
		Origin:        center,
		Scale:         clamp(defaultScale, minScale, maxScale),
		DefaultOrigin: center,
		DefaultScale:  defaultScale,
		MinScale:      minScale,
		MaxScale:      maxScale,
	}
}

// unitToPixel scales unit space about the origin and moves it to Origin
func (v Viewport) unitToPixel() curve.Affine {
	return curve.Translate(curve.Vec2(v.Origin)).Mul(curve.Scale(v.Scale, v.Scale))
}

// plotToPixel is unitToPixel with the y axis pointing up
func (v Viewport) plotToPixel() curve.Affine {
	return v.unitToPixel().Mul(curve.FlipY)
}

// ToUnit converts a pixel position to unit space. The y axis is not flipped here.
func (v Viewport) ToUnit(p curve.Point) curve.Point {
	return p.Transform(v.unitToPixel().Invert())
}

// ToPixel is the inverse of ToUnit
func (v Viewport) ToPixel(u curve.Point) curve.Point {
	return u.Transform(v.unitToPixel())
}

// PlotToPixel converts a mathematical point (y up) to a pixel position (y down)
func (v Viewport) PlotToPixel(x, y float64) curve.Point {
	return curve.Pt(x, y).Transform(v.plotToPixel())
}

// PixelToPlot converts a pixel position to a mathematical point (y up)
func (v Viewport) PixelToPlot(p curve.Point) curve.Point {
	return p.Transform(v.plotToPixel().Invert())
}

// PanBy moves the origin by a pixel delta
func (v *Viewport) PanBy(delta curve.Vec2) {
	v.Origin = v.Origin.Translate(delta)
}

// ZoomAt changes the scale by wheelDelta*speed while keeping the point under
// pointer fixed. It returns the realized zoom factor, which is 1 at a bound.
func (v *Viewport) ZoomAt(pointer curve.Point, wheelDelta, speed float64) float64 {
	newScale := clamp(v.Scale-wheelDelta*speed, v.MinScale, v.MaxScale)
	factor := newScale / v.Scale
	// Scaling about pointer keeps it fixed.
	about := curve.Translate(curve.Vec2(pointer)).
		Mul(curve.Scale(factor, factor)).
		Mul(curve.Translate(curve.Vec2(pointer).Negate()))
	v.Origin = v.Origin.Transform(about)
	v.Scale = newScale
	return factor
}

// Reset restores the default origin
func (v *Viewport) Reset() {
	v.Origin = v.DefaultOrigin
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
