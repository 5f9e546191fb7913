package plot

import (
	"image/color"

	"honnef.co/go/curve"
)

// Colors and design
var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	axisColor       = color.RGBA{0, 0, 0, 255}
	gridColor       = color.RGBA{200, 200, 200, 255}
	subGridColor    = color.RGBA{235, 235, 235, 255}
	labelColor      = color.RGBA{0, 0, 0, 255}
)

// Segment is a line from A to B in pixel space
type Segment struct {
	A, B curve.Point
}

// Canvas is a sink for render primitives
type Canvas interface {
	TextMeasurer
	Clear(clr color.Color)
	Lines(segs []Segment, clr color.Color)
	FillRect(r curve.Rect, clr color.Color)
	TriangleStrip(vs []StripVertex)
	Text(l Label, clr color.Color)
}

// Scene holds everything drawn in one frame
type Scene struct {
	SubGrid []Segment
	Grid    []Segment
	Axes    []curve.Rect
	Ribbon  []StripVertex
	Labels  []Label
}

// SceneStyle holds the sizes used when building a scene
type SceneStyle struct {
	AxisThickness   float64
	RibbonThickness float64
}

// BuildScene builds the primitives for one frame from state snapshots
func BuildScene(vp Viewport, grid GridLevel, fn Function, size curve.Size, style SceneStyle, m TextMeasurer) Scene {
	t := style.AxisThickness
	return Scene{
		SubGrid: GridSegments(vp, grid.SubUnit*vp.Scale, size),
		Grid:    GridSegments(vp, grid.Unit*vp.Scale, size),
		Axes: []curve.Rect{
			curve.NewRectFromOrigin(curve.Pt(0, vp.Origin.Y-t/2), curve.Sz(size.Width, t)),
			curve.NewRectFromOrigin(curve.Pt(vp.Origin.X-t/2, 0), curve.Sz(t, size.Height)),
		},
		Ribbon: Ribbon(Samples(vp, int(size.Width), fn.F), style.RibbonThickness),
		Labels: TickLabels(vp, grid, size, m),
	}
}

// GridSegments returns full-window vertical and horizontal lines every
// spacing pixels, aligned to the viewport origin
func GridSegments(vp Viewport, spacing float64, size curve.Size) []Segment {
	var segs []Segment
	for _, x := range GridLines(size.Width, spacing, vp.Origin.X) {
		segs = append(segs, Segment{curve.Pt(x, 0), curve.Pt(x, size.Height)})
	}
	for _, y := range GridLines(size.Height, spacing, vp.Origin.Y) {
		segs = append(segs, Segment{curve.Pt(0, y), curve.Pt(size.Width, y)})
	}
	return segs
}

// Render draws the scene onto c, back to front
func (s Scene) Render(c Canvas) {
	c.Clear(backgroundColor)
	c.Lines(s.SubGrid, subGridColor)
	c.Lines(s.Grid, gridColor)
	for _, r := range s.Axes {
		c.FillRect(r, axisColor)
	}
	c.TriangleStrip(s.Ribbon)
	for _, l := range s.Labels {
		c.Text(l, labelColor)
	}
}
