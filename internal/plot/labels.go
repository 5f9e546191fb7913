package plot

import (
	"math"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// LabelPadding is the gap in pixels between a label and its axis or the window edge
const LabelPadding = 4.0

// TextMeasurer reports the rendered size of a string
type TextMeasurer interface {
	Measure(s string) (w, h float64)
}

// Label is a tick label positioned by its top-left corner
type Label struct {
	Text string
	X, Y float64
}

// FormatLabel formats a tick value with at most three decimals and no
// trailing zeros, e.g. 1 -> "1", 0.25 -> "0.25", -0 -> "0"
func FormatLabel(v float64) string {
	v = math.Round(v*1000) / 1000
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// TickLabels lays out labels for every major grid line on both axes.
// x labels hang below the horizontal axis, y labels sit left of the vertical
// axis. Every label lies wholly inside the window, at least LabelPadding from
// its edges. The origin gets a single "0" tucked into the corner between the
// axes.
func TickLabels(vp Viewport, grid GridLevel, size curve.Size, m TextMeasurer) []Label {
	spacing := grid.Unit * vp.Scale
	var labels []Label
	zeroPlaced := false

	alongX := func(x, w float64) float64 {
		return clamp(x-w/2, LabelPadding, size.Width-w-LabelPadding)
	}
	alongY := func(y, h float64) float64 {
		return clamp(y-h/2, LabelPadding, size.Height-h-LabelPadding)
	}
	belowAxis := func(h float64) float64 {
		return clamp(vp.Origin.Y+LabelPadding, LabelPadding, size.Height-h-LabelPadding)
	}
	leftOfAxis := func(w float64) float64 {
		return clamp(vp.Origin.X-w-LabelPadding, LabelPadding, size.Width-w-LabelPadding)
	}

	for _, x := range GridLines(size.Width, spacing, vp.Origin.X) {
		text := FormatLabel(vp.PixelToPlot(curve.Pt(x, 0)).X)
		w, h := m.Measure(text)
		l := Label{Text: text, X: alongX(x, w), Y: belowAxis(h)}
		if text == "0" {
			l.X = leftOfAxis(w)
			zeroPlaced = true
		}
		labels = append(labels, l)
	}

	for _, y := range GridLines(size.Height, spacing, vp.Origin.Y) {
		text := FormatLabel(vp.PixelToPlot(curve.Pt(0, y)).Y)
		w, h := m.Measure(text)
		l := Label{Text: text, X: leftOfAxis(w), Y: alongY(y, h)}
		if text == "0" {
			if zeroPlaced {
				continue
			}
			l.Y = belowAxis(h)
		}
		labels = append(labels, l)
	}
	return labels
}
