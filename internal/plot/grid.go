package plot

import "math"

// maxGridLines bounds the lines GridLines returns for one axis
const maxGridLines = 1 << 16

// GridLevel is the current level of detail of the grid
type GridLevel struct {
	Unit    float64 // Major line interval in units
	SubUnit float64 // Minor line interval in units
	Zoom    float64 // Scale drift since the intervals were last changed, within (0.5, 2)
}

// NewGridLevel creates a grid level with major interval unit and subdivisions
// minor lines per major line
func NewGridLevel(unit float64, subdivisions int) GridLevel {
	return GridLevel{
		Unit:    unit,
		SubUnit: unit / float64(subdivisions),
		Zoom:    1,
	}
}

// OnZoom accounts for a realized zoom factor. Crossing 0.5 doubles the
// intervals, crossing 2 halves them; a single large factor may cross several
// thresholds at once.
func (g *GridLevel) OnZoom(factor float64) {
	g.Zoom *= factor
	for g.Zoom <= 0.5 {
		g.Zoom *= 2
		g.Unit *= 2
		g.SubUnit *= 2
	}
	for g.Zoom >= 2 {
		g.Zoom /= 2
		g.Unit /= 2
		g.SubUnit /= 2
	}
}

// GridLines returns evenly spaced positions along an axis of the given
// length, phased so one line falls on originOffset. Positions start in
// [0, spacing) and stop before passing length. A spacing that would yield
// more than maxGridLines positions yields none.
func GridLines(length, spacing, originOffset float64) []float64 {
	if !(spacing > 0) || !(length > 0) || math.IsInf(length, 0) || math.IsInf(spacing, 0) ||
		math.IsNaN(originOffset) || math.IsInf(originOffset, 0) || length/spacing > maxGridLines {
		return nil
	}
	start := math.Mod(originOffset, spacing)
	if start < 0 {
		start += spacing
		if start >= spacing {
			start = 0
		}
	}
	var lines []float64
	for i := 0; ; i++ {
		p := start + float64(i)*spacing
		if p >= length {
			break
		}
		lines = append(lines, p)
	}
	return lines
}
