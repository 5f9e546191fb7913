package plot

import (
	"fmt"
	"image/color"
	"iter"
	"math"

	"github.com/aquilax/go-perlin"
	"honnef.co/go/curve"
)

// Curve sampling constants
const (
	TangentStep = 0.01 // Half width in units of the secant used for the tangent
)

// Ribbon gradient: one color per side of the curve
var (
	ribbonOuterColor = color.RGBA{255, 0, 0, 160}
	ribbonInnerColor = color.RGBA{100, 0, 0, 160}
)

// Function is a plottable function of one variable, total over the reals
type Function struct {
	Name string
	F    func(x float64) float64
}

// Functions returns the built-in function presets. The noise preset uses seed.
func Functions(seed int64) []Function {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	return []Function{
		{Name: "waves", F: func(x float64) float64 { return math.Cos(2*x) + math.Cos(3*x) }},
		{Name: "sinc", F: func(x float64) float64 {
			if x == 0 {
				return 1
			}
			return math.Sin(x) / x
		}},
		{Name: "gauss", F: func(x float64) float64 { return 2 * math.Exp(-x*x/2) }},
		{Name: "noise", F: func(x float64) float64 { return 2 * noise.Noise1D(x/2) }},
	}
}

// FunctionIndex returns the index of the preset called name
func FunctionIndex(fns []Function, name string) (int, error) {
	for i, fn := range fns {
		if fn.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown function %q", name)
}

// Sample is one pixel column of the curve
type Sample struct {
	PixelX, PixelY float64
	UnitX, UnitY   float64
	TangentAngle   float64 // Direction perpendicular to the secant, in unit space
}

// Samples yields one sample per pixel column in [0, width]
func Samples(vp Viewport, width int, f func(float64) float64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for px := 0; px <= width; px++ {
			ux := vp.ToUnit(curve.Pt(float64(px), 0)).X
			uy := f(ux)
			s := Sample{
				PixelX:       float64(px),
				PixelY:       vp.PlotToPixel(ux, uy).Y,
				UnitX:        ux,
				UnitY:        uy,
				TangentAngle: math.Atan2(f(ux-TangentStep)-f(ux+TangentStep), -2*TangentStep) + math.Pi/2,
			}
			if !yield(s) {
				return
			}
		}
	}
}

// StripVertex is a colored vertex of a triangle strip
type StripVertex struct {
	Pos   curve.Point
	Color color.RGBA
}

// Ribbon builds a triangle strip 2*thickness wide hugging the sampled curve.
// The angle is negated because pixel y grows downward.
func Ribbon(samples iter.Seq[Sample], thickness float64) []StripVertex {
	var strip []StripVertex
	for s := range samples {
		off := curve.VecFromAngle(-s.TangentAngle).Mul(thickness)
		p := curve.Pt(s.PixelX, s.PixelY)
		strip = append(strip,
			StripVertex{Pos: p.Translate(off), Color: ribbonOuterColor},
			StripVertex{Pos: p.Translate(off.Negate()), Color: ribbonInnerColor},
		)
	}
	return strip
}
