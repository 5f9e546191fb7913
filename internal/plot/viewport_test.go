package plot

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestViewport_RoundTrip(t *testing.T) {
	vp := testViewport()
	vp.PanBy(curve.Vec(-313.5, 77.25))
	vp.ZoomAt(curve.Pt(400, 300), -7, 3)

	for _, u := range []curve.Point{{X: 0, Y: 0}, {X: 1, Y: -1}, {X: -123.456, Y: 0.001}, {X: 1e6, Y: -1e6}} {
		diff(t, u, vp.ToUnit(vp.ToPixel(u)), approx)
	}
	for _, p := range []curve.Point{{X: 0, Y: 0}, {X: 2048, Y: 1536}, {X: -50.5, Y: 9000}} {
		diff(t, p, vp.ToPixel(vp.ToUnit(p)), approx)
	}
}

func TestViewport_PlotFlipsY(t *testing.T) {
	vp := testViewport()
	diff(t, curve.Pt(1124, 668), vp.PlotToPixel(1, 1))
	diff(t, curve.Pt(1, 1), vp.PixelToPlot(curve.Pt(1124, 668)), approx)
}

func TestViewport_ZoomKeepsPointerFixed(t *testing.T) {
	tcs := []struct {
		name    string
		pointer curve.Point
		deltas  []float64
	}{
		{name: "in", pointer: curve.Pt(100, 200), deltas: []float64{-1, -1, -5, -20}},
		{name: "out", pointer: curve.Pt(1900, 30), deltas: []float64{2, 3, 0.5}},
		{name: "mixed", pointer: curve.Pt(-40, 2000), deltas: []float64{-10, 4, -0.25, 7}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			vp := testViewport()
			for _, d := range tc.deltas {
				before := vp.ToUnit(tc.pointer)
				vp.ZoomAt(tc.pointer, d, 10)
				diff(t, before, vp.ToUnit(tc.pointer), approx)
			}
		})
	}
}

func TestViewport_ZoomClamps(t *testing.T) {
	vp := testViewport()
	pointer := curve.Pt(700, 500)
	for _, d := range []float64{-50, -50, 3, 200, 200, -1e9, 1e9, 0.5} {
		before := vp.ToUnit(pointer)
		factor := vp.ZoomAt(pointer, d, 10)
		if vp.Scale < vp.MinScale || vp.Scale > vp.MaxScale {
			t.Fatalf("ZoomAt(%v): scale %v outside [%v, %v]", d, vp.Scale, vp.MinScale, vp.MaxScale)
		}
		if !(factor > 0) {
			t.Fatalf("ZoomAt(%v) = %v; want positive factor", d, factor)
		}
		// Recentering uses the clamped factor, so the anchor survives clamping too.
		diff(t, before, vp.ToUnit(pointer), cmpApprox(1e-6))
	}
}

func TestViewport_ZoomAtBound(t *testing.T) {
	vp := testViewport()
	vp.ZoomAt(curve.Pt(0, 0), 1e6, 1)
	if vp.Scale != vp.MinScale {
		t.Fatalf("scale = %v; want %v", vp.Scale, vp.MinScale)
	}
	origin := vp.Origin
	if f := vp.ZoomAt(curve.Pt(300, 300), 5, 1); f != 1 {
		t.Fatalf("factor at bound = %v; want 1", f)
	}
	diff(t, origin, vp.Origin)

	vp = testViewport()
	if f := vp.ZoomAt(curve.Pt(0, 0), 90, 1); math.Abs(f-0.1) > 1e-12 {
		t.Fatalf("factor = %v; want 0.1", f)
	}
	if f := vp.ZoomAt(curve.Pt(0, 0), 1, 1); f != 1 {
		t.Fatalf("factor past min = %v; want 1", f)
	}
}

func TestViewport_Reset(t *testing.T) {
	vp := testViewport()
	vp.PanBy(curve.Vec(500, -20))
	vp.ZoomAt(curve.Pt(10, 10), -30, 1)
	scale := vp.Scale
	vp.Reset()
	diff(t, curve.Pt(1024, 768), vp.Origin)
	if vp.Scale != scale {
		t.Fatalf("Reset changed scale to %v; want %v", vp.Scale, scale)
	}
}
