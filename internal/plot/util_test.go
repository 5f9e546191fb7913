package plot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

var approx = cmpApprox(1e-9)

func cmpApprox(margin float64) cmp.Option {
	return cmpopts.EquateApprox(1e-12, margin)
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// fixedMeasurer measures every rune as 10x20 pixels
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(s string) (float64, float64) {
	return float64(10 * len([]rune(s))), 20
}

func testViewport() Viewport {
	return NewViewport(curve.Sz(2048, 1536), 100, 10, 1000)
}
