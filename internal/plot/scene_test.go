package plot

import (
	"image/color"
	"testing"

	"honnef.co/go/curve"
)

// recordingCanvas logs every primitive call
type recordingCanvas struct {
	fixedMeasurer
	calls  []string
	lines  map[color.Color]int
	strips int
	texts  []string
}

func (c *recordingCanvas) Clear(color.Color) { c.calls = append(c.calls, "clear") }

func (c *recordingCanvas) Lines(segs []Segment, clr color.Color) {
	c.calls = append(c.calls, "lines")
	if c.lines == nil {
		c.lines = map[color.Color]int{}
	}
	c.lines[clr] += len(segs)
}

func (c *recordingCanvas) FillRect(curve.Rect, color.Color) { c.calls = append(c.calls, "rect") }

func (c *recordingCanvas) TriangleStrip(vs []StripVertex) {
	c.calls = append(c.calls, "strip")
	c.strips += len(vs)
}

func (c *recordingCanvas) Text(l Label, _ color.Color) {
	c.calls = append(c.calls, "text")
	c.texts = append(c.texts, l.Text)
}

func TestBuildScene(t *testing.T) {
	vp := testViewport()
	size := curve.Sz(2048, 1536)
	fn := Functions(1)[0]
	s := BuildScene(vp, NewGridLevel(1, 4), fn, size, SceneStyle{AxisThickness: 2, RibbonThickness: 2}, fixedMeasurer{})

	// Major: 21 vertical + 15 horizontal. Minor spacing is 25px: 81 + 61.
	if len(s.Grid) != 36 {
		t.Fatalf("grid has %d lines; want 36", len(s.Grid))
	}
	if len(s.SubGrid) != 81+61 {
		t.Fatalf("sub grid has %d lines; want 142", len(s.SubGrid))
	}
	diff(t, Segment{curve.Pt(24, 0), curve.Pt(24, 1536)}, s.Grid[0])
	diff(t, []curve.Rect{
		{X0: 0, Y0: 767, X1: 2048, Y1: 769},
		{X0: 1023, Y0: 0, X1: 1025, Y1: 1536},
	}, s.Axes)
	if len(s.Ribbon) != 2*2049 {
		t.Fatalf("ribbon has %d vertices; want %d", len(s.Ribbon), 2*2049)
	}
	if len(s.Labels) != 35 {
		t.Fatalf("got %d labels; want 35", len(s.Labels))
	}
}

func TestScene_RenderOrder(t *testing.T) {
	vp := testViewport()
	size := curve.Sz(2048, 1536)
	s := BuildScene(vp, NewGridLevel(1, 4), Functions(1)[0], size, SceneStyle{AxisThickness: 2, RibbonThickness: 2}, fixedMeasurer{})

	c := &recordingCanvas{}
	s.Render(c)

	want := []string{"clear", "lines", "lines", "rect", "rect", "strip"}
	for range s.Labels {
		want = append(want, "text")
	}
	diff(t, want, c.calls)
	if c.lines[subGridColor] != len(s.SubGrid) || c.lines[gridColor] != len(s.Grid) {
		t.Fatalf("line counts %v", c.lines)
	}
	if c.strips != len(s.Ribbon) {
		t.Fatalf("strip vertices %d; want %d", c.strips, len(s.Ribbon))
	}
}
