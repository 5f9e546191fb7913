package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"honnef.co/go/curve"
)

// imageCanvas rasterizes scenes into an in-memory image
type imageCanvas struct {
	dc *gg.Context
}

func newImageCanvas(width, height int, face font.Face) *imageCanvas {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	return &imageCanvas{dc: dc}
}

func (c *imageCanvas) Measure(s string) (float64, float64) {
	return c.dc.MeasureString(s)
}

func (c *imageCanvas) Clear(clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.Clear()
}

func (c *imageCanvas) Lines(segs []Segment, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(1)
	for _, s := range segs {
		c.dc.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
		c.dc.Stroke()
	}
}

func (c *imageCanvas) FillRect(r curve.Rect, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
	c.dc.Fill()
}

// TriangleStrip fills each triangle with the mean of its vertex colors,
// since gg has no per-vertex shading
func (c *imageCanvas) TriangleStrip(vs []StripVertex) {
	for i := 0; i+2 < len(vs); i++ {
		a, b, d := vs[i], vs[i+1], vs[i+2]
		c.dc.MoveTo(a.Pos.X, a.Pos.Y)
		c.dc.LineTo(b.Pos.X, b.Pos.Y)
		c.dc.LineTo(d.Pos.X, d.Pos.Y)
		c.dc.ClosePath()
		c.dc.SetColor(meanColor(a.Color, b.Color, d.Color))
		c.dc.Fill()
	}
}

func (c *imageCanvas) Text(l Label, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawStringAnchored(l.Text, l.X, l.Y, 0, 1)
}

func meanColor(cs ...color.RGBA) color.RGBA {
	var r, g, b, a int
	for _, c := range cs {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
	}
	n := len(cs)
	return color.RGBA{uint8(r / n), uint8(g / n), uint8(b / n), uint8(a / n)}
}

// Snapshot renders the current view into a PNG file in dir and returns its path
func Snapshot(v *View, cfg *Config, fnt *Font, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}
	c := newImageCanvas(cfg.Width, cfg.Height, fnt.ImageFace(cfg.LabelSize))
	scene := BuildScene(v.Viewport, v.Grid, v.Function(), cfg.Size(), cfg.SceneStyle(), c)
	scene.Render(c)

	path := filepath.Join(dir, fmt.Sprintf("grapher-%d.png", now.Unix()))
	if err := c.dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return path, nil
}
