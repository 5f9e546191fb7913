package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"honnef.co/go/curve"

	"github.com/olivierh59500/grapher-go/internal/plot"
)

// maxStripVertices keeps strip indices within uint16
const maxStripVertices = 1 << 14

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenFace returns an ebiten text face for fnt
func screenFace(fnt *plot.Font, size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fnt.Data))
	if err != nil {
		return nil, fmt.Errorf("font source %s: %w", fnt.Name, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// faceMeasurer measures label text with an ebiten face
type faceMeasurer struct {
	face *text.GoTextFace
}

func (m faceMeasurer) Measure(s string) (float64, float64) {
	return text.Measure(s, m.face, m.face.Size)
}

// screenCanvas draws scenes onto an ebiten image
type screenCanvas struct {
	faceMeasurer
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *screenCanvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *screenCanvas) Lines(segs []plot.Segment, clr color.Color) {
	for _, s := range segs {
		vector.StrokeLine(c.dst, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), 1, clr, true)
	}
}

func (c *screenCanvas) FillRect(r curve.Rect, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X0), float32(r.Y0), float32(r.Width()), float32(r.Height()), clr, true)
}

// TriangleStrip draws vs as a strip, split into chunks that share their
// boundary vertices
func (c *screenCanvas) TriangleStrip(vs []plot.StripVertex) {
	for start := 0; start+2 < len(vs); start += maxStripVertices - 2 {
		end := min(start+maxStripVertices, len(vs))
		c.drawStrip(vs[start:end])
	}
}

func (c *screenCanvas) drawStrip(vs []plot.StripVertex) {
	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	for _, v := range vs {
		c.vertices = append(c.vertices, ebiten.Vertex{
			DstX:   float32(v.Pos.X),
			DstY:   float32(v.Pos.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(v.Color.R) / 0xff,
			ColorG: float32(v.Color.G) / 0xff,
			ColorB: float32(v.Color.B) / 0xff,
			ColorA: float32(v.Color.A) / 0xff,
		})
	}
	for i := 0; i+2 < len(vs); i++ {
		c.indices = append(c.indices, uint16(i), uint16(i+1), uint16(i+2))
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *screenCanvas) Text(l plot.Label, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, l.Text, c.face, op)
}
