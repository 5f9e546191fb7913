package main

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/grapher-go/internal/plot"
)

// Plotter is the Ebitengine game: it drains input every tick and advances
// and rebuilds the view at the configured frame rate
type Plotter struct {
	cfg    *plot.Config
	font   *plot.Font
	view   *plot.View
	pacer  *plot.Pacer
	input  ebitenInput
	canvas screenCanvas
	scene  plot.Scene
}

// NewPlotter creates a plotter for cfg, labelling with fnt
func NewPlotter(cfg *plot.Config, fnt *plot.Font) (*Plotter, error) {
	fns := plot.Functions(cfg.NoiseSeed)
	current, err := plot.FunctionIndex(fns, cfg.Function)
	if err != nil {
		return nil, err
	}
	face, err := screenFace(fnt, cfg.LabelSize)
	if err != nil {
		return nil, err
	}
	p := &Plotter{
		cfg:    cfg,
		font:   fnt,
		view:   plot.NewView(cfg, fns, current),
		pacer:  plot.NewPacer(cfg.FPS, time.Now),
		canvas: screenCanvas{faceMeasurer: faceMeasurer{face: face}},
	}
	p.rebuild()
	return p, nil
}

// Update is called each tick by Ebitengine
func (p *Plotter) Update() error {
	for _, ev := range p.input.Poll() {
		switch p.view.Apply(ev) {
		case plot.ActionQuit:
			return ebiten.Termination
		case plot.ActionSnapshot:
			p.snapshot()
		case plot.ActionCopy:
			p.copyPointer()
		}
	}

	if dt, ok := p.pacer.Due(); ok {
		p.view.Step(dt)
		p.rebuild()
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (p *Plotter) Draw(screen *ebiten.Image) {
	p.canvas.dst = screen
	p.scene.Render(&p.canvas)
}

// Layout returns the fixed window size
func (p *Plotter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.cfg.Width, p.cfg.Height
}

func (p *Plotter) rebuild() {
	p.scene = plot.BuildScene(p.view.Viewport, p.view.Grid, p.view.Function(), p.cfg.Size(), p.cfg.SceneStyle(), p.canvas.faceMeasurer)
}

func (p *Plotter) snapshot() {
	path, err := plot.Snapshot(p.view, p.cfg, p.font, p.cfg.SnapshotDir, time.Now())
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	log.Printf("snapshot saved to %s", path)
}

func (p *Plotter) copyPointer() {
	u := p.view.Viewport.PixelToPlot(p.view.Pointer())
	s := fmt.Sprintf("%g, %g", u.X, u.Y)
	if err := clipboard.WriteAll(s); err != nil {
		log.Printf("copy to clipboard: %v", err)
		return
	}
	log.Printf("copied %s", s)
}
