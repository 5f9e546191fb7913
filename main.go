package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/grapher-go/internal/plot"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("grapher: ")

	cfg, err := plot.LoadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// The font is a startup precondition
	fnt, err := plot.LoadFont(cfg.FontPath)
	if err != nil {
		log.Fatal(err)
	}

	plotter, err := NewPlotter(cfg, fnt)
	if err != nil {
		log.Fatal(err)
	}

	// Set up Ebitengine window
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.PollRate)
	log.Printf("%dx%d at %g fps, plotting %s, font %s", cfg.Width, cfg.Height, cfg.FPS, cfg.Function, fnt.Name)

	// Run the game loop
	if err := ebiten.RunGame(plotter); err != nil {
		log.Fatal(err)
	}
}
