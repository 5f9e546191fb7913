package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"honnef.co/go/curve"

	"github.com/olivierh59500/grapher-go/internal/plot"
)

// keyBindings maps keyboard keys to plotter keys
var keyBindings = map[ebiten.Key]plot.Key{
	ebiten.KeySpace: plot.KeyReset,
	ebiten.KeyF:     plot.KeyNextFunction,
	ebiten.KeyP:     plot.KeySnapshot,
	ebiten.KeyC:     plot.KeyCopy,
}

var buttonBindings = []struct {
	eb     ebiten.MouseButton
	button plot.Button
}{
	{ebiten.MouseButtonLeft, plot.ButtonLeft},
	{ebiten.MouseButtonRight, plot.ButtonRight},
	{ebiten.MouseButtonMiddle, plot.ButtonMiddle},
}

// ebitenInput turns ebiten's polled input state into events
type ebitenInput struct {
	pointer plot.PointerTracker
	keys    []ebiten.Key
}

// Poll returns the events since the previous poll. Moves are reported only
// when the cursor changed position.
func (in *ebitenInput) Poll() []plot.Event {
	var events []plot.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, plot.Event{Kind: plot.EventClose})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		key, ok := keyBindings[k]
		if !ok {
			key = plot.KeyOther
		}
		events = append(events, plot.Event{Kind: plot.EventKeyPress, Key: key})
	}

	mx, my := ebiten.CursorPosition()
	pos := curve.Pt(float64(mx), float64(my))
	if ev, ok := in.pointer.Moved(pos); ok {
		events = append(events, ev)
	}

	for _, b := range buttonBindings {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			events = append(events, plot.Event{Kind: plot.EventButtonPress, Pos: pos, Button: b.button})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			events = append(events, plot.Event{Kind: plot.EventButtonRelease, Pos: pos, Button: b.button})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		events = append(events, plot.Event{Kind: plot.EventWheel, Pos: pos, Delta: dy})
	}
	return events
}
