package plot

import "honnef.co/go/curve"

// EventKind is the type of an input event
type EventKind int

const (
	EventClose EventKind = iota
	EventKeyPress
	EventButtonPress
	EventButtonRelease
	EventMouseMove
	EventWheel
)

// Key is a key the plotter reacts to
type Key int

const (
	KeyOther Key = iota
	KeyReset
	KeyNextFunction
	KeySnapshot
	KeyCopy
)

// Button is a mouse button
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is a single input event
type Event struct {
	Kind   EventKind
	Pos    curve.Point // Pointer position for mouse events
	Delta  float64     // Vertical wheel delta
	Key    Key
	Button Button
}

// PointerTracker turns polled cursor positions into move events
type PointerTracker struct {
	last curve.Point
	seen bool
}

// Moved returns a move event for pos unless the pointer has not moved since
// the previous poll. A pointer held still between polls reports nothing.
func (t *PointerTracker) Moved(pos curve.Point) (Event, bool) {
	if t.seen && pos == t.last {
		return Event{}, false
	}
	t.last, t.seen = pos, true
	return Event{Kind: EventMouseMove, Pos: pos}, true
}

// Action is a side effect the frame loop performs after applying an event
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionSnapshot
	ActionCopy
)

// View is the complete mutable state of the plotter
type View struct {
	Viewport  Viewport
	Inertia   Inertia
	Grid      GridLevel
	Functions []Function
	Current   int // Index into Functions
	ZoomSpeed float64
}

// NewView creates the initial view for cfg
func NewView(cfg *Config, fns []Function, current int) *View {
	return &View{
		Viewport:  NewViewport(cfg.Size(), cfg.DefaultScale, cfg.MinScale, cfg.MaxScale),
		Inertia:   NewInertia(cfg.DragDecay, cfg.DragSpeed),
		Grid:      NewGridLevel(cfg.GridUnit, cfg.SubDivisions),
		Functions: fns,
		Current:   current,
		ZoomSpeed: cfg.ZoomSpeed,
	}
}

// Function returns the function being plotted
func (v *View) Function() Function {
	return v.Functions[v.Current]
}

// Pointer returns the last known pointer position
func (v *View) Pointer() curve.Point {
	return v.Inertia.Drag.LastPointer
}

// Apply updates the view for one input event
func (v *View) Apply(ev Event) Action {
	switch ev.Kind {
	case EventClose:
		return ActionQuit
	case EventKeyPress:
		switch ev.Key {
		case KeyReset:
			v.Viewport.Reset()
			v.Inertia.Reset()
		case KeyNextFunction:
			v.Current = (v.Current + 1) % len(v.Functions)
		case KeySnapshot:
			return ActionSnapshot
		case KeyCopy:
			return ActionCopy
		}
	case EventButtonPress:
		if ev.Button == ButtonLeft {
			v.Inertia.Begin()
		}
	case EventButtonRelease:
		if ev.Button == ButtonLeft {
			v.Inertia.End()
		}
	case EventMouseMove:
		v.Inertia.Move(ev.Pos, &v.Viewport)
	case EventWheel:
		factor := v.Viewport.ZoomAt(ev.Pos, ev.Delta, v.ZoomSpeed)
		v.Grid.OnZoom(factor)
	}
	return ActionNone
}

// Step advances time-dependent state by one frame of dt seconds
func (v *View) Step(dt float64) {
	v.Inertia.Step(dt, &v.Viewport)
}
