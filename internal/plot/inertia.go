package plot

import "honnef.co/go/curve"

// DragState is the pointer-drag state owned by Inertia
type DragState struct {
	Active      bool
	LastPointer curve.Point // Last observed pointer position
	Velocity    curve.Vec2  // Accumulated pointer delta, decays every frame
}

// Inertia turns pointer drags into panning with momentum.
// While dragging the pointer pans the view directly; after release the
// remaining velocity keeps panning (coasting) until it decays away.
type Inertia struct {
	Drag            DragState
	DecayRate       float64 // Velocity decay per second
	SpeedMultiplier float64 // Coasting pan = velocity * SpeedMultiplier * dt
}

// NewInertia creates an inertia controller at rest
func NewInertia(decayRate, speedMultiplier float64) Inertia {
	return Inertia{DecayRate: decayRate, SpeedMultiplier: speedMultiplier}
}

// Dragging reports whether a drag is in progress
func (in *Inertia) Dragging() bool {
	return in.Drag.Active
}

// Begin starts a drag from the last known pointer position
func (in *Inertia) Begin() {
	in.Drag.Active = true
}

// End stops the drag; the view starts coasting
func (in *Inertia) End() {
	in.Drag.Active = false
}

// Move records a pointer move and pans vp while dragging
func (in *Inertia) Move(pos curve.Point, vp *Viewport) {
	if in.Drag.Active {
		delta := pos.Sub(in.Drag.LastPointer)
		vp.PanBy(delta)
		if delta == (curve.Vec2{}) {
			in.Drag.Velocity = curve.Vec2{}
		} else {
			in.Drag.Velocity = in.Drag.Velocity.Add(delta)
		}
	}
	in.Drag.LastPointer = pos
}

// Step decays the velocity by one frame of dt seconds and, when coasting,
// applies it to vp. It returns the pixel delta applied to vp.
func (in *Inertia) Step(dt float64, vp *Viewport) curve.Vec2 {
	// Clamped so a long stall stops the motion instead of reversing it.
	decay := clamp(in.DecayRate*dt/2, 0, 1)
	in.Drag.Velocity = in.Drag.Velocity.Mul(1 - decay)
	if in.Drag.Active {
		return curve.Vec2{}
	}
	delta := in.Drag.Velocity.Mul(in.SpeedMultiplier * dt)
	vp.PanBy(delta)
	return delta
}

// Reset discards any momentum
func (in *Inertia) Reset() {
	in.Drag.Velocity = curve.Vec2{}
}
