package plot

import "time"

// Pacer throttles frame updates to a target frame rate
type Pacer struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewPacer creates a pacer for fps frames per second, measured with now
func NewPacer(fps float64, now func() time.Time) *Pacer {
	return &Pacer{
		interval: time.Duration(float64(time.Second) / fps),
		last:     now(),
		now:      now,
	}
}

// Due reports whether a frame interval has passed since the last frame.
// If so it restarts the interval and returns the elapsed seconds.
func (p *Pacer) Due() (float64, bool) {
	t := p.now()
	elapsed := t.Sub(p.last)
	if elapsed < p.interval {
		return 0, false
	}
	p.last = t
	return elapsed.Seconds(), true
}
