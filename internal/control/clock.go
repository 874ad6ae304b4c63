package control

import (
	"math"
	"sync"

	"github.com/san-kum/orrery/internal/body"
)

// Clock maps the user-facing time-scale knob to elapsed simulated time per
// rendered frame. Writes clamp to the configured bounds and snap to the step
// granularity, so the simulation can never stall on bad interactive input.
// The mutex lets input callbacks run off the tick goroutine.
type Clock struct {
	mu   sync.RWMutex
	days float64

	min, max, step float64
}

func NewClock(min, max, step, initial float64) *Clock {
	c := &Clock{min: min, max: max, step: step}
	c.days = c.snap(initial)
	return c
}

// Set stores a new days-per-frame value, clamped and quantized. Non-finite
// input is ignored so the integrator can never see a poisoned dt through the
// clock. Takes effect on the very next tick.
func (c *Clock) Set(days float64) {
	if math.IsNaN(days) || math.IsInf(days, 0) {
		return
	}
	c.mu.Lock()
	c.days = c.snap(days)
	c.mu.Unlock()
}

// Days returns the current time scale in simulated days per frame.
func (c *Clock) Days() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.days
}

// Step returns the knob's step granularity.
func (c *Clock) Step() float64 { return c.step }

// ElapsedSeconds converts the current time scale to simulated seconds per
// rendered frame.
func (c *Clock) ElapsedSeconds() float64 {
	return c.Days() * body.SecondsPerDay
}

func (c *Clock) snap(v float64) float64 {
	if c.step > 0 {
		v = c.min + math.Round((v-c.min)/c.step)*c.step
	}
	return clamp(v, c.min, c.max)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
