package control

import (
	"math"
	"sync"
)

// marginFactor keeps the outermost orbit off the viewport edge.
const marginFactor = 1.1

// Viewport maps the zoom knob to the visible spatial half-extent. The maximum
// radius is fixed at construction; only the zoom fraction changes afterwards.
type Viewport struct {
	mu   sync.RWMutex
	zoom float64

	min, max, step float64
	maxRadius      float64
}

func NewViewport(min, max, step, initial, maxRadius float64) *Viewport {
	v := &Viewport{min: min, max: max, step: step, maxRadius: maxRadius}
	v.zoom = v.snap(initial)
	return v
}

// Set stores a new zoom fraction, clamped and quantized. Non-finite input is
// ignored.
func (v *Viewport) Set(frac float64) {
	if math.IsNaN(frac) || math.IsInf(frac, 0) {
		return
	}
	v.mu.Lock()
	v.zoom = v.snap(frac)
	v.mu.Unlock()
}

// Zoom returns the current zoom fraction.
func (v *Viewport) Zoom() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.zoom
}

// Step returns the knob's step granularity.
func (v *Viewport) Step() float64 { return v.step }

// MaxRadius returns the largest orbital radius the viewport was sized for.
func (v *Viewport) MaxRadius() float64 { return v.maxRadius }

// HalfExtent is the visible half-width in meters for the renderer to size
// its bounds. The viewport itself draws nothing.
func (v *Viewport) HalfExtent() float64 {
	return v.maxRadius * v.Zoom() * marginFactor
}

func (v *Viewport) snap(frac float64) float64 {
	if v.step > 0 {
		frac = v.min + math.Round((frac-v.min)/v.step)*v.step
	}
	return clamp(frac, v.min, v.max)
}
