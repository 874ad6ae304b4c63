package engine

import (
	"fmt"

	"github.com/san-kum/orrery/internal/orbit"
)

// State tracks whether the producer has ticked yet. There is no terminal
// state; stopping is the host scheduler's job.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// ClockSource supplies the elapsed simulated seconds represented by one
// rendered frame.
type ClockSource interface {
	ElapsedSeconds() float64
}

// Position is the per-tick output for one body, in meters.
type Position struct {
	ID   string
	X, Y float64
}

// Producer orchestrates one rendering tick: it reads dt from the clock,
// advances the orbit model, and emits current positions. The host frame
// scheduler calls Tick synchronously; ticks never overlap.
type Producer struct {
	model      *orbit.Model
	integrator *orbit.Integrator
	clock      ClockSource

	state  State
	frames uint64

	elapsed float64 // simulated seconds accumulated across ticks
}

func New(model *orbit.Model, integrator *orbit.Integrator, clock ClockSource) *Producer {
	return &Producer{model: model, integrator: integrator, clock: clock}
}

func (p *Producer) State() State     { return p.state }
func (p *Producer) Frames() uint64   { return p.frames }
func (p *Producer) Elapsed() float64 { return p.elapsed }

// Tick advances the simulation by one frame and returns every body's
// position. A non-finite dt skips the state mutation entirely and reports a
// recoverable error; the next tick proceeds as usual.
func (p *Producer) Tick() ([]Position, error) {
	dt := p.clock.ElapsedSeconds()
	if err := p.integrator.Advance(p.model, dt); err != nil {
		return nil, fmt.Errorf("frame %d: %w", p.frames, err)
	}
	p.state = Running
	p.frames++
	p.elapsed += dt
	return p.Positions(), nil
}

// Positions derives every body's current cartesian position without
// advancing the simulation.
func (p *Producer) Positions() []Position {
	out := make([]Position, p.model.Len())
	for i := range out {
		b := p.model.Body(i)
		x, y := orbit.Position(b.OrbitRadius, b.Angle)
		out[i] = Position{ID: b.ID, X: x, Y: y}
	}
	return out
}
