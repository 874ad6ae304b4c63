package orbit

import (
	"errors"
	"math"
)

// ErrNonFiniteStep is returned when a tick would advance bodies by a NaN or
// infinite dt. No angle is mutated in that case.
var ErrNonFiniteStep = errors.New("non-finite time step")

// Integrator advances every body by angular_velocity*dt. The step is exact
// under the circular-orbit assumption, so no per-step approximation error
// accumulates. Negative dt simply runs the orbits backwards.
type Integrator struct{}

func NewIntegrator() *Integrator { return &Integrator{} }

func (in *Integrator) Advance(m *Model, dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return ErrNonFiniteStep
	}
	for i := 0; i < m.Len(); i++ {
		m.AdvanceBody(i, dt)
	}
	return nil
}
