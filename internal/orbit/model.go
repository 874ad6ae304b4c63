package orbit

import (
	"math"

	"github.com/san-kum/orrery/internal/body"
)

// Model owns the complete body collection for the simulation's lifetime.
// Nothing is added or removed after construction, and AdvanceBody is the
// only mutation entry point.
type Model struct {
	bodies    []*body.Body
	maxRadius float64
}

func NewModel(bodies []*body.Body) *Model {
	maxRadius := 0.0
	for _, b := range bodies {
		if b.OrbitRadius > maxRadius {
			maxRadius = b.OrbitRadius
		}
	}
	return &Model{bodies: bodies, maxRadius: maxRadius}
}

func (m *Model) Len() int              { return len(m.bodies) }
func (m *Model) Body(i int) *body.Body { return m.bodies[i] }
func (m *Model) Bodies() []*body.Body  { return m.bodies }

// MaxRadius is the largest orbital radius, fixed at construction.
func (m *Model) MaxRadius() float64 { return m.maxRadius }

// AdvanceBody moves one body's angle by its angular velocity times dt.
// The angle accumulates without wrapping; trig derivation is periodic anyway.
func (m *Model) AdvanceBody(i int, dt float64) {
	b := m.bodies[i]
	b.Angle += b.AngularVelocity * dt
}

// Position derives cartesian coordinates from (radius, angle). Stateless:
// the same inputs always yield the same point.
func Position(radius, angle float64) (x, y float64) {
	return radius * math.Cos(angle), radius * math.Sin(angle)
}
