package body

// Body is one orbiting object. OrbitRadius and AngularVelocity are fixed at
// creation; Angle is the only field mutated afterwards and accumulates
// without wrapping.
type Body struct {
	ID              string
	OrbitRadius     float64 // meters from the central mass
	AngularVelocity float64 // radians per simulated second
	Angle           float64 // radians
	Size            float64 // marker size hint, cosmetic
	Color           string  // hex color, cosmetic
}
