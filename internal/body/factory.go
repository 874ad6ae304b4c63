package body

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	AU            = 1.495978707e11 // meters
	SecondsPerDay = 86400.0
	G             = 6.674e-11 // m^3 kg^-1 s^-2
	SolarMass     = 1.989e30  // kg

	// MaxMarkerSize caps the display size so the gas giants do not
	// visually dominate the view.
	MaxMarkerSize = 7.5
	markerScale   = 0.02
)

// MajorSpec describes one named body with a known orbital period.
type MajorSpec struct {
	Name        string
	OrbitRadius float64 // meters
	Period      float64 // seconds
	BodyRadius  float64 // meters, used only for marker sizing
	Color       string
}

// BeltSpec describes a randomized annulus of minor bodies around a central mass.
type BeltSpec struct {
	Count       int
	InnerRadius float64 // meters
	OuterRadius float64 // meters
	CentralMass float64 // kg
	G           float64
}

// SolarSystem returns the default major-body table: the eight planets with
// mean orbital radii and sidereal periods.
func SolarSystem() []MajorSpec {
	return []MajorSpec{
		{Name: "Mercury", OrbitRadius: 0.387 * AU, Period: 87.97 * SecondsPerDay, BodyRadius: 2.4397e6, Color: "#B5B5B5"},
		{Name: "Venus", OrbitRadius: 0.723 * AU, Period: 224.70 * SecondsPerDay, BodyRadius: 6.0518e6, Color: "#E8CDA2"},
		{Name: "Earth", OrbitRadius: 1.000 * AU, Period: 365.25 * SecondsPerDay, BodyRadius: 6.3710e6, Color: "#2E86AB"},
		{Name: "Mars", OrbitRadius: 1.524 * AU, Period: 686.97 * SecondsPerDay, BodyRadius: 3.3895e6, Color: "#C1440E"},
		{Name: "Jupiter", OrbitRadius: 5.204 * AU, Period: 4332.59 * SecondsPerDay, BodyRadius: 6.9911e7, Color: "#C88B3A"},
		{Name: "Saturn", OrbitRadius: 9.583 * AU, Period: 10759.22 * SecondsPerDay, BodyRadius: 5.8232e7, Color: "#E3B778"},
		{Name: "Uranus", OrbitRadius: 19.201 * AU, Period: 30688.5 * SecondsPerDay, BodyRadius: 2.5362e7, Color: "#7FDBDA"},
		{Name: "Neptune", OrbitRadius: 30.047 * AU, Period: 60182.0 * SecondsPerDay, BodyRadius: 2.4622e7, Color: "#3E66F9"},
	}
}

// DefaultBelt returns the main-belt annulus used when no config overrides it.
func DefaultBelt(count int) BeltSpec {
	return BeltSpec{
		Count:       count,
		InnerRadius: 2.1 * AU,
		OuterRadius: 3.3 * AU,
		CentralMass: SolarMass,
		G:           G,
	}
}

// NewMajor builds one named body. Angular velocity is 2π over the period;
// the initial angle is drawn from [0, 2π).
func NewMajor(spec MajorSpec, rng *rand.Rand) (*Body, error) {
	if spec.OrbitRadius <= 0 {
		return nil, fmt.Errorf("body %s: orbit radius must be positive, got %g", spec.Name, spec.OrbitRadius)
	}
	if spec.Period <= 0 {
		return nil, fmt.Errorf("body %s: orbital period must be positive, got %g", spec.Name, spec.Period)
	}
	return &Body{
		ID:              spec.Name,
		OrbitRadius:     spec.OrbitRadius,
		AngularVelocity: 2 * math.Pi / spec.Period,
		Angle:           rng.Float64() * 2 * math.Pi,
		Size:            markerSize(spec.BodyRadius),
		Color:           spec.Color,
	}, nil
}

// Majors builds the full named-body set from a table. Any invalid entry
// aborts construction; no partial set is returned.
func Majors(specs []MajorSpec, rng *rand.Rand) ([]*Body, error) {
	bodies := make([]*Body, 0, len(specs))
	for _, spec := range specs {
		b, err := NewMajor(spec, rng)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// Belt generates spec.Count minor bodies with radii drawn uniformly from
// [inner, outer) and angular velocity from the circular-orbit relation
// sqrt(G·M/r)/r, so each body's (radius, velocity) pair is self-consistent.
func Belt(spec BeltSpec, rng *rand.Rand) ([]*Body, error) {
	if spec.Count < 0 {
		return nil, fmt.Errorf("belt: count must be non-negative, got %d", spec.Count)
	}
	if spec.InnerRadius <= 0 {
		return nil, fmt.Errorf("belt: inner radius must be positive, got %g", spec.InnerRadius)
	}
	if spec.OuterRadius <= spec.InnerRadius {
		return nil, fmt.Errorf("belt: outer radius %g must exceed inner radius %g", spec.OuterRadius, spec.InnerRadius)
	}
	if spec.CentralMass <= 0 {
		return nil, fmt.Errorf("belt: central mass must be positive, got %g", spec.CentralMass)
	}
	if spec.G <= 0 {
		return nil, fmt.Errorf("belt: gravitational constant must be positive, got %g", spec.G)
	}

	bodies := make([]*Body, spec.Count)
	for i := range bodies {
		r := spec.InnerRadius + rng.Float64()*(spec.OuterRadius-spec.InnerRadius)
		bodies[i] = &Body{
			ID:              fmt.Sprintf("belt-%03d", i),
			OrbitRadius:     r,
			AngularVelocity: math.Sqrt(spec.G*spec.CentralMass/r) / r,
			Angle:           rng.Float64() * 2 * math.Pi,
			Size:            1,
			Color:           "#6E6E6E",
		}
	}
	return bodies, nil
}

// markerSize maps a physical body radius to a display size. Cube-root scaling
// keeps the mapping monotonic but sub-linear; the result is capped at
// MaxMarkerSize.
func markerSize(bodyRadius float64) float64 {
	return math.Min(markerScale*math.Cbrt(bodyRadius), MaxMarkerSize)
}
