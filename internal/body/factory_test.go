package body

import (
	"math"
	"math/rand"
	"testing"
)

func TestMajorAngularVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, spec := range SolarSystem() {
		b, err := NewMajor(spec, rng)
		if err != nil {
			t.Fatalf("%s: %v", spec.Name, err)
		}

		if math.Abs(b.AngularVelocity*spec.Period-2*math.Pi) > 1e-9 {
			t.Errorf("%s: omega*period = %g, want 2*pi", spec.Name, b.AngularVelocity*spec.Period)
		}
	}
}

func TestMajorInitialAngle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, spec := range SolarSystem() {
		b, err := NewMajor(spec, rng)
		if err != nil {
			t.Fatalf("%s: %v", spec.Name, err)
		}
		if b.Angle < 0 || b.Angle >= 2*math.Pi {
			t.Errorf("%s: initial angle %g outside [0, 2*pi)", spec.Name, b.Angle)
		}
	}
}

func TestMajorInvalidSpec(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		spec MajorSpec
	}{
		{"zero radius", MajorSpec{Name: "x", OrbitRadius: 0, Period: 100}},
		{"negative radius", MajorSpec{Name: "x", OrbitRadius: -1, Period: 100}},
		{"zero period", MajorSpec{Name: "x", OrbitRadius: 1, Period: 0}},
		{"negative period", MajorSpec{Name: "x", OrbitRadius: 1, Period: -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMajor(tt.spec, rng); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMajorsAbortOnInvalidEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	specs := []MajorSpec{
		{Name: "ok", OrbitRadius: AU, Period: 365.25 * SecondsPerDay},
		{Name: "bad", OrbitRadius: -AU, Period: 100},
	}

	bodies, err := Majors(specs, rng)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if bodies != nil {
		t.Error("expected no partial body set on error")
	}
}

func TestBeltCountAndAnnulus(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	spec := DefaultBelt(200)

	bodies, err := Belt(spec, rng)
	if err != nil {
		t.Fatalf("belt: %v", err)
	}

	if len(bodies) != 200 {
		t.Fatalf("expected 200 bodies, got %d", len(bodies))
	}

	for _, b := range bodies {
		if b.OrbitRadius < spec.InnerRadius || b.OrbitRadius >= spec.OuterRadius {
			t.Errorf("%s: radius %g outside [%g, %g)", b.ID, b.OrbitRadius, spec.InnerRadius, spec.OuterRadius)
		}
		if b.Angle < 0 || b.Angle >= 2*math.Pi {
			t.Errorf("%s: angle %g outside [0, 2*pi)", b.ID, b.Angle)
		}
	}
}

func TestBeltCircularOrbitConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	spec := DefaultBelt(50)

	bodies, err := Belt(spec, rng)
	if err != nil {
		t.Fatalf("belt: %v", err)
	}

	gm := spec.G * spec.CentralMass
	for _, b := range bodies {
		lhs := b.AngularVelocity * b.AngularVelocity * math.Pow(b.OrbitRadius, 3)
		if math.Abs(lhs-gm)/gm > 1e-12 {
			t.Errorf("%s: omega^2*r^3 = %g, want G*M = %g", b.ID, lhs, gm)
		}
	}
}

func TestBeltInvalidSpec(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		spec BeltSpec
	}{
		{"negative count", BeltSpec{Count: -1, InnerRadius: 1, OuterRadius: 2, CentralMass: 1, G: 1}},
		{"zero inner", BeltSpec{Count: 1, InnerRadius: 0, OuterRadius: 2, CentralMass: 1, G: 1}},
		{"outer below inner", BeltSpec{Count: 1, InnerRadius: 2, OuterRadius: 1, CentralMass: 1, G: 1}},
		{"zero mass", BeltSpec{Count: 1, InnerRadius: 1, OuterRadius: 2, CentralMass: 0, G: 1}},
		{"zero G", BeltSpec{Count: 1, InnerRadius: 1, OuterRadius: 2, CentralMass: 1, G: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Belt(tt.spec, rng); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMarkerSizeMonotonicAndCapped(t *testing.T) {
	earth := markerSize(6.3710e6)
	jupiter := markerSize(6.9911e7)

	if earth >= jupiter {
		t.Error("marker size should grow with body radius")
	}

	// Jupiter is ~11x Earth's radius; sub-linear scaling keeps its marker
	// well under 11x Earth's marker.
	if jupiter >= earth*(6.9911e7/6.3710e6) {
		t.Error("marker scaling should be sub-linear")
	}

	if got := markerSize(1e12); got != MaxMarkerSize {
		t.Errorf("expected cap %g for huge body, got %g", MaxMarkerSize, got)
	}
}
