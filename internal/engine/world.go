package engine

import (
	"math/rand"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/control"
	"github.com/san-kum/orrery/internal/orbit"
)

// World assembles a complete simulation from configuration: the named bodies,
// the randomized belt, the orbit model, both interactive controls, and the
// frame producer wired together.
type World struct {
	Model      *orbit.Model
	Clock      *control.Clock
	Viewport   *control.Viewport
	Producer   *Producer
	MajorCount int
	Seed       int64
}

func NewWorld(cfg *config.Config, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	majors, err := body.Majors(body.SolarSystem(), rng)
	if err != nil {
		return nil, err
	}

	belt, err := body.Belt(body.BeltSpec{
		Count:       cfg.Belt.Count,
		InnerRadius: cfg.Belt.InnerAU * body.AU,
		OuterRadius: cfg.Belt.OuterAU * body.AU,
		CentralMass: body.SolarMass,
		G:           body.G,
	}, rng)
	if err != nil {
		return nil, err
	}

	model := orbit.NewModel(append(majors, belt...))

	clock := control.NewClock(cfg.TimeScale.Min, cfg.TimeScale.Max, cfg.TimeScale.Step, cfg.TimeScale.Initial)
	viewport := control.NewViewport(cfg.Zoom.Min, cfg.Zoom.Max, cfg.Zoom.Step, cfg.Zoom.Initial, model.MaxRadius())

	return &World{
		Model:      model,
		Clock:      clock,
		Viewport:   viewport,
		Producer:   New(model, orbit.NewIntegrator(), clock),
		MajorCount: len(majors),
		Seed:       seed,
	}, nil
}
