package engine_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/control"
	"github.com/san-kum/orrery/internal/engine"
	"github.com/san-kum/orrery/internal/orbit"
)

type fixedClock struct{ dt float64 }

func (c fixedClock) ElapsedSeconds() float64 { return c.dt }

const yearSeconds = 365.25 * body.SecondsPerDay

func newEarthModel() *orbit.Model {
	return orbit.NewModel([]*body.Body{{
		ID:              "Earth",
		OrbitRadius:     body.AU,
		AngularVelocity: 2 * math.Pi / yearSeconds,
	}})
}

var _ = Describe("Producer", func() {
	var (
		model    *orbit.Model
		producer *engine.Producer
	)

	Describe("state machine", func() {
		BeforeEach(func() {
			model = newEarthModel()
			producer = engine.New(model, orbit.NewIntegrator(), fixedClock{dt: body.SecondsPerDay})
		})

		It("starts idle and switches to running on the first tick", func() {
			Expect(producer.State()).To(Equal(engine.Idle))

			_, err := producer.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(producer.State()).To(Equal(engine.Running))
			Expect(producer.Frames()).To(Equal(uint64(1)))
		})
	})

	Describe("ticking", func() {
		BeforeEach(func() {
			model = newEarthModel()
		})

		It("emits one position per body", func() {
			rngBodies := []*body.Body{
				{ID: "a", OrbitRadius: 1, AngularVelocity: 1},
				{ID: "b", OrbitRadius: 2, AngularVelocity: 0.5},
				{ID: "c", OrbitRadius: 3, AngularVelocity: 0.1},
			}
			producer = engine.New(orbit.NewModel(rngBodies), orbit.NewIntegrator(), fixedClock{dt: 1})

			positions, err := producer.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(positions).To(HaveLen(3))
			Expect(positions[0].ID).To(Equal("a"))
		})

		It("moves a quarter orbit in a quarter period", func() {
			producer = engine.New(model, orbit.NewIntegrator(), fixedClock{dt: yearSeconds / 4})

			positions, err := producer.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(positions[0].X).To(BeNumerically("~", 0, body.AU*1e-9))
			Expect(positions[0].Y).To(BeNumerically("~", body.AU, body.AU*1e-9))
		})

		It("accumulates state rather than repeating it", func() {
			producer = engine.New(model, orbit.NewIntegrator(), fixedClock{dt: yearSeconds / 8})

			first, err := producer.Tick()
			Expect(err).NotTo(HaveOccurred())
			second, err := producer.Tick()
			Expect(err).NotTo(HaveOccurred())

			Expect(second[0].X).NotTo(BeNumerically("~", first[0].X, 1))
			Expect(producer.Elapsed()).To(BeNumerically("~", yearSeconds/4, 1e-6))
		})

		It("reads the clock fresh on every tick", func() {
			clock := control.NewClock(0.25, 30, 0.25, 1.0)
			producer = engine.New(model, orbit.NewIntegrator(), clock)

			_, err := producer.Tick()
			Expect(err).NotTo(HaveOccurred())
			before := model.Body(0).Angle

			clock.Set(10)
			_, err = producer.Tick()
			Expect(err).NotTo(HaveOccurred())

			delta := model.Body(0).Angle - before
			want := model.Body(0).AngularVelocity * 10 * body.SecondsPerDay
			Expect(delta).To(BeNumerically("~", want, 1e-12))
		})
	})

	Describe("error handling", func() {
		It("skips the mutation on a non-finite dt", func() {
			model = newEarthModel()
			model.Body(0).Angle = 1.25
			producer = engine.New(model, orbit.NewIntegrator(), fixedClock{dt: math.NaN()})

			_, err := producer.Tick()
			Expect(err).To(MatchError(orbit.ErrNonFiniteStep))
			Expect(model.Body(0).Angle).To(Equal(1.25))
			Expect(producer.Frames()).To(Equal(uint64(0)))
		})
	})
})
