package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/engine"
)

var _ = Describe("World", func() {
	It("wires majors, belt, controls and producer together", func() {
		cfg := config.DefaultConfig()
		cfg.Belt.Count = 25

		w, err := engine.NewWorld(cfg, 1)
		Expect(err).NotTo(HaveOccurred())

		Expect(w.MajorCount).To(Equal(len(body.SolarSystem())))
		Expect(w.Model.Len()).To(Equal(w.MajorCount + 25))

		// Neptune is the outermost body; the belt sits inside its orbit.
		Expect(w.Model.MaxRadius()).To(BeNumerically("~", 30.047*body.AU, body.AU*1e-6))
		Expect(w.Viewport.HalfExtent()).To(BeNumerically(">", w.Model.MaxRadius()))
	})

	It("rejects invalid configuration before building anything", func() {
		cfg := config.DefaultConfig()
		cfg.Belt.InnerAU = -1

		_, err := engine.NewWorld(cfg, 1)
		Expect(err).To(HaveOccurred())
	})

	It("produces identical belts for identical seeds", func() {
		cfg := config.DefaultConfig()
		cfg.Belt.Count = 10

		w1, err := engine.NewWorld(cfg, 99)
		Expect(err).NotTo(HaveOccurred())
		w2, err := engine.NewWorld(cfg, 99)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < w1.Model.Len(); i++ {
			Expect(w1.Model.Body(i).OrbitRadius).To(Equal(w2.Model.Body(i).OrbitRadius))
			Expect(w1.Model.Body(i).Angle).To(Equal(w2.Model.Body(i).Angle))
		}
	})
})
