package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/engine"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrator"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/vec"
)

// exactCfg uses binary-exact timings so step counts are deterministic:
// 1/32s timestep, 1/16s trail interval.
func exactCfg() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Timestep = 0.03125
	cfg.TrailInterval = 0.0625
	cfg.Scale = 1.0
	cfg.Seed = 42
	return cfg
}

var _ = Describe("Engine", func() {
	Describe("construction", func() {
		It("rejects a zero-body spawn", func() {
			cfg := exactCfg()
			cfg.NumBodies = 0
			_, err := engine.New(cfg, integrator.NewYoshida())
			Expect(err).To(MatchError(body.ErrNoBodies))
		})

		It("rejects non-positive mass", func() {
			cfg := exactCfg()
			cfg.BodyMass = -1
			_, err := engine.New(cfg, integrator.NewYoshida())
			Expect(err).To(MatchError(body.ErrNonPositiveMass))
		})

		It("rejects a non-positive timestep", func() {
			cfg := exactCfg()
			cfg.Timestep = 0
			_, err := engine.New(cfg, integrator.NewYoshida())
			Expect(err).To(HaveOccurred())
		})

		It("rejects a non-positive trail capacity", func() {
			cfg := exactCfg()
			cfg.TrailLength = 0
			_, err := engine.New(cfg, integrator.NewYoshida())
			Expect(err).To(HaveOccurred())
		})

		It("spawns the configured number of bodies at rest", func() {
			cfg := exactCfg()
			cfg.NumBodies = 25
			eng, err := engine.New(cfg, integrator.NewYoshida())
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.NumBodies()).To(Equal(25))
			for _, b := range eng.Bodies() {
				Expect(b.Velocity).To(Equal(vec.Vec3{}))
			}
		})
	})

	Describe("Advance", func() {
		var eng *engine.Engine

		BeforeEach(func() {
			var err error
			eng, err = engine.NewWithBodies(exactCfg(), gravity.PairOrbit(1000, 10), integrator.NewYoshida())
			Expect(err).NotTo(HaveOccurred())
		})

		It("runs every fixed step that became due in the frame", func() {
			// A 100ms frame holds three full 1/32s steps.
			Expect(eng.Advance(0.1)).To(Equal(3))
			Expect(eng.Steps()).To(Equal(uint64(3)))
		})

		It("runs zero steps for a short frame and catches up later", func() {
			Expect(eng.Advance(0.01)).To(Equal(0))
			Expect(eng.Advance(0.01)).To(Equal(0))
			Expect(eng.Advance(0.02)).To(Equal(1))
		})

		It("never steps on zero-length frames", func() {
			for i := 0; i < 5; i++ {
				Expect(eng.Advance(0)).To(Equal(0))
			}
		})

		It("holds all state while paused", func() {
			eng.SetPaused(true)
			before := eng.Bodies()[0].Position
			Expect(eng.Advance(1.0)).To(Equal(0))
			Expect(eng.Bodies()[0].Position).To(Equal(before))

			// Paused time never accumulates into a burst of catch-up steps.
			eng.SetPaused(false)
			Expect(eng.Advance(0)).To(Equal(0))
		})
	})

	Describe("trail sampling", func() {
		It("samples on the recorder cadence, not the step cadence", func() {
			eng, err := engine.NewWithBodies(exactCfg(), gravity.PairOrbit(1000, 10), integrator.NewYoshida())
			Expect(err).NotTo(HaveOccurred())

			// 1/32s frames: a sample lands every second frame.
			for i := 0; i < 8; i++ {
				eng.Advance(0.03125)
			}
			Expect(len(eng.Trail(0))).To(Equal(4))
			Expect(len(eng.Trail(1))).To(Equal(4))
		})

		It("records positions in insertion order", func() {
			eng, err := engine.NewWithBodies(exactCfg(), gravity.PairOrbit(1000, 10), integrator.NewYoshida())
			Expect(err).NotTo(HaveOccurred())

			var sampled [][]vec.Vec3
			eng.OnSample(func(t float64, positions []vec.Vec3) {
				snap := make([]vec.Vec3, len(positions))
				copy(snap, positions)
				sampled = append(sampled, snap)
			})

			for i := 0; i < 8; i++ {
				eng.Advance(0.0625)
			}

			trail := eng.Trail(0)
			Expect(trail).To(HaveLen(len(sampled)))
			for i := range sampled {
				Expect(trail[i]).To(Equal(sampled[i][0]))
			}
		})

		It("caps trails at the configured length", func() {
			cfg := exactCfg()
			cfg.TrailLength = 16
			eng, err := engine.NewWithBodies(cfg, gravity.PairOrbit(1000, 10), integrator.NewYoshida())
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 50; i++ {
				eng.Advance(0.0625)
			}
			Expect(len(eng.Trail(0))).To(Equal(16))
		})
	})

	Describe("metrics", func() {
		It("reports registered metrics by name", func() {
			eng, err := engine.NewWithBodies(exactCfg(), gravity.PairOrbit(1000, 10), integrator.NewYoshida())
			Expect(err).NotTo(HaveOccurred())

			eng.AddMetric(metrics.NewEnergyDrift())
			eng.AddMetric(metrics.NewMomentumError())
			for i := 0; i < 20; i++ {
				eng.Advance(0.0625)
			}

			vals := eng.Metrics()
			Expect(vals).To(HaveKey("energy_drift"))
			Expect(vals).To(HaveKey("momentum_error"))
			Expect(vals["momentum_error"]).To(BeNumerically("<", 1e-9))
		})
	})

	Describe("Reset", func() {
		It("restores the initial bodies and clears trails", func() {
			eng, err := engine.NewWithBodies(exactCfg(), gravity.PairOrbit(1000, 10), integrator.NewYoshida())
			Expect(err).NotTo(HaveOccurred())

			initial := eng.Bodies()[0].Position
			for i := 0; i < 20; i++ {
				eng.Advance(0.1)
			}
			Expect(eng.Bodies()[0].Position).NotTo(Equal(initial))

			eng.Reset()
			Expect(eng.Bodies()[0].Position).To(Equal(initial))
			Expect(eng.Steps()).To(Equal(uint64(0)))
			Expect(eng.Trail(0)).To(BeEmpty())
		})
	})
})
