package analysis_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

var _ = Describe("Analyze", func() {
	ctx := context.Background()

	It("fails on an empty trajectory", func() {
		_, err := analysis.Analyze(ctx, &life.Trajectory{})
		Expect(err).To(MatchError(analysis.ErrEmptyTrajectory))

		_, err = analysis.Analyze(ctx, nil)
		Expect(err).To(MatchError(analysis.ErrEmptyTrajectory))
	})

	It("rejects frames of mixed shape", func() {
		traj := &life.Trajectory{Frames: []*life.Grid{life.MustNew(3, 3), life.MustNew(3, 4)}}
		_, err := analysis.Analyze(ctx, traj)
		Expect(err).To(MatchError(life.ErrInvalidDimension))
	})

	It("classifies a block as a still life", func() {
		rep, err := analysis.Analyze(ctx, run(seeded(50, 50, patterns.StillLife, "Block", 25, 25), 50))
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Frames).To(Equal(51))
		Expect(rep.Population).To(HaveLen(51))
		Expect(rep.StartPopulation).To(Equal(4))
		Expect(rep.EndPopulation).To(Equal(4))
		Expect(rep.Period).To(Equal(1))
		Expect(rep.Displacement).To(BeNumerically("~", 0, 1e-12))
		Expect(rep.Behavior.String()).To(Equal("Still Life (Stable)"))
		Expect(rep.MeanActivity).To(BeZero())
		Expect(rep.Heatmap.At(25, 25)).To(Equal(51))
		Expect(rep.CenterRow[0]).To(BeNumerically("~", 25.5, 1e-12))
		Expect(rep.CenterCol[0]).To(BeNumerically("~", 25.5, 1e-12))
	})

	It("classifies a blinker as an oscillator", func() {
		rep, err := analysis.Analyze(ctx, run(seeded(50, 50, patterns.Oscillator, "Blinker", 25, 25), 50))
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Behavior.String()).To(Equal("Oscillator (Period 2)"))
		Expect(rep.Activity[0]).To(BeZero())
		for _, a := range rep.Activity[1:] {
			Expect(a).To(Equal(4))
		}
		Expect(rep.HasPeriod()).To(BeTrue())
	})

	It("classifies a glider as a mover once it wraps back onto itself", func() {
		// on a 20x20 torus the glider repeats every 80 generations; generation
		// 100 matches generation 20 while sitting 5 cells down and right of
		// the seed position
		rep, err := analysis.Analyze(ctx, run(seeded(20, 20, patterns.Spaceship, "Glider", 5, 5), 100))
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Period).To(Equal(80))
		Expect(rep.Displacement).To(BeNumerically("~", 5*math.Sqrt2, 1e-9))
		Expect(rep.Behavior.Kind).To(Equal(analysis.Spaceship))
		Expect(rep.Behavior.String()).To(Equal("Spaceship / Mover (Period 80)"))
	})

	It("finds no period for a glider that has not wrapped yet", func() {
		rep, err := analysis.Analyze(ctx, run(seeded(60, 60, patterns.Spaceship, "Glider", 5, 5), 100))
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Period).To(Equal(analysis.NoPeriod))
		Expect(rep.Displacement).To(BeNumerically("~", 25*math.Sqrt2, 1e-9))
	})

	It("classifies the glider gun as unbounded growth", func() {
		rep, err := analysis.Analyze(ctx, run(seeded(60, 80, patterns.Complex, "Glider Gun", 5, 5), 150))
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.Period).To(Equal(analysis.NoPeriod))
		Expect(rep.EndPopulation).To(BeNumerically(">", rep.StartPopulation*3/2))
		Expect(rep.Behavior.Kind).To(Equal(analysis.Growth))
	})

	It("reports extinction with undefined center of mass", func() {
		g := life.MustNew(10, 10)
		g.Set(5, 5, true)
		rep, err := analysis.Analyze(ctx, run(g, 3))
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.EndPopulation).To(BeZero())
		Expect(math.IsNaN(rep.CenterRow[3])).To(BeTrue())
		Expect(rep.Displacement).To(Equal(0.0))
		Expect(rep.Entropy[3]).To(Equal(0.0))
		Expect(rep.Behavior.Kind).To(Equal(analysis.Extinction))
	})

	It("gives the same report regardless of worker count", func() {
		g, _ := life.Random(40, 40, 200, 0.5)
		traj := run(g, 60)

		serial, err := analysis.Analyze(ctx, traj, analysis.WithWorkers(1))
		Expect(err).NotTo(HaveOccurred())
		parallel, err := analysis.Analyze(ctx, traj, analysis.WithWorkers(8))
		Expect(err).NotTo(HaveOccurred())

		Expect(parallel.Population).To(Equal(serial.Population))
		Expect(parallel.Entropy).To(Equal(serial.Entropy))
		Expect(parallel.Activity).To(Equal(serial.Activity))
		Expect(parallel.Behavior).To(Equal(serial.Behavior))
	})

	It("fills the occupancy series from the per-frame helper", func() {
		g, _ := life.Random(9, 7, 3, 0.4)
		traj := run(g, 8)
		rep, err := analysis.Analyze(ctx, traj)
		Expect(err).NotTo(HaveOccurred())
		for k, f := range traj.Frames {
			Expect(rep.Occupancy[k]).To(Equal(analysis.Occupancy(f)))
		}
	})

	It("summarizes peaks and mean activity", func() {
		rep, err := analysis.Analyze(ctx, run(seeded(20, 20, patterns.Oscillator, "Blinker", 8, 8), 4))
		Expect(err).NotTo(HaveOccurred())

		Expect(rep.PeakOccupancy).To(BeNumerically("~", 3.0/400, 1e-12))
		// activity series is 0,4,4,4,4
		Expect(rep.MeanActivity).To(BeNumerically("~", 16.0/5, 1e-12))
		Expect(rep.PeakEntropy).To(BeNumerically(">", 0))
	})

	It("honors the lookback option", func() {
		traj := run(seeded(10, 10, patterns.Oscillator, "Blinker", 4, 4), 10)
		rep, err := analysis.Analyze(ctx, traj, analysis.WithLookback(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Period).To(Equal(analysis.NoPeriod))
	})

	It("stops on a canceled context", func() {
		c, cancel := context.WithCancel(ctx)
		cancel()
		_, err := analysis.Analyze(c, run(life.MustNew(5, 5), 5))
		Expect(err).To(MatchError(context.Canceled))
	})
})
