package analysis_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
)

func seeded(rows, cols int, category, name string, row, col int) *life.Grid {
	g := life.MustNew(rows, cols)
	Expect(patterns.Insert(g, category, name, row, col, patterns.Placement{})).To(Succeed())
	return g
}

func run(g *life.Grid, steps int) *life.Trajectory {
	traj, err := life.NewRunner().Run(context.Background(), g, steps)
	Expect(err).NotTo(HaveOccurred())
	return traj
}

var _ = Describe("DetectPeriod", func() {
	It("returns 2 for a repeated two-cycle", func() {
		a := life.MustNew(4, 4)
		b := a.Clone()
		b.Set(1, 1, true)

		frames := make([]*life.Grid, 0, 20)
		for i := 0; i < 10; i++ {
			frames = append(frames, a.Clone(), b.Clone())
		}
		Expect(analysis.DetectPeriod(frames)).To(Equal(2))
	})

	It("returns 1 for a still life", func() {
		traj := run(seeded(10, 10, patterns.StillLife, "Block", 4, 4), 5)
		Expect(analysis.DetectPeriod(traj.Frames)).To(Equal(1))
	})

	It("returns the blinker period", func() {
		traj := run(seeded(10, 10, patterns.Oscillator, "Blinker", 4, 4), 9)
		Expect(analysis.DetectPeriod(traj.Frames)).To(Equal(2))
	})

	It("returns the pulsar period", func() {
		traj := run(seeded(30, 30, patterns.Oscillator, "Pulsar", 8, 8), 20)
		Expect(analysis.DetectPeriod(traj.Frames)).To(Equal(3))
	})

	It("returns NoPeriod for a growing glider gun", func() {
		traj := run(seeded(60, 80, patterns.Complex, "Glider Gun", 5, 5), 150)
		Expect(analysis.DetectPeriod(traj.Frames)).To(Equal(analysis.NoPeriod))
	})

	It("returns NoPeriod for a single frame", func() {
		Expect(analysis.DetectPeriod([]*life.Grid{life.MustNew(3, 3)})).To(Equal(analysis.NoPeriod))
	})

	It("only looks back within the window", func() {
		a := life.MustNew(3, 3)
		frames := []*life.Grid{a.Clone()}
		for i := 0; i < 5; i++ {
			f := life.MustNew(3, 3)
			f.Set(i/3, i%3, true)
			frames = append(frames, f)
		}
		frames = append(frames, a.Clone())

		Expect(analysis.DetectPeriodWindow(frames, 10)).To(Equal(6))
		Expect(analysis.DetectPeriodWindow(frames, 5)).To(Equal(analysis.NoPeriod))
	})

	It("reports the most recent match", func() {
		a := life.MustNew(3, 3)
		b := a.Clone()
		b.Set(0, 0, true)
		frames := []*life.Grid{a, b, a, b, b}
		Expect(analysis.DetectPeriod(frames)).To(Equal(1))
	})
})
