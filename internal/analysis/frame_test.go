package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/life"
)

var _ = Describe("Per-frame metrics", func() {
	Describe("CenterOfMass", func() {
		It("is NaN for an empty grid", func() {
			row, col := analysis.CenterOfMass(life.MustNew(5, 5))
			Expect(math.IsNaN(row)).To(BeTrue())
			Expect(math.IsNaN(col)).To(BeTrue())
		})

		It("averages live cell coordinates", func() {
			g := life.MustNew(10, 10)
			g.Set(2, 3, true)
			g.Set(4, 7, true)
			row, col := analysis.CenterOfMass(g)
			Expect(row).To(BeNumerically("~", 3.0, 1e-12))
			Expect(col).To(BeNumerically("~", 5.0, 1e-12))
		})
	})

	Describe("Occupancy", func() {
		It("is population over area", func() {
			g := life.MustNew(4, 5)
			g.Set(0, 0, true)
			g.Set(1, 1, true)
			Expect(analysis.Occupancy(g)).To(BeNumerically("~", 0.1, 1e-12))
		})
	})

	Describe("Entropy", func() {
		It("is exactly zero for an all-dead grid", func() {
			Expect(analysis.Entropy(life.MustNew(8, 8))).To(Equal(0.0))
		})

		It("is zero when every cell has the same neighbor count", func() {
			g := life.MustNew(6, 6)
			for i := 0; i < 6; i++ {
				for j := 0; j < 6; j++ {
					g.Set(i, j, true)
				}
			}
			Expect(analysis.Entropy(g)).To(Equal(0.0))
		})

		It("matches a hand-computed histogram", func() {
			// single live cell on 5x5: 8 cells see 1 neighbor, 17 see 0
			g := life.MustNew(5, 5)
			g.Set(2, 2, true)
			p1, p0 := 8.0/25, 17.0/25
			want := -(p1*math.Log2(p1) + p0*math.Log2(p0))
			Expect(analysis.Entropy(g)).To(BeNumerically("~", want, 1e-12))
		})

		It("stays within [0, log2 9] for random grids", func() {
			for seed := int64(0); seed < 20; seed++ {
				g, err := life.Random(16, 16, seed, float64(seed)/20)
				Expect(err).NotTo(HaveOccurred())
				h := analysis.Entropy(g)
				Expect(h).To(BeNumerically(">=", 0))
				Expect(h).To(BeNumerically("<=", math.Log2(9)+1e-12))
			}
		})
	})

	Describe("NeighborHistogram", func() {
		It("covers every cell", func() {
			g, _ := life.Random(7, 9, 11, 0.5)
			hist := analysis.NeighborHistogram(g)
			Expect(hist).To(HaveLen(9))
			total := 0.0
			for _, c := range hist {
				total += c
			}
			Expect(total).To(Equal(63.0))
		})
	})

	Describe("Activity", func() {
		It("is zero for the first frame", func() {
			act, err := analysis.Activity(nil, life.MustNew(3, 3))
			Expect(err).NotTo(HaveOccurred())
			Expect(act).To(BeZero())
		})

		It("counts flipped cells", func() {
			a := life.MustNew(3, 3)
			b := a.Clone()
			b.Set(1, 1, true)
			act, err := analysis.Activity(a, b)
			Expect(err).NotTo(HaveOccurred())
			Expect(act).To(Equal(1))
		})

		It("rejects grids of different shape", func() {
			_, err := analysis.Activity(life.MustNew(3, 3), life.MustNew(3, 4))
			Expect(err).To(MatchError(life.ErrInvalidDimension))
		})
	})

	Describe("Displacement", func() {
		It("is the Euclidean distance", func() {
			Expect(analysis.Displacement(0, 0, 3, 4)).To(BeNumerically("~", 5.0, 1e-12))
		})

		It("is zero when an endpoint is undefined", func() {
			nan := math.NaN()
			Expect(analysis.Displacement(nan, nan, 3, 4)).To(Equal(0.0))
			Expect(analysis.Displacement(1, 1, nan, nan)).To(Equal(0.0))
		})
	})

	Describe("Heatmap", func() {
		It("accumulates live cells across frames", func() {
			h := analysis.NewHeatmap(2, 2)
			a := life.MustNew(2, 2)
			a.Set(0, 0, true)
			b := a.Clone()
			b.Set(1, 1, true)
			h.Add(a)
			h.Add(b)
			Expect(h.At(0, 0)).To(Equal(2))
			Expect(h.At(1, 1)).To(Equal(1))
			Expect(h.At(0, 1)).To(BeZero())
			Expect(h.Max()).To(Equal(2))
		})
	})
})
