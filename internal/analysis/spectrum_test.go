package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/analysis"
)

var _ = Describe("Spectrum", func() {
	It("finds the period of a sampled sine", func() {
		series := make([]float64, 64)
		for i := range series {
			series[i] = 10 + math.Sin(2*math.Pi*float64(i)/4)
		}
		Expect(analysis.DominantPeriod(series)).To(BeNumerically("~", 4, 1e-9))
	})

	It("ignores the mean", func() {
		power := analysis.PowerSpectrum([]float64{5, 5, 5, 5})
		Expect(power).To(HaveLen(3))
		Expect(power[0]).To(BeNumerically("~", 0, 1e-12))
		Expect(analysis.DominantPeriod([]float64{5, 5, 5, 5})).To(BeZero())
	})

	It("needs at least two samples", func() {
		Expect(analysis.PowerSpectrum([]float64{1})).To(BeNil())
		Expect(analysis.DominantPeriod(nil)).To(BeZero())
	})
})
