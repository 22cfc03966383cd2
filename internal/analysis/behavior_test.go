package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/analysis"
)

var _ = Describe("Classify", func() {
	DescribeTable("labels",
		func(period int, displacement float64, start, end int, want string) {
			Expect(analysis.Classify(period, displacement, start, end).String()).To(Equal(want))
		},
		Entry("extinction wins over everything", 1, 0.0, 5, 0, "Extinction"),
		Entry("still life", 1, 0.0, 4, 4, "Still Life (Stable)"),
		Entry("mover", 4, 25.0, 5, 5, "Spaceship / Mover (Period 4)"),
		Entry("oscillator", 2, 0.0, 3, 3, "Oscillator (Period 2)"),
		Entry("oscillator at the threshold", 3, 2.0, 48, 48, "Oscillator (Period 3)"),
		Entry("growth", analysis.NoPeriod, 3.0, 36, 100, "Unbounded Growth / Gun"),
		Entry("growth needs strictly more than 1.5x", analysis.NoPeriod, 0.0, 10, 15, "Chaotic / Complex Stabilization"),
		Entry("chaotic", analysis.NoPeriod, 1.0, 3000, 400, "Chaotic / Complex Stabilization"),
	)

	It("keeps the period on periodic kinds", func() {
		b := analysis.Classify(15, 0.5, 10, 10)
		Expect(b.Kind).To(Equal(analysis.Oscillator))
		Expect(b.Period).To(Equal(15))
	})

	It("names kinds", func() {
		Expect(analysis.StillLife.String()).To(Equal("still-life"))
		Expect(analysis.Chaotic.String()).To(Equal("chaotic"))
		Expect(analysis.BehaviorKind(42).String()).To(Equal("BehaviorKind(42)"))
	})

	It("marshals as its label", func() {
		text, err := analysis.Behavior{Kind: analysis.Growth}.MarshalText()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(text)).To(Equal("Unbounded Growth / Gun"))
	})
})
