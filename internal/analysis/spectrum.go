package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns |X_k|^2 for k = 0..n/2 of the mean-removed series.
func PowerSpectrum(series []float64) []float64 {
	n := len(series)
	if n < 2 {
		return nil
	}
	centered := make([]float64, n)
	copy(centered, series)
	floats.AddConst(-stat.Mean(series, nil), centered)

	coeffs := fourier.NewFFT(n).Coefficients(nil, centered)
	power := make([]float64, len(coeffs))
	for k, c := range coeffs {
		a := cmplx.Abs(c)
		power[k] = a * a
	}
	return power
}

// DominantPeriod returns the period, in generations, of the strongest
// non-constant component of series, or 0 when the series is flat.
func DominantPeriod(series []float64) float64 {
	power := PowerSpectrum(series)
	if len(power) < 2 {
		return 0
	}
	k := floats.MaxIdx(power[1:]) + 1
	if power[k] < 1e-9 {
		return 0
	}
	return float64(len(series)) / float64(k)
}
