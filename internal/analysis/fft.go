package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Detrend removes the mean and replaces NaN samples with zero.
func Detrend(data []float64) []float64 {
	mean, count := 0.0, 0
	for _, v := range data {
		if !math.IsNaN(v) {
			mean += v
			count++
		}
	}
	if count > 0 {
		mean /= float64(count)
	}

	out := make([]float64, len(data))
	for i, v := range data {
		if !math.IsNaN(v) {
			out[i] = v - mean
		}
	}
	return out
}

// PowerSpectrum returns magnitudes of the non-negative frequency bins of
// the detrended signal. Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(Detrend(data))
	ps := make([]float64, len(spectrum)/2+1)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod estimates the strongest oscillation period of data in
// samples. It reports false when the signal is too short or flat.
func DominantPeriod(data []float64) (float64, bool) {
	if len(data) < 4 {
		return 0, false
	}
	ps := PowerSpectrum(data)

	best, bestIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > best {
			best, bestIdx = ps[i], i
		}
	}
	if bestIdx == 0 || best < 1e-9 {
		return 0, false
	}
	return float64(len(data)) / float64(bestIdx), true
}
