// Package condition prepares raw vibration waveforms for feature extraction:
// DC removal followed by a best-effort band-pass restricting the signal to
// the 10 Hz – 5 kHz range where gearbox fault signatures live.
package condition

import (
	"math"

	"github.com/cwbudde/algo-vibration/dsp/filter/design/pass"
	"github.com/cwbudde/algo-vibration/dsp/filter/zerophase"
)

const (
	// LowCutoffHz and HighCutoffHz bound the gearbox vibration band.
	LowCutoffHz  = 10.0
	HighCutoffHz = 5000.0

	// FilterOrder is the Butterworth order of the band-pass.
	FilterOrder = 4

	// minFilterLength is the shortest signal the band-pass is applied to.
	// Shorter records are dominated by filter transients.
	minFilterLength = 101

	// nyquistMargin keeps the upper cutoff strictly below Nyquist.
	nyquistMargin = 0.99
)

// Condition returns a zero-mean, band-limited copy of raw with the same
// length. Filtering is zero-phase (forward-backward) and best-effort: when
// the sample rate does not admit a valid 10–5000 Hz design, the unfiltered
// zero-mean sequence is returned. Condition never fails.
func Condition(raw []float64, sampleRate float64) []float64 {
	out := make([]float64, len(raw))
	if len(raw) == 0 {
		return out
	}

	mean := kahanMean(raw)
	for i, x := range raw {
		out[i] = x - mean
	}

	if len(out) < minFilterLength || sampleRate <= 0 {
		return out
	}

	high := math.Min(HighCutoffHz, nyquistMargin*sampleRate/2)
	coeffs, err := pass.ButterworthBP(LowCutoffHz, high, FilterOrder, sampleRate)
	if err != nil {
		// Filtering is never fatal: fall back to the zero-mean sequence.
		return out
	}

	return zerophase.Filter(coeffs, out)
}

// kahanMean returns the arithmetic mean using Kahan summation for
// numerical stability on long records.
func kahanMean(data []float64) float64 {
	var sum, c float64
	for _, x := range data {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(data))
}
