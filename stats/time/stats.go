// Package time computes time-domain statistical features of a vibration
// waveform in a single pass.
//
// Kurtosis and skewness use the sample-bias-corrected estimators over the
// population standard deviation; the fault thresholds downstream were tuned
// against exactly these estimators, so they must not be swapped for the
// plain population moments.
package time

import "math"

// Features holds time-domain features derived from one waveform.
type Features struct {
	Length      int     `json:"length"`
	Mean        float64 `json:"mean"`
	Std         float64 `json:"std"` // population standard deviation
	RMS         float64 `json:"rms"`
	Peak        float64 `json:"peak"` // max absolute amplitude
	PeakToPeak  float64 `json:"peak_to_peak"`
	CrestFactor float64 `json:"crest_factor"` // peak / RMS, 0 when RMS is 0
	Kurtosis    float64 `json:"kurtosis"`     // excess, sample-corrected
	Skewness    float64 `json:"skewness"`     // sample-corrected
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Energy      float64 `json:"energy"` // sum of squares
}

// Calculate computes all time-domain features in a single pass using
// Welford's online algorithm for numerical stability on higher-order moments.
//
// Degenerate inputs never fail: an empty signal yields zero features, and
// kurtosis/skewness are 0 below their minimum lengths (4 and 3) or for
// zero-variance signals.
func Calculate(signal []float64) Features {
	n := len(signal)
	if n == 0 {
		return Features{}
	}

	// Welford accumulators: mean and 2nd..4th central moment sums.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	var (
		sumSq  float64
		maxVal = signal[0]
		minVal = signal[0]
	)

	for i, x := range signal {
		ni := float64(i + 1) // 1-based count after this sample
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i) // delta * delta_n * (n-1)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}
		if x < minVal {
			minVal = x
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))
	variance := m2 / nf
	std := math.Sqrt(variance)

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Features{
		Length:      n,
		Mean:        mean,
		Std:         std,
		RMS:         rms,
		Peak:        peak,
		PeakToPeak:  maxVal - minVal,
		CrestFactor: crest,
		Kurtosis:    sampleKurtosis(n, m4, std),
		Skewness:    sampleSkewness(n, m3, std),
		Min:         minVal,
		Max:         maxVal,
		Energy:      sumSq,
	}
}

// sampleKurtosis returns the bias-corrected excess kurtosis:
//
//	n(n+1)/((n-1)(n-2)(n-3)) * sum(((x-mean)/std)^4) - 3(n-1)^2/((n-2)(n-3))
//
// where sum(((x-mean)/std)^4) = m4/std^4 and std is the population standard
// deviation. Returns 0 for n < 4 or zero variance.
func sampleKurtosis(n int, m4, std float64) float64 {
	if n < 4 || std == 0 {
		return 0
	}

	nf := float64(n)
	sumStd4 := m4 / (std * std * std * std)

	return nf*(nf+1)/((nf-1)*(nf-2)*(nf-3))*sumStd4 -
		3*(nf-1)*(nf-1)/((nf-2)*(nf-3))
}

// sampleSkewness returns the bias-corrected skewness:
//
//	n/((n-1)(n-2)) * sum(((x-mean)/std)^3)
//
// Returns 0 for n < 3 or zero variance.
func sampleSkewness(n int, m3, std float64) float64 {
	if n < 3 || std == 0 {
		return 0
	}

	nf := float64(n)
	sumStd3 := m3 / (std * std * std)

	return nf / ((nf - 1) * (nf - 2)) * sumStd3
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}
