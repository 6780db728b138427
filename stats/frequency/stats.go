// Package frequency computes frequency-domain features from a one-sided
// magnitude spectrum.
//
// The band-power table is an explicitly ordered list of half-open intervals,
// not a map, so band iteration order is fixed and reproducible.
package frequency

import "math"

// Band is a named half-open frequency interval [Low, High) in Hz.
type Band struct {
	Name string  `json:"name"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// DefaultBands is the gearbox band split. Spectral content at or above
// 5000 Hz belongs to no band.
var DefaultBands = []Band{
	{Name: "low", Low: 0, High: 500},
	{Name: "mid", Low: 500, High: 2000},
	{Name: "high", Low: 2000, High: 5000},
}

// BandPower is the summed squared magnitude within one band.
type BandPower struct {
	Band
	Power float64 `json:"power"`
}

// Features holds frequency-domain features derived from one spectrum.
type Features struct {
	BinCount      int         `json:"bin_count"`
	PeakFrequency float64     `json:"peak_frequency"` // Hz, ties to the lowest bin
	PeakMagnitude float64     `json:"peak_magnitude"`
	SpectralPower float64     `json:"spectral_power"` // full one-sided spectrum
	Centroid      float64     `json:"centroid"`       // spectral centroid, Hz
	Bands         []BandPower `json:"frequency_bands"`
}

// binFreq returns the frequency in Hz of bin k for a signalLen-sample
// waveform: k * sampleRate / signalLen.
func binFreq(k, signalLen int, sampleRate float64) float64 {
	if signalLen <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(signalLen)
}

// Calculate computes all frequency-domain features from a one-sided
// magnitude spectrum (linear scale, NOT dB). signalLen is the time-domain
// length of the waveform the spectrum was computed from; it fixes the bin
// spacing to sampleRate/signalLen.
func Calculate(magnitude []float64, signalLen int, sampleRate float64) Features {
	n := len(magnitude)
	f := Features{
		BinCount: n,
		Bands:    BandPowers(magnitude, signalLen, sampleRate, DefaultBands),
	}
	if n == 0 {
		return f
	}

	peakBin := 0
	var sumMag, weightedSum float64
	for i, v := range magnitude {
		f.SpectralPower += v * v
		sumMag += v
		weightedSum += binFreq(i, signalLen, sampleRate) * v
		if v > magnitude[peakBin] {
			peakBin = i
		}
	}

	f.PeakFrequency = binFreq(peakBin, signalLen, sampleRate)
	f.PeakMagnitude = magnitude[peakBin]
	if sumMag > 0 {
		f.Centroid = weightedSum / sumMag
	}

	return f
}

// BandPowers sums squared magnitudes per band under a strict half-open mask
// (Low <= f < High), evaluating the bands in the given order.
func BandPowers(magnitude []float64, signalLen int, sampleRate float64, bands []Band) []BandPower {
	out := make([]BandPower, len(bands))
	for b, band := range bands {
		out[b].Band = band
		for i, v := range magnitude {
			f := binFreq(i, signalLen, sampleRate)
			if f >= band.Low && f < band.High {
				out[b].Power += v * v
			}
		}
	}
	return out
}

// TotalBandPower returns the sum of all band powers.
func TotalBandPower(bands []BandPower) float64 {
	var total float64
	for _, b := range bands {
		total += b.Power
	}
	return total
}

// BandPowerStd returns the population standard deviation across band powers.
func BandPowerStd(bands []BandPower) float64 {
	n := len(bands)
	if n == 0 {
		return 0
	}

	mean := TotalBandPower(bands) / float64(n)

	var m2 float64
	for _, b := range bands {
		d := b.Power - mean
		m2 += d * d
	}

	return math.Sqrt(m2 / float64(n))
}
