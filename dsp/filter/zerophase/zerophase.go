// Package zerophase applies IIR filter cascades forward and backward so the
// net phase response is zero. This keeps time-domain and frequency-domain
// features of a filtered waveform aligned, at the cost of doubling the
// effective filter order.
package zerophase

import "github.com/cwbudde/algo-vibration/dsp/filter/biquad"

// Filter runs signal through the cascade twice, once forward and once in
// reverse, returning a new slice of the same length.
//
// Edge transients are suppressed the way scipy's filtfilt does it: the
// signal is extended at both ends with an odd reflection about its endpoint
// values (three times the cascade order per end), each pass starts from the
// steady-state filter response to the first extended sample, and the
// extension is trimmed after the backward pass.
func Filter(coeffs []biquad.Coefficients, signal []float64) []float64 {
	n := len(signal)
	if n == 0 || len(coeffs) == 0 {
		return append([]float64(nil), signal...)
	}

	chain := biquad.NewChain(coeffs)

	padlen := 3 * chain.Order()
	if padlen > n-1 {
		padlen = n - 1
	}

	buf := oddExtend(signal, padlen)

	chain.Prime(buf[0])
	chain.ProcessBlock(buf)

	reverse(buf)
	chain.Prime(buf[0])
	chain.ProcessBlock(buf)
	reverse(buf)

	out := make([]float64, n)
	copy(out, buf[padlen:padlen+n])

	return out
}

// oddExtend returns signal with padlen samples prepended and appended, each
// pad an odd (point-symmetric) reflection about the nearest endpoint:
// ext[-i] = 2*signal[0] - signal[i]. This keeps the extension continuous in
// value and slope at the joins. padlen must be < len(signal).
func oddExtend(signal []float64, padlen int) []float64 {
	n := len(signal)
	ext := make([]float64, n+2*padlen)
	copy(ext[padlen:], signal)

	first, last := signal[0], signal[n-1]
	for i := 1; i <= padlen; i++ {
		ext[padlen-i] = 2*first - signal[i]
		ext[padlen+n-1+i] = 2*last - signal[n-1-i]
	}

	return ext
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
