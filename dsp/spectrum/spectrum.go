package spectrum

import (
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Forward computes the one-sided complex spectrum of a real signal over its
// full length, returning n/2+1 bins (unnormalized forward convention).
//
// Power-of-two lengths take the radix-2 plan path; all other lengths use the
// general real-input transform, so waveforms of any length are accepted.
func Forward(signal []float64) []complex128 {
	n := len(signal)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []complex128{complex(signal[0], 0)}
	}

	if isPowerOfTwo(n) {
		if out, ok := forwardRadix2(signal); ok {
			return out
		}
	}

	fft := fourier.NewFFT(n)
	return fft.Coefficients(nil, signal)
}

func forwardRadix2(signal []float64) ([]complex128, bool) {
	n := len(signal)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, false
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	full := make([]complex128, n)
	if err := plan.Forward(full, in); err != nil {
		return nil, false
	}

	return full[:n/2+1], true
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// BinCount returns the number of one-sided spectrum bins for an n-sample
// signal.
func BinCount(n int) int {
	if n <= 0 {
		return 0
	}
	return n/2 + 1
}

// BinFrequency returns the frequency in Hz of bin k for an n-sample signal.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(n)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// The square roots go through vecmath kernels (SIMD where available);
// scratch buffers are pooled, so in steady state this allocates only the
// output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}
