package pass

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vibration/dsp/filter/biquad"
)

// settle runs a long constant input through the chain and returns the
// settled output, approximating the DC gain.
func settleDC(coeffs []biquad.Coefficients) float64 {
	chain := biquad.NewChain(coeffs)
	var y float64
	for i := 0; i < 20000; i++ {
		y = chain.ProcessSample(1)
	}
	return y
}

// sineGain measures the steady-state amplitude ratio for a sine at freq.
func sineGain(coeffs []biquad.Coefficients, freq, sampleRate float64) float64 {
	chain := biquad.NewChain(coeffs)
	n := 20000
	out := make([]float64, n)
	step := 2 * math.Pi * freq / sampleRate
	for i := range out {
		out[i] = chain.ProcessSample(math.Sin(step * float64(i)))
	}
	// Peak over the second half, after transients decay.
	peak := 0.0
	for _, v := range out[n/2:] {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

func TestButterworthLPUnityDCGain(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 8} {
		coeffs, err := ButterworthLP(1000, order, 12000)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		if got := settleDC(coeffs); math.Abs(got-1) > 1e-6 {
			t.Fatalf("order %d: DC gain = %v, want 1", order, got)
		}
	}
}

func TestButterworthHPBlocksDC(t *testing.T) {
	coeffs, err := ButterworthHP(10, 4, 12000)
	if err != nil {
		t.Fatal(err)
	}
	if got := settleDC(coeffs); math.Abs(got) > 1e-6 {
		t.Fatalf("DC gain = %v, want 0", got)
	}
}

func TestButterworthLPSectionCount(t *testing.T) {
	cases := []struct {
		order, sections int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 4},
	}
	for _, tc := range cases {
		coeffs, err := ButterworthLP(1000, tc.order, 48000)
		if err != nil {
			t.Fatalf("order %d: %v", tc.order, err)
		}
		if len(coeffs) != tc.sections {
			t.Fatalf("order %d: %d sections, want %d", tc.order, len(coeffs), tc.sections)
		}
	}
}

func TestButterworthBPPassbandAndStopband(t *testing.T) {
	coeffs, err := ButterworthBP(10, 5000, 4, 12000)
	if err != nil {
		t.Fatal(err)
	}

	// Mid-band tone passes at roughly unity gain.
	if g := sineGain(coeffs, 500, 12000); g < 0.95 || g > 1.05 {
		t.Fatalf("passband gain at 500 Hz = %v, want ~1", g)
	}

	// A tone well below the low cutoff is strongly attenuated.
	if g := sineGain(coeffs, 1, 12000); g > 0.05 {
		t.Fatalf("stopband gain at 1 Hz = %v, want < 0.05", g)
	}
}

func TestInvalidParams(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
	}{
		{"zero order", func() error { _, err := ButterworthLP(100, 0, 12000); return err }},
		{"cutoff at nyquist", func() error { _, err := ButterworthLP(6000, 4, 12000); return err }},
		{"negative cutoff", func() error { _, err := ButterworthHP(-10, 4, 12000); return err }},
		{"zero sample rate", func() error { _, err := ButterworthHP(10, 4, 0); return err }},
		{"inverted band", func() error { _, err := ButterworthBP(5000, 10, 4, 12000); return err }},
		{"low edge above nyquist", func() error { _, err := ButterworthBP(10, 5000, 4, 15); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(); !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("err = %v, want ErrInvalidParams", err)
			}
		})
	}
}
