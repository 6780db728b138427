package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vibration/internal/testutil"
)

func TestForwardBinCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 100, 1024, 12000} {
		sig := make([]float64, n)
		bins := Forward(sig)
		if len(bins) != BinCount(n) {
			t.Fatalf("n=%d: %d bins, want %d", n, len(bins), BinCount(n))
		}
	}
}

func TestForwardEmpty(t *testing.T) {
	if bins := Forward(nil); bins != nil {
		t.Fatalf("Forward(nil) = %v, want nil", bins)
	}
}

func TestImpulseHasFlatSpectrum(t *testing.T) {
	// Non-power-of-two length: general transform path. The DFT of a unit
	// impulse at position 0 is 1 in every bin.
	bins := Forward(testutil.Impulse(12, 0))
	mag := Magnitude(bins)
	for i, v := range mag {
		if math.Abs(v-1) > 1e-12 {
			t.Fatalf("mag[%d] = %v, want 1", i, v)
		}
	}
}

func TestSinePeakBinGeneralLength(t *testing.T) {
	// 50 Hz sine, 12000 samples at 12000 Hz: 1 Hz bin spacing, peak at 50.
	sig := testutil.DeterministicSine(50, 12000, 1, 12000)
	mag := Magnitude(Forward(sig))

	peak := 0
	for i, v := range mag {
		if v > mag[peak] {
			peak = i
		}
	}
	if peak != 50 {
		t.Fatalf("peak bin = %d, want 50", peak)
	}
	if f := BinFrequency(peak, 12000, 12000); f != 50 {
		t.Fatalf("peak frequency = %v, want 50", f)
	}
}

func TestSinePeakBinPowerOfTwoLength(t *testing.T) {
	// 4096 samples at 4096 Hz: radix-2 path, 1 Hz spacing, peak at 64.
	sig := testutil.DeterministicSine(64, 4096, 1, 4096)
	mag := Magnitude(Forward(sig))

	peak := 0
	for i, v := range mag {
		if v > mag[peak] {
			peak = i
		}
	}
	if peak != 64 {
		t.Fatalf("peak bin = %d, want 64", peak)
	}
}

func TestMagnitudeAndPowerAgree(t *testing.T) {
	sig := testutil.DeterministicNoise(3, 1, 300)
	bins := Forward(sig)
	mag := Magnitude(bins)
	pow := Power(bins)

	if len(mag) != len(pow) {
		t.Fatalf("length mismatch: %d vs %d", len(mag), len(pow))
	}
	for i := range mag {
		if math.Abs(mag[i]*mag[i]-pow[i]) > 1e-9*(1+pow[i]) {
			t.Fatalf("bin %d: mag^2 = %v, power = %v", i, mag[i]*mag[i], pow[i])
		}
	}
}

func TestBinFrequencySpacing(t *testing.T) {
	// rate/length spacing: k*fs/n.
	if f := BinFrequency(500, 12000, 12000); f != 500 {
		t.Fatalf("f = %v, want 500", f)
	}
	if f := BinFrequency(3, 6, 600); f != 300 {
		t.Fatalf("f = %v, want 300", f)
	}
}

func TestForwardDeterministic(t *testing.T) {
	sig := testutil.DeterministicNoise(11, 1, 1000)
	a := Forward(sig)
	b := Forward(sig)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at bin %d", i)
		}
	}
}
