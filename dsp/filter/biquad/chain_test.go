package biquad

import (
	"math"
	"testing"
)

func TestChainMatchesSequentialSections(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.3, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
		{B0: 0.8, B1: -0.4, B2: 0.2, A1: 0.1, A2: -0.05},
	}

	in := []float64{1, -0.5, 0.25, 0.75, -1, 0.5, 0, 0.125}

	s0 := NewSection(coeffs[0])
	s1 := NewSection(coeffs[1])
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = s1.ProcessSample(s0.ProcessSample(x))
	}

	chain := NewChain(coeffs)
	got := make([]float64, len(in))
	for i, x := range in {
		got[i] = chain.ProcessSample(x)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChainProcessBlockMatchesProcessSample(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.5, B1: 0.5, A1: -0.2},
		{B0: 1, B1: -1, A1: 0.3},
	}
	in := []float64{0.1, 0.9, -0.7, 0.3, 0.5, -0.2}

	perSample := NewChain(coeffs)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = perSample.ProcessSample(x)
	}

	block := NewChain(coeffs)
	got := append([]float64(nil), in...)
	block.ProcessBlock(got)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("block[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChainOrderAndSections(t *testing.T) {
	chain := NewChain(make([]Coefficients, 4))
	if chain.NumSections() != 4 {
		t.Fatalf("NumSections = %d, want 4", chain.NumSections())
	}
	if chain.Order() != 8 {
		t.Fatalf("Order = %d, want 8", chain.Order())
	}
}

func TestChainPrimeRemovesStartupTransient(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.4, A2: 0.2},
		{B0: 0.3, B1: 0.3, A1: -0.4},
	}
	chain := NewChain(coeffs)

	// DC gain of the cascade.
	gain := 1.0
	for _, c := range coeffs {
		gain *= c.DCGain()
	}

	// A primed chain is already in steady state: every output sample of a
	// constant block equals the input times the DC gain, including the first.
	const level = 0.75
	chain.Prime(level)
	buf := make([]float64, 32)
	for i := range buf {
		buf[i] = level
	}
	chain.ProcessBlock(buf)

	want := level * gain
	for i, v := range buf {
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("primed output[%d] = %v, want %v", i, v, want)
		}
	}

	// Without priming the same block starts with a transient.
	chain.Reset()
	buf2 := make([]float64, 32)
	for i := range buf2 {
		buf2[i] = level
	}
	chain.ProcessBlock(buf2)
	if math.Abs(buf2[0]-want) < 1e-6 {
		t.Fatalf("unprimed first sample %v already at steady state %v", buf2[0], want)
	}
}

func TestDCGain(t *testing.T) {
	// Unity-DC-gain lowpass-like section.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.4, A2: 0.4}
	if got, want := c.DCGain(), 1.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("DCGain = %v, want %v", got, want)
	}

	// Highpass numerator sums to zero.
	hp := Coefficients{B0: 1, B1: -2, B2: 1, A1: -1.8, A2: 0.81}
	if got := hp.DCGain(); got != 0 {
		t.Fatalf("highpass DCGain = %v, want 0", got)
	}

	// Pole at DC is reported as zero gain rather than Inf.
	degenerate := Coefficients{B0: 1, A1: -2, A2: 1}
	if got := degenerate.DCGain(); got != 0 {
		t.Fatalf("degenerate DCGain = %v, want 0", got)
	}
}

func TestChainReset(t *testing.T) {
	coeffs := []Coefficients{{B0: 1, A1: -0.9}, {B0: 1, A1: -0.5}}
	chain := NewChain(coeffs)

	first := chain.ProcessSample(1)
	chain.ProcessSample(0.5)
	chain.Reset()

	if got := chain.ProcessSample(1); got != first {
		t.Fatalf("after Reset: %v, want %v", got, first)
	}
}
