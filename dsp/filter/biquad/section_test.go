package biquad

import (
	"math"
	"testing"
)

func TestPassthroughSection(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})

	in := []float64{1, -2, 3, 0.5, -0.25}
	for _, x := range in {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("ProcessSample(%v) = %v, want identity", x, y)
		}
	}
}

func TestImpulseResponseFeedforward(t *testing.T) {
	// Pure FIR section: impulse response is exactly B0, B1, B2, 0, ...
	c := Coefficients{B0: 0.5, B1: -0.25, B2: 0.125}
	s := NewSection(c)

	want := []float64{0.5, -0.25, 0.125, 0, 0}
	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); y != w {
			t.Fatalf("impulse response[%d] = %v, want %v", i, y, w)
		}
	}
}

func TestImpulseResponseOnePole(t *testing.T) {
	// y[n] = x[n] + 0.5*y[n-1] -> impulse response 1, 0.5, 0.25, ...
	s := NewSection(Coefficients{B0: 1, A1: -0.5})

	want := 1.0
	for i := 0; i < 8; i++ {
		x := 0.0
		if i == 0 {
			x = 1
		}
		y := s.ProcessSample(x)
		if math.Abs(y-want) > 1e-15 {
			t.Fatalf("impulse response[%d] = %v, want %v", i, y, want)
		}
		want *= 0.5
	}
}

func TestProcessBlockMatchesProcessSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.4, A2: 0.05}

	in := []float64{1, 0.5, -0.25, 0.75, -1, 0.1, 0.2, -0.3}

	perSample := NewSection(c)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = perSample.ProcessSample(x)
	}

	block := NewSection(c)
	got := append([]float64(nil), in...)
	block.ProcessBlock(got)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("block[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	c := Coefficients{B0: 1, A1: -0.9}
	s := NewSection(c)

	first := s.ProcessSample(1)
	s.ProcessSample(0)
	s.Reset()

	if got := s.ProcessSample(1); got != first {
		t.Fatalf("after Reset: %v, want %v", got, first)
	}
}
