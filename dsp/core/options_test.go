package core

import "testing"

func TestDefaultProcessorConfig(t *testing.T) {
	cfg := DefaultProcessorConfig()
	if cfg.SampleRate != 12000 {
		t.Fatalf("SampleRate = %v, want 12000", cfg.SampleRate)
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(48000))
	if cfg.SampleRate != 48000 {
		t.Fatalf("SampleRate = %v, want 48000", cfg.SampleRate)
	}
}

func TestWithSampleRateRejectsInvalid(t *testing.T) {
	for _, rate := range []float64{0, -1} {
		cfg := ApplyProcessorOptions(WithSampleRate(rate))
		if cfg.SampleRate != DefaultSampleRate {
			t.Fatalf("rate %v: SampleRate = %v, want default", rate, cfg.SampleRate)
		}
	}
}

func TestNilOptionIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(nil, WithSampleRate(20000), nil)
	if cfg.SampleRate != 20000 {
		t.Fatalf("SampleRate = %v, want 20000", cfg.SampleRate)
	}
}
