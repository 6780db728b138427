package vibration

import (
	"github.com/cwbudde/algo-vibration/dsp/core"
	"github.com/cwbudde/algo-vibration/measure/fault"
)

// Config defines configuration for the vibration analyzer.
type Config struct {
	core.ProcessorConfig
	Fault fault.Config
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: 12 kHz sample rate and the
// standard classification parameters.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Fault:           fault.DefaultConfig(),
	}
}

// WithSampleRate sets the acquisition sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFaultThreshold sets the score above which a waveform is flagged faulty.
func WithFaultThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.Fault.FaultThreshold = threshold
		}
	}
}

// WithDamageLevels replaces the damage-level table. The table must partition
// [0,1] in ascending order; New reports a violation.
func WithDamageLevels(levels []fault.DamageLevel) Option {
	return func(cfg *Config) {
		if len(levels) > 0 {
			cfg.Fault.DamageLevels = levels
		}
	}
}

// WithFaultConfig replaces the entire classification parameter set.
func WithFaultConfig(fc fault.Config) Option {
	return func(cfg *Config) {
		cfg.Fault = fc
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
