// Package vibration is the analysis entry point: it conditions a raw
// waveform, extracts time- and frequency-domain features, and classifies
// mechanical damage severity and likely fault types.
//
// The pipeline is a straight line with no shared state; analyses of
// different waveforms may run concurrently without coordination.
package vibration

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vibration/dsp/condition"
	"github.com/cwbudde/algo-vibration/dsp/spectrum"
	"github.com/cwbudde/algo-vibration/measure/fault"
	"github.com/cwbudde/algo-vibration/stats/frequency"
	timestats "github.com/cwbudde/algo-vibration/stats/time"
)

var (
	// ErrEmptyInput is returned for a zero-length raw sequence.
	ErrEmptyInput = errors.New("vibration: empty input")

	// ErrNonFiniteInput is returned when the raw sequence contains NaN or
	// infinite samples.
	ErrNonFiniteInput = errors.New("vibration: input contains non-finite samples")
)

// Result holds everything one analysis produces. Waveform carries the
// conditioned samples for presentation collaborators (plotting) and is not
// serialized.
type Result struct {
	fault.Result

	Time       timestats.Features `json:"time_features"`
	Frequency  frequency.Features `json:"freq_features"`
	SampleRate float64            `json:"sampling_rate"`
	Waveform   []float64          `json:"-"`
}

// Analyzer runs the conditioning, extraction, and classification pipeline
// with a fixed configuration. It is stateless and safe for concurrent use.
type Analyzer struct {
	cfg        Config
	classifier *fault.Calculator
}

// New creates an Analyzer. It fails if the damage-level table does not
// partition [0,1]; a malformed table is a caller programming error and is
// reported immediately rather than masked with defaults.
func New(opts ...Option) (*Analyzer, error) {
	cfg := ApplyOptions(opts...)

	classifier := fault.NewCalculator(cfg.Fault)
	if err := classifier.Config().Validate(); err != nil {
		return nil, fmt.Errorf("vibration: %w", err)
	}

	return &Analyzer{cfg: cfg, classifier: classifier}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze is a one-shot analysis with the given options.
func Analyze(raw []float64, opts ...Option) (Result, error) {
	a, err := New(opts...)
	if err != nil {
		return Result{}, err
	}
	return a.Analyze(raw)
}

// Analyze runs the full pipeline on one raw waveform. Identical input and
// configuration always produce a bit-identical Result.
func (a *Analyzer) Analyze(raw []float64) (Result, error) {
	if len(raw) == 0 {
		return Result{}, ErrEmptyInput
	}
	for _, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, ErrNonFiniteInput
		}
	}

	rate := a.cfg.SampleRate
	waveform := condition.Condition(raw, rate)

	tf := timestats.Calculate(waveform)

	mag := spectrum.Magnitude(spectrum.Forward(waveform))
	ff := frequency.Calculate(mag, len(waveform), rate)

	return Result{
		Result:     a.classifier.Classify(tf, ff),
		Time:       tf,
		Frequency:  ff,
		SampleRate: rate,
		Waveform:   waveform,
	}, nil
}
