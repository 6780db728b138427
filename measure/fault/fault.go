// Package fault maps vibration features to a fault score, a damage level,
// fault-type hypotheses, and maintenance recommendations.
//
// All numeric weights and thresholds are heuristic constants carried in
// Config as data, so a tuned or learned parameter set can be swapped in
// without touching the rule evaluation itself.
package fault

import (
	"errors"
	"fmt"
)

// Damage level labels, ordered from benign to catastrophic.
const (
	LevelHealthy  = "healthy"
	LevelSlight   = "slight"
	LevelModerate = "moderate"
	LevelSevere   = "severe"
	LevelCritical = "critical"
)

// Fault type identifiers.
const (
	TypeBearingFault       = "bearing_fault"
	TypeUnbalance          = "unbalance"
	TypeMisalignment       = "misalignment"
	TypeGearFault          = "gear_fault"
	TypeGeneralAbnormality = "general_abnormality"
)

// ErrInvalidDamageLevels is returned when the damage table does not
// partition [0,1] into ascending contiguous intervals.
var ErrInvalidDamageLevels = errors.New("fault: damage levels must partition [0,1] in ascending order")

// DamageLevel is one half-open score interval [Low, High) with its label.
// The final interval of a table is treated as closed at 1.0.
type DamageLevel struct {
	Label string  `json:"label"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

// DefaultDamageLevels returns the standard five-level damage table.
func DefaultDamageLevels() []DamageLevel {
	return []DamageLevel{
		{Label: LevelHealthy, Low: 0.0, High: 0.2},
		{Label: LevelSlight, Low: 0.2, High: 0.4},
		{Label: LevelModerate, Low: 0.4, High: 0.6},
		{Label: LevelSevere, Low: 0.6, High: 0.8},
		{Label: LevelCritical, Low: 0.8, High: 1.0},
	}
}

// Weights are the fault-score mixing weights for the four sub-scores.
type Weights struct {
	RMS      float64 `json:"rms"`
	Kurtosis float64 `json:"kurtosis"`
	Crest    float64 `json:"crest"`
	Band     float64 `json:"band"`
}

// Config holds all classification parameters. Zero-valued fields are
// replaced by the defaults below, which were tuned together and should only
// be changed as a set.
type Config struct {
	// FaultThreshold is the score above which (strictly) a waveform is
	// flagged faulty.
	FaultThreshold float64

	// Weights mix the four sub-scores into the fault score.
	Weights Weights

	// RMSNorm, KurtosisNorm, and CrestNorm divide the raw feature values
	// before clamping the sub-scores to [0,1].
	RMSNorm      float64
	KurtosisNorm float64
	CrestNorm    float64

	// BearingKurtosis is the kurtosis above which a bearing fault is
	// hypothesized.
	BearingKurtosis float64

	// UnbalanceMaxHz: a dominant peak below this frequency suggests rotor
	// unbalance.
	UnbalanceMaxHz float64

	// MisalignmentRatio: high-band power above this fraction of low-band
	// power suggests shaft misalignment.
	MisalignmentRatio float64

	// GearLowHz/GearHighHz bound the peak-frequency range (exclusive) that
	// suggests a gear mesh fault.
	GearLowHz  float64
	GearHighHz float64

	// AbnormalRMS is the raw RMS (not normalized) above which an otherwise
	// unexplained signal is flagged as a general abnormality. Tuned jointly
	// with RMSNorm; do not derive one from the other.
	AbnormalRMS float64

	// Fixed rule confidences.
	UnbalanceConfidence    float64
	MisalignmentConfidence float64
	GearConfidence         float64
	AbnormalConfidence     float64

	// DamageLevels maps score intervals to labels. Must partition [0,1]
	// ascending; see Validate.
	DamageLevels []DamageLevel
}

// DefaultConfig returns the standard classification parameters.
func DefaultConfig() Config {
	return Config{
		FaultThreshold:         0.5,
		Weights:                Weights{RMS: 0.3, Kurtosis: 0.3, Crest: 0.2, Band: 0.2},
		RMSNorm:                10,
		KurtosisNorm:           10,
		CrestNorm:              10,
		BearingKurtosis:        5,
		UnbalanceMaxHz:         100,
		MisalignmentRatio:      0.5,
		GearLowHz:              500,
		GearHighHz:             2000,
		AbnormalRMS:            5,
		UnbalanceConfidence:    0.6,
		MisalignmentConfidence: 0.5,
		GearConfidence:         0.6,
		AbnormalConfidence:     0.5,
		DamageLevels:           DefaultDamageLevels(),
	}
}

// normalizeConfig fills zero-valued fields with defaults.
func normalizeConfig(cfg Config) Config {
	def := DefaultConfig()

	if cfg.FaultThreshold <= 0 {
		cfg.FaultThreshold = def.FaultThreshold
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	if cfg.RMSNorm <= 0 {
		cfg.RMSNorm = def.RMSNorm
	}
	if cfg.KurtosisNorm <= 0 {
		cfg.KurtosisNorm = def.KurtosisNorm
	}
	if cfg.CrestNorm <= 0 {
		cfg.CrestNorm = def.CrestNorm
	}
	if cfg.BearingKurtosis <= 0 {
		cfg.BearingKurtosis = def.BearingKurtosis
	}
	if cfg.UnbalanceMaxHz <= 0 {
		cfg.UnbalanceMaxHz = def.UnbalanceMaxHz
	}
	if cfg.MisalignmentRatio <= 0 {
		cfg.MisalignmentRatio = def.MisalignmentRatio
	}
	if cfg.GearLowHz <= 0 {
		cfg.GearLowHz = def.GearLowHz
	}
	if cfg.GearHighHz <= 0 {
		cfg.GearHighHz = def.GearHighHz
	}
	if cfg.AbnormalRMS <= 0 {
		cfg.AbnormalRMS = def.AbnormalRMS
	}
	if cfg.UnbalanceConfidence <= 0 {
		cfg.UnbalanceConfidence = def.UnbalanceConfidence
	}
	if cfg.MisalignmentConfidence <= 0 {
		cfg.MisalignmentConfidence = def.MisalignmentConfidence
	}
	if cfg.GearConfidence <= 0 {
		cfg.GearConfidence = def.GearConfidence
	}
	if cfg.AbnormalConfidence <= 0 {
		cfg.AbnormalConfidence = def.AbnormalConfidence
	}
	if len(cfg.DamageLevels) == 0 {
		cfg.DamageLevels = def.DamageLevels
	}

	return cfg
}

// Validate checks that the damage table partitions [0,1]: first interval
// starts at 0, intervals are contiguous and ascending, and the last ends at
// 1. A config that fails validation is a caller programming error.
func (cfg Config) Validate() error {
	levels := cfg.DamageLevels
	if len(levels) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidDamageLevels)
	}
	if levels[0].Low != 0 {
		return fmt.Errorf("%w: first interval starts at %v", ErrInvalidDamageLevels, levels[0].Low)
	}
	for i, lvl := range levels {
		if lvl.High <= lvl.Low {
			return fmt.Errorf("%w: interval %q is empty or inverted", ErrInvalidDamageLevels, lvl.Label)
		}
		if i > 0 && lvl.Low != levels[i-1].High {
			return fmt.Errorf("%w: gap before %q", ErrInvalidDamageLevels, lvl.Label)
		}
	}
	if levels[len(levels)-1].High != 1 {
		return fmt.Errorf("%w: last interval ends at %v", ErrInvalidDamageLevels, levels[len(levels)-1].High)
	}
	return nil
}

// Hypothesis is one detected fault type with a confidence in [0,1].
type Hypothesis struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// Result holds the classification of one waveform.
type Result struct {
	FaultScore      float64      `json:"fault_score"`
	DamageLevel     string       `json:"damage_level"`
	IsFaulty        bool         `json:"is_faulty"`
	FaultTypes      []Hypothesis `json:"fault_types"`
	Recommendations []string     `json:"recommendations"`
}
