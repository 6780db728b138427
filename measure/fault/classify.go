package fault

import (
	"math"

	"github.com/cwbudde/algo-vibration/stats/frequency"
	timestats "github.com/cwbudde/algo-vibration/stats/time"
)

// Calculator classifies feature bundles against a fixed parameter set.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a classifier, filling zero-valued config fields
// with defaults.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: normalizeConfig(cfg)}
}

// Config returns the effective (normalized) configuration.
func (c *Calculator) Config() Config {
	return c.cfg
}

// Classify is a one-shot classification with the given config.
func Classify(tf timestats.Features, ff frequency.Features, cfg Config) Result {
	return NewCalculator(cfg).Classify(tf, ff)
}

// Classify maps one feature bundle to a classification result. It is a pure
// function of the features and the calculator's config.
func (c *Calculator) Classify(tf timestats.Features, ff frequency.Features) Result {
	score := c.faultScore(tf, ff)
	level := c.damageLevel(score)
	types := c.detectFaultTypes(tf, ff)

	return Result{
		FaultScore:      score,
		DamageLevel:     level,
		IsFaulty:        score > c.cfg.FaultThreshold,
		FaultTypes:      types,
		Recommendations: c.recommendations(level, types),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// faultScore combines four independently clamped sub-scores:
// vibration energy (RMS), impulsiveness (kurtosis), shock content (crest
// factor), and spectral band imbalance.
func (c *Calculator) faultScore(tf timestats.Features, ff frequency.Features) float64 {
	cfg := c.cfg

	rmsScore := clamp01(tf.RMS / cfg.RMSNorm)
	kurtosisScore := clamp01(math.Abs(tf.Kurtosis) / cfg.KurtosisNorm)
	crestScore := clamp01(tf.CrestFactor / cfg.CrestNorm)

	var bandScore float64
	if total := frequency.TotalBandPower(ff.Bands); total > 0 {
		imbalance := frequency.BandPowerStd(ff.Bands) / (total / float64(len(ff.Bands)))
		bandScore = clamp01(imbalance)
	}

	score := cfg.Weights.RMS*rmsScore +
		cfg.Weights.Kurtosis*kurtosisScore +
		cfg.Weights.Crest*crestScore +
		cfg.Weights.Band*bandScore

	return clamp01(score)
}

// damageLevel returns the label of the first interval containing score.
// A score matched by no half-open interval (exactly 1.0) is critical.
func (c *Calculator) damageLevel(score float64) string {
	for _, lvl := range c.cfg.DamageLevels {
		if score >= lvl.Low && score < lvl.High {
			return lvl.Label
		}
	}
	return LevelCritical
}

// detectFaultTypes evaluates the rules in fixed order. The rules are
// non-exclusive: several may fire on the same waveform. The general
// abnormality fallback fires only when no specific rule matched.
func (c *Calculator) detectFaultTypes(tf timestats.Features, ff frequency.Features) []Hypothesis {
	cfg := c.cfg
	var faults []Hypothesis

	// Bearing fault: impulsive signal.
	if tf.Kurtosis > cfg.BearingKurtosis {
		faults = append(faults, Hypothesis{
			Type:        TypeBearingFault,
			Confidence:  clamp01(tf.Kurtosis / cfg.KurtosisNorm),
			Description: "Possible bearing defect detected",
		})
	}

	// Unbalance: dominant low frequency.
	if ff.PeakFrequency < cfg.UnbalanceMaxHz {
		faults = append(faults, Hypothesis{
			Type:        TypeUnbalance,
			Confidence:  cfg.UnbalanceConfidence,
			Description: "Possible rotor unbalance detected",
		})
	}

	// Misalignment: strong harmonics in the high band.
	if bandPower(ff.Bands, "high") > bandPower(ff.Bands, "low")*cfg.MisalignmentRatio {
		faults = append(faults, Hypothesis{
			Type:        TypeMisalignment,
			Confidence:  cfg.MisalignmentConfidence,
			Description: "Possible shaft misalignment detected",
		})
	}

	// Gear fault: dominant mid-frequency content.
	if ff.PeakFrequency > cfg.GearLowHz && ff.PeakFrequency < cfg.GearHighHz {
		faults = append(faults, Hypothesis{
			Type:        TypeGearFault,
			Confidence:  cfg.GearConfidence,
			Description: "Possible gear mesh fault detected",
		})
	}

	// No specific fault matched but vibration energy is abnormal.
	if len(faults) == 0 && tf.RMS > cfg.AbnormalRMS {
		faults = append(faults, Hypothesis{
			Type:        TypeGeneralAbnormality,
			Confidence:  cfg.AbnormalConfidence,
			Description: "Abnormal vibration levels detected",
		})
	}

	return faults
}

func bandPower(bands []frequency.BandPower, name string) float64 {
	for _, b := range bands {
		if b.Name == name {
			return b.Power
		}
	}
	return 0
}
