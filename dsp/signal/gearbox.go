package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Gearbox scenario constants: a 1800 RPM shaft with a 12-tooth gear and a
// bearing outer-race defect frequency typical for that speed.
const (
	RotationHz       = 30.0
	GearMeshHz       = 360.0
	BearingDefectHz  = 85.0
	GearModulationHz = 5.0
)

// Scenario names accepted by Gearbox.
const (
	ScenarioHealthy      = "healthy"
	ScenarioBearing      = "bearing"
	ScenarioUnbalance    = "unbalance"
	ScenarioMisalignment = "misalignment"
	ScenarioGear         = "gear"
)

// Scenarios lists all gearbox scenario names in a fixed order.
func Scenarios() []string {
	return []string{
		ScenarioHealthy,
		ScenarioBearing,
		ScenarioUnbalance,
		ScenarioMisalignment,
		ScenarioGear,
	}
}

// Gearbox synthesizes a vibration waveform for the named scenario. All
// scenarios share a base of the rotation tone and gear-mesh tone plus seeded
// white noise; each fault overlays its own signature:
//
//   - bearing: decaying impulses at the bearing defect frequency
//   - unbalance: boosted rotation-frequency tone
//   - misalignment: strong 2x and 3x rotation harmonics
//   - gear: amplitude-modulated gear-mesh tone
func (g *Generator) Gearbox(scenario string, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("gearbox samples must be > 0: %d", samples)
	}
	rate := g.cfg.SampleRate
	if rate <= 0 {
		return nil, fmt.Errorf("gearbox sample rate must be > 0: %f", rate)
	}

	out := make([]float64, samples)
	addSine(out, RotationHz, 0.5, rate)
	addSine(out, GearMeshHz, 0.3, rate)

	noiseAmp := 0.1

	switch scenario {
	case ScenarioHealthy:
		// Base signal only.

	case ScenarioBearing:
		noiseAmp = 0.3
		period := rate / BearingDefectHz
		for k := 0.0; int(k*period) < samples; k++ {
			start := int(k * period)
			for i := start; i < samples; i++ {
				out[i] += 5 * math.Exp(-100*float64(i-start)/rate)
			}
		}

	case ScenarioUnbalance:
		noiseAmp = 0.3
		addSine(out, RotationHz, 2.0, rate)

	case ScenarioMisalignment:
		noiseAmp = 0.3
		addSine(out, 2*RotationHz, 1.0, rate)
		addSine(out, 3*RotationHz, 0.8, rate)

	case ScenarioGear:
		noiseAmp = 0.3
		meshStep := 2 * math.Pi * GearMeshHz / rate
		modStep := 2 * math.Pi * GearModulationHz / rate
		for i := range out {
			t := float64(i)
			out[i] += 1.5 * math.Sin(meshStep*t) * (1 + 0.5*math.Sin(modStep*t))
		}

	default:
		return nil, fmt.Errorf("unknown gearbox scenario: %q", scenario)
	}

	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] += noiseAmp * rng.NormFloat64()
	}

	return out, nil
}

func addSine(buf []float64, freqHz, amplitude, sampleRate float64) {
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range buf {
		buf[i] += amplitude * math.Sin(step*float64(i))
	}
}
