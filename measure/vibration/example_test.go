package vibration_test

import (
	"fmt"
	"log"
	"math"

	"github.com/cwbudde/algo-vibration/measure/vibration"
)

func ExampleAnalyze() {
	// One second of a pure 50 Hz tone sampled at 12 kHz. A single tone puts
	// all spectral energy into one band, which the classifier reads as a
	// slight band imbalance, below the fault threshold.
	sig := make([]float64, 12000)
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * 50 * float64(i) / 12000)
	}

	result, err := vibration.Analyze(sig)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.DamageLevel, result.IsFaulty)
	// Output: slight false
}
