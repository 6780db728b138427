package pass

import "github.com/cwbudde/algo-vibration/dsp/filter/biquad"

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, ErrInvalidParams
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		c, ok := lowpassRBJ(freq, q, sampleRate)
		if !ok {
			return nil, ErrInvalidParams
		}
		sections = append(sections, c)
	}
	if order%2 != 0 {
		c, ok := butterworthFirstOrderLP(freq, sampleRate)
		if !ok {
			return nil, ErrInvalidParams
		}
		sections = append(sections, c)
	}
	return sections, nil
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, ErrInvalidParams
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		c, ok := highpassRBJ(freq, q, sampleRate)
		if !ok {
			return nil, ErrInvalidParams
		}
		sections = append(sections, c)
	}
	if order%2 != 0 {
		c, ok := butterworthFirstOrderHP(freq, sampleRate)
		if !ok {
			return nil, ErrInvalidParams
		}
		sections = append(sections, c)
	}
	return sections, nil
}

// ButterworthBP designs a band-pass cascade as a highpass at lowFreq followed
// by a lowpass at highFreq, each of the given order.
func ButterworthBP(lowFreq, highFreq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if lowFreq >= highFreq {
		return nil, ErrInvalidParams
	}

	hp, err := ButterworthHP(lowFreq, order, sampleRate)
	if err != nil {
		return nil, err
	}
	lp, err := ButterworthLP(highFreq, order, sampleRate)
	if err != nil {
		return nil, err
	}

	return append(hp, lp...), nil
}
