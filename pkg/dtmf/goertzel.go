package dtmf

import "math"

// GoertzelPower returns the squared magnitude of the DFT bin nearest to target
// over frame. The bin index is k = round(N·target/sampleRate).
//
// The result is non-negative in exact arithmetic; rounding can leave a tiny
// negative value when the bin holds no energy.
func GoertzelPower(frame []float64, target float64, sampleRate int) float64 {
	n := len(frame)
	if n == 0 || sampleRate <= 0 {
		return 0
	}

	k := int(0.5 + float64(n)*target/float64(sampleRate))
	omega := 2 * math.Pi * float64(k) / float64(n)
	coeff := 2 * math.Cos(omega)

	var q1, q2 float64
	for _, s := range frame {
		q0 := coeff*q1 - q2 + s
		q2 = q1
		q1 = q0
	}

	return q1*q1 + q2*q2 - q1*q2*coeff
}

// bandPowers fills dst with the Goertzel power of frame at each frequency and
// returns the index and value of the first maximum.
func bandPowers(dst []float64, frame []float64, freqs []float64, sampleRate int) (int, float64) {
	for i, f := range freqs {
		dst[i] = GoertzelPower(frame, f, sampleRate)
	}
	return argmax(dst[:len(freqs)])
}

// argmax returns the index and value of the first maximum of values, which
// must not be empty.
func argmax(values []float64) (int, float64) {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best, values[best]
}
