package dtmf

import "math"

// Frame is one block of real-valued samples in [-1, 1].
type Frame []float64

// GenerateTone returns sampleCount samples of 0.5·(sin(2π·low·t) + sin(2π·high·t)).
func GenerateTone(low, high float64, sampleCount, sampleRate int) Frame {
	f := make(Frame, sampleCount)
	fs := float64(sampleRate)
	for n := range f {
		t := float64(n) / fs
		f[n] = 0.5 * (math.Sin(2*math.Pi*low*t) + math.Sin(2*math.Pi*high*t))
	}
	return f
}

// Silence returns sampleCount zero samples.
func Silence(sampleCount int) Frame {
	return make(Frame, sampleCount)
}
