package dtmf

import "math"

// Hamming returns the n-point symmetric Hamming window
// w(i) = 0.54 − 0.46·cos(2πi/(n−1)).
func Hamming(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{1}
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}
