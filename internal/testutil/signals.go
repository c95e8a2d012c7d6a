// Package testutil provides deterministic inputs and tolerance helpers
// for spectral tests.
package testutil

import "math/rand"

// UniformDraws returns n uniform draws in [0,1) from a fixed seed, so
// Monte Carlo tests are reproducible.
func UniformDraws(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// Ramp returns a linearly increasing signal from lo to hi over n bins.
func Ramp(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// SpikySignal is a fixed multi-peak spectrum used across sampling tests.
func SpikySignal() []float64 {
	return []float64{
		0.1, 0.4, 0.9, 1.5, 0.9, 2.0, 1.0, 0.4, 0.6, 0.9,
		0.4, 1.4, 1.9, 2.0, 5.0, 9.0, 6.0, 3.0, 1.0, 0.4,
	}
}
