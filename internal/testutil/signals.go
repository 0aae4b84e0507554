package testutil

import "math/rand"

// DeterministicNoise32 generates white noise with a fixed seed for reproducibility.
func DeterministicNoise32(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}
