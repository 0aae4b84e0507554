// Package signal generates deterministic test and demo signals.
package signal

import "math"

// Tone is a sinusoid aligned to an FFT bin.
type Tone struct {
	Bin       float64
	Amplitude float64
	Phase     float64
}

// BinSine generates n samples of amplitude*sin(2*pi*bin*i/n + phase).
// An integer bin places all energy of the tone in that bin and its mirror.
func BinSine(n int, bin, amplitude, phase float64) []float32 {
	return Mix(n, Tone{Bin: bin, Amplitude: amplitude, Phase: phase})
}

// Mix sums bin-aligned sinusoids into an n-sample buffer. Tones are summed in
// argument order.
func Mix(n int, tones ...Tone) []float32 {
	if n <= 0 {
		return []float32{}
	}
	out := make([]float32, n)
	for i := range out {
		var v float64
		for _, tn := range tones {
			v += tn.Amplitude * math.Sin(2*math.Pi*tn.Bin*float64(i)/float64(n)+tn.Phase)
		}
		out[i] = float32(v)
	}
	return out
}
