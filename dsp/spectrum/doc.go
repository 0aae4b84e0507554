// Package spectrum reduces complex spectra to real per-bin energy sequences.
//
// The package does not implement the FFT. It consumes complex64 bins produced
// by [github.com/cwbudde/algo-interval/dsp/transform] (or any other forward
// transform of a real signal) and keeps only the positive-frequency half,
// since the upper half of a real-input spectrum mirrors the lower one.
//
// Squared magnitude is the default energy metric. Magnitude is available as an
// alternative; both produce the same ordering of bins because sqrt is monotonic.
package spectrum
