// Package interval finds ranked spectral peaks in a block of audio samples as
// input for musical-interval detection.
//
// The pipeline is samples -> spectrum -> energy -> ranked peaks:
//
//	res, err := interval.FindPeaks(samples, 0.01, 1)
//	// res.Bins[k], res.Heights[k] is the k-th tallest peak
//
// [FindIntervalPeaks] returns the same ranking in the paired float32 wire
// format used by browser callers, where each bin index appears twice.
//
// # Bin limit
//
// By default ([LimitQuarter]) peaks are searched in the N/2 positive-frequency
// energy bins and only bins below N/4 are kept. [LimitNyquist] instead
// searches bins 0..N/2 (Nyquist included, so bin N/2-1 can be a peak) and keeps
// every bin below N/2.
//
// Samples must be finite and len(samples) must be a power of two >= 2. Calls
// share no state and may run concurrently on distinct buffers.
package interval
