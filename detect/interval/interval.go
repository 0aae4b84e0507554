package interval

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-interval/dsp/peaks"
	"github.com/cwbudde/algo-interval/dsp/spectrum"
	"github.com/cwbudde/algo-interval/dsp/transform"
)

// Errors returned (wrapped) by FindPeaks and FindIntervalPeaks.
var (
	ErrInvalidLength    = transform.ErrInvalidLength
	ErrInvalidParameter = peaks.ErrInvalidParameter
)

// FindPeaks transforms samples, extracts per-bin energy and returns the
// retained peaks ranked by descending height.
//
// A peak is retained when its height is above minHeight, no taller peak lies
// within minDistance bins, and its bin is below the configured limit. Finding
// no peak is not an error. Result.MaxBin is the strongest bin below N/2
// regardless of thresholds and limit.
func FindPeaks(samples []float32, minHeight float32, minDistance uint, opts ...Option) (peaks.Result, error) {
	cfg := applyOptions(opts)

	spec, err := transform.Forward(samples)
	if err != nil {
		return peaks.Result{}, fmt.Errorf("interval: %w", err)
	}

	searchBins, keepBelow := cfg.limit.bounds(len(samples))
	energy, err := spectrum.EnergyBins(spec, searchBins, cfg.metric)
	if err != nil {
		return peaks.Result{}, fmt.Errorf("interval: %w", err)
	}

	res, err := peaks.Detect(energy, minHeight, distanceBins(minDistance), keepBelow)
	if err != nil {
		return peaks.Result{}, fmt.Errorf("interval: %w", err)
	}

	// The informational max bin always covers bins 0 .. N/2 exclusive, even
	// when the Nyquist bin was searched.
	res.MaxBin, _ = spectrum.ArgMax(energy[:len(samples)/2])

	return res.Top(cfg.maxPeaks), nil
}

// FindIntervalPeaks is FindPeaks with the paired output encoding: the result
// has length 2*K and positions 2k and 2k+1 both hold the k-th ranked bin.
// It returns an empty slice when no peak is retained.
func FindIntervalPeaks(samples []float32, minHeight float32, minDistance uint, opts ...Option) ([]float32, error) {
	res, err := FindPeaks(samples, minHeight, minDistance, opts...)
	if err != nil {
		return nil, err
	}
	return res.Pairs(), nil
}

// BinFrequency converts a bin index of an fftSize-point transform to Hz.
func BinFrequency(bin, sampleRate float64, fftSize int) float64 {
	if fftSize <= 0 {
		return 0
	}
	return bin * sampleRate / float64(fftSize)
}

func distanceBins(d uint) int {
	if d > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(d)
}
