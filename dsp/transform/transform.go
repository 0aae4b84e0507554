package transform

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-interval/dsp/core"
)

// ErrInvalidLength is returned for buffer lengths the transform does not support.
var ErrInvalidLength = errors.New("transform: length must be a power of two >= 2")

// plans holds one *sync.Pool of *algofft.Plan[complex64] per transform size.
// A plan is only ever used by one call at a time.
var plans sync.Map

func planPool(n int) *sync.Pool {
	if p, ok := plans.Load(n); ok {
		return p.(*sync.Pool)
	}
	p, _ := plans.LoadOrStore(n, &sync.Pool{})
	return p.(*sync.Pool)
}

func acquirePlan(n int) (*algofft.Plan[complex64], error) {
	if v := planPool(n).Get(); v != nil {
		return v.(*algofft.Plan[complex64]), nil
	}
	plan, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, fmt.Errorf("transform: create fft plan: %w", err)
	}
	return plan, nil
}

func releasePlan(n int, plan *algofft.Plan[complex64]) {
	planPool(n).Put(plan)
}

// Validate reports whether n is a supported transform length. The error
// names the next supported length.
func Validate(n int) error {
	if n < 2 || !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d (next valid length %d)", ErrInvalidLength, n, max(2, core.NextPowerOfTwo(n)))
	}
	return nil
}

// Forward returns the unnormalized forward spectrum of samples.
// The result has the same length as samples; samples is not modified.
func Forward(samples []float32) ([]complex64, error) {
	if err := Validate(len(samples)); err != nil {
		return nil, err
	}
	out := make([]complex64, len(samples))
	if err := ForwardInto(out, samples); err != nil {
		return nil, err
	}
	return out, nil
}

// ForwardInto writes the forward spectrum of samples into dst.
// dst must have the same length as samples. The transform runs in place in dst.
func ForwardInto(dst []complex64, samples []float32) error {
	n := len(samples)
	if err := Validate(n); err != nil {
		return err
	}
	if len(dst) != n {
		return fmt.Errorf("transform: dst length %d does not match input length %d", len(dst), n)
	}

	for i, x := range samples {
		dst[i] = complex(x, 0)
	}

	plan, err := acquirePlan(n)
	if err != nil {
		return err
	}
	defer releasePlan(n, plan)

	if err := plan.Forward(dst, dst); err != nil {
		return fmt.Errorf("transform: forward fft: %w", err)
	}
	return nil
}
