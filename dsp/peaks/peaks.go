package peaks

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-interval/dsp/spectrum"
)

// ErrInvalidParameter is returned for thresholds or distances that cannot be
// evaluated against the input.
var ErrInvalidParameter = errors.New("peaks: invalid parameter")

// Peak is a candidate local maximum.
type Peak struct {
	Bin    int
	Height float32
}

// Result holds ranked peaks as two parallel slices.
//
// Bins[k] and Heights[k] describe the k-th tallest retained peak. MaxBin is
// the index of the largest value in the searched sequence (-1 if it was
// empty); it is informational and independent of the thresholds.
type Result struct {
	Bins    []int
	Heights []float32
	MaxBin  int
}

// Len returns the number of ranked peaks.
func (r Result) Len() int { return len(r.Bins) }

// Top returns r restricted to its first n peaks. n <= 0 returns r unchanged.
func (r Result) Top(n int) Result {
	if n <= 0 || n >= len(r.Bins) {
		return r
	}
	return Result{Bins: r.Bins[:n], Heights: r.Heights[:n], MaxBin: r.MaxBin}
}

// Pairs returns the bins in the paired wire format. See [Encode].
func (r Result) Pairs() []float32 {
	return Encode(r.Bins)
}

// Validate checks detection parameters against a sequence of length n.
// A minDistance of 0 or 1 never constrains and is accepted for any n.
func Validate(n int, minHeight float32, minDistance int) error {
	h := float64(minHeight)
	if math.IsNaN(h) || h < 0 {
		return fmt.Errorf("%w: min height must be a non-negative number: %v", ErrInvalidParameter, minHeight)
	}
	if minDistance < 0 {
		return fmt.Errorf("%w: min distance must be >= 0: %d", ErrInvalidParameter, minDistance)
	}
	if n > 0 && minDistance > 1 && minDistance >= n {
		return fmt.Errorf("%w: min distance %d must be below sequence length %d", ErrInvalidParameter, minDistance, n)
	}
	return nil
}

// Find returns the local maxima of x that are taller than minHeight and at
// least minDistance bins apart, in ascending bin order.
func Find(x []float32, minHeight float32, minDistance int) ([]Peak, error) {
	if err := Validate(len(x), minHeight, minDistance); err != nil {
		return nil, err
	}

	var found []Peak
	for _, bin := range localMaxima(x) {
		if x[bin] > minHeight {
			found = append(found, Peak{Bin: bin, Height: x[bin]})
		}
	}

	if minDistance > 1 && len(found) > 1 {
		found = selectByDistance(found, minDistance)
	}
	return found, nil
}

// localMaxima returns the bins of all local maxima, plateaus reduced to
// their middle sample.
func localMaxima(x []float32) []int {
	var out []int
	last := len(x) - 1

	for i := 1; i < last; i++ {
		if !(x[i-1] < x[i]) {
			continue
		}

		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}

		if x[ahead] < x[i] {
			out = append(out, (i+ahead-1)/2)
			i = ahead
		}
	}
	return out
}

func selectByDistance(found []Peak, minDistance int) []Peak {
	order := make([]int, len(found))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return found[order[a]].Height > found[order[b]].Height
	})

	keep := make([]bool, len(found))
	for i := range keep {
		keep[i] = true
	}

	for _, j := range order {
		if !keep[j] {
			continue
		}
		for k := j - 1; k >= 0 && found[j].Bin-found[k].Bin < minDistance; k-- {
			keep[k] = false
		}
		for k := j + 1; k < len(found) && found[k].Bin-found[j].Bin < minDistance; k++ {
			keep[k] = false
		}
	}

	out := found[:0]
	for i, p := range found {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// Rank keeps peaks with Bin < limit and sorts them by descending height.
// Equal heights keep their input order. The input slice is not modified.
func Rank(found []Peak, limit int) []Peak {
	ranked := make([]Peak, 0, len(found))
	for _, p := range found {
		if p.Bin < limit {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Height > ranked[b].Height
	})
	return ranked
}

// Encode returns bins as float32 pairs: positions 2k and 2k+1 both hold
// bins[k]. The result is never nil.
func Encode(bins []int) []float32 {
	out := make([]float32, 2*len(bins))
	for k, b := range bins {
		out[2*k] = float32(b)
		out[2*k+1] = float32(b)
	}
	return out
}

// Detect finds peaks in x and ranks those below limit.
func Detect(x []float32, minHeight float32, minDistance, limit int) (Result, error) {
	found, err := Find(x, minHeight, minDistance)
	if err != nil {
		return Result{}, err
	}

	ranked := Rank(found, limit)
	res := Result{
		Bins:    make([]int, len(ranked)),
		Heights: make([]float32, len(ranked)),
	}
	for k, p := range ranked {
		res.Bins[k] = p.Bin
		res.Heights[k] = p.Height
	}
	res.MaxBin, _ = spectrum.ArgMax(x)
	return res, nil
}
