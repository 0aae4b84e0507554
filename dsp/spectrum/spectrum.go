package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-interval/dsp/core"
)

// Metric selects how a complex bin is reduced to a real energy value.
type Metric int

const (
	// MetricPower is |X[k]|^2.
	MetricPower Metric = iota
	// MetricMagnitude is |X[k]|.
	MetricMagnitude
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricPower:
		return "power"
	case MetricMagnitude:
		return "magnitude"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric converts "power" or "magnitude" to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "power", "":
		return MetricPower, nil
	case "magnitude":
		return MetricMagnitude, nil
	default:
		return 0, fmt.Errorf("spectrum: unknown metric %q", s)
	}
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im, out []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 3*n)
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : 3*n], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Energy returns |X[k]|^2 for the positive-frequency bins 0 .. len(spec)/2
// (exclusive). The result has exactly len(spec)/2 elements.
func Energy(spec []complex64) []float32 {
	out, _ := EnergyBins(spec, len(spec)/2, MetricPower)
	return out
}

// HalfMagnitude returns |X[k]| for bins 0 .. len(spec)/2 (exclusive).
func HalfMagnitude(spec []complex64) []float32 {
	out, _ := EnergyBins(spec, len(spec)/2, MetricMagnitude)
	return out
}

// EnergyBins reduces the first bins entries of spec with metric.
//
// bins may be len(spec)/2+1 to include the Nyquist bin of an even-length
// spectrum. Values are accumulated in float64 through the vecmath kernels and
// rounded once to float32. Scratch buffers are pooled, so in steady state this
// allocates only the output slice.
func EnergyBins(spec []complex64, bins int, metric Metric) ([]float32, error) {
	if bins < 0 || bins > len(spec) {
		return nil, fmt.Errorf("spectrum: bin count %d out of range [0,%d]", bins, len(spec))
	}
	out := make([]float32, bins)
	if bins == 0 {
		return out, nil
	}

	re, im, wide, buf := getScratch(bins)
	defer putScratch(buf)

	for i, c := range spec[:bins] {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}

	switch metric {
	case MetricPower:
		vecmath.Power(wide, re, im)
	case MetricMagnitude:
		vecmath.Magnitude(wide, re, im)
	default:
		return nil, fmt.Errorf("spectrum: unsupported metric %v", metric)
	}

	core.Narrow(out, wide)
	return out, nil
}

// ArgMax returns the first index holding the largest value of x, and that
// value. It returns -1, 0 for an empty slice.
func ArgMax(x []float32) (index int, value float32) {
	if len(x) == 0 {
		return -1, 0
	}

	index = 0
	value = x[0]

	for i, v := range x {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}
