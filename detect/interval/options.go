package interval

import (
	"fmt"

	"github.com/cwbudde/algo-interval/dsp/spectrum"
)

// Limit selects which bins are searched and which are kept.
type Limit int

const (
	// LimitQuarter searches N/2 bins and keeps bins < N/4.
	LimitQuarter Limit = iota
	// LimitNyquist searches N/2+1 bins and keeps bins < N/2.
	LimitNyquist
)

// String returns the limit name.
func (l Limit) String() string {
	switch l {
	case LimitQuarter:
		return "quarter"
	case LimitNyquist:
		return "nyquist"
	default:
		return fmt.Sprintf("Limit(%d)", int(l))
	}
}

// ParseLimit converts "quarter" or "nyquist" to a Limit.
func ParseLimit(s string) (Limit, error) {
	switch s {
	case "quarter", "":
		return LimitQuarter, nil
	case "nyquist":
		return LimitNyquist, nil
	default:
		return 0, fmt.Errorf("interval: unknown limit %q", s)
	}
}

// bounds returns the number of energy bins to search and the exclusive upper
// bin for retained peaks, for a transform of size n.
func (l Limit) bounds(n int) (searchBins, keepBelow int) {
	if l == LimitNyquist {
		return n/2 + 1, n / 2
	}
	return n / 2, n / 4
}

type config struct {
	limit    Limit
	metric   spectrum.Metric
	maxPeaks int
}

// Option configures peak finding.
type Option func(*config)

func defaultConfig() config {
	return config{
		limit:  LimitQuarter,
		metric: spectrum.MetricPower,
	}
}

// WithLimit sets the bin limit policy. Unknown policies are ignored.
func WithLimit(l Limit) Option {
	return func(cfg *config) {
		if l == LimitQuarter || l == LimitNyquist {
			cfg.limit = l
		}
	}
}

// WithMetric ranks bins by the given energy metric. minHeight is compared
// against values of the same metric. Unknown metrics are ignored.
func WithMetric(m spectrum.Metric) Option {
	return func(cfg *config) {
		if m == spectrum.MetricPower || m == spectrum.MetricMagnitude {
			cfg.metric = m
		}
	}
}

// WithMagnitude ranks bins by |X[k]| instead of |X[k]|^2.
func WithMagnitude() Option {
	return WithMetric(spectrum.MetricMagnitude)
}

// WithMaxPeaks caps the number of returned peaks after ranking. n <= 0 means
// no cap.
func WithMaxPeaks(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.maxPeaks = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
