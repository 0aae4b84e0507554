package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-interval/detect/interval"
	"github.com/cwbudde/algo-interval/dsp/core"
	"github.com/cwbudde/algo-interval/dsp/peaks"
	"github.com/cwbudde/algo-interval/dsp/spectrum"
)

// PeakReport describes one ranked peak.
type PeakReport struct {
	Rank        int     `json:"rank" yaml:"rank"`
	Bin         int     `json:"bin" yaml:"bin"`
	FrequencyHz float64 `json:"frequency_hz" yaml:"frequency_hz"`
	Height      float32 `json:"height" yaml:"height"`
	HeightDB    float64 `json:"height_db" yaml:"height_db"`
}

// Report is the result of analyzing one frame.
type Report struct {
	Source     string       `json:"source" yaml:"source"`
	SampleRate float64      `json:"sample_rate" yaml:"sample_rate"`
	FrameSize  int          `json:"frame_size" yaml:"frame_size"`
	Limit      string       `json:"limit" yaml:"limit"`
	Metric     string       `json:"metric" yaml:"metric"`
	MaxBin     int          `json:"max_bin" yaml:"max_bin"`
	Peaks      []PeakReport `json:"peaks" yaml:"peaks"`
	Pairs      []float32    `json:"pairs" yaml:"pairs"`
}

func newReport(source string, sampleRate float64, cfg Config, res peaks.Result) Report {
	rep := Report{
		Source:     source,
		SampleRate: sampleRate,
		FrameSize:  cfg.FrameSize,
		Limit:      cfg.Limit,
		Metric:     cfg.Metric,
		MaxBin:     res.MaxBin,
		Peaks:      make([]PeakReport, res.Len()),
		Pairs:      res.Pairs(),
	}

	for k, bin := range res.Bins {
		h := res.Heights[k]
		db := core.LinearPowerToDB(float64(h))
		if cfg.Metric == spectrum.MetricMagnitude.String() {
			db = core.LinearToDB(float64(h))
		}
		rep.Peaks[k] = PeakReport{
			Rank:        k + 1,
			Bin:         bin,
			FrequencyHz: interval.BinFrequency(float64(bin), sampleRate, cfg.FrameSize),
			Height:      h,
			HeightDB:    db,
		}
	}
	return rep
}

func writeReport(w io.Writer, format string, rep Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(w, rep)
	}
}

func writeTable(w io.Writer, rep Report) error {
	if _, err := fmt.Fprintf(w, "%s: %d samples @ %.0f Hz, limit=%s metric=%s\n",
		rep.Source, rep.FrameSize, rep.SampleRate, rep.Limit, rep.Metric); err != nil {
		return err
	}
	if len(rep.Peaks) == 0 {
		_, err := fmt.Fprintln(w, "no peaks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Rank\tBin\tFrequency [Hz]\tHeight\tHeight [dB]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t---\t--------------\t------\t-----------\n"); err != nil {
		return err
	}
	for _, p := range rep.Peaks {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.6g\t%.2f\n",
			p.Rank, p.Bin, p.FrequencyHz, p.Height, p.HeightDB); err != nil {
			return err
		}
	}
	return tw.Flush()
}
