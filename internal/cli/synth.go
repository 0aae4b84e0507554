package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-interval/detect/interval"
	"github.com/cwbudde/algo-interval/dsp/signal"
)

// parseTone reads a bin-aligned tone given as bin:amp[:phase].
func parseTone(s string) (signal.Tone, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return signal.Tone{}, fmt.Errorf("invalid tone %q: want bin:amp[:phase]", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return signal.Tone{}, fmt.Errorf("invalid tone %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[0] < 0 {
		return signal.Tone{}, fmt.Errorf("invalid tone %q: negative bin", s)
	}
	return signal.Tone{Bin: vals[0], Amplitude: vals[1], Phase: vals[2]}, nil
}

func newSynthCommand(a *app) *cobra.Command {
	var (
		specs      []string
		sampleRate float64
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Find peaks in a synthetic mix of bin-aligned tones",
		Example: `  intervalpeaks synth --size 8 --tone 2:1 --limit nyquist
  intervalpeaks synth --size 1024 --tone 10:1 --tone 15:0.5 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tones := make([]signal.Tone, 0, len(specs))
			for _, s := range specs {
				t, err := parseTone(s)
				if err != nil {
					return err
				}
				tones = append(tones, t)
			}
			return a.synth(cmd.OutOrStdout(), tones, sampleRate)
		},
	}
	cmd.Flags().Int("size", 512, "frame length in samples (power of two)")
	cmd.Flags().StringArrayVar(&specs, "tone", nil, "tone as bin:amp[:phase] (repeatable)")
	cmd.Flags().Float64Var(&sampleRate, "sample-rate", 44100, "sample rate used for frequency labels")
	return cmd
}

func (a *app) synth(w io.Writer, tones []signal.Tone, sampleRate float64) error {
	frame := signal.Mix(a.cfg.FrameSize, tones...)
	a.log.Debug("synthesized frame", zap.Int("size", len(frame)), zap.Int("tones", len(tones)))

	res, err := interval.FindPeaks(frame, float32(a.cfg.MinHeight), a.cfg.MinDistance, a.cfg.options()...)
	if err != nil {
		return err
	}
	return writeReport(w, a.cfg.Output, newReport("synth", sampleRate, a.cfg, res))
}
