package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mjibson/go-dsp/wav"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-interval/detect/interval"
	"github.com/cwbudde/algo-interval/dsp/core"
)

const wavFormatPCM = 1

func newAnalyzeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file.wav>",
		Short: "Find peaks in one frame of a mono WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyze(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().Int("frame-size", 512, "frame length in samples (power of two)")
	cmd.Flags().Int("offset", 0, "first sample of the frame")
	return cmd
}

func (a *app) analyze(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	frame, sampleRate, err := readFrame(f, a.cfg.FrameSize, a.cfg.Offset)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("read frame",
		zap.String("file", path),
		zap.Float64("sample_rate", sampleRate),
		zap.Int("offset", a.cfg.Offset),
		zap.Int("frame_size", len(frame)))

	res, err := interval.FindPeaks(frame, float32(a.cfg.MinHeight), a.cfg.MinDistance, a.cfg.options()...)
	if err != nil {
		return err
	}
	a.log.Info("peaks found", zap.String("file", path), zap.Int("count", res.Len()), zap.Int("max_bin", res.MaxBin))

	return writeReport(w, a.cfg.Output, newReport(path, sampleRate, a.cfg, res))
}

// readFrame reads size samples starting at offset from a mono WAV stream.
// PCM samples are rescaled to [-1, 1]. Non-finite float samples are rejected.
func readFrame(r io.Reader, size, offset int) ([]float32, float64, error) {
	wr, err := wav.New(r)
	if err != nil {
		return nil, 0, err
	}
	if wr.NumChannels != 1 {
		return nil, 0, fmt.Errorf("only mono input is supported, got %d channels", wr.NumChannels)
	}
	if offset+size > wr.Samples {
		return nil, 0, fmt.Errorf("frame [%d, %d) exceeds %d available samples", offset, offset+size, wr.Samples)
	}

	if offset > 0 {
		if _, err := wr.ReadSamples(offset); err != nil {
			return nil, 0, fmt.Errorf("skip %d samples: %w", offset, err)
		}
	}

	frame, err := wr.ReadFloats(size)
	if err != nil {
		return nil, 0, fmt.Errorf("read %d samples: %w", size, err)
	}
	if wr.AudioFormat == wavFormatPCM {
		for i, v := range frame {
			frame[i] = 2*v - 1
		}
	}
	for i, v := range frame {
		if !core.IsFinite32(v) {
			return nil, 0, fmt.Errorf("non-finite sample %v at %d", v, offset+i)
		}
	}
	return frame, float64(wr.SampleRate), nil
}
