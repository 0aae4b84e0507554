package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-interval/detect/interval"
	"github.com/cwbudde/algo-interval/dsp/spectrum"
	"github.com/cwbudde/algo-interval/dsp/transform"
)

const (
	appName   = "intervalpeaks"
	envPrefix = "INTERVALPEAKS"
)

// Config holds the resolved settings of one CLI invocation.
type Config struct {
	MinHeight   float64 `mapstructure:"min_height"`
	MinDistance uint    `mapstructure:"min_distance"`
	Limit       string  `mapstructure:"limit"`
	Metric      string  `mapstructure:"metric"`
	MaxPeaks    int     `mapstructure:"max_peaks"`
	FrameSize   int     `mapstructure:"frame_size"`
	Offset      int     `mapstructure:"offset"`
	Output      string  `mapstructure:"output"`
	LogLevel    string  `mapstructure:"log_level"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"min-height":   "min_height",
	"min-distance": "min_distance",
	"limit":        "limit",
	"metric":       "metric",
	"max-peaks":    "max_peaks",
	"frame-size":   "frame_size",
	"size":         "frame_size",
	"offset":       "offset",
	"output":       "output",
	"log-level":    "log_level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("min_height", 0.01)
	v.SetDefault("min_distance", 1)
	v.SetDefault("limit", interval.LimitQuarter.String())
	v.SetDefault("metric", spectrum.MetricPower.String())
	v.SetDefault("max_peaks", 0)
	v.SetDefault("frame_size", 512)
	v.SetDefault("offset", 0)
	v.SetDefault("output", "table")
	v.SetDefault("log_level", "info")
}

// newViper returns a viper instance with defaults and environment lookup set up.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlags binds every known flag in fs to its configuration key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// readConfigFile loads path, or searches the default locations when path is
// empty. A missing file in the default locations is not an error.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", appName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// loadConfig unmarshals and validates the merged configuration.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.MinHeight < 0 {
		return fmt.Errorf("min_height must be >= 0: %v", c.MinHeight)
	}
	if c.MaxPeaks < 0 {
		return fmt.Errorf("max_peaks must be >= 0: %d", c.MaxPeaks)
	}
	if c.Offset < 0 {
		return fmt.Errorf("offset must be >= 0: %d", c.Offset)
	}
	if err := transform.Validate(c.FrameSize); err != nil {
		return fmt.Errorf("frame_size: %w", err)
	}
	if _, err := interval.ParseLimit(c.Limit); err != nil {
		return err
	}
	if _, err := spectrum.ParseMetric(c.Metric); err != nil {
		return err
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (table, json, yaml)", c.Output)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// options converts the configuration to peak-finding options.
func (c Config) options() []interval.Option {
	limit, _ := interval.ParseLimit(c.Limit)
	metric, _ := spectrum.ParseMetric(c.Metric)
	return []interval.Option{
		interval.WithLimit(limit),
		interval.WithMetric(metric),
		interval.WithMaxPeaks(c.MaxPeaks),
	}
}
