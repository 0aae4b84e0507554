// Package cli implements the intervalpeaks command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state shared by subcommands after configuration is loaded.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        Config
	log        *zap.Logger
}

// NewRootCommand builds the command tree with a fresh configuration instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:   appName,
		Short: "Find ranked spectral peaks for musical interval detection",
		Long: `intervalpeaks transforms a block of mono audio samples into a spectrum,
finds local energy maxima above a height threshold and at least a minimum
number of bins apart, and prints them ranked by descending energy.

Settings are read from flags, INTERVALPEAKS_* environment variables and an
optional YAML file (./intervalpeaks.yaml or ~/.config/intervalpeaks/).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./intervalpeaks.yaml)")
	pf.Float64("min-height", 0.01, "minimum peak energy (exclusive)")
	pf.Uint("min-distance", 1, "minimum bin distance between peaks")
	pf.String("limit", "quarter", "bin limit policy (quarter, nyquist)")
	pf.String("metric", "power", "energy metric (power, magnitude)")
	pf.Int("max-peaks", 0, "maximum number of peaks to report (0 = all)")
	pf.StringP("output", "o", "table", "output format (table, json, yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newAnalyzeCommand(a),
		newSynthCommand(a),
		newGreetCommand(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	if err := readConfigFile(a.v, a.configPath); err != nil {
		return err
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		log.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
