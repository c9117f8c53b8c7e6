package config

import "github.com/spf13/pflag"

var (
	flags = pflag.NewFlagSet("autofoam", pflag.ContinueOnError)

	flagConfig   = flags.String("config", "", "Path to config file")
	flagDebug    = flags.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flags.String("log-file", "", "Write logs to this file as well")
	flagBinWidth = flags.Float64("bin-width", 0, "Scalar histogram bin width")
)

// Flags returns the global flag set. The CLI adds it to its persistent
// flags so that every subcommand accepts the overrides.
func Flags() *pflag.FlagSet {
	return flags
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagBinWidth > 0 {
		cfg.Histogram.BinWidth = *flagBinWidth
	}
}
