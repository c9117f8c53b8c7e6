// Package config handles autofoam configuration loading and management.
package config

import "github.com/Faultbox/autofoam/pkg/rosinrammler"

// Config holds all tool settings.
type Config struct {
	Histogram   HistogramConfig   `yaml:"histogram"`
	Calibration CalibrationConfig `yaml:"calibration"`
	DropletPDF  DropletPDFConfig  `yaml:"droplet_pdf"`
	Deviation   DeviationConfig   `yaml:"deviation"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// HistogramConfig holds settings for the area-threshold histogram.
type HistogramConfig struct {
	BinWidth float64 `yaml:"bin_width"`
}

// CalibrationConfig holds the Rosin-Rammler bisection settings.
type CalibrationConfig struct {
	ShapeMin      float64 `yaml:"shape_min"`
	ShapeMax      float64 `yaml:"shape_max"`
	InitialShape  float64 `yaml:"initial_shape"`
	Tolerance     float64 `yaml:"tolerance"`      // relative SMD error
	MaxIterations int     `yaml:"max_iterations"` // best-effort result after this many
	Probability   float64 `yaml:"probability"`    // cumulative fraction of the percentile diameter
}

// DropletPDFConfig holds settings for the sampled droplet distribution table.
type DropletPDFConfig struct {
	Samples     int     `yaml:"samples"`
	RangeFactor float64 `yaml:"range_factor"` // table spans RangeFactor * Dv90
	Offset      float64 `yaml:"offset"`
	UnitScale   float64 `yaml:"unit_scale"` // input diameter unit in metres
}

// DeviationConfig holds settings for the deviation field.
type DeviationConfig struct {
	Epsilon float64 `yaml:"epsilon"`
	Suffix  string  `yaml:"suffix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := rosinrammler.DefaultOptions()
	return &Config{
		Histogram: HistogramConfig{
			BinWidth: 0.1,
		},
		Calibration: CalibrationConfig{
			ShapeMin:      opts.ShapeMin,
			ShapeMax:      opts.ShapeMax,
			InitialShape:  opts.InitialShape,
			Tolerance:     opts.Tolerance,
			MaxIterations: opts.MaxIterations,
			Probability:   opts.Probability,
		},
		DropletPDF: DropletPDFConfig{
			Samples:     100,
			RangeFactor: 1.5,
			Offset:      1e-9,
			UnitScale:   1e-6,
		},
		Deviation: DeviationConfig{
			Epsilon: 1e-15,
			Suffix:  "_deviation",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Options converts the calibration settings to bisection options.
func (c CalibrationConfig) Options() rosinrammler.Options {
	return rosinrammler.Options{
		ShapeMin:      c.ShapeMin,
		ShapeMax:      c.ShapeMax,
		InitialShape:  c.InitialShape,
		Tolerance:     c.Tolerance,
		MaxIterations: c.MaxIterations,
		Probability:   c.Probability,
	}
}
