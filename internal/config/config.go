// Package config handles configuration loading and defaults.
package config

import "github.com/weekplan/ganttgen/internal/chart"

// Default values.
const (
	DefaultPNGOut    = "gantt_chart.png"
	DefaultSVGOut    = "gantt_chart.svg"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for ganttgen. The zero-config defaults
// reproduce the fixed behavior: built-in plan, gantt_chart.png and
// gantt_chart.svg in the working directory.
type Config struct {
	// Plan file to render. Empty means the built-in six-week plan.
	PlanFile string `toml:"plan_file"`

	// Output paths. Empty disables that format.
	PNGOut string `toml:"png_out"`
	SVGOut string `toml:"svg_out"`

	// Chart geometry in inches and title override.
	WidthIn  float64 `toml:"width_in"`
	HeightIn float64 `toml:"height_in"`
	Title    string  `toml:"title"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// setDefaults fills cfg with default values.
func setDefaults(cfg *Config) {
	cfg.PNGOut = DefaultPNGOut
	cfg.SVGOut = DefaultSVGOut
	cfg.WidthIn = chart.DefaultWidthIn
	cfg.HeightIn = chart.DefaultHeightIn
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# ganttgen configuration file
# Values can be overridden by environment variables or CLI flags

# Plan file to render (.json, .toml, .yaml). Empty uses the built-in plan.
plan_file = ""

# Output paths. Set to "" to disable a format.
png_out = "gantt_chart.png"
svg_out = "gantt_chart.svg"

# Canvas size in inches
width_in = 10.0
height_in = 4.5

# Chart title override (defaults to the plan title)
# title = "6-Week MVP Development Plan"

# Logging: debug, info, warn, error, fatal
log_level = "info"

# Log format: text, logfmt, json
log_format = "text"

# Include timestamps in log output
log_timestamps = false
`
}
