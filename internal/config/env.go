package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("GANTTGEN_PLAN"); v != "" {
		cfg.PlanFile = v
	}
	if v, ok := os.LookupEnv("GANTTGEN_PNG"); ok {
		cfg.PNGOut = v
	}
	if v, ok := os.LookupEnv("GANTTGEN_SVG"); ok {
		cfg.SVGOut = v
	}
	if v := os.Getenv("GANTTGEN_WIDTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.WidthIn = f
		}
	}
	if v := os.Getenv("GANTTGEN_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HeightIn = f
		}
	}
	if v := os.Getenv("GANTTGEN_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("GANTTGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GANTTGEN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("GANTTGEN_LOG_TIMESTAMPS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogTimestamps = b
		}
	}
}
