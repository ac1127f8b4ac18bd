package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.config/ganttgen/ganttgen.toml or ~/.ganttgen.toml)
// 3. Project config file (ganttgen.toml or .ganttgen.toml in workDir)
// 4. Environment variables (GANTTGEN_*)
//
// CLI flags override on top of this in the command layer. If explicitFile is
// non-empty it replaces both config file lookups and must exist.
func Load(workDir, explicitFile string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if explicitFile != "" {
		if err := loadConfigFile(cfg, explicitFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicitFile, err)
		}
	} else {
		if userFile := findUserConfigFile(); userFile != "" {
			if err := loadConfigFile(cfg, userFile); err != nil {
				return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
			}
		}
		if projFile := findProjectConfigFile(workDir); projFile != "" {
			if err := loadConfigFile(cfg, projFile); err != nil {
				return nil, fmt.Errorf("loading project config file %s: %w", projFile, err)
			}
		}
	}

	loadFromEnv(cfg)

	if err := finalizeConfig(cfg, workDir); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// finalizeConfig computes derived values and expands paths.
func finalizeConfig(cfg *Config, workDir string) error {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}
	cfg.WorkDir = workDir

	cfg.PlanFile = expandPath(cfg.PlanFile)
	cfg.PNGOut = expandPath(cfg.PNGOut)
	cfg.SVGOut = expandPath(cfg.SVGOut)

	if cfg.WidthIn < 0 || cfg.HeightIn < 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", cfg.WidthIn, cfg.HeightIn)
	}

	return nil
}
