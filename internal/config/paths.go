package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath expands a ~/ prefix and environment variables in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return home
	}
	if strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}

// findUserConfigFile locates the per-user config file, or "" if none exists.
func findUserConfigFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "ganttgen", "ganttgen.toml")
		if fileExists(path) {
			return path
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".ganttgen.toml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findProjectConfigFile locates the project config file in workDir, or "".
func findProjectConfigFile(workDir string) string {
	if workDir == "" {
		workDir = "."
	}
	for _, name := range []string{"ganttgen.toml", ".ganttgen.toml"} {
		path := filepath.Join(workDir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
