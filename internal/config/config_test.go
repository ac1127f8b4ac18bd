package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateHome points user-level config lookups at an empty directory.
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func TestDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PlanFile != "" {
		t.Errorf("PlanFile: got %q, want empty (built-in plan)", cfg.PlanFile)
	}
	if cfg.PNGOut != "gantt_chart.png" {
		t.Errorf("PNGOut: got %q, want gantt_chart.png", cfg.PNGOut)
	}
	if cfg.SVGOut != "gantt_chart.svg" {
		t.Errorf("SVGOut: got %q, want gantt_chart.svg", cfg.SVGOut)
	}
	if cfg.WidthIn != 10 || cfg.HeightIn != 4.5 {
		t.Errorf("canvas size: got %gx%g, want 10x4.5", cfg.WidthIn, cfg.HeightIn)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults: got %s/%s, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestProjectConfigFile(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()

	content := `png_out = "custom.png"
width_in = 12.5
log_level = "debug"
`
	if err := os.WriteFile(filepath.Join(workDir, "ganttgen.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(workDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PNGOut != "custom.png" {
		t.Errorf("PNGOut: got %q, want custom.png", cfg.PNGOut)
	}
	if cfg.WidthIn != 12.5 {
		t.Errorf("WidthIn: got %g, want 12.5", cfg.WidthIn)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	// Untouched keys keep their defaults.
	if cfg.SVGOut != DefaultSVGOut {
		t.Errorf("SVGOut: got %q, want default %q", cfg.SVGOut, DefaultSVGOut)
	}
}

func TestHiddenProjectConfigFile(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(workDir, ".ganttgen.toml"), []byte(`title = "hidden"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(workDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "hidden" {
		t.Errorf("Title: got %q, want hidden", cfg.Title)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(workDir, "ganttgen.toml"), []byte(`png_out = "from_file.png"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GANTTGEN_PNG", "from_env.png")
	t.Setenv("GANTTGEN_HEIGHT", "7.25")
	t.Setenv("GANTTGEN_LOG_TIMESTAMPS", "true")

	cfg, err := Load(workDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PNGOut != "from_env.png" {
		t.Errorf("PNGOut: got %q, want from_env.png", cfg.PNGOut)
	}
	if cfg.HeightIn != 7.25 {
		t.Errorf("HeightIn: got %g, want 7.25", cfg.HeightIn)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
}

func TestEnvDisablesOutput(t *testing.T) {
	isolateHome(t)
	t.Setenv("GANTTGEN_SVG", "")

	cfg, err := Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SVGOut != "" {
		t.Errorf("SVGOut: got %q, want empty (disabled)", cfg.SVGOut)
	}
}

func TestExplicitConfigFile(t *testing.T) {
	isolateHome(t)
	workDir := t.TempDir()

	// Explicit file wins; a project file in the same dir is skipped.
	if err := os.WriteFile(filepath.Join(workDir, "ganttgen.toml"), []byte(`title = "project"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	explicit := filepath.Join(workDir, "other.toml")
	if err := os.WriteFile(explicit, []byte(`title = "explicit"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(workDir, explicit)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "explicit" {
		t.Errorf("Title: got %q, want explicit", cfg.Title)
	}
}

func TestExplicitConfigFileMissing(t *testing.T) {
	isolateHome(t)
	if _, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing explicit config file, got nil")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain.png", "plain.png"},
		{"~", home},
		{"~/out/chart.png", filepath.Join(home, "out", "chart.png")},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}

	t.Setenv("GG_TEST_DIR", "/var/tmp")
	if got := expandPath("$GG_TEST_DIR/x.svg"); got != "/var/tmp/x.svg" {
		t.Errorf("expandPath with env var: got %q", got)
	}
}
