// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/weekplan/ganttgen/internal/plan"
)

// isolate keeps tests away from any real user or project config.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Chdir(t.TempDir())
}

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"help"}); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})

	t.Run("shows version with --version flag", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"--version"}); err != nil {
			t.Errorf("expected no error with --version, got %v", err)
		}
	})

	t.Run("config command prints example", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"config"}); err != nil {
			t.Errorf("expected no error with config command, got %v", err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		isolate(t)
		err := Run(context.Background(), []string{"does-not-exist"})
		if err == nil {
			t.Fatal("expected error for unknown command, got nil")
		}
		if !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
	})
}

func TestRenderBuiltinPlan(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()
	pngPath := filepath.Join(tmp, "out.png")
	svgPath := filepath.Join(tmp, "out.svg")

	err := Run(context.Background(), []string{"render", "-png", pngPath, "-svg", svgPath})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatalf("missing png output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("png output does not start with the PNG signature")
	}

	svg, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("missing svg output: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("svg output does not contain an <svg element")
	}
}

func TestRenderDefaultOutputs(t *testing.T) {
	isolate(t)

	// Bare render drops gantt_chart.png and gantt_chart.svg in the
	// working directory.
	if err := Run(context.Background(), []string{"render"}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, name := range []string{"gantt_chart.png", "gantt_chart.svg"} {
		fi, err := os.Stat(name)
		if err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
		if fi.Size() == 0 {
			t.Errorf("output %s is empty", name)
		}
	}
}

func TestRenderNoOutputs(t *testing.T) {
	isolate(t)
	err := Run(context.Background(), []string{"render", "-png", "", "-svg", ""})
	if err == nil {
		t.Fatal("expected error when both outputs are disabled, got nil")
	}
	if !strings.Contains(err.Error(), "no outputs") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRenderPlanFileArgument(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()

	planPath := filepath.Join(tmp, "plan.json")
	if err := plan.Default().Save(planPath); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	pngPath := filepath.Join(tmp, "out.png")

	err := Run(context.Background(), []string{"render", "-png", pngPath, "-svg", "", planPath})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("missing png output: %v", err)
	}
}

func TestPlanFileAsFirstArgument(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()

	planPath := filepath.Join(tmp, "plan.json")
	if err := plan.Default().Save(planPath); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	pngPath := filepath.Join(tmp, "out.png")

	// A first argument naming an existing file means render that plan.
	err := Run(context.Background(), []string{planPath, "-png", pngPath, "-svg", ""})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("missing png output: %v", err)
	}
}

func TestRenderInvalidPlan(t *testing.T) {
	isolate(t)
	tmp := t.TempDir()

	planPath := filepath.Join(tmp, "plan.json")
	broken := plan.Default()
	broken.Tasks[0].Category = "Mystery"
	if err := broken.Save(planPath); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	err := Run(context.Background(), []string{"render", planPath})
	if err == nil {
		t.Fatal("expected error for invalid plan, got nil")
	}
	if !strings.Contains(err.Error(), "category") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		isolate(t)
		planPath := filepath.Join(t.TempDir(), "plan.json")
		if err := plan.Default().Save(planPath); err != nil {
			t.Fatalf("save plan: %v", err)
		}
		if err := Run(context.Background(), []string{"validate", planPath}); err != nil {
			t.Errorf("validate failed: %v", err)
		}
	})

	t.Run("invalid plan", func(t *testing.T) {
		isolate(t)
		planPath := filepath.Join(t.TempDir(), "plan.json")
		broken := plan.Default()
		broken.Milestones[0].Task = "Ghost"
		if err := broken.Save(planPath); err != nil {
			t.Fatalf("save plan: %v", err)
		}
		err := Run(context.Background(), []string{"validate", planPath})
		if err == nil {
			t.Fatal("expected error for invalid plan, got nil")
		}
		if !strings.Contains(err.Error(), "invalid plan") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("no plan file", func(t *testing.T) {
		isolate(t)
		if err := Run(context.Background(), []string{"validate"}); err == nil {
			t.Error("expected error when validate has no plan file, got nil")
		}
	})
}

func TestRenderCancelledContext(t *testing.T) {
	isolate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pngPath := filepath.Join(t.TempDir(), "out.png")
	err := Run(ctx, []string{"render", "-png", pngPath, "-svg", ""})
	if err == nil {
		t.Error("expected error from cancelled context, got nil")
	}
}
