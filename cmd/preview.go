package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/weekplan/ganttgen/internal/config"
	"github.com/weekplan/ganttgen/internal/logging"
	"github.com/weekplan/ganttgen/internal/ui"
)

// previewCommand launches the terminal preview.
func previewCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ganttgen preview", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 1 {
		cfg.PlanFile = remaining[0]
	}

	logger := logging.FromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)
	pl, planPath, err := loadPlan(cfg, logger)
	if err != nil {
		return err
	}

	return ui.RunPreview(ctx, pl, planPath)
}
