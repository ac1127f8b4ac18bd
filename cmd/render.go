package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/weekplan/ganttgen/internal/chart"
	"github.com/weekplan/ganttgen/internal/config"
	"github.com/weekplan/ganttgen/internal/logging"
	"github.com/weekplan/ganttgen/internal/plan"
)

// renderCommand renders the plan to the configured output files.
func renderCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ganttgen render", flag.ContinueOnError)
	pngOut := fs.String("png", cfg.PNGOut, "PNG output path (empty disables)")
	svgOut := fs.String("svg", cfg.SVGOut, "SVG output path (empty disables)")
	width := fs.Float64("width", cfg.WidthIn, "Canvas width in inches")
	height := fs.Float64("height", cfg.HeightIn, "Canvas height in inches")
	title := fs.String("title", cfg.Title, "Chart title override")

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

	cfg.PNGOut = *pngOut
	cfg.SVGOut = *svgOut
	cfg.WidthIn = *width
	cfg.HeightIn = *height
	cfg.Title = *title

	if cfg.PNGOut == "" && cfg.SVGOut == "" {
		return fmt.Errorf("no outputs enabled (both -png and -svg are empty)")
	}

	logger := logging.FromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)

	pl, _, err := loadPlan(cfg, logger)
	if err != nil {
		return err
	}

	ch, err := chart.New(pl, chart.Options{
		Title:    cfg.Title,
		WidthIn:  cfg.WidthIn,
		HeightIn: cfg.HeightIn,
	})
	if err != nil {
		return fmt.Errorf("building chart: %w", err)
	}
	logger.Debug("chart assembled",
		"bars", ch.BarCount(),
		"arrows", ch.ArrowCount(),
		"milestones", ch.MarkerCount())

	for _, out := range []string{cfg.PNGOut, cfg.SVGOut} {
		if out == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ch.Save(out); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", out)
	}

	return nil
}

// loadPlan loads the configured plan file, or the built-in plan when none is
// configured. Loaded plans are validated before use; warnings are logged,
// errors abort.
func loadPlan(cfg *config.Config, logger *log.Logger) (*plan.Plan, string, error) {
	if cfg.PlanFile == "" {
		logger.Debug("no plan file configured, using built-in plan")
		return plan.Default(), "", nil
	}

	pl, err := plan.Load(cfg.PlanFile)
	if err != nil {
		return nil, "", fmt.Errorf("loading plan %s: %w", cfg.PlanFile, err)
	}

	result := pl.Validate()
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	if err := result.Err(); err != nil {
		return nil, "", fmt.Errorf("%s: %w", cfg.PlanFile, err)
	}

	logger.Debug("plan loaded",
		"path", cfg.PlanFile,
		"tasks", len(pl.Tasks),
		"milestones", len(pl.Milestones))
	return pl, cfg.PlanFile, nil
}
