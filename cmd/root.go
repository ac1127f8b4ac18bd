// Package cmd implements the CLI command structure for ganttgen.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/weekplan/ganttgen/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the ganttgen CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ganttgen", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")
	configPath := fs.String("config", "", "Config file path (skips config discovery)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Load(wd, *configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Determine the subcommand. With no args (or only flags) the default is
	// "render", so a bare `ganttgen` writes the two chart files.
	subcommand := "render"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	switch subcommand {
	case "render":
		return renderCommand(ctx, cfg, remainingArgs)
	case "preview":
		return previewCommand(ctx, cfg, remainingArgs)
	case "validate":
		return validateCommand(cfg, remainingArgs)
	case "config":
		fmt.Print(config.ExampleConfig())
		return nil
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// An unrecognized first argument naming an existing file is treated
		// as the plan file for render.
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			cfg.PlanFile = subcommand
			return renderCommand(ctx, cfg, remainingArgs)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints the version.
func versionCommand() error {
	fmt.Printf("ganttgen %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `ganttgen renders a project plan as a Gantt chart (PNG and SVG).

Usage:
  ganttgen [flags] [command] [plan-file]

Commands:
  render      Render the plan to the configured outputs (default)
  preview     Show the plan as a text Gantt chart in the terminal
  validate    Check a plan file and report problems
  config      Print an example configuration file
  version     Show version
  help        Show this help

With no arguments, ganttgen renders the built-in six-week plan to
gantt_chart.png and gantt_chart.svg in the working directory.

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Render flags (ganttgen render -h for details):
  -png path     PNG output path (empty disables)
  -svg path     SVG output path (empty disables)
  -width in     Canvas width in inches
  -height in    Canvas height in inches
  -title text   Chart title override

Environment:
  GANTTGEN_PLAN, GANTTGEN_PNG, GANTTGEN_SVG, GANTTGEN_WIDTH,
  GANTTGEN_HEIGHT, GANTTGEN_TITLE, GANTTGEN_LOG_LEVEL,
  GANTTGEN_LOG_FORMAT, GANTTGEN_LOG_TIMESTAMPS
`)
}
