package cmd

import (
	"flag"
	"fmt"

	"github.com/weekplan/ganttgen/internal/config"
	"github.com/weekplan/ganttgen/internal/plan"
)

// validateCommand checks a plan file and reports problems.
func validateCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ganttgen validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}

	path := cfg.PlanFile
	if len(remaining) == 1 {
		path = remaining[0]
	}
	if path == "" {
		return fmt.Errorf("validate requires a plan file (argument or plan_file config)")
	}

	pl, err := plan.Load(path)
	if err != nil {
		return err
	}

	result := pl.Validate()
	for _, w := range result.Warnings {
		fmt.Printf("  ⚠ %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("  ❌ %s\n", e)
	}

	if !result.Valid {
		return fmt.Errorf("%s: invalid plan", path)
	}

	fmt.Printf("  ✅ %s: %d tasks, %d milestones\n", path, len(pl.Tasks), len(pl.Milestones))
	return nil
}
