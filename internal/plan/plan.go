// Package plan defines project plans and loads them from plan files.
package plan

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// Category classifies a task into one of the fixed development tracks.
type Category string

const (
	CategoryFrontend Category = "Frontend"
	CategoryBackend  Category = "Backend"
	CategoryDevOps   Category = "DevOps"
	CategoryTesting  Category = "Testing"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{CategoryFrontend, CategoryBackend, CategoryDevOps, CategoryTesting}
}

// Valid reports whether the category is one of the known set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryDevOps, CategoryTesting:
		return true
	}
	return false
}

var categoryColors = map[Category]color.RGBA{
	CategoryFrontend: {R: 0x2E, G: 0x8B, B: 0x57, A: 0xFF},
	CategoryBackend:  {R: 0x1F, G: 0xB8, B: 0xCD, A: 0xFF},
	CategoryDevOps:   {R: 0xD2, G: 0xBA, B: 0x4C, A: 0xFF},
	CategoryTesting:  {R: 0x94, G: 0x44, B: 0x54, A: 0xFF},
}

// Color returns the brand color for the category. Unknown categories get gray.
func (c Category) Color() color.RGBA {
	if clr, ok := categoryColors[c]; ok {
		return clr
	}
	return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
}

// MilestoneColor is the fill color for milestone markers.
var MilestoneColor = color.RGBA{R: 0xDB, G: 0x45, B: 0x45, A: 0xFF}

// Task is a single scheduled unit of work.
type Task struct {
	Name        string   `json:"name" toml:"name" yaml:"name"`
	StartWeek   int      `json:"start_week" toml:"start_week" yaml:"start_week"`
	Duration    int      `json:"duration" toml:"duration" yaml:"duration"`
	Category    Category `json:"category" toml:"category" yaml:"category"`
	Description string   `json:"description,omitempty" toml:"description" yaml:"description"`
}

// IsZero returns true if the task is empty (has no name).
func (t *Task) IsZero() bool {
	return t.Name == ""
}

// Span returns the bar extent on the week axis. A task starting at week w
// occupies [w-0.5, w-0.5+duration] so the bar is centered on its week ticks.
func (t *Task) Span() (start, end float64) {
	start = float64(t.StartWeek) - 0.5
	return start, start + float64(t.Duration)
}

// Milestone marks a point on the timeline aligned to a task's row.
type Milestone struct {
	Week  float64 `json:"week" toml:"week" yaml:"week"`
	Task  string  `json:"task" toml:"task" yaml:"task"`
	Label string  `json:"label" toml:"label" yaml:"label"`
}

// Plan is the full chart input: an ordered task list plus milestones.
type Plan struct {
	SchemaVersion int         `json:"schema_version" toml:"schema_version" yaml:"schema_version"`
	Title         string      `json:"title" toml:"title" yaml:"title"`
	Tasks         []Task      `json:"tasks" toml:"tasks" yaml:"tasks"`
	Milestones    []Milestone `json:"milestones,omitempty" toml:"milestones" yaml:"milestones"`
}

// Default returns the built-in six-week MVP plan. Running ganttgen with no
// plan file renders exactly this.
func Default() *Plan {
	return &Plan{
		SchemaVersion: 1,
		Title:         "6-Week MVP Development Plan",
		Tasks: []Task{
			{Name: "Village Render", StartWeek: 1, Duration: 1, Category: CategoryFrontend, Description: "Phaser.js setup"},
			{Name: "RPG Dialogue", StartWeek: 2, Duration: 1, Category: CategoryFrontend, Description: "UI panel system"},
			{Name: "MCP Integration", StartWeek: 3, Duration: 1, Category: CategoryBackend, Description: "Real agents"},
			{Name: "Bug Bot System", StartWeek: 4, Duration: 1, Category: CategoryBackend, Description: "Probot app"},
			{Name: "Performance", StartWeek: 5, Duration: 1, Category: CategoryDevOps, Description: "Optimization"},
			{Name: "Test & Launch", StartWeek: 6, Duration: 1, Category: CategoryTesting, Description: "QA & deploy"},
		},
		Milestones: []Milestone{
			{Week: 2.5, Task: "RPG Dialogue", Label: "Core UI Done"},
			{Week: 4.5, Task: "Bug Bot System", Label: "Full Integr'n"},
			{Week: 6.5, Task: "Test & Launch", Label: "MVP Ready"},
		},
	}
}

// TaskIndex returns the position of the named task, or -1 if not found.
func (p *Plan) TaskIndex(name string) int {
	for i := range p.Tasks {
		if p.Tasks[i].Name == name {
			return i
		}
	}
	return -1
}

// GetTask returns a task by name, or nil if not found.
func (p *Plan) GetTask(name string) *Task {
	if i := p.TaskIndex(name); i >= 0 {
		return &p.Tasks[i]
	}
	return nil
}

// MaxWeek returns the last week covered by any task. An empty plan has
// MaxWeek 0.
func (p *Plan) MaxWeek() int {
	max := 0
	for i := range p.Tasks {
		if end := p.Tasks[i].StartWeek + p.Tasks[i].Duration - 1; end > max {
			max = end
		}
	}
	return max
}

// UsedCategories returns the categories that appear in the task list, in
// first-seen order and without duplicates. The chart legend shows exactly
// these entries.
func (p *Plan) UsedCategories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for i := range p.Tasks {
		c := p.Tasks[i].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Save writes the plan as JSON with 2-space indentation.
func (p *Plan) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write plan file: %w", err)
	}
	return nil
}
