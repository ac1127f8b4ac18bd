// Package ui provides an optional terminal preview of a plan.
package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weekplan/ganttgen/internal/plan"
)

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// RunPreview starts a read-only TUI showing the plan as a text Gantt chart.
// planPath may be empty for the built-in plan; when set, 'r' reloads it.
func RunPreview(ctx context.Context, pl *plan.Plan, planPath string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("preview requires a TTY")
	}

	model := newPreviewModel(pl, planPath)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type previewModel struct {
	plan     *plan.Plan
	planPath string
	filter   plan.Category // empty shows all categories
	showHelp bool
	status   string
}

func newPreviewModel(pl *plan.Plan, planPath string) *previewModel {
	return &previewModel{plan: pl, planPath: planPath}
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.reload()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "0":
			m.filter = ""
			return m, nil
		default:
			cats := plan.Categories()
			for i, c := range cats {
				if msg.String() == fmt.Sprintf("%d", i+1) {
					m.filter = c
					return m, nil
				}
			}
		}
	}
	return m, nil
}

func (m *previewModel) reload() {
	if m.planPath == "" {
		m.status = "built-in plan, nothing to reload"
		return
	}
	pl, err := plan.Load(m.planPath)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.plan = pl
	m.status = fmt.Sprintf("reloaded %s", m.planPath)
}

func (m *previewModel) View() string {
	if m.showHelp {
		return helpView()
	}
	return planView(m.plan, m.filter, m.status)
}

func helpView() string {
	return `ganttgen preview

  q, ctrl+c   quit
  r, f5       reload the plan file
  h, ?        toggle this help
  0           show all categories
  1-4         filter by category (Frontend, Backend, DevOps, Testing)

Press h to go back.
`
}
