package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/weekplan/ganttgen/internal/plan"
)

// cellsPerWeek is the number of terminal columns one week occupies.
const cellsPerWeek = 6

const (
	barRune       = '█'
	milestoneRune = '◆'
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Faint(true)
	milestoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DB4545"))
)

var categoryStyles = map[plan.Category]lipgloss.Style{
	plan.CategoryFrontend: lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57")),
	plan.CategoryBackend:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1FB8CD")),
	plan.CategoryDevOps:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D2BA4C")),
	plan.CategoryTesting:  lipgloss.NewStyle().Foreground(lipgloss.Color("#944454")),
}

// planView renders the complete preview screen.
func planView(pl *plan.Plan, filter plan.Category, status string) string {
	var b strings.Builder

	title := pl.Title
	if title == "" {
		title = "Project plan"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	nameWidth := taskNameWidth(pl)
	b.WriteString(strings.Repeat(" ", nameWidth+2))
	b.WriteString(dimStyle.Render(weekRuler(pl.MaxWeek())))
	b.WriteString("\n")

	for _, row := range planRows(pl, filter) {
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(legendLine(pl))
	b.WriteString("\n\n")
	if filter != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("filter: %s · ", filter)))
	}
	if status != "" {
		b.WriteString(dimStyle.Render(status + " · "))
	}
	b.WriteString(dimStyle.Render("0-4 filter · r reload · h help · q quit"))
	b.WriteString("\n")

	return b.String()
}

// planRows renders one styled text row per task. Tasks outside the filter are
// dimmed rather than hidden so row positions stay stable.
func planRows(pl *plan.Plan, filter plan.Category) []string {
	nameWidth := taskNameWidth(pl)
	rows := make([]string, 0, len(pl.Tasks))
	for i := range pl.Tasks {
		rows = append(rows, taskRow(pl, i, nameWidth, filter))
	}
	return rows
}

// taskRow renders the row for task i: padded name, then the bar lane with any
// milestone markers belonging to this task.
func taskRow(pl *plan.Plan, i, nameWidth int, filter plan.Category) string {
	t := &pl.Tasks[i]
	lane := laneRunes(pl, i)

	dimmed := filter != "" && t.Category != filter
	barStyle := categoryStyles[t.Category]
	if dimmed {
		barStyle = dimStyle
	}

	var b strings.Builder
	name := fmt.Sprintf("%-*s", nameWidth, t.Name)
	if dimmed {
		name = dimStyle.Render(name)
	}
	b.WriteString(name)
	b.WriteString("  ")
	b.WriteString(styleLane(lane, barStyle, dimmed))
	return b.String()
}

// laneRunes builds the unstyled lane for task i: spaces, the bar, and any
// milestone diamonds aligned to this task.
func laneRunes(pl *plan.Plan, i int) []rune {
	t := &pl.Tasks[i]
	width := (pl.MaxWeek() + 1) * cellsPerWeek
	lane := make([]rune, width)
	for j := range lane {
		lane[j] = ' '
	}

	start := (t.StartWeek - 1) * cellsPerWeek
	end := start + t.Duration*cellsPerWeek
	for j := start; j < end && j < width; j++ {
		lane[j] = barRune
	}

	for _, m := range pl.Milestones {
		if m.Task != t.Name {
			continue
		}
		col := weekColumn(m.Week)
		if col >= 0 && col < width {
			lane[col] = milestoneRune
		}
	}

	return lane
}

// weekColumn maps a week offset to a lane column. Week w covers columns
// [(w-1)*cellsPerWeek, w*cellsPerWeek).
func weekColumn(week float64) int {
	return int((week - 0.5) * cellsPerWeek)
}

// styleLane colors bar runes by category and milestone runes red.
func styleLane(lane []rune, barStyle lipgloss.Style, dimmed bool) string {
	msStyle := milestoneStyle
	if dimmed {
		msStyle = dimStyle
	}

	var b strings.Builder
	for _, r := range lane {
		switch r {
		case barRune:
			b.WriteString(barStyle.Render(string(r)))
		case milestoneRune:
			b.WriteString(msStyle.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// weekRuler renders the week labels aligned to the lane columns.
func weekRuler(maxWeek int) string {
	var b strings.Builder
	for w := 1; w <= maxWeek; w++ {
		label := fmt.Sprintf("Wk %d", w)
		if len(label) > cellsPerWeek {
			label = label[:cellsPerWeek]
		}
		b.WriteString(fmt.Sprintf("%-*s", cellsPerWeek, label))
	}
	return b.String()
}

// legendLine renders one swatch per used category.
func legendLine(pl *plan.Plan) string {
	parts := make([]string, 0, 4)
	for _, c := range pl.UsedCategories() {
		parts = append(parts, categoryStyles[c].Render("■")+" "+string(c))
	}
	parts = append(parts, milestoneStyle.Render(string(milestoneRune))+" Milestone")
	return strings.Join(parts, "   ")
}

func taskNameWidth(pl *plan.Plan) int {
	width := 0
	for i := range pl.Tasks {
		if l := len([]rune(pl.Tasks[i].Name)); l > width {
			width = l
		}
	}
	return width
}
