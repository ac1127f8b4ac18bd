// Package chart renders a plan as a Gantt chart using gonum/plot.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/weekplan/ganttgen/internal/plan"
)

// Default chart geometry, in inches.
const (
	DefaultWidthIn  = 10.0
	DefaultHeightIn = 4.5
)

// Options controls chart geometry and titling.
type Options struct {
	// Title overrides the plan title when non-empty.
	Title string
	// WidthIn and HeightIn are the canvas size in inches. Zero means default.
	WidthIn  float64
	HeightIn float64
}

// Chart is a fully assembled Gantt chart ready for export.
type Chart struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length

	bars    int
	arrows  int
	markers int
}

// BarCount returns the number of task bars drawn.
func (c *Chart) BarCount() int { return c.bars }

// ArrowCount returns the number of dependency arrows drawn.
func (c *Chart) ArrowCount() int { return c.arrows }

// MarkerCount returns the number of milestone markers drawn.
func (c *Chart) MarkerCount() int { return c.markers }

// New assembles a chart from the plan: one horizontal bar per task colored by
// category, one legend entry per used category, a diamond marker and label per
// milestone, and an arrow between each adjacent task pair. The first task
// occupies the top row.
func New(pl *plan.Plan, opts Options) (*Chart, error) {
	if len(pl.Tasks) == 0 {
		return nil, fmt.Errorf("plan has no tasks")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = pl.Title
	}
	p.X.Label.Text = "Timeline"
	p.Y.Label.Text = "Dev Tracks"

	n := len(pl.Tasks)
	maxWeek := pl.MaxWeek()

	// Row 0 is the bottom of the plot, so the axis names run last-to-first.
	names := make([]string, n)
	for i, t := range pl.Tasks {
		names[n-1-i] = t.Name
	}
	p.NominalY(names...)

	bars := &ganttBars{plan: pl}
	p.Add(bars)

	for _, cat := range pl.UsedCategories() {
		p.Legend.Add(string(cat), swatch{color: cat.Color()})
	}
	p.Legend.Top = true

	if n > 1 {
		p.Add(&dependencyArrows{plan: pl})
	}

	markers, labels, err := milestonePlotters(pl)
	if err != nil {
		return nil, err
	}
	if markers != nil {
		p.Add(markers, labels)
	}

	// Axis ranges last: Add adjusts them through DataRange.
	p.X.Min = 0.5
	p.X.Max = float64(maxWeek) + 1
	p.X.Tick.Marker = plot.ConstantTicks(weekTicks(maxWeek))
	p.Y.Min = -0.6
	p.Y.Max = float64(n-1) + 0.6

	c := &Chart{
		plot:   p,
		width:  vg.Length(sizeOrDefault(opts.WidthIn, DefaultWidthIn)) * vg.Inch,
		height: vg.Length(sizeOrDefault(opts.HeightIn, DefaultHeightIn)) * vg.Inch,

		bars:    n,
		arrows:  n - 1,
		markers: len(pl.Milestones),
	}
	return c, nil
}

func sizeOrDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

// weekTicks builds one labeled tick per week.
func weekTicks(maxWeek int) []plot.Tick {
	ticks := make([]plot.Tick, 0, maxWeek)
	for w := 1; w <= maxWeek; w++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(w),
			Label: fmt.Sprintf("Week %d", w),
		})
	}
	return ticks
}

// milestonePlotters builds the diamond scatter and the label layer above it.
func milestonePlotters(pl *plan.Plan) (*plotter.Scatter, *plotter.Labels, error) {
	if len(pl.Milestones) == 0 {
		return nil, nil, nil
	}

	n := len(pl.Tasks)
	pts := make(plotter.XYs, 0, len(pl.Milestones))
	labelPts := make(plotter.XYs, 0, len(pl.Milestones))
	texts := make([]string, 0, len(pl.Milestones))

	for _, m := range pl.Milestones {
		idx := pl.TaskIndex(m.Task)
		if idx < 0 {
			return nil, nil, fmt.Errorf("milestone %q references unknown task %q", m.Label, m.Task)
		}
		row := float64(n - 1 - idx)
		pts = append(pts, plotter.XY{X: m.Week, Y: row})
		labelPts = append(labelPts, plotter.XY{X: m.Week, Y: row + 0.28})
		texts = append(texts, m.Label)
	}

	markers, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, nil, fmt.Errorf("milestone markers: %w", err)
	}
	markers.GlyphStyle = draw.GlyphStyle{
		Color:  plan.MilestoneColor,
		Radius: vg.Points(6),
		Shape:  diamondGlyph{},
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: texts})
	if err != nil {
		return nil, nil, fmt.Errorf("milestone labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(10)
	}

	return markers, labels, nil
}

// diamondGlyph draws a filled diamond with a thin black outline.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	pts := []vg.Point{
		{X: pt.X - r, Y: pt.Y},
		{X: pt.X, Y: pt.Y + r},
		{X: pt.X + r, Y: pt.Y},
		{X: pt.X, Y: pt.Y - r},
	}
	c.FillPolygon(sty.Color, pts)
	c.StrokeLines(draw.LineStyle{Color: color.Black, Width: vg.Points(1)}, append(pts, pts[0]))
}

// swatch is a legend thumbnail filled with a category color.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, pts)
}
