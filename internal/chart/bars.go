package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/weekplan/ganttgen/internal/plan"
)

// barHalfHeight is half the bar thickness in row units. Bars take up half a
// row so arrows and markers stay legible between them.
const barHalfHeight = 0.25

// ganttBars draws one horizontal bar per task, colored by category.
// It implements plot.Plotter and plot.DataRanger.
type ganttBars struct {
	plan *plan.Plan
}

// Plot implements plot.Plotter.
func (b *ganttBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	n := len(b.plan.Tasks)

	for i := range b.plan.Tasks {
		t := &b.plan.Tasks[i]
		row := float64(n - 1 - i)
		start, end := t.Span()

		x0 := trX(start)
		x1 := trX(end)
		y0 := trY(row - barHalfHeight)
		y1 := trY(row + barHalfHeight)

		c.FillPolygon(t.Category.Color(), []vg.Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		})
	}
}

// DataRange implements plot.DataRanger.
func (b *ganttBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = 0.5
	xmax = float64(b.plan.MaxWeek()) + 0.5
	for i := range b.plan.Tasks {
		start, end := b.plan.Tasks[i].Span()
		if start < xmin {
			xmin = start
		}
		if end > xmax {
			xmax = end
		}
	}
	ymin = -0.5
	ymax = float64(len(b.plan.Tasks)) - 0.5
	return xmin, xmax, ymin, ymax
}
