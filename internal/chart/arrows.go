package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/weekplan/ganttgen/internal/plan"
)

// dependencyArrows draws an arrow from the end of each task bar to the start
// of the next one, in row order.
type dependencyArrows struct {
	plan *plan.Plan
}

// arrowColor is gray at 70% opacity, matching the bar-to-bar connectors.
var arrowColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xB3}

const (
	arrowHeadLen   = vg.Length(6) // points
	arrowHeadAngle = math.Pi / 6
)

// Plot implements plot.Plotter.
func (a *dependencyArrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := draw.LineStyle{Color: arrowColor, Width: vg.Points(2)}

	n := len(a.plan.Tasks)
	for i := 0; i < n-1; i++ {
		cur := &a.plan.Tasks[i]
		next := &a.plan.Tasks[i+1]

		_, curEnd := cur.Span()
		nextStart, _ := next.Span()

		x0 := trX(curEnd)
		y0 := trY(float64(n - 1 - i))
		x1 := trX(nextStart)
		y1 := trY(float64(n - 1 - (i + 1)))

		c.StrokeLine2(sty, x0, y0, x1, y1)
		drawHead(&c, sty, x0, y0, x1, y1)
	}
}

// drawHead strokes the two arrowhead segments at the (x1, y1) tip.
func drawHead(c *draw.Canvas, sty draw.LineStyle, x0, y0, x1, y1 vg.Length) {
	angle := math.Atan2(float64(y1-y0), float64(x1-x0))
	for _, da := range []float64{arrowHeadAngle, -arrowHeadAngle} {
		hx := x1 - arrowHeadLen*vg.Length(math.Cos(angle+da))
		hy := y1 - arrowHeadLen*vg.Length(math.Sin(angle+da))
		c.StrokeLine2(sty, x1, y1, hx, hy)
	}
}
