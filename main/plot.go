package main

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/splinecurve/curve"
)

var axisColors = [3]string{"r", "g", "b"}

// plotCurve plots every axis of the sampled curve against t, along with the
// knots it was built from.
func plotCurve(
	fname string, ts []float64, axes [3][]float64, points []curve.Point,
) {
	plt.Reset()

	sampleTs := make([]float64, len(points))
	for i := range points {
		sampleTs[i] = points[i].T
	}

	plt.Figure(plt.FigSize(8, 8))
	for dim := range axes {
		vals := make([]float64, len(points))
		for i := range points {
			vals[i] = points[i].XYZ[dim]
		}
		plt.Plot(sampleTs, vals, plt.LW(2), plt.C(axisColors[dim]))
		plt.Plot(ts, axes[dim], "ok")
	}

	plt.Title(fmt.Sprintf(
		"%d knots, %d samples (r = x, g = y, b = z)", len(ts), len(points),
	))
	plt.XLabel(`$t$`, plt.FontSize(16))
	plt.YLabel(`$x$, $y$, $z$`, plt.FontSize(16))
	plt.SaveFig(fname)

	plt.Execute()
}
