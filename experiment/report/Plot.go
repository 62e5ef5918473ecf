package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot is a Reporter that draws a series as a line chart and saves it
// as an image. The output format is inferred from the filename
// extension, e.g. .png.
type Plot struct {
	filename string
	title    string
	xLabel   string
	yLabel   string
}

// NewPlot returns a new Plot Reporter saving its chart at the
// specified location filename
func NewPlot(filename, title, xLabel, yLabel string) *Plot {
	return &Plot{filename, title, xLabel, yLabel}
}

// Report draws the argument series and saves the chart to disk
func (p *Plot) Report(series []float64) error {
	if len(series) == 0 {
		return fmt.Errorf("report: nothing to plot")
	}

	plt := plot.New()
	plt.Title.Text = p.title
	plt.X.Label.Text = p.xLabel
	plt.Y.Label.Text = p.yLabel

	points := make(plotter.XYs, len(series))
	for i, value := range series {
		points[i].X = float64(i)
		points[i].Y = value
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("report: could not create line: %v", err)
	}
	plt.Add(line)

	if err := plt.Save(8*vg.Inch, 4*vg.Inch, p.filename); err != nil {
		return fmt.Errorf("report: could not save plot: %v", err)
	}
	return nil
}
