package report

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soniapetrini/cervical-cancer-classification/pkg/eval"
)

// PlotSweep renders accuracy, sensitivity and specificity against the
// threshold grid, marking the crossover threshold when one was found.
// The output format follows the file extension (.png, .svg, .pdf).
func PlotSweep(table eval.MetricTable, cross eval.Crossover, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Threshold"
	p.Y.Label.Text = "Metric"
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = true

	curves := []struct {
		name  string
		value func(eval.MetricRow) float64
		color color.RGBA
	}{
		{"accuracy", func(r eval.MetricRow) float64 { return r.Accuracy }, color.RGBA{R: 50, G: 50, B: 255, A: 255}},
		{"sensitivity", func(r eval.MetricRow) float64 { return r.Sensitivity }, color.RGBA{R: 255, A: 255}},
		{"specificity", func(r eval.MetricRow) float64 { return r.Specificity }, color.RGBA{G: 160, A: 255}},
	}
	for _, c := range curves {
		pts := make(plotter.XYs, 0, len(table))
		for _, row := range table {
			v := c.value(row)
			if math.IsNaN(v) {
				continue
			}
			pts = append(pts, plotter.XY{X: row.Threshold, Y: v})
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, "report: %s line", c.name)
		}
		l.Color = c.color
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(c.name, l)
	}

	if cross.Found {
		marker := plotter.XYs{
			{X: cross.Threshold, Y: 0},
			{X: cross.Threshold, Y: 1},
		}
		l, err := plotter.NewLine(marker)
		if err != nil {
			return errors.Wrap(err, "report: crossover line")
		}
		l.Color = color.RGBA{A: 255}
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(l)
		p.Legend.Add("crossover", l)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "report: save %s", path)
	}
	return nil
}
