package utils

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LossCurve saves the loss trace as a line plot in filename.png, one point
// per recorded epoch.
func LossCurve(trace []float64, filename string) error {
	pts := make(plotter.XYs, len(trace))
	for i, v := range trace {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	p := plot.New()
	p.Title.Text = "training objective"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "objective"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(4*vg.Inch, 4*vg.Inch, filename+".png")
}
