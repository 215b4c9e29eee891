package main

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotLosses saves a line plot of losses per epoch as a PNG.
func plotLosses(filePath string, losses []float64) error {
	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "loss"

	points := make(plotter.XYs, len(losses))
	for i, l := range losses {
		points[i].X = float64(i)
		points[i].Y = l
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return errors.Wrap(err, "failed to build the loss line")
	}
	p.Add(line, plotter.NewGrid())
	if err := p.Save(8*vg.Inch, 4*vg.Inch, filePath); err != nil {
		return errors.Wrapf(err, "failed to save plot to %q", filePath)
	}
	return nil
}
