package thinfilm

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveSpectrumPNG plots R and T against the swept variable and writes the
// chart to path. Diagnostic output; the numerics never depend on it.
func SaveSpectrumPNG(points []RT, xlabel, path string) error {
	if len(points) == 0 {
		return fmt.Errorf("spectrum: nothing to plot")
	}

	rr := make(plotter.XYs, len(points))
	tt := make(plotter.XYs, len(points))
	for i, pt := range points {
		rr[i].X, rr[i].Y = pt.X, pt.R
		tt[i].X, tt[i].Y = pt.X, pt.T
	}

	p := plot.New()
	p.Title.Text = "Coherent multilayer response"
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "fraction of incident power"
	if err := plotutil.AddLines(p, "R", rr, "T", tt); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("spectrum: save %s: %w", path, err)
	}
	DebugLog("Plot saved as %s", path)
	return nil
}
