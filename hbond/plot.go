/*
 * plot.go, part of meci.
 *
 *
 * Copyright 2024 The meci authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package hbond

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultPlot is the name of the image written when no other is given.
const DefaultPlot = "frequency_test.png"

// Plot draws the frequencies against the step number and saves the chart to
// filename. The image format is taken from the extension (png, svg, pdf...).
func Plot(freq []float64, filename string) error {
	if len(freq) == 0 {
		return fmt.Errorf("hbond: nothing to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = "H Bonding Analysis"
	p.X.Label.Text = "Step Number"
	p.Y.Label.Text = "Ratio"
	//Constant y axis, it's a ratio
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(freq))
	for i, v := range freq {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(l)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
