/*
 * energy.go, part of gomm
 *
 * Copyright 2021 Raul Mera <rmeraaatacademicosdotutadotcl>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package mmplot plots energy profiles of pairwise forces. It is mostly
//useful to eyeball a parameterization (say, whether a potential really goes
//to zero at the cutoff) before running anything expensive.
package mmplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PairEvaluator is any force that can evaluate the interaction energy
// between two of its particles at a given distance. The reference
// implementation in the root package satisfies it.
type PairEvaluator interface {
	InteractionEnergy(p1, p2 int, r float64) (float64, error)
}

// EnergyProfile plots the interaction energy between particles p1 and p2 of
// force, in kJ/mol, sampled at npoints distances evenly spaced in
// [rmin, rmax] nm, and saves it as plotname.png. npoints must be at least 2.
func EnergyProfile(force PairEvaluator, p1, p2 int, rmin, rmax float64, npoints int, title, plotname string) error {
	if force == nil {
		panic("mmplot: Given a nil force")
	}
	if npoints < 2 {
		return fmt.Errorf("mmplot.EnergyProfile: Need at least 2 points, got %d", npoints)
	}
	rs := floats.Span(make([]float64, npoints), rmin, rmax)
	pts := make(plotter.XYs, 0, npoints)
	for _, r := range rs {
		energy, err := force.InteractionEnergy(p1, p2, r)
		if err != nil {
			return err
		}
		pts = append(pts, plotter.XY{X: r, Y: energy})
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "r (nm)"
	p.Y.Label.Text = "E (kJ/mol)"
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}
