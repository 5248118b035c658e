/*
 * reaction.go, part of gomm
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

/*Package forces parameterizes custom force objects for MD engines. It
doesn't evaluate anything itself (see the reference implementation in the
root package if you need that); it computes the constants of each potential
and configures an engine-provided custom-force handle with them.*/
package forces

import (
	"fmt"
	"math"

	mm "github.com/rmera/gomm"
)

// ReactionField is the parameterization of a reaction-field electrostatic
// potential: the region beyond the cutoff is modeled as a uniform dielectric
// continuum, which adds a quadratic term k_rf*r^2 to the plain Coulomb
// interaction, and, in the shifted variant, a constant term -c_rf that takes
// the energy to zero at the cutoff. All the constants are computed exactly
// once, at construction, and embedded as literals in the energy expression;
// the value returned by EnergyExpression never changes afterwards.
type ReactionField struct {
	cutoff      float64
	switchWidth float64
	dielectric  float64
	shifted     bool
	krf         float64
	crf         float64
	expression  string
}

// NewUnshiftedReactionField returns the parameterization of an unshifted
// reaction-field potential with the given cutoff (nm), switch width (nm, or
// mm.NoSwitch for plain truncation) and solvent dielectric constant.
// Contrary to the engines' built-in reaction field, the unshifted variant
// sets c_rf to zero and relies on the switching function to avoid a force
// discontinuity at the cutoff.
// The conventional values are mm.DefCutoff, mm.DefSwitchWidth and
// mm.DefDielectric.
// Inputs are not validated; a non-positive cutoff or a dielectric at or
// below -0.5 will produce a nonsensical potential.
func NewUnshiftedReactionField(cutoff, switchWidth, dielectric float64) *ReactionField {
	return newReactionField(cutoff, switchWidth, dielectric, false)
}

// NewSwitchedReactionField returns the parameterization of a shifted,
// switchable reaction-field potential with the given cutoff (nm), switch
// width (nm, or mm.NoSwitch) and solvent dielectric constant. It includes
// the constant c_rf term, so the energy goes to zero at the cutoff even
// before any switching function is applied.
func NewSwitchedReactionField(cutoff, switchWidth, dielectric float64) *ReactionField {
	return newReactionField(cutoff, switchWidth, dielectric, true)
}

//The unshifted and shifted variants only differ in the constant term, so
//both constructors funnel here.
func newReactionField(cutoff, switchWidth, dielectric float64, shifted bool) *ReactionField {
	rf := new(ReactionField)
	rf.cutoff = cutoff
	rf.switchWidth = switchWidth
	rf.dielectric = dielectric
	rf.shifted = shifted
	rf.krf = math.Pow(cutoff, -3) * (dielectric - 1.0) / (2.0*dielectric + 1.0)
	expression := "ONE_4PI_EPS0*chargeprod*(r^(-1) + k_rf*r^2);"
	if shifted {
		rf.crf = math.Pow(cutoff, -1) * (3.0 * dielectric) / (2.0*dielectric + 1.0)
		expression = "ONE_4PI_EPS0*chargeprod*(r^(-1) + k_rf*r^2 - c_rf);"
	}
	expression += "chargeprod = charge1*charge2;"
	expression += fmt.Sprintf("k_rf = %f;", rf.krf)
	if shifted {
		expression += fmt.Sprintf("c_rf = %f;", rf.crf)
	}
	expression += fmt.Sprintf("ONE_4PI_EPS0 = %f;", mm.ONE4PiEps0)
	rf.expression = expression
	return rf
}

// ReactionFieldFromNonbonded returns a reaction-field parameterization with
// the cutoff and dielectric read from source. It panics if source is nil.
func ReactionFieldFromNonbonded(source mm.NonbondedForce, switchWidth float64, shifted bool) *ReactionField {
	return newReactionField(source.CutoffDistance(), switchWidth, source.ReactionFieldDielectric(), shifted)
}

// Cutoff returns the cutoff distance, in nm.
func (rf *ReactionField) Cutoff() float64 { return rf.cutoff }

// SwitchWidth returns the switch width, in nm. A negative value means the
// switching function is disabled.
func (rf *ReactionField) SwitchWidth() float64 { return rf.switchWidth }

// Dielectric returns the solvent dielectric constant.
func (rf *ReactionField) Dielectric() float64 { return rf.dielectric }

// Shifted returns whether the potential includes the constant c_rf term.
func (rf *ReactionField) Shifted() bool { return rf.shifted }

// KRF returns the quadratic reaction-field coefficient, in nm^-3.
func (rf *ReactionField) KRF() float64 { return rf.krf }

// CRF returns the constant-shift coefficient, in nm^-1. It is zero for the
// unshifted variant.
func (rf *ReactionField) CRF() float64 { return rf.crf }

// EnergyExpression returns the energy expression, with all the constants
// embedded as literals.
func (rf *ReactionField) EnergyExpression() string { return rf.expression }

// Build constructs a custom nonbonded force from the parameterization, using
// the engine handle returned by maker. The force declares one per-particle
// parameter, "charge", uses the cutoff-periodic method with no long-range
// correction, and switches between cutoff-switchWidth and cutoff, unless the
// switch width is negative (mm.NoSwitch), in which case the potential is
// simply truncated. The returned force has no particles; the caller adds
// them, with their charge as the only parameter.
func (rf *ReactionField) Build(maker mm.CustomForceMaker) (mm.CustomNonbondedForce, error) {
	force, err := maker.NewCustomNonbondedForce(rf.expression)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	force.AddPerParticleParameter("charge")
	force.SetNonbondedMethod(mm.CutoffPeriodic)
	force.SetCutoffDistance(rf.cutoff)
	force.SetUseLongRangeCorrection(false)
	if rf.switchWidth >= 0 {
		force.SetUseSwitchingFunction(true)
		force.SetSwitchingDistance(rf.cutoff - rf.switchWidth)
	} else { //truncated
		force.SetUseSwitchingFunction(false)
	}
	return force, nil
}

// FromNonbondedForce builds a reaction-field force that mirrors source: same
// cutoff and dielectric, one particle per source particle with the same
// charge (the Lennard-Jones parameters are discarded), and one exclusion per
// source exception (only the pair identity transfers; the exception's own
// interaction parameters are discarded). shifted selects between the
// switched (true) and unshifted (false) variants.
//
// This only creates the new force object. The electrostatics in source are
// left untouched, so adding the returned force to the same system without
// zeroing the source's charges double-counts them. See ReplaceReactionField.
func FromNonbondedForce(maker mm.CustomForceMaker, source mm.NonbondedForce, switchWidth float64, shifted bool) (mm.CustomNonbondedForce, error) {
	rf := ReactionFieldFromNonbonded(source, switchWidth, shifted)
	force, err := rf.Build(maker)
	if err != nil {
		return nil, errDecorate(err, "FromNonbondedForce")
	}
	for i := 0; i < source.NumParticles(); i++ {
		charge, _, _ := source.ParticleParameters(i)
		force.AddParticle([]float64{charge})
	}
	for i := 0; i < source.NumExceptions(); i++ {
		p1, p2, _, _, _ := source.ExceptionParameters(i)
		force.AddExclusion(p1, p2)
	}
	return force, nil
}

// FromSystem is like FromNonbondedForce, but takes the source from the only
// nonbonded force in system. It returns a *MultipleForcesError if there is
// more than one. If there is none, it panics on the nil dereference: a
// system with no nonbonded force is a precondition violation the caller has
// to check for.
func FromSystem(maker mm.CustomForceMaker, system mm.System, switchWidth float64, shifted bool) (mm.CustomNonbondedForce, error) {
	source, err := FindNonbondedForce(system)
	if err != nil {
		return nil, errDecorate(err, "FromSystem")
	}
	return FromNonbondedForce(maker, source, switchWidth, shifted)
}
