/*
 * custom.go, part of gomm.
 *
 * Copyright 2021 Raul Mera <rmeraaatacademicosdotutadotcl>
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
 */

package mm

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

// Nonbonded methods for custom nonbonded forces.
const (
	NoCutoff = iota
	CutoffNonPeriodic
	CutoffPeriodic
)

// CustomNonbondedForce is the builder-facing interface for a pairwise force
// whose functional form is given as a textual energy expression. It mirrors
// the custom-force API of the common MD engines, so a binding layer can back
// it with the real thing. Configuration is write-mostly: builders call these
// methods once, right after construction.
type CustomNonbondedForce interface {
	Force

	//AddPerParticleParameter declares a new per-particle parameter. The
	//expression can refer to it with the suffixes "1" and "2" for the two
	//particles of a pair.
	AddPerParticleParameter(name string)

	//SetNonbondedMethod sets the method (NoCutoff, CutoffNonPeriodic or
	//CutoffPeriodic) used for the force.
	SetNonbondedMethod(method int)

	//SetCutoffDistance sets the cutoff, in nm.
	SetCutoffDistance(cutoff float64)

	//SetUseSwitchingFunction controls whether a switching function tapers
	//the energy to zero between the switching distance and the cutoff.
	SetUseSwitchingFunction(use bool)

	//SetSwitchingDistance sets the distance, in nm, at which the switching
	//function starts.
	SetSwitchingDistance(rswitch float64)

	//SetUseLongRangeCorrection controls whether an isotropic long-range
	//dispersion correction is applied beyond the cutoff.
	SetUseLongRangeCorrection(use bool)

	//AddParticle appends a particle with one value per declared
	//per-particle parameter, and returns its index.
	AddParticle(params []float64) int

	//AddExclusion disables the force between particles p1 and p2.
	AddExclusion(p1, p2 int)
}

// CustomForceMaker is the factory a binding layer provides: it turns an
// energy expression into a fresh, unconfigured custom nonbonded force.
type CustomForceMaker interface {
	NewCustomNonbondedForce(expression string) (CustomNonbondedForce, error)
}

// MakerFunc adapts a function to the CustomForceMaker interface.
type MakerFunc func(expression string) (CustomNonbondedForce, error)

func (f MakerFunc) NewCustomNonbondedForce(expression string) (CustomNonbondedForce, error) {
	return f(expression)
}

// SimMaker builds SimCustomForce objects, i.e. the reference in-memory
// implementation of the custom-force machinery.
var SimMaker = MakerFunc(func(expression string) (CustomNonbondedForce, error) {
	return NewSimCustomForce(expression)
})

//expression handling

type definition struct {
	name string
	expr *govaluate.EvaluableExpression
}

// SimCustomForce is the in-memory reference implementation of
// CustomNonbondedForce. It compiles the energy expression at construction
// and can evaluate pairwise interaction energies, which makes it useful for
// testing force parameterizations without a full engine behind them. It is
// in no way a replacement for an engine: there are no neighbor lists, no
// periodicity and no performance to speak of.
type SimCustomForce struct {
	expression string
	energy     *govaluate.EvaluableExpression
	defs       []definition
	perPart    []string
	method     int
	cutoff     float64
	useSwitch  bool
	switchDist float64
	useLRC     bool
	particles  [][]float64
	exclusions [][2]int
}

// NewSimCustomForce compiles an energy expression and returns the force.
// The expression follows the custom-force convention of the MD engines: a
// series of ";"-separated statements, the first one being the energy and the
// rest definitions of the form "name = subexpression". A definition may
// refer to per-particle parameters, to "r" and to names defined in later
// statements. Powers are written with "^".
func NewSimCustomForce(expression string) (*SimCustomForce, error) {
	ret := new(SimCustomForce)
	ret.expression = expression
	statements := strings.Split(expression, ";")
	first := true
	for _, s := range statements {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if first {
			compiled, err := compileStatement(s)
			if err != nil {
				return nil, errDecorate(err, "NewSimCustomForce")
			}
			ret.energy = compiled
			first = false
			continue
		}
		parts := strings.SplitN(s, "=", 2)
		if len(parts) != 2 {
			return nil, &CError{fmt.Sprintf("Malformed definition %q in energy expression", s), []string{"NewSimCustomForce"}}
		}
		name := strings.TrimSpace(parts[0])
		compiled, err := compileStatement(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errDecorate(err, "NewSimCustomForce")
		}
		ret.defs = append(ret.defs, definition{name, compiled})
	}
	if ret.energy == nil {
		return nil, &CError{"Empty energy expression", []string{"NewSimCustomForce"}}
	}
	return ret, nil
}

// compileStatement translates one engine-style statement into govaluate,
// which spells the power operator "**" instead of "^".
func compileStatement(s string) (*govaluate.EvaluableExpression, error) {
	s = strings.ReplaceAll(s, "^", "**")
	compiled, err := govaluate.NewEvaluableExpression(s)
	if err != nil {
		return nil, &CError{fmt.Sprintf("Can't compile %q: %v", s, err), nil}
	}
	return compiled, nil
}

func (C *SimCustomForce) Name() string { return "CustomNonbondedForce" }

// EnergyExpression returns the expression the force was built from,
// verbatim.
func (C *SimCustomForce) EnergyExpression() string {
	return C.expression
}

func (C *SimCustomForce) AddPerParticleParameter(name string) {
	C.perPart = append(C.perPart, name)
}

// NumPerParticleParameters returns the number of declared per-particle
// parameters.
func (C *SimCustomForce) NumPerParticleParameters() int {
	return len(C.perPart)
}

// PerParticleParameterName returns the name of the i-th declared
// per-particle parameter.
func (C *SimCustomForce) PerParticleParameterName(i int) string {
	return C.perPart[i]
}

func (C *SimCustomForce) SetNonbondedMethod(method int) {
	C.method = method
}

func (C *SimCustomForce) NonbondedMethod() int {
	return C.method
}

func (C *SimCustomForce) SetCutoffDistance(cutoff float64) {
	C.cutoff = cutoff
}

func (C *SimCustomForce) CutoffDistance() float64 {
	return C.cutoff
}

func (C *SimCustomForce) SetUseSwitchingFunction(use bool) {
	C.useSwitch = use
}

func (C *SimCustomForce) UseSwitchingFunction() bool {
	return C.useSwitch
}

func (C *SimCustomForce) SetSwitchingDistance(rswitch float64) {
	C.switchDist = rswitch
}

func (C *SimCustomForce) SwitchingDistance() float64 {
	return C.switchDist
}

func (C *SimCustomForce) SetUseLongRangeCorrection(use bool) {
	C.useLRC = use
}

func (C *SimCustomForce) UseLongRangeCorrection() bool {
	return C.useLRC
}

func (C *SimCustomForce) AddParticle(params []float64) int {
	if len(params) != len(C.perPart) {
		panic(PanicMsg(fmt.Sprintf("gomm: AddParticle: %d parameters given, %d declared", len(params), len(C.perPart))))
	}
	p := make([]float64, len(params))
	copy(p, params)
	C.particles = append(C.particles, p)
	return len(C.particles) - 1
}

func (C *SimCustomForce) NumParticles() int {
	return len(C.particles)
}

// ParticleParameters returns the per-particle parameter values of the i-th
// particle, in declaration order.
func (C *SimCustomForce) ParticleParameters(i int) []float64 {
	if i < 0 || i >= len(C.particles) {
		panic(ErrParticleRange)
	}
	return C.particles[i]
}

func (C *SimCustomForce) AddExclusion(p1, p2 int) {
	C.exclusions = append(C.exclusions, [2]int{p1, p2})
}

func (C *SimCustomForce) NumExclusions() int {
	return len(C.exclusions)
}

// ExclusionParticles returns the particle indexes of the i-th exclusion.
func (C *SimCustomForce) ExclusionParticles(i int) (int, int) {
	if i < 0 || i >= len(C.exclusions) {
		panic(ErrExceptionRange)
	}
	return C.exclusions[i][0], C.exclusions[i][1]
}

func (C *SimCustomForce) excluded(p1, p2 int) bool {
	for _, e := range C.exclusions {
		if (e[0] == p1 && e[1] == p2) || (e[0] == p2 && e[1] == p1) {
			return true
		}
	}
	return false
}

// Evaluate computes the raw energy expression for the given variables,
// without cutoff, switching or exclusion handling. The definitions in the
// expression are resolved from the last statement backwards, so each one can
// only use names defined after it, as in the engines' custom forces.
func (C *SimCustomForce) Evaluate(vars map[string]float64) (float64, error) {
	params := make(map[string]interface{}, len(vars)+len(C.defs))
	for k, v := range vars {
		params[k] = v
	}
	for i := len(C.defs) - 1; i >= 0; i-- {
		d := C.defs[i]
		val, err := d.expr.Evaluate(params)
		if err != nil {
			return 0, &CError{fmt.Sprintf("Can't evaluate %q: %v", d.name, err), []string{"Evaluate"}}
		}
		params[d.name] = val
	}
	energy, err := C.energy.Evaluate(params)
	if err != nil {
		return 0, &CError{fmt.Sprintf("Can't evaluate energy: %v", err), []string{"Evaluate"}}
	}
	ef, ok := energy.(float64)
	if !ok {
		return 0, &CError{"Energy expression doesn't evaluate to a number", []string{"Evaluate"}}
	}
	return ef, nil
}

// InteractionEnergy computes the energy, in kJ/mol, between particles p1 and
// p2 at distance r (nm), honoring exclusions, the cutoff and the switching
// function. Excluded pairs and pairs beyond the cutoff contribute zero.
func (C *SimCustomForce) InteractionEnergy(p1, p2 int, r float64) (float64, error) {
	if C.excluded(p1, p2) {
		return 0, nil
	}
	if C.method != NoCutoff && r > C.cutoff {
		return 0, nil
	}
	vars := make(map[string]float64, 2*len(C.perPart)+1)
	vars["r"] = r
	for k, name := range C.perPart {
		vars[name+"1"] = C.particles[p1][k]
		vars[name+"2"] = C.particles[p2][k]
	}
	energy, err := C.Evaluate(vars)
	if err != nil {
		return 0, errDecorate(err, "InteractionEnergy")
	}
	if C.useSwitch && C.method != NoCutoff && r > C.switchDist {
		energy *= switchValue(r, C.switchDist, C.cutoff)
	}
	return energy, nil
}

// switchValue is the standard 5th-degree switching polynomial. It goes from
// 1 at rswitch to 0 at cutoff, with zero first and second derivatives at
// both ends.
func switchValue(r, rswitch, cutoff float64) float64 {
	x := (r - rswitch) / (cutoff - rswitch)
	return 1 + x*x*x*(-10+x*(15-6*x))
}
