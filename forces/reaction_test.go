/*
 * reaction_test.go, part of gomm
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

package forces

import (
	"fmt"
	"math"
	"testing"

	mm "github.com/rmera/gomm"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestKRFScaling(Te *testing.T) {
	for _, dielectric := range []float64{4.0, 78.3, 80.0} {
		for _, cutoff := range []float64{0.9, 1.2, 1.5} {
			rf := NewUnshiftedReactionField(cutoff, mm.DefSwitchWidth, dielectric)
			if rf.KRF() <= 0 {
				Te.Errorf("k_rf should be positive for eps=%f rc=%f, got %f", dielectric, cutoff, rf.KRF())
			}
			//k_rf scales with the inverse cube of the cutoff
			double := NewUnshiftedReactionField(2*cutoff, mm.DefSwitchWidth, dielectric)
			if !scalar.EqualWithinAbsOrRel(double.KRF(), rf.KRF()/8.0, 1e-12, 1e-12) {
				Te.Errorf("k_rf doesn't scale as rc^-3: %f vs %f", double.KRF(), rf.KRF()/8.0)
			}
			if rf.CRF() != 0 {
				Te.Error("The unshifted potential should have no c_rf")
			}
		}
	}
}

func TestCRFScalingAndLimits(Te *testing.T) {
	for _, cutoff := range []float64{0.9, 1.2, 1.5} {
		rf := NewSwitchedReactionField(cutoff, mm.DefSwitchWidth, 78.3)
		if rf.CRF() <= 0 {
			Te.Errorf("c_rf should be positive, got %f", rf.CRF())
		}
		double := NewSwitchedReactionField(2*cutoff, mm.DefSwitchWidth, 78.3)
		if !scalar.EqualWithinAbsOrRel(double.CRF(), rf.CRF()/2.0, 1e-12, 1e-12) {
			Te.Errorf("c_rf doesn't scale as rc^-1: %f vs %f", double.CRF(), rf.CRF()/2.0)
		}
	}
	//conductor limit (eps to infinity)
	cutoff := 1.5
	rf := NewSwitchedReactionField(cutoff, mm.DefSwitchWidth, 1e12)
	if !scalar.EqualWithinAbsOrRel(rf.CRF(), 1.5/cutoff, 1e-9, 1e-9) {
		Te.Errorf("c_rf conductor limit: got %f want %f", rf.CRF(), 1.5/cutoff)
	}
	if !scalar.EqualWithinAbsOrRel(rf.KRF(), 0.5/math.Pow(cutoff, 3), 1e-9, 1e-9) {
		Te.Errorf("k_rf conductor limit: got %f want %f", rf.KRF(), 0.5/math.Pow(cutoff, 3))
	}
}

func TestBuildConfiguration(Te *testing.T) {
	rf := NewSwitchedReactionField(1.2, 0.1, 80.0)
	force, err := rf.Build(mm.SimMaker)
	if err != nil {
		Te.Fatal(err)
	}
	sim := force.(*mm.SimCustomForce)
	fmt.Println("Energy expression:", sim.EnergyExpression())
	if sim.EnergyExpression() != rf.EnergyExpression() {
		Te.Error("The force was not built from the parameterization's expression")
	}
	if sim.NumPerParticleParameters() != 1 || sim.PerParticleParameterName(0) != "charge" {
		Te.Error("The force should declare exactly one per-particle parameter, \"charge\"")
	}
	if sim.NonbondedMethod() != mm.CutoffPeriodic {
		Te.Error("Wrong nonbonded method")
	}
	if sim.CutoffDistance() != 1.2 {
		Te.Errorf("Wrong cutoff: %f", sim.CutoffDistance())
	}
	if sim.UseLongRangeCorrection() {
		Te.Error("The long-range correction should be off")
	}
	if !sim.UseSwitchingFunction() || !scalar.EqualWithinAbs(sim.SwitchingDistance(), 1.1, 1e-12) {
		Te.Errorf("Switching should start at 1.1 nm, got %f (on: %v)", sim.SwitchingDistance(), sim.UseSwitchingFunction())
	}
}

func TestBuildNoSwitch(Te *testing.T) {
	rf := NewUnshiftedReactionField(1.2, mm.NoSwitch, 78.3)
	force, err := rf.Build(mm.SimMaker)
	if err != nil {
		Te.Fatal(err)
	}
	sim := force.(*mm.SimCustomForce)
	if sim.UseSwitchingFunction() {
		Te.Error("NoSwitch should disable the switching function")
	}
	if sim.SwitchingDistance() != 0 {
		Te.Error("No switching distance should have been set")
	}
}

func TestFromNonbondedForce(Te *testing.T) {
	source := mm.NewSimNonbonded(1.2, 80.0)
	charges := []float64{1.0, -1.0, 0.5}
	for _, q := range charges {
		source.AddParticle(q, 0.3, 0.6)
	}
	source.AddException(0, 1, 0.5, 0.3, 0.1)
	force, err := FromNonbondedForce(mm.SimMaker, source, 0.1, true)
	if err != nil {
		Te.Fatal(err)
	}
	sim := force.(*mm.SimCustomForce)
	if sim.NumParticles() != 3 {
		Te.Fatalf("Got %d particles, want 3", sim.NumParticles())
	}
	for i, q := range charges {
		params := sim.ParticleParameters(i)
		if len(params) != 1 || params[0] != q {
			Te.Errorf("Particle %d: got parameters %v, want just the charge %f", i, params, q)
		}
	}
	if sim.NumExclusions() != 1 {
		Te.Fatalf("Got %d exclusions, want 1", sim.NumExclusions())
	}
	p1, p2 := sim.ExclusionParticles(0)
	if p1 != 0 || p2 != 1 {
		Te.Errorf("Wrong exclusion pair: (%d, %d)", p1, p2)
	}
}

func TestRoundTrip(Te *testing.T) {
	//a force built directly and one built from a source with the same
	//cutoff and dielectric must embed identical constants
	source := mm.NewSimNonbonded(1.2, 80.0)
	for _, shifted := range []bool{false, true} {
		var direct *ReactionField
		if shifted {
			direct = NewSwitchedReactionField(1.2, 0.1, 80.0)
		} else {
			direct = NewUnshiftedReactionField(1.2, 0.1, 80.0)
		}
		copied := ReactionFieldFromNonbonded(source, 0.1, shifted)
		if direct.KRF() != copied.KRF() || direct.CRF() != copied.CRF() {
			Te.Errorf("shifted=%v: constants differ: %f/%f vs %f/%f", shifted,
				direct.KRF(), direct.CRF(), copied.KRF(), copied.CRF())
		}
		if direct.EnergyExpression() != copied.EnergyExpression() {
			Te.Errorf("shifted=%v: expressions differ:\n%s\n%s", shifted,
				direct.EnergyExpression(), copied.EnergyExpression())
		}
	}
}

func TestFromSystem(Te *testing.T) {
	sys := mm.NewSimSystem()
	source := mm.NewSimNonbonded(1.2, 80.0)
	source.AddParticle(0.4, 0.3, 0.6)
	sys.AddForce(source)
	force, err := FromSystem(mm.SimMaker, sys, 0.1, false)
	if err != nil {
		Te.Fatal(err)
	}
	if force.(*mm.SimCustomForce).NumParticles() != 1 {
		Te.Error("The particle was not copied")
	}
	sys.AddForce(mm.NewSimNonbonded(1.0, 10.0))
	_, err = FromSystem(mm.SimMaker, sys, 0.1, false)
	if _, ok := err.(*MultipleForcesError); !ok {
		Te.Errorf("Two nonbonded forces should give a MultipleForcesError, got %v", err)
	}
}

// The absent-force case is a documented precondition violation: FromSystem
// panics on the nil dereference instead of checking.
func TestFromSystemAbsent(Te *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			Te.Error("FromSystem on a system with no nonbonded force should panic")
		} else {
			fmt.Println("Got expected panic:", r)
		}
	}()
	FromSystem(mm.SimMaker, mm.NewSimSystem(), 0.1, false)
}

func TestSwitchedEnergyAtCutoff(Te *testing.T) {
	cutoff := 1.5
	rf := NewSwitchedReactionField(cutoff, mm.NoSwitch, 78.3)
	force, err := rf.Build(mm.SimMaker)
	if err != nil {
		Te.Fatal(err)
	}
	sim := force.(*mm.SimCustomForce)
	sim.AddParticle([]float64{1.0})
	sim.AddParticle([]float64{-1.0})
	energy, err := sim.InteractionEnergy(0, 1, cutoff)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Switched energy at the cutoff:", energy)
	//not exactly 0 because the embedded constants are rounded literals
	if math.Abs(energy) > 5e-3 {
		Te.Errorf("The shifted potential should vanish at the cutoff, got %f", energy)
	}
	//whereas the unshifted one does not vanish there
	rfu := NewUnshiftedReactionField(cutoff, mm.NoSwitch, 78.3)
	forceu, err := rfu.Build(mm.SimMaker)
	if err != nil {
		Te.Fatal(err)
	}
	simu := forceu.(*mm.SimCustomForce)
	simu.AddParticle([]float64{1.0})
	simu.AddParticle([]float64{-1.0})
	energyu, err := simu.InteractionEnergy(0, 1, cutoff)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(energyu) < 1.0 {
		Te.Errorf("The unshifted potential should not vanish at the cutoff, got %f", energyu)
	}
}
