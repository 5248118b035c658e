/*
 * replace.go, part of gomm
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
	mm "github.com/rmera/gomm"
)

// ReplaceReactionField converts a system to use a custom reaction-field
// potential for electrostatics: for every nonbonded force in system, it
// builds the mirroring reaction-field force (see FromNonbondedForce), adds
// it to the system and zeroes the particle charges of the original force, so
// nothing is counted twice. The Lennard-Jones parameters, and the exceptions
// of the original force, are left untouched; exceptions keep handling the
// 1-4 scaled interactions.
//
// The system must implement mm.ForceAdder, and every nonbonded force in it
// must implement mm.ChargeSetter; otherwise an error is returned and the
// system is left unmodified.
func ReplaceReactionField(maker mm.CustomForceMaker, system mm.System, switchWidth float64, shifted bool) error {
	adder, ok := system.(mm.ForceAdder)
	if !ok {
		return &Error{"The System doesn't accept new forces", []string{"ReplaceReactionField"}}
	}
	//We'll be appending forces while going through the list, so the
	//nonbonded ones are collected first.
	var sources []mm.NonbondedForce
	for nb := range IterateNonbondedForces(system) {
		if _, ok := nb.(mm.ChargeSetter); !ok {
			return &Error{"A NonbondedForce in the System doesn't allow setting charges", []string{"ReplaceReactionField"}}
		}
		sources = append(sources, nb)
	}
	for _, nb := range sources {
		force, err := FromNonbondedForce(maker, nb, switchWidth, shifted)
		if err != nil {
			return errDecorate(err, "ReplaceReactionField")
		}
		adder.AddForce(force)
		setter := nb.(mm.ChargeSetter)
		for i := 0; i < nb.NumParticles(); i++ {
			setter.SetParticleCharge(i, 0.0)
		}
	}
	return nil
}
