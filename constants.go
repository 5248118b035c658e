/*
 * constants.go, part of gomm.
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

//Everything in this library is in the MD unit system: distances in nm,
//energies in kJ/mol, charges in elementary charges. Conversion from
//whatever the user has is the user's problem.

// ONE4PiEps0 is the Coulomb constant 1/(4*pi*eps_0) in kJ*nm/(mol*e^2).
// The value matches the one used by common MD engines.
const ONE4PiEps0 = 138.935456

// Defaults for cutoff electrostatics. The cutoff and switch width are in nm
// (15 and 1 Angstrom, respectively).
const (
	DefCutoff      = 1.5
	DefSwitchWidth = 0.1
	DefDielectric  = 78.3
)

// NoSwitch, given as a switch width, disables the switching function so the
// potential is simply truncated at the cutoff. Any negative value works, but
// use the constant.
const NoSwitch = -1.0
