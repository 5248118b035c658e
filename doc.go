/*
 * doc.go, part of gomm.
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

/*Package mm provides building blocks for staging molecular-dynamics force
objects before handing them to an MD engine.

The package defines the engine-facing model as small interfaces (System,
Force, NonbondedForce, CustomNonbondedForce) together with a complete
in-memory reference implementation of each (SimSystem, SimNonbonded,
SimCustomForce). A binding layer for a real engine only needs to implement
the interfaces; the reference implementation is enough to parameterize,
inspect and test force objects, including evaluating custom pairwise energy
expressions.

Everything works in the MD unit system: nm, kJ/mol and elementary charges.
gomm never converts units.

The actual force parameterizations live in the subpackages. See
github.com/rmera/gomm/forces for reaction-field electrostatics.
*/
package mm
