/*
 * mm.go, part of gomm.
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

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the function on a nil object.**/

// Force is any force term registered in a simulation system. Concrete
// force types are identified by capability interfaces (see NonbondedForce),
// not by their dynamic type, so engine bindings can supply their own
// implementations.
type Force interface {

	//Name returns a human-readable name for the force term.
	Name() string
}

// System is a read-only view of a simulation's ordered force registry.
// The order of the returned slice is the registration order.
type System interface {

	//Forces returns all the force terms in the system, in registration order.
	Forces() []Force
}

// ForceAdder is implemented by systems that accept new force terms.
type ForceAdder interface {
	System

	//AddForce appends a force to the system and returns its index.
	AddForce(f Force) int
}

// SimSystem is the in-memory reference implementation of System. It only
// stages force objects. It does not integrate, evaluate neighbor lists or
// anything of the sort; that is the job of whatever engine the staged
// system is handed to.
type SimSystem struct {
	forces []Force
}

// NewSimSystem returns an empty system.
func NewSimSystem() *SimSystem {
	return new(SimSystem)
}

// Forces returns the force terms in S, in the order they were added.
func (S *SimSystem) Forces() []Force {
	if S == nil {
		panic(ErrNilSystem)
	}
	return S.forces
}

// AddForce appends f to the system and returns the index it was assigned.
func (S *SimSystem) AddForce(f Force) int {
	if f == nil {
		panic(ErrNilForce)
	}
	S.forces = append(S.forces, f)
	return len(S.forces) - 1
}

// Len returns the number of force terms in the system.
func (S *SimSystem) Len() int {
	return len(S.forces)
}
