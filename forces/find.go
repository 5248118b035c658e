/*
 * find.go, part of gomm
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
	"iter"
	"strings"

	mm "github.com/rmera/gomm"
)

// FindNonbondedForce scans the forces registered in system, in registration
// order, and returns the only nonbonded force among them. Whether a force is
// nonbonded is decided by capability: it must implement mm.NonbondedForce.
// If the system contains more than one nonbonded force, a
// *MultipleForcesError is returned. If it contains none, both return values
// are nil; callers that can't deal with an absent force must check.
func FindNonbondedForce(system mm.System) (mm.NonbondedForce, error) {
	var found mm.NonbondedForce
	for _, force := range system.Forces() {
		nb, ok := force.(mm.NonbondedForce)
		if !ok {
			continue
		}
		if found != nil {
			return nil, &MultipleForcesError{deco: []string{"FindNonbondedForce"}}
		}
		found = nb
	}
	return found, nil
}

// IterateNonbondedForces returns an iterator over all the nonbonded forces
// in system, in registration order. The iterator can be ranged over any
// number of times; each range scans the system again.
func IterateNonbondedForces(system mm.System) iter.Seq[mm.NonbondedForce] {
	return func(yield func(mm.NonbondedForce) bool) {
		for _, force := range system.Forces() {
			if nb, ok := force.(mm.NonbondedForce); ok {
				if !yield(nb) {
					return
				}
			}
		}
	}
}

//Errors

// MultipleForcesError is returned when a system contains more than one
// nonbonded force where at most one is expected.
type MultipleForcesError struct {
	deco []string
}

func (err *MultipleForcesError) Error() string {
	msg := "forces: The System has multiple NonbondedForces"
	if len(err.deco) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (%s)", msg, strings.Join(err.deco, "/"))
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty dec is not added.
func (err *MultipleForcesError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Error is the concrete type behind the other errors returned by this
// package. It works like the root package's CError.
type Error struct {
	msg  string
	deco []string
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, "/"))
}

func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name if err implements
// mm.Error, and otherwise wraps it in a package Error.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(mm.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return &Error{err.Error(), []string{caller}}
}
