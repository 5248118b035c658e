/*
 * errors.go, part of gomm.
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
)

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package),
//as it was brought over from goChem. We should avoid using the Decorate method and/or make it use the
//"%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method
// allows to add and retrieve info from the error, without changing it's type or wrapping it around
// something else. The decorate slice should contain a list of functions in the calling stack, plus,
// for each function, any relevant information, or nothing. If information is to be added to an element
// of the slice, it should be in this format: "FunctionName: Extra info"
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// CError (Concrete Error) is the concrete type behind most errors returned by this package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, "/"))
}

// Decorate adds the dec string to the decoration slice of strings of the error,
// and returns the resulting slice. An empty dec is not added.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. It panics on a non-gomm error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics. It does satisfy the error interface,
// but for recoverable errors use Error/CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilSystem      = PanicMsg("gomm: Attempted to use a nil System")
	ErrNilForce       = PanicMsg("gomm: Attempted to use a nil Force")
	ErrNilNonbonded   = PanicMsg("gomm: Attempted to use a nil NonbondedForce")
	ErrParticleRange  = PanicMsg("gomm: Particle index out of range")
	ErrExceptionRange = PanicMsg("gomm: Exception index out of range")
)
