/*
 * nonbonded.go, part of gomm.
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

// NonbondedForce is the capability interface for a standard nonbonded force
// term (Lennard-Jones plus Coulomb). A Force in a System is considered
// nonbonded if, and only if, it implements this interface. All quantities
// are in the MD unit system.
type NonbondedForce interface {
	Force

	//CutoffDistance returns the cutoff, in nm.
	CutoffDistance() float64

	//ReactionFieldDielectric returns the solvent dielectric constant
	//used for reaction-field electrostatics.
	ReactionFieldDielectric() float64

	//NumParticles returns the number of particles in the force.
	NumParticles() int

	//ParticleParameters returns the charge (e), sigma (nm) and
	//epsilon (kJ/mol) of the i-th particle.
	ParticleParameters(i int) (charge, sigma, epsilon float64)

	//NumExceptions returns the number of particle-pair exceptions.
	NumExceptions() int

	//ExceptionParameters returns the particle indexes, charge product,
	//sigma and epsilon of the i-th exception.
	ExceptionParameters(i int) (p1, p2 int, chargeProd, sigma, epsilon float64)
}

// ChargeSetter is implemented by nonbonded forces whose particle charges can
// be modified after construction.
type ChargeSetter interface {

	//SetParticleCharge replaces the charge of the i-th particle,
	//leaving the Lennard-Jones parameters untouched.
	SetParticleCharge(i int, charge float64)
}

type nbParticle struct {
	charge  float64
	sigma   float64
	epsilon float64
}

type nbException struct {
	p1, p2     int
	chargeProd float64
	sigma      float64
	epsilon    float64
}

// SimNonbonded is the in-memory reference implementation of NonbondedForce.
type SimNonbonded struct {
	cutoff     float64
	dielectric float64
	particles  []nbParticle
	exceptions []nbException
}

// NewSimNonbonded returns a nonbonded force with the given cutoff (nm) and
// reaction-field dielectric, and no particles.
func NewSimNonbonded(cutoff, dielectric float64) *SimNonbonded {
	ret := new(SimNonbonded)
	ret.cutoff = cutoff
	ret.dielectric = dielectric
	return ret
}

func (N *SimNonbonded) Name() string { return "NonbondedForce" }

func (N *SimNonbonded) CutoffDistance() float64 {
	if N == nil {
		panic(ErrNilNonbonded)
	}
	return N.cutoff
}

func (N *SimNonbonded) ReactionFieldDielectric() float64 {
	if N == nil {
		panic(ErrNilNonbonded)
	}
	return N.dielectric
}

func (N *SimNonbonded) NumParticles() int {
	return len(N.particles)
}

// AddParticle appends a particle with the given charge and Lennard-Jones
// parameters, and returns its index.
func (N *SimNonbonded) AddParticle(charge, sigma, epsilon float64) int {
	N.particles = append(N.particles, nbParticle{charge, sigma, epsilon})
	return len(N.particles) - 1
}

func (N *SimNonbonded) ParticleParameters(i int) (charge, sigma, epsilon float64) {
	if i < 0 || i >= len(N.particles) {
		panic(ErrParticleRange)
	}
	p := N.particles[i]
	return p.charge, p.sigma, p.epsilon
}

// SetParticleCharge replaces the charge of the i-th particle. Sigma and
// epsilon are kept.
func (N *SimNonbonded) SetParticleCharge(i int, charge float64) {
	if i < 0 || i >= len(N.particles) {
		panic(ErrParticleRange)
	}
	N.particles[i].charge = charge
}

func (N *SimNonbonded) NumExceptions() int {
	return len(N.exceptions)
}

// AddException appends a particle-pair exception with its own interaction
// parameters, and returns its index.
func (N *SimNonbonded) AddException(p1, p2 int, chargeProd, sigma, epsilon float64) int {
	N.exceptions = append(N.exceptions, nbException{p1, p2, chargeProd, sigma, epsilon})
	return len(N.exceptions) - 1
}

func (N *SimNonbonded) ExceptionParameters(i int) (p1, p2 int, chargeProd, sigma, epsilon float64) {
	if i < 0 || i >= len(N.exceptions) {
		panic(ErrExceptionRange)
	}
	e := N.exceptions[i]
	return e.p1, e.p2, e.chargeProd, e.sigma, e.epsilon
}
