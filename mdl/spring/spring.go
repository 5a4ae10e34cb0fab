// Copyright 2016 The Multifil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spring implements the two-state (weak/strong) linear spring
// primitive shared by the myosin head's converter/globular elements.
package spring

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// State selects which rest-length/stiffness pair a spring currently uses.
// The enclosing head owns the selector; the spring itself is stateless.
type State int

const (
	Weak   State = iota // Free/Loose kinetic states bind to the weak spring
	Strong              // Tight kinetic state binds to the strong spring
)

// kT is Boltzmann's constant times absolute temperature, in pN·nm, at the
// reference temperature used throughout the original multifil source
// (1.381e-23 J/K * 288 K, converted from J to pN·nm).
const kT = 1.381e-23 * 288 * 1e21

// Spring is a linear two-state spring: rest length and stiffness differ
// between the weak and strong state, and the thermal standard deviation is
// derived once from the weak stiffness.
type Spring struct {
	Rw, Rs float64 // rest length/angle, weak and strong
	Kw, Ks float64 // stiffness, weak and strong
	Sigma  float64 // thermal standard deviation, sqrt(kT/Kw)
}

// New builds a spring from its four defining parameters, validating
// Kw>0, Ks>0 per §3's invariant, and derives Sigma.
func New(rw, rs, kw, ks float64) (*Spring, error) {
	if kw <= 0 || ks <= 0 {
		return nil, chk.Err("invalid spring parameters: kw=%g ks=%g must both be > 0", kw, ks)
	}
	return &Spring{Rw: rw, Rs: rs, Kw: kw, Ks: ks, Sigma: math.Sqrt(kT / kw)}, nil
}

// FromPrms builds a spring from a gosl fun.Prms record with the given
// weak/strong rest-length and stiffness names, falling back to defRw/defRs/
// defKw/defKs for any name absent from prms, mirroring the teacher's
// "Init(prms fun.Prms)" idiom used throughout mdl/solid.
func FromPrms(prms fun.Prms, nameRw, nameRs, nameKw, nameKs string, defRw, defRs, defKw, defKs float64) (*Spring, error) {
	rw, rs, kw, ks := defRw, defRs, defKw, defKs
	for _, p := range prms {
		switch p.N {
		case nameRw:
			rw = p.V
		case nameRs:
			rs = p.V
		case nameKw:
			kw = p.V
		case nameKs:
			ks = p.V
		}
	}
	return New(rw, rs, kw, ks)
}

// Rest returns the rest length/angle for the given state.
func (o *Spring) Rest(s State) float64 {
	if s == Strong {
		return o.Rs
	}
	return o.Rw
}

// Stiffness returns the stiffness for the given state.
func (o *Spring) Stiffness(s State) float64 {
	if s == Strong {
		return o.Ks
	}
	return o.Kw
}

// Energy returns the elastic energy ½·k·(value−rest)² for the given state.
func (o *Spring) Energy(value float64, s State) float64 {
	d := value - o.Rest(s)
	return 0.5 * o.Stiffness(s) * d * d
}

// Force returns the restoring force k·(value−rest) for the given state.
func (o *Spring) Force(value float64, s State) float64 {
	return o.Stiffness(s) * (value - o.Rest(s))
}

// SampleFree draws a value from Normal(Rw, Sigma) using the given random
// stream, representing the free (unbound, weak-spring) thermal distribution.
func (o *Spring) SampleFree(normal func(mean, sigma float64) float64) float64 {
	return normal(o.Rw, o.Sigma)
}
